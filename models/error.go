package models

import (
	"errors"
)

// custom error types (generic kinds live in the apperror package)

// user
var (
	ErrUserNameNotAvailable = errors.New("user name is not available")
	ErrEMailAddressTaken    = errors.New("email-address is already used")
	ErrInvalidUser          = errors.New("invalid user name or password")
	ErrInvalidPassword      = errors.New("password does not meet rules")
)

// experience
// transformed by controllers to respective Unprocessable Entity (422)
var (
	ErrCompanyMissing = errors.New("company is required")
	ErrInvalidAction  = errors.New("unknown moderation action")
)

// oa question sets
var (
	ErrOAHeaderMissing = errors.New("company, role and year are required")
	ErrQuestionMissing = errors.New("each entry needs a question text")
)
