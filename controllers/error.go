package controllers

import (
	"fmt"
	"interview-prep/apperror"
	"interview-prep/models"
	"net/http"
)

// ErrorResponse is the standardized error structure which may be returned by any API
type ErrorResponse struct {
	Code    int32  `json:"code"`
	Message string `json:"msg"`
}

// HandleError encodes the std ErrorResponse
func HandleError(err error) (httpStatus int, apiError ErrorResponse) {

	if err == nil {
		apiError.Code = 0
		apiError.Message = ""

		return 0, apiError
	}

	fmt.Println(err)
	switch err {
	// generic kinds
	case apperror.ErrNoData:
		apiError.Code = RecordNotFound
		apiError.Message = apiError.String(apiError.Code)
		httpStatus = http.StatusNotFound
	case apperror.ErrDenied:
		apiError.Code = ActionDenied
		apiError.Message = apiError.String(apiError.Code)
		httpStatus = http.StatusForbidden
	case apperror.ErrMultipleRecords:
		apiError.Code = MultipleRecords
		apiError.Message = apiError.String(apiError.Code)
		httpStatus = http.StatusInternalServerError
	// moderation
	case models.ErrInvalidAction:
		apiError.Code = InvalidAction
		apiError.Message = apiError.String(apiError.Code)
		httpStatus = http.StatusBadRequest
	// submissions
	case models.ErrCompanyMissing:
		apiError.Code = CompanyMissing
		apiError.Message = apiError.String(apiError.Code)
		httpStatus = http.StatusUnprocessableEntity
	case models.ErrOAHeaderMissing:
		apiError.Code = OAHeaderMissing
		apiError.Message = apiError.String(apiError.Code)
		httpStatus = http.StatusUnprocessableEntity
	case models.ErrQuestionMissing:
		apiError.Code = QuestionMissing
		apiError.Message = apiError.String(apiError.Code)
		httpStatus = http.StatusUnprocessableEntity
	// user
	case models.ErrUserNameNotAvailable:
		apiError.Code = UserNameTaken
		apiError.Message = apiError.String(apiError.Code)
		httpStatus = http.StatusUnprocessableEntity
	case models.ErrEMailAddressTaken:
		apiError.Code = EMailAddressTaken
		apiError.Message = apiError.String(apiError.Code)
		httpStatus = http.StatusUnprocessableEntity
	case models.ErrInvalidUser:
		apiError.Code = InvalidRequest
		apiError.Message = apiError.String(apiError.Code)
		httpStatus = http.StatusUnprocessableEntity
	case models.ErrInvalidPassword:
		apiError.Code = InvalidPassword
		apiError.Message = apiError.String(apiError.Code)
		httpStatus = http.StatusUnprocessableEntity
	default:
		// storage failures and anything unexpected; never retried here
		apiError.Code = SystemError
		apiError.Message = apiError.String(apiError.Code)
		httpStatus = http.StatusInternalServerError
	}
	return httpStatus, apiError
}

// Application Error Codes (API Errors)
const (
	// client/api
	InvalidJSON int32 = (10000 + iota)
	InvalidRequest
	InvalidLogin
	// generic system
	MultipleRecords
	RecordNotFound
	ActionDenied
	// moderation
	InvalidAction
	// user
	UserNameTaken
	EMailAddressTaken
	InvalidPassword
	// submissions
	CompanyMissing
	OAHeaderMissing
	QuestionMissing
	SystemError = 99999
)

func (er ErrorResponse) String(code int32) string {
	msg := ""
	switch code {
	// common (system)
	case InvalidJSON:
		msg = "Invalid JSON"
	case InvalidRequest:
		msg = "Invalid Request" // JSON was correct, data was not
	case InvalidLogin:
		msg = "invalid user name or password"
	case MultipleRecords:
		msg = "multiple records found"
	case RecordNotFound:
		msg = "record not found"
	case ActionDenied:
		msg = "admin privilege required"
	// moderation
	case InvalidAction:
		msg = "unknown moderation action"
	// user
	case UserNameTaken:
		msg = "user name is not available"
	case EMailAddressTaken:
		msg = "email-address is already used"
	case InvalidPassword:
		msg = "password does not meet rules"
	// submissions
	case CompanyMissing:
		msg = "company is required"
	case OAHeaderMissing:
		msg = "company, role and year are required"
	case QuestionMissing:
		msg = "each entry needs a question text"
	case SystemError:
		msg = "Server Problem"
	}

	return msg
}
