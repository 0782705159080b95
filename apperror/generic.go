package apperror

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrNoData          = Error("no records found")
	ErrMultipleRecords = Error("multiple records found")
	ErrDenied          = Error("not allowed") // authenticated, but lacking the required role
	ErrRecordChanged   = Error("write conflict")
)
