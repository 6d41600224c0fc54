package usecase

import "errors"

const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeLeadNotFound = "LEAD_NOT_FOUND"
	CodeGeneration   = "GENERATION_ERROR"
	CodeMail         = "MAIL_ERROR"
	CodeStorage      = "STORAGE_ERROR"
)

// DomainError is a problem with what the caller asked for.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError is a failure in one of the collaborators (generator,
// mail provider, storage).
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

// ErrorCode returns the Code of a DomainError or TechnicalError in the
// chain, or "" for anything else.
func ErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	var te *TechnicalError
	if errors.As(err, &te) {
		return te.Code
	}
	return ""
}
