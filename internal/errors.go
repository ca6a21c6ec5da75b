package internal

import (
	"fmt"
	"net/http"
)

type ErrorType string

const ErrorTypeInternal ErrorType = "INTERNAL_ERROR"

type ErrorCode string

const ErrCodeInternal ErrorCode = "INTERNAL_ERROR"

// AppError is an error carrying its own HTTP rendering. Domain packages keep
// their plain sentinel errors for flash-mapped outcomes; services wrap
// everything unexpected into an AppError so the transport layer can answer
// with a structured body instead of an opaque fallback.
type AppError struct {
	Type       ErrorType `json:"type"`
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewInternalError wraps an unexpected failure, typically a storage error.
// The cause stays out of the response body and only reaches the logs.
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       ErrCodeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

type Response struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, Response{Error: e}
}
