package shared

import (
	"errors"
	"net/http"
)

// AppError is the error type handlers return; the HTTP layer maps it to a
// response envelope with the carried status code.
type AppError struct {
	StatusCode int         `json:"code"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Err        error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(statusCode int, err error, message string, data interface{}) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
		Err:        err,
	}
}

// NewValidationError covers malformed payloads and domain rule violations.
func NewValidationError(err error, message string) *AppError {
	return NewAppError(http.StatusBadRequest, err, message, nil)
}

func NewBadRequestError(err error, message string) *AppError {
	return NewAppError(http.StatusBadRequest, err, message, nil)
}

func NewNotFoundError(err error, message string) *AppError {
	return NewAppError(http.StatusNotFound, err, message, nil)
}

// NewInsufficientPointsError reports an attribute spend with no skill points
// left to allocate.
func NewInsufficientPointsError(message string) *AppError {
	return NewAppError(http.StatusConflict, nil, message, nil)
}

func NewInternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, err, "Internal Server Error", nil)
}

// GetAppError unwraps err to an *AppError if one is in the chain.
func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
