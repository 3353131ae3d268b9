package errx

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation")
)

const (
	ProductNotFoundMessage = "Product not found."
	UserNotFoundMessage    = "User not found."
)

// AppError wraps an underlying error with an HTTP status and a message safe to show a user.
type AppError struct {
	Err     error
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(err error, status int, message string) *AppError {
	return &AppError{Err: err, Status: status, Message: message}
}

func NotFound(message string) *AppError {
	return New(ErrNotFound, http.StatusNotFound, message)
}

func Validation(format string, args ...any) *AppError {
	return New(ErrValidation, http.StatusBadRequest, fmt.Sprintf(format, args...))
}

// Message returns the user-facing text of err.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// Status maps err to the HTTP status the API answers with.
func Status(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return appErr.Status
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
