package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/pillowcase/pillowcase/internal/domain"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
	}
}

func InvalidParameter(message string) *AppError {
	return &AppError{
		Code:       "INVALID_PARAMETER",
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func UnsupportedFormat(message string) *AppError {
	return &AppError{
		Code:       "UNSUPPORTED_FORMAT",
		Message:    message,
		StatusCode: http.StatusUnsupportedMediaType,
	}
}

func StorageFailure(err error) *AppError {
	return &AppError{
		Code:       "STORAGE_FAILURE",
		Message:    "cannot write to image storage",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "an internal error occurred",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// FromDomain maps the service error taxonomy to HTTP envelopes. Anything
// unrecognized is reported as a 500 without leaking detail.
func FromDomain(err error) *AppError {
	switch {
	case errors.Is(err, domain.ErrImageNotFound):
		return NotFound("image")
	case errors.Is(err, domain.ErrInvalidParameter):
		return InvalidParameter(err.Error())
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return UnsupportedFormat("payload is not a decodable image")
	case errors.Is(err, domain.ErrImageTooLarge):
		return New("IMAGE_TOO_LARGE", domain.ErrImageTooLarge.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrStorageFailure):
		return StorageFailure(err)
	}
	return Internal(err)
}
