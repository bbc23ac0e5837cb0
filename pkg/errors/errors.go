package errors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeNotFound            = "NOT_FOUND"
	CodeReportNotFound      = "REPORT_NOT_FOUND"
	CodeAdminNotFound       = "ADMIN_NOT_FOUND"
	CodeForbidden           = "FORBIDDEN"
	CodeForbiddenAccess     = "FORBIDDEN_ACCESS"
	CodeValidation          = "VALIDATION_ERROR"
	CodeBadRequest          = "BAD_REQUEST"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeConflict            = "CONFLICT"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodeInternal            = "INTERNAL_ERROR"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func ReportNotFound(err error) *AppError {
	return &AppError{
		Code:    CodeReportNotFound,
		Message: "report not found",
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func AdminNotFound(err error) *AppError {
	return &AppError{
		Code:    CodeAdminNotFound,
		Message: "admin not found",
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    CodeBadRequest,
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Validation(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func Forbidden(message string, err error) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
		Status:  http.StatusForbidden,
		Err:     err,
	}
}

// ForbiddenAccess is returned when a report lies outside the acting admin's jurisdiction.
func ForbiddenAccess() *AppError {
	return &AppError{
		Code:    CodeForbiddenAccess,
		Message: "report is outside your jurisdiction",
		Status:  http.StatusForbidden,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
		Status:  http.StatusConflict,
		Err:     nil,
	}
}

// Unavailable wraps a failure of one of the external stores.
func Unavailable(message string, err error) *AppError {
	return &AppError{
		Code:    CodeUpstreamUnavailable,
		Message: message,
		Status:  http.StatusServiceUnavailable,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsNotFound reports whether err is any of the not-found codes.
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound) || Is(err, CodeReportNotFound) || Is(err, CodeAdminNotFound)
}
