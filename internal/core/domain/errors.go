package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrForbidden        = errors.New("access forbidden")
	ErrNotFound         = errors.New("not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrReportNotFound   = errors.New("report not found")
	ErrImportNotFound   = errors.New("import not found")
	ErrTenantNotFound   = errors.New("tenant not found")
	ErrConflict         = errors.New("conflict")
	ErrRateLimited      = errors.New("rate limit exceeded")
	ErrAlreadySeeded    = errors.New("tenant already seeded")
	ErrSignupFailed     = errors.New("failed to create sandbox")
)

// FieldError describes a single offending input field or CSV row.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Row     int    `json:"row,omitempty"`
	Message string `json:"message"`
}

// ValidationError is returned when caller input is missing or malformed.
// It is detected at the boundary, before any storage access.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Field != "" {
			names = append(names, f.Field)
		}
	}
	if len(names) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(names, ", ")
}

// NewValidationError builds a ValidationError with optional field details.
func NewValidationError(msg string, fields ...FieldError) *ValidationError {
	return &ValidationError{Message: msg, Fields: fields}
}

// IsValidation reports whether err wraps a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NotFoundError wraps one of the not-found sentinels with a caller-facing message,
// e.g. the list of valid report ids.
type NotFoundError struct {
	Kind    error
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Unwrap() []error { return []error{e.Kind, ErrNotFound} }

// RateLimitError is returned when a rate-limit policy rejects a request.
type RateLimitError struct {
	Policy     string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string { return ErrRateLimited.Error() }

func (e *RateLimitError) Unwrap() error { return ErrRateLimited }
