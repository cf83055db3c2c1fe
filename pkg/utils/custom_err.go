package utils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration = errors.New("generation API key is not configured")
	ErrUpstream      = errors.New("upstream generation request failed")
	ErrEmptyResponse = errors.New("no response from generation API")
	ErrParse         = errors.New("could not parse JSON response")
	ErrSchema        = errors.New("invalid response structure")
	ErrValidation    = errors.New("invalid request")
	ErrTripNotFound  = errors.New("trip not found")
	ErrOwnerRequired = errors.New("owner id is required")
	ErrForbidden     = errors.New("forbidden")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrDatabaseError = errors.New("database error")
)

// UpstreamError is returned when the AI provider answers with a non-2xx status.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API error: %d - %s", e.Provider, e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed request validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
