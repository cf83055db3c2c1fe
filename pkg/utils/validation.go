package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// validate reads the same `binding` tags gin uses, so services and
// controllers enforce one set of rules.
var validate = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}()

// ValidateStruct runs binding-tag validation outside of gin.
func ValidateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return NewValidationError(err)
	}
	return nil
}

// NewValidationError converts binding and decoding failures into a ValidationError.
func NewValidationError(err error) *ValidationError {
	var existing *ValidationError
	if errors.As(err, &existing) {
		return existing
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
		for _, fe := range verrs {
			out.Fields = append(out.Fields, FieldError{
				Field:   fieldPath(fe),
				Message: fieldMessage(fe),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &ValidationError{Fields: []FieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("must be of type %s", typeErr.Type),
		}}}
	}

	return &ValidationError{Fields: []FieldError{{Field: "body", Message: err.Error()}}}
}

// fieldPath turns "TripRequest.Interests[0]" into "interests[0]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	for i := 0; i < len(ns); i++ {
		if ns[i] == '.' {
			ns = ns[i+1:]
			break
		}
	}
	out := []rune(ns)
	lowerNext := true
	for i, r := range out {
		if lowerNext && unicode.IsUpper(r) {
			out[i] = unicode.ToLower(r)
		}
		lowerNext = r == '.'
	}
	return string(out)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
