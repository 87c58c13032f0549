package domain

import (
	"fmt"
	"strings"
)

// Validation error codes.
const (
	CodeRequired            = "required"
	CodeMin                 = "min"
	CodeWrongPrice          = "wrongPrice"
	CodeWrongEventTime      = "wrongEventTime"
	CodeWrongEnrollmentTime = "wrongEnrollmentTime"
)

// FieldError is a single rule violation. Field is empty for cross-field errors.
// swagger:model FieldError
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError carries every violation found for a payload.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		if fe.Field == "" {
			msgs = append(msgs, fe.Message)
			continue
		}
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Unwrap lets callers match ValidationError with errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// ValidateEvent checks in and returns all violations, or nil when the payload is acceptable.
// Structural checks run first, then the cross-field business rules; nothing short-circuits
// except that a timestamp rule is skipped when one of its operands is missing.
func ValidateEvent(in EventInput) []FieldError {
	var errs []FieldError
	reject := func(field, code, msg string) {
		errs = append(errs, FieldError{Field: field, Code: code, Message: msg})
	}

	if strings.TrimSpace(in.Name) == "" {
		reject("name", CodeRequired, "name is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		reject("description", CodeRequired, "description is required")
	}
	times := []struct {
		field string
		zero  bool
	}{
		{"beginEnrollmentDateTime", in.BeginEnrollmentDateTime.IsZero()},
		{"closeEnrollmentDateTime", in.CloseEnrollmentDateTime.IsZero()},
		{"beginEventDateTime", in.BeginEventDateTime.IsZero()},
		{"endEventDateTime", in.EndEventDateTime.IsZero()},
	}
	for _, ts := range times {
		if ts.zero {
			reject(ts.field, CodeRequired, ts.field+" is required")
		}
	}
	nonNegative := []struct {
		field string
		value int
	}{
		{"basePrice", in.BasePrice},
		{"maxPrice", in.MaxPrice},
		{"limitOfEnrollment", in.LimitOfEnrollment},
	}
	for _, n := range nonNegative {
		if n.value < 0 {
			reject(n.field, CodeMin, fmt.Sprintf("%s must be greater than or equal to 0", n.field))
		}
	}

	if in.MaxPrice > 0 && in.MaxPrice < in.BasePrice {
		reject("", CodeWrongPrice, "maxPrice must be greater than or equal to basePrice")
	}

	beginEvent, endEvent := in.BeginEventDateTime, in.EndEventDateTime
	if !beginEvent.IsZero() && !endEvent.IsZero() && !endEvent.After(beginEvent) {
		reject("endEventTime", CodeWrongEventTime, "endEventDateTime must be after beginEventDateTime")
	}

	beginEnroll, closeEnroll := in.BeginEnrollmentDateTime, in.CloseEnrollmentDateTime
	if !closeEnroll.IsZero() {
		switch {
		case !beginEnroll.IsZero() && !closeEnroll.After(beginEnroll):
			reject("endEnrollmentTime", CodeWrongEnrollmentTime, "closeEnrollmentDateTime must be after beginEnrollmentDateTime")
		case !endEvent.IsZero() && closeEnroll.After(endEvent):
			reject("endEnrollmentTime", CodeWrongEnrollmentTime, "closeEnrollmentDateTime must not be after endEventDateTime")
		}
	}
	return errs
}
