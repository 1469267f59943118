// Package errors provides custom error types for product-related operations.
package errors

import (
	"errors"
	"strings"
)

var ErrProductNotFound = errors.New("product not found")
var ErrSearchQueryRequired = &BadRequestError{Message: "Search query is required"}

// ValidationError is returned when a create or update payload fails validation.
// Fields maps the JSON field name to the rule it failed on.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError listing the failing fields in the given order.
func NewValidationError(order []string, fields map[string]string) *ValidationError {
	parts := make([]string, 0, len(order))
	for _, name := range order {
		parts = append(parts, name+" "+describeRule(fields[name]))
	}
	return &ValidationError{
		Message: "Validation failed: " + strings.Join(parts, ", "),
		Fields:  fields,
	}
}

func describeRule(rule string) string {
	switch rule {
	case "required":
		return "is required"
	case "number", "boolean", "string":
		return "must be a " + rule
	default:
		return "failed on rule: " + rule
	}
}

// BadRequestError is returned when a request parameter is missing or malformed.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}
