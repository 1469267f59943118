// Package validation decodes request payloads and checks them against their struct tags.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	perrors "github.com/abgdnv/productapi/internal/product/errors"
	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator and reports failures as *errors.ValidationError.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that names fields by their JSON tag.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates a struct value. Field errors are collected in declaration order.
func (v *Validator) Struct(payload any) error {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("failed to validate payload: %w", err)
	}

	order := make([]string, 0, len(validationErrors))
	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		// fieldErr.Tag() returns "required", "max", etc.
		order = append(order, fieldErr.Field())
		fields[fieldErr.Field()] = fieldErr.Tag()
	}
	return perrors.NewValidationError(order, fields)
}

// Decode reads one JSON document from body into dst and validates it.
// A JSON value of the wrong type for a field is reported against that field.
func (v *Validator) Decode(body io.Reader, dst any) error {
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return perrors.NewValidationError(
				[]string{typeErr.Field},
				map[string]string{typeErr.Field: kindName(typeErr.Type)},
			)
		}
		return &perrors.ValidationError{Message: "Invalid request body"}
	}
	return v.Struct(dst)
}

// kindName returns the JSON name of the type a field expects.
func kindName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	default:
		return t.Kind().String()
	}
}
