// Package validators performs schema checks on request payloads before they
// reach the service layer.
//
// Each endpoint has an explicit validation function returning either nil or a
// *ValidationError listing every violated field. Validation is purely
// structural: ownership and uniqueness checks belong to the service and
// store layers.
package validators

import (
	"fmt"
	"strings"
)

// Field name constants reported in validation violations. They match the
// JSON field names of the request payloads.
const (
	FieldUsername   = "username"
	FieldPassword   = "password"
	FieldName       = "name"
	FieldFirstName  = "first_name"
	FieldLastName   = "last_name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldStreet     = "street"
	FieldCity       = "city"
	FieldProvince   = "province"
	FieldCountry    = "country"
	FieldPostalCode = "postal_code"
)

// FieldViolation describes a single violated constraint on one field.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError aggregates every violation found in one request payload.
// It implements the error interface; the message names each violated field
// so it can be surfaced verbatim in the error envelope.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s %s", v.Field, v.Message))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}

// orNil returns the receiver as an error, or nil when no violation was
// recorded. Returning a typed nil pointer wrapped in error would defeat
// errors.As at the boundary, hence the explicit check.
func (e *ValidationError) orNil() error {
	if len(e.Violations) == 0 {
		return nil
	}

	return e
}

func requireBounded(e *ValidationError, field, value string, max int) {
	switch {
	case value == "":
		e.add(field, "is required")
	case len(value) > max:
		e.add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

func optionalBounded(e *ValidationError, field, value string, max int) {
	if value != "" && len(value) > max {
		e.add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}
