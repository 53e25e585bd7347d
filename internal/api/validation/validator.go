// Package validation runs declarative struct-tag rules over request payloads
// and collects every violation instead of stopping at the first one.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single rule violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the ordered set of violations for one payload.
type Errors []FieldError

// IsEmpty reports whether the payload passed every rule.
func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// Validator wraps go-playground/validator and satisfies echo.Validator.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator that reports fields by their json name.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return &Validator{v: v}
}

// Check evaluates the rules declared on i. Violations are returned in
// declaration order.
func (v *Validator) Check(i any) (Errors, error) {
	err := v.v.Struct(i)
	if err == nil {
		return Errors{}, nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil, err
	}
	out := make(Errors, 0, len(ve))
	for _, fe := range ve {
		out = append(out, FieldError{Field: fieldPath(fe), Message: fieldMessage(fe)})
	}
	return out, nil
}

// Validate satisfies echo.Validator. A failed payload yields an Errors value.
func (v *Validator) Validate(i any) error {
	errs, err := v.Check(i)
	if err != nil {
		return err
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// fieldPath drops the root struct name: "registerRequest.email" -> "email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must contain at least " + fe.Param() + " items"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must contain at most " + fe.Param() + " items"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "mongodb":
		return "must be a valid id"
	case "len":
		return "must have length " + fe.Param()
	default:
		return fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}
