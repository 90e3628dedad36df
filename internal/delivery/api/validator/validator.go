// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"tuition/internal/errors"
)

// FieldError is one failed struct tag rule, reported by its JSON name.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate runs the struct tag rules of i.
func (v *Validator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}

// FieldErrors extracts the failed rules from a Validate error. ok is false
// when err carries no validation failures.
func FieldErrors(err error) ([]FieldError, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field: fieldPath(fe.Namespace()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return out, true
}

// fieldPath drops the root struct name from a namespace such as
// "RegisterInput.email".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}
