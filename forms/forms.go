// Package forms binds and validates user input before any mutation runs.
package forms

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	validate = newValidator()

	usernameRegexp = regexp.MustCompile(`^[\w.@+-]+$`)
)

// FieldErrors maps a form field name to a human readable message. It is
// returned as an error whenever validation fails.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, f+": "+e[f])
	}
	return strings.Join(msgs, "; ")
}

// Get returns the message of field, or "" when the field is valid. Templates
// call it directly.
func (e FieldErrors) Get(field string) string {
	return e[field]
}

// AsFieldErrors extracts FieldErrors from err.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their form name, that's what templates know.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRegexp.MatchString(fl.Field().String())
	})
	return v
}

func message(e validator.FieldError, overrides map[string]string) string {
	if msg, ok := overrides[e.Field()+"."+e.Tag()]; ok {
		return msg
	}
	switch e.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", e.Param())
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters.", e.Param())
	case "email":
		return "Enter a valid email address."
	case "numeric":
		return "Select a valid choice."
	case "username":
		return "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	case "eqfield":
		return "The two password fields didn't match."
	}
	return "Enter a valid value."
}

// validateStruct runs struct tags of s and turns failures into FieldErrors,
// keeping the first failure of every field.
func validateStruct(s interface{}, overrides map[string]string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "cannot validate form")
	}
	fe := FieldErrors{}
	for _, e := range verrs {
		if _, ok := fe[e.Field()]; !ok {
			fe[e.Field()] = message(e, overrides)
		}
	}
	return fe
}
