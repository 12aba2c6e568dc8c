package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/travel-sample/travel-sample-api/internal/infrastructure/timeutil"
)

// Validator implements echo.Validator with go-playground/validator.
// Failures are reported as *ValidationErrors keyed by JSON field path.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator that names fields by their json tag and
// understands the iana_tz tag.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// RegisterValidation only fails on an empty tag or a nil func.
	_ = v.RegisterValidation("iana_tz", func(fl validator.FieldLevel) bool {
		return timeutil.IsValidTimezone(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Validate validates a request DTO.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := &ValidationErrors{}
	for _, fe := range fieldErrs {
		errs.Add(fieldPath(fe.Namespace()), fieldMessage(fe))
	}
	if !errs.HasErrors() {
		return err
	}
	return errs
}

// fieldPath drops the struct name from a namespace like "RouteRequest.schedule[0].day".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return requiredMessage(field)
	case "iana_tz":
		return fmt.Sprintf("'%s' is not a valid IANA timezone", field)
	case "min":
		return fmt.Sprintf("'%s' must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("'%s' must be at most %s", field, fe.Param())
	case "latitude":
		return fmt.Sprintf("'%s' must be between -90 and 90", field)
	case "longitude":
		return fmt.Sprintf("'%s' must be between -180 and 180", field)
	default:
		return fmt.Sprintf("'%s' failed the '%s' check", field, fe.Tag())
	}
}

// leafName returns the last element of a dotted JSON path.
func leafName(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return path
}

// jsonTypeName names the JSON type a Go type decodes from.
func jsonTypeName(t reflect.Type) string {
	if t == nil {
		return "unknown"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	default:
		return t.Kind().String()
	}
}
