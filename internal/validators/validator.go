package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "taskmarket.com/taskmarket/internal/errors"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Struct validates v against its `validate` tags and reports every failing
// field as a detail of a single validation error.
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.Validation("validation failed", err.Error())
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describe(fe))
	}
	return apperrors.Validation("validation failed", details...)
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", field, fe.Param())
	case "min":
		return fmt.Sprintf("%q must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%q must be at most %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%q must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%q must be %s or more", field, fe.Param())
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "uuid":
		return fmt.Sprintf("%q must be a valid id", field)
	default:
		return fmt.Sprintf("%q failed %s validation", field, fe.Tag())
	}
}
