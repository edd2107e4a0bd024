package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"alojamento/internal/pkg/apperror"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// Validate checks struct fields and returns field -> failed tag, or nil.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string)
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

// Check is Validate wrapped into an INVALID_ARGUMENT AppError.
func Check(what string, v interface{}) error {
	fields := Validate(v)
	if fields == nil {
		return nil
	}

	names := make([]string, 0, len(fields))
	for f := range fields {
		names = append(names, f)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, f := range names {
		parts = append(parts, fmt.Sprintf("%s (%s)", f, fields[f]))
	}

	err := apperror.NewInvalidArgument(fmt.Sprintf("invalid %s: %s", what, strings.Join(parts, ", ")))
	for f, tag := range fields {
		err.WithDetail(f, tag)
	}
	return err
}
