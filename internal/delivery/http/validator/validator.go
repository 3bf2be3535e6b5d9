// Package validator adapts go-playground/validator to echo and to the domain validation error.
package validator

import (
	"fmt"
	"html"
	"math"
	"reflect"
	"strconv"
	"strings"

	"kampina/internal/domain/entity"
	domainerrors "kampina/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
)

const (
	// TagNoHTML rejects strings that HTML sanitization would alter.
	TagNoHTML = "nohtml"
	// TagRating accepts integers in the review rating range.
	TagRating = "rating"
	// TagDecimal accepts strings holding a finite number.
	TagDecimal = "decimal"
	// TagNonNegative accepts numeric strings that are not below zero.
	TagNonNegative = "nonnegative"
)

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds the validator with the nohtml rule registered.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(field.Name)
		}

		return name
	})

	policy := bluemonday.StrictPolicy()
	if err := v.RegisterValidation(TagNoHTML, func(fl validator.FieldLevel) bool {
		return IsHTMLFree(policy, fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation(TagRating, func(fl validator.FieldLevel) bool {
		r := fl.Field().Int()

		return r >= entity.MinRating && r <= entity.MaxRating
	}); err != nil {
		panic(err)
	}

	if err := v.RegisterValidation(TagDecimal, func(fl validator.FieldLevel) bool {
		_, ok := parseDecimal(fl.Field().String())

		return ok
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation(TagNonNegative, func(fl validator.FieldLevel) bool {
		f, ok := parseDecimal(fl.Field().String())

		return !ok || f >= 0
	}); err != nil {
		panic(err)
	}

	return &CustomValidator{validate: v}
}

func parseDecimal(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// NormalizeNewlines converts CRLF and lone CR line endings to LF.
func NormalizeNewlines(value string) string {
	return newlines.Replace(value)
}

// IsHTMLFree reports whether value survives sanitization unchanged.
// The sanitizer escapes entities and normalizes line endings, so both sides are
// compared in that form.
func IsHTMLFree(policy *bluemonday.Policy, value string) bool {
	value = NormalizeNewlines(value)

	return html.UnescapeString(policy.Sanitize(value)) == value
}

// Validate checks i and reports only the first violated constraint.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	first := fieldErrs[0]

	return domainerrors.NewValidationError(first.Field(), message(first))
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case TagNoHTML:
		return field + " must not include HTML!"
	case TagRating:
		return fmt.Sprintf("%s must be between %d and %d", field, entity.MinRating, entity.MaxRating)
	case TagDecimal:
		return field + " must be a number"
	case TagNonNegative:
		return field + " must be greater than or equal to 0"
	case "email":
		return field + " must be a valid email"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s length must be at least %s characters long", field, fe.Param())
		}

		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s length must be less than or equal to %s characters long", field, fe.Param())
		}

		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
