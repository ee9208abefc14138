// Package validation builds the request validator shared by every transport.
package validation

import (
	"errors"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// MaxPriceScale is the number of fractional digits a price may carry.
const MaxPriceScale = 4

// MaxPriceDigits is the number of integer digits a price may carry. Together with
// MaxPriceScale it matches the NUMERIC(14,4) price column.
const MaxPriceDigits = 10

var priceCeiling = decimal.New(1, MaxPriceDigits)

// New returns a validator that knows the "price" tag and reports JSON field names.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// decimals are validated through their string form
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("price", validatePrice)
	return v
}

// validatePrice accepts strictly positive values below 10^MaxPriceDigits with at most
// MaxPriceScale fractional digits.
func validatePrice(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.IsPositive() && d.LessThan(priceCeiling) && d.Equal(d.Truncate(MaxPriceScale))
}

// FieldErrors converts validator errors into a field -> rule map.
// The boolean is false when err is not a validation error.
func FieldErrors(err error) (map[string]string, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}
	errorResponse := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		// fieldErr.Tag() returns "required", "min", "price", etc.
		errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
	}
	return errorResponse, true
}

// Summary flattens a field -> rule map into a stable "field: rule; ..." string
// for transports without a structured error body.
func Summary(fields map[string]string) string {
	parts := make([]string, 0, len(fields))
	for field, rule := range fields {
		parts = append(parts, field+": "+rule)
	}
	slices.Sort(parts)
	return strings.Join(parts, "; ")
}
