// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"
	"strings"

	"budgetnatin/internal/dates"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var yearMonthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("year_month", validateYearMonth)
		_ = v.RegisterValidation("date_value", validateDateValue)
		_ = v.RegisterValidation("notblank", validateNotBlank)
	}
}

// validateYearMonth accepts "YYYY-MM" query filters.
func validateYearMonth(fl validator.FieldLevel) bool {
	return yearMonthRegex.MatchString(fl.Field().String())
}

// validateDateValue accepts any date or month format the dates package parses.
func validateDateValue(fl validator.FieldLevel) bool {
	_, err := dates.ParseMonth(fl.Field().String())
	return err == nil
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
