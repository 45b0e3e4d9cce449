package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/luciafdez/clases_bot/internal/calendar"
	"github.com/luciafdez/clases_bot/internal/schedule"
)

// newValidate builds the validator with the domain tags used on inputs:
// `datekey` for YYYY-MM-DD strings and `hhmm` for 24h wall-clock times.
func newValidate() *validator.Validate {
	validate := validator.New()

	_ = validate.RegisterValidation("datekey", func(fl validator.FieldLevel) bool {
		return calendar.ValidDateKey(fl.Field().String())
	})
	_ = validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return schedule.ValidTimeOfDay(fl.Field().String())
	})

	return validate
}
