package utils

import (
	"regexp"
	"trekora-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("day_key", validateDayKey)
	validate.RegisterValidation("availability_status", validateAvailabilityStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateDayKey(fl validator.FieldLevel) bool {
	_, err := ParseDayKey(fl.Field().String())
	return err == nil
}

func validateAvailabilityStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.AvailabilityStatusAvailable || value == constvars.AvailabilityStatusNotAvailable
}
