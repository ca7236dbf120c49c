// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var iataCodeRegex = regexp.MustCompile(`^[A-Za-z]{3}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("iata_code", validateIATACode)
	_ = v.RegisterValidation("travel_date", validateTravelDate)
	_ = v.RegisterValidation("user_role", validateUserRole)
	_ = v.RegisterValidation("request_action", validateRequestAction)
}

// validateIATACode accepts three-letter airport codes in either case.
func validateIATACode(fl validator.FieldLevel) bool {
	return iataCodeRegex.MatchString(fl.Field().String())
}

// validateTravelDate accepts calendar dates in YYYY-MM-DD form.
func validateTravelDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

func validateUserRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "user", "admin":
		return true
	}
	return false
}

func validateRequestAction(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "approve", "reject":
		return true
	}
	return false
}
