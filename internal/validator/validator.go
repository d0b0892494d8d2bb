// Package validator adapts go-playground/validator to echo and registers tags
// for the closed domain enumerations.
package validator

import (
	"github.com/go-playground/validator/v10"

	"disasterhub/internal/model"
)

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// New returns a validator with the domain tags registered.
func New() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("incident_type", validateIncidentType)
	_ = v.RegisterValidation("incident_status", validateIncidentStatus)
	_ = v.RegisterValidation("resource_category", validateResourceCategory)
	_ = v.RegisterValidation("resource_status", validateResourceStatus)
	_ = v.RegisterValidation("availability_status", validateAvailabilityStatus)
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func validateIncidentType(fl validator.FieldLevel) bool {
	return model.IncidentType(fl.Field().String()).Valid()
}

func validateIncidentStatus(fl validator.FieldLevel) bool {
	return model.IncidentStatus(fl.Field().String()).Valid()
}

func validateResourceCategory(fl validator.FieldLevel) bool {
	return model.ResourceCategory(fl.Field().String()).Valid()
}

func validateResourceStatus(fl validator.FieldLevel) bool {
	return model.ResourceStatus(fl.Field().String()).Valid()
}

func validateAvailabilityStatus(fl validator.FieldLevel) bool {
	return model.AvailabilityStatus(fl.Field().String()).Valid()
}
