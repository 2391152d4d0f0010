package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"leadg/internal/availability"
	"leadg/pkg/logger"
	"leadg/pkg/model"
	"leadg/pkg/sanitizer"

	"github.com/go-playground/validator/v10"
)

var (
	emailRegex = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
)

// Field messages shown to the visitor, keyed by JSON field name.
var fieldMessages = map[string]string{
	"name":           "Please enter your full name (at least 2 characters)",
	"email":          "Please enter a valid email address",
	"phone":          "Please enter a valid phone number",
	"date":           "Please select a weekday (Monday-Friday)",
	"reference_time": "Please select an available time slot",
	"status":         "Status must be one of: pending, confirmed, completed, cancelled",
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// First returns the earliest failing field, in submission field order.
func (v ValidationErrors) First() ValidationError {
	if len(v) == 0 {
		return ValidationError{}
	}
	return v[0]
}

type AppointmentValidator struct {
	validate  *validator.Validate
	reference *time.Location
	logger    *logger.Logger
}

func NewAppointmentValidator(log *logger.Logger, reference *time.Location) *AppointmentValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	av := &AppointmentValidator{
		validate:  v,
		reference: reference,
		logger:    log,
	}

	validations := map[string]validator.Func{
		"lead_email":   validateEmail,
		"lead_phone":   validatePhone,
		"iso_date":     validateISODate,
		"hhmm":         validateClock,
		"business_day": av.validateBusinessDay,
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatal("Failed to register validator", "tag", tag, "error", err)
		}
	}

	log.Info("Appointment validator initialized successfully")

	return av
}

func validateEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(sanitizer.StripPhone(fl.Field().String()))
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(availability.DateLayout, fl.Field().String())
	return err == nil
}

func validateClock(fl validator.FieldLevel) bool {
	return availability.ValidClock(fl.Field().String())
}

func (v *AppointmentValidator) validateBusinessDay(fl validator.FieldLevel) bool {
	return availability.IsBusinessDay(fl.Field().String(), v.reference)
}

// Validate checks a submission. It is pure: the same input always yields the
// same result.
func (v *AppointmentValidator) Validate(input *model.AppointmentInput) error {
	if input == nil {
		return ValidationErrors{{Field: "body", Message: "request body is required"}}
	}
	if err := v.validate.Struct(input); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *AppointmentValidator) ValidateStatus(update *model.StatusUpdate) error {
	if err := v.validate.Struct(update); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *AppointmentValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message, known := fieldMessages[err.Field()]
		if !known {
			message = err.Error()
		}

		switch err.Tag() {
		case "required":
			if !known {
				message = fmt.Sprintf("%s is required", err.Field())
			}
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		case "iso_date":
			message = "Date must be in YYYY-MM-DD format"
		case "hhmm":
			message = "Time must be in HH:MM format"
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
