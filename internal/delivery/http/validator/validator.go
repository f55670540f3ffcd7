// Package validator adapts go-playground/validator as the echo request
// validator. Each request DTO declares its rules once in struct tags; a
// single validation pass collects every failing field into one error map.
package validator

import (
	"reflect"
	"regexp"
	"strings"

	"tutorhub/internal/domain/entity"
	domainerrors "tutorhub/internal/domain/errors"
	"tutorhub/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// vnMobilePattern matches Vietnamese mobile numbers, with or without the
// +84 country prefix.
var vnMobilePattern = regexp.MustCompile(`^(0|\+84)(3[2-9]|5[25689]|7[06-9]|8[1-9]|9\d)\d{7}$`)

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New builds the request validator with the custom rules registered.
func New() *RequestValidator {
	validate := validator.New()

	// Report fields by their JSON names so error maps match the wire format.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	_ = validate.RegisterValidation("vnmobile", validateVNMobile)
	_ = validate.RegisterValidation("halfstep", validateHalfStep)
	_ = validate.RegisterValidation("jobtitle", validateJobTitle)

	return &RequestValidator{validate: validate}
}

// Validate runs the tag rules and converts failures into a per-field error map.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "validation failed")
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = fieldMessage(fieldErr)
	}

	return domainerrors.NewValidationError(fields)
}

// fieldMessage renders a human-readable message for one failed rule.
// Presence failures name the field; everything else reports the field as
// invalid, with dedicated wording for the credential rules.
func fieldMessage(fieldErr validator.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "email is not valid"
	case "min":
		if field == "password" {
			return "password is too weak"
		}

		return field + " is invalid"
	case "eqfield":
		return "password and confirmPassword does not match"
	default:
		return field + " is invalid"
	}
}

func validateVNMobile(fl validator.FieldLevel) bool {
	return vnMobilePattern.MatchString(fl.Field().String())
}

func validateHalfStep(fl validator.FieldLevel) bool {
	return entity.ValidExperience(fl.Field().Float())
}

func validateJobTitle(fl validator.FieldLevel) bool {
	return entity.JobTitle(fl.Field().String()).IsValid()
}

// interface guard
var _ echo.Validator = (*RequestValidator)(nil)
