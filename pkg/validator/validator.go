package validator

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var e164Pattern = regexp.MustCompile(`^\+[1-9]\d{6,14}$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report JSON field names so clients can match errors to their payload.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("15:04", fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("e164", func(fl validator.FieldLevel) bool {
		return e164Pattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		return entity.Weekday(fl.Field().String()).Valid()
	})
	v.RegisterValidation("blood_type", func(fl validator.FieldLevel) bool {
		return entity.ValidBloodType(fl.Field().String())
	})
	v.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		return entity.Gender(fl.Field().String()).Valid()
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// ValidateRequest validates i and reports failures as a validation
// apperror keyed by JSON field name.
func (cv *CustomValidator) ValidateRequest(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}
	if fields := cv.FormatValidationErrors(err); len(fields) > 0 {
		return apperror.ValidationFields(fields)
	}
	return apperror.Validation("body", err.Error())
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			unit := "characters"
			if e.Kind() == reflect.Slice || e.Kind() == reflect.Array {
				unit = "items"
			}
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				if isNumber(e.Kind()) {
					errors[field] = field + " must be at least " + e.Param()
				} else {
					errors[field] = field + " must be at least " + e.Param() + " " + unit
				}
			case "max":
				if isNumber(e.Kind()) {
					errors[field] = field + " must be at most " + e.Param()
				} else {
					errors[field] = field + " must be at most " + e.Param() + " " + unit
				}
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "gt":
				errors[field] = field + " must be greater than " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of [" + e.Param() + "]"
			case "unique":
				errors[field] = field + " must not contain duplicates"
			case "hhmm":
				errors[field] = field + " must use the HH:MM format"
			case "e164":
				errors[field] = field + " must be a phone number in E.164 format"
			case "weekday":
				errors[field] = field + " must be a working day between Monday and Saturday"
			case "blood_type":
				errors[field] = field + " must be a valid blood type"
			case "gender":
				errors[field] = field + " must be one of [male female other unspecified]"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
