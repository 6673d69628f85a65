package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/bayms/backend/internal/pkg/apperrors"
)

// Section identifies an independently validated subset of a member or
// applicant record. The set is closed; ParseSection rejects anything
// else.
type Section string

const (
	SectionPersonal Section = "personal"
	SectionLocation Section = "location"
	SectionAbout    Section = "about"
	SectionParent1  Section = "parent1"
	SectionParent2  Section = "parent2"
)

// ParseSection converts a raw section name into a Section
func ParseSection(name string) (Section, error) {
	switch Section(name) {
	case SectionPersonal, SectionLocation, SectionAbout, SectionParent1, SectionParent2:
		return Section(name), nil
	}
	return "", apperrors.ErrUnknownSection
}

var validate = newValidator()

// newValidator builds the validator instance with the domain's custom
// constraints registered. Field names in error reports come from json
// tags so callers can map them straight onto form fields.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// US state name, by membership
	_ = v.RegisterValidation("usstate", func(fl validator.FieldLevel) bool {
		return IsState(fl.Field().String())
	})

	// Instrument name, by membership
	_ = v.RegisterValidation("instrument", func(fl validator.FieldLevel) bool {
		return IsInstrument(fl.Field().String())
	})

	// 5-digit or 5+4 ZIP
	_ = v.RegisterValidation("uszip", func(fl validator.FieldLevel) bool {
		return CompiledPatterns.Zip.MatchString(fl.Field().String())
	})

	// Calendar date, YYYY-MM-DD
	_ = v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateOnlyLayout, fl.Field().String())
		return err == nil
	})

	return v
}

// Struct validates any tagged struct and reports every failing
// constraint per field. Validation never mutates the input and never
// depends on the state of another section.
func Struct(input interface{}) *apperrors.ValidationError {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError(apperrors.FieldError{
			Field:      "",
			Constraint: "invalid",
			Message:    err.Error(),
		})
	}

	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperrors.FieldError{
			Field:      fe.Field(),
			Constraint: fe.Tag(),
			Message:    constraintMessage(fe),
		})
	}
	return apperrors.NewValidationError(fields...)
}

// constraintMessage creates a human-readable validation error message
func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param()
	case "email":
		return fe.Field() + " must be a valid email address"
	case "url":
		return fe.Field() + " must be a valid URL"
	case "usstate":
		return fe.Field() + " must be a US state name"
	case "instrument":
		return fe.Field() + " must be a recognized instrument"
	case "uszip":
		return fe.Field() + " must be a 5-digit or 5+4 ZIP code"
	case "dateonly":
		return fe.Field() + " must be a date in YYYY-MM-DD form"
	default:
		return fe.Field() + " validation failed: " + fe.Tag()
	}
}
