package validators

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Tags of the custom validations registered by New
const (
	GradeTag    = "grade"
	UserTypeTag = "usertype"
)

// Bounds of the French grading scale
const (
	MinGrade = 0.0
	MaxGrade = 20.0
)

// New returns a validator with the platform specific tags registered.
func New() *validator.Validate {
	validate := validator.New()
	// registration only fails on empty tags or nil funcs
	_ = validate.RegisterValidation(GradeTag, GradeAverageValidation)
	_ = validate.RegisterValidation(UserTypeTag, UserTypeValidation)
	return validate
}

// ValidateStruct validates s and flattens validation errors into one message.
func ValidateStruct(s interface{}) error {
	err := New().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v", messages)
	}
	return fmt.Errorf("validation error: %w", err)
}

// GradeAverageValidation accepts grades on the 0 to 20 scale.
func GradeAverageValidation(fl validator.FieldLevel) bool {
	grade := fl.Field().Float()
	return grade >= MinGrade && grade <= MaxGrade
}

// UserTypeValidation accepts the three account kinds of the platform.
func UserTypeValidation(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "lyceen", "universite", "admin":
		return true
	default:
		return false
	}
}
