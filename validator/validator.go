package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"note-keeper/models"
)

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag"`
	Value   string `json:"value,omitempty"`
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

// New creates a new validator instance
func New() *Validator {
	v := validator.New()

	// Register custom tag name function to use JSON tags
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validators
	v.RegisterValidation("notecolor", validateNoteColor)
	v.RegisterValidation("taskcolor", validateTaskColor)
	v.RegisterValidation("notesort", validateNoteSort)
	v.RegisterValidation("tasksort", validateTaskSort)

	return &Validator{validate: v}
}

// Validate validates a struct and returns validation errors
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	// Convert validation errors to our custom format
	var validationErrs ValidationErrors
	for _, err := range err.(validator.ValidationErrors) {
		validationErrs = append(validationErrs, ValidationError{
			Field:   err.Field(),
			Message: msgForTag(err),
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
		})
	}

	return validationErrs
}

// msgForTag returns a human-readable error message for a validation tag
func msgForTag(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "notecolor":
		return fmt.Sprintf("%s must be a palette index between 0 and %d", field, models.NoteColorCount-1)
	case "taskcolor":
		return fmt.Sprintf("%s must be a palette index between 0 and %d", field, models.TaskColorCount-1)
	case "notesort":
		return fmt.Sprintf("%s must be one of: color, date_new, date_old", field)
	case "tasksort":
		return fmt.Sprintf("%s must be one of: color, date_new, date_old, importance", field)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// Custom validators

// validateNoteColor bounds a color index to the note palette
func validateNoteColor(fl validator.FieldLevel) bool {
	return models.NoteColor(fl.Field().Int()).Valid()
}

// validateTaskColor bounds a color index to the task palette
func validateTaskColor(fl validator.FieldLevel) bool {
	return models.TaskColor(fl.Field().Int()).Valid()
}

// validateNoteSort checks a note sort selector
func validateNoteSort(fl validator.FieldLevel) bool {
	return models.NoteSort(fl.Field().String()).Valid()
}

// validateTaskSort checks a task sort selector
func validateTaskSort(fl validator.FieldLevel) bool {
	return models.TaskSort(fl.Field().String()).Valid()
}
