package common

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValidationError represents a single validation error for a config entry
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds validation results for a single dataset definition
type ValidationResult struct {
	Index  int               `json:"index"`
	Name   string            `json:"name,omitempty"`
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (r *ValidationResult) AddError(field, message string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// Add records err when it is non-nil
func (r *ValidationResult) Add(err *ValidationError) {
	if err != nil {
		r.AddError(err.Field, err.Message)
	}
}

// ToJSON converts validation errors to JSON string
func (r *ValidationResult) ToJSON() string {
	if len(r.Errors) == 0 {
		return ""
	}
	data, _ := json.Marshal(r.Errors)
	return string(data)
}

// Error implements error so invalid results can be returned directly
func (r *ValidationResult) Error() string {
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	label := r.Name
	if label == "" {
		label = fmt.Sprintf("#%d", r.Index)
	}
	return fmt.Sprintf("dataset %s: %s", label, strings.Join(parts, "; "))
}

// ValidateRequired checks if a string field is not empty
func ValidateRequired(field, value string) *ValidationError {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s is required", field),
		}
	}
	return nil
}

// ValidateEnum checks if value is in allowed list
func ValidateEnum(field, value string, allowed []string) *ValidationError {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")),
	}
}

// ValidateUnique checks that value has not been seen before and records it
func ValidateUnique(field, value string, seen map[string]bool) *ValidationError {
	if seen[value] {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s %q is already used", field, value),
		}
	}
	seen[value] = true
	return nil
}
