// Package api provides the HTTP surface of the dataset preparation
// service, including request validation utilities.
package api

import (
	"strings"

	"github.com/gcbaptista/go-babi-prep/config"
	"github.com/gcbaptista/go-babi-prep/store"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateDatasetName validates a dataset name parameter
func ValidateDatasetName(datasetName string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if datasetName == "" {
		result.AddError("datasetName", "Dataset name is required")
		return result
	}

	if strings.TrimSpace(datasetName) != datasetName {
		result.AddError("datasetName", "Dataset name cannot have leading or trailing whitespace")
		return result
	}

	return result
}

// ValidateSplitName validates a split query parameter
func ValidateSplitName(split string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if split != store.SplitTrain && split != store.SplitTest {
		result.AddError("split", "Split must be '"+store.SplitTrain+"' or '"+store.SplitTest+"'")
	}

	return result
}

// ValidateDatasetSettings validates dataset settings for preparation
func ValidateDatasetSettings(settings *config.DatasetSettings) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if settings == nil {
		result.AddError("settings", "Dataset settings are required")
		return result
	}

	for _, conflict := range settings.Validate() {
		result.AddError("settings", conflict)
	}

	return result
}
