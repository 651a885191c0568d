package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrDatasetNotFound is returned when a prepared dataset is not found
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrDatasetAlreadyExists is returned when trying to prepare a dataset under a name that is taken
	ErrDatasetAlreadyExists = errors.New("dataset already exists")

	// ErrTaskNotFound is returned when a bAbI task id has no entry in the catalog
	ErrTaskNotFound = errors.New("task not found")

	// ErrJobNotFound is returned when a job is not found
	ErrJobNotFound = errors.New("job not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedLine is returned when a corpus line does not match the bAbI format
	ErrMalformedLine = errors.New("malformed corpus line")

	// ErrUnknownToken is returned when vectorization meets a token outside the vocabulary
	ErrUnknownToken = errors.New("token not in vocabulary")

	// ErrSequenceTooLong is returned when a token sequence exceeds its target width
	ErrSequenceTooLong = errors.New("sequence exceeds target width")
)

// DatasetNotFoundError represents a dataset not found error with context
type DatasetNotFoundError struct {
	DatasetName string
}

func (e *DatasetNotFoundError) Error() string {
	return fmt.Sprintf("dataset named '%s' not found", e.DatasetName)
}

func (e *DatasetNotFoundError) Is(target error) bool {
	return target == ErrDatasetNotFound
}

// NewDatasetNotFoundError creates a new DatasetNotFoundError
func NewDatasetNotFoundError(datasetName string) *DatasetNotFoundError {
	return &DatasetNotFoundError{DatasetName: datasetName}
}

// DatasetAlreadyExistsError represents a dataset already exists error with context
type DatasetAlreadyExistsError struct {
	DatasetName string
}

func (e *DatasetAlreadyExistsError) Error() string {
	return fmt.Sprintf("dataset named '%s' already exists", e.DatasetName)
}

func (e *DatasetAlreadyExistsError) Is(target error) bool {
	return target == ErrDatasetAlreadyExists
}

// NewDatasetAlreadyExistsError creates a new DatasetAlreadyExistsError
func NewDatasetAlreadyExistsError(datasetName string) *DatasetAlreadyExistsError {
	return &DatasetAlreadyExistsError{DatasetName: datasetName}
}

// TaskNotFoundError represents an unknown bAbI task id with context
type TaskNotFoundError struct {
	TaskID  int
	Variant string
}

func (e *TaskNotFoundError) Error() string {
	if e.Variant != "" {
		return fmt.Sprintf("bAbI task %d (variant '%s') not found in catalog", e.TaskID, e.Variant)
	}
	return fmt.Sprintf("bAbI task %d not found in catalog", e.TaskID)
}

func (e *TaskNotFoundError) Is(target error) bool {
	return target == ErrTaskNotFound
}

// NewTaskNotFoundError creates a new TaskNotFoundError
func NewTaskNotFoundError(taskID int, variant string) *TaskNotFoundError {
	return &TaskNotFoundError{TaskID: taskID, Variant: variant}
}

// JobNotFoundError represents a job not found error with context
type JobNotFoundError struct {
	JobID string
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job with ID '%s' not found", e.JobID)
}

func (e *JobNotFoundError) Is(target error) bool {
	return target == ErrJobNotFound
}

// NewJobNotFoundError creates a new JobNotFoundError
func NewJobNotFoundError(jobID string) *JobNotFoundError {
	return &JobNotFoundError{JobID: jobID}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// MalformedLineError represents a fatal parse error for one corpus line.
// Line numbers are 1-based positions in the input, not bAbI sentence ids.
type MalformedLineError struct {
	LineNumber int
	Line       string
	Reason     string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed corpus line %d (%s): %q", e.LineNumber, e.Reason, e.Line)
}

func (e *MalformedLineError) Is(target error) bool {
	return target == ErrMalformedLine
}

// NewMalformedLineError creates a new MalformedLineError
func NewMalformedLineError(lineNumber int, line, reason string) *MalformedLineError {
	return &MalformedLineError{LineNumber: lineNumber, Line: line, Reason: reason}
}

// UnknownTokenError represents a vocabulary lookup miss during vectorization
type UnknownTokenError struct {
	Token string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("token %q not present in vocabulary", e.Token)
}

func (e *UnknownTokenError) Is(target error) bool {
	return target == ErrUnknownToken
}

// NewUnknownTokenError creates a new UnknownTokenError
func NewUnknownTokenError(token string) *UnknownTokenError {
	return &UnknownTokenError{Token: token}
}

// SequenceTooLongError represents a sequence that does not fit its target width
type SequenceTooLongError struct {
	Kind   string // "story" or "question"
	Length int
	Width  int
}

func (e *SequenceTooLongError) Error() string {
	return fmt.Sprintf("%s of length %d exceeds target width %d", e.Kind, e.Length, e.Width)
}

func (e *SequenceTooLongError) Is(target error) bool {
	return target == ErrSequenceTooLong
}

// NewSequenceTooLongError creates a new SequenceTooLongError
func NewSequenceTooLongError(kind string, length, width int) *SequenceTooLongError {
	return &SequenceTooLongError{Kind: kind, Length: length, Width: width}
}
