package services

import "errors"

// Common service-level errors
var (
	// Lookup errors
	ErrNoteNotFound = errors.New("note not found")
	ErrTaskNotFound = errors.New("task not found")

	// Validation errors
	ErrEmptyContent = errors.New("content must not be empty")

	// Import errors
	ErrImportFormat = errors.New("malformed task export file")
)
