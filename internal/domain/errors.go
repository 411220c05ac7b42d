package domain

import "errors"

// Domain errors
var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrNoDocument        = errors.New("no document loaded")
	ErrInvalidFileType   = errors.New("file is not a PDF")
	ErrFileRead          = errors.New("failed to read file")
	ErrLoadFailed        = errors.New("document could not be loaded")
	ErrPageOutOfRange    = errors.New("page out of range")
	ErrHighlightNotFound = errors.New("highlight not found")
	ErrSelectionRejected = errors.New("selection rejected")
	ErrExportFailed      = errors.New("export failed")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
