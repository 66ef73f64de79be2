package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldInput  = "input"
	FieldReport = "report"

	// Event fields.
	FieldTask = "task"

	// Run fields.
	FieldErrors = "errors"
	FieldFiles  = "files"
	FieldRoots  = "roots"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
