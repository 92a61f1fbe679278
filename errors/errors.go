package errors

// PlatformError extends the standard error interface with the structured
// information job executors need to react to a persistence failure.
//
// A PlatformError carries a code naming the condition (unique violation,
// value too long, ...), a classification telling whether the command may be
// retried, optional metadata such as the SQLSTATE, and the wrapped cause.
// It stays compatible with errors.Is, errors.As and errors.Unwrap, so the
// driver error underneath remains reachable.
type PlatformError interface {
	error

	// Code returns the error code identifying the failure condition.
	Code() ErrorCode

	// Classification returns whether the failed operation may be retried.
	Classification() ErrorClassification

	// Message returns the human-readable message, without the cause.
	Message() string

	// Context returns a copy of the attached metadata.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped cause for errors.Is and errors.As.
	// Returns nil if this error does not wrap another error.
	Unwrap() error
}
