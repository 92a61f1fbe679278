package errors

import "fmt"

// New creates a PlatformError with the given code and message.
// The classification is the default one for code.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidInput, "payload inserter is nil")
func New(code ErrorCode, message string) PlatformError {
	return &platformError{
		code:           code,
		classification: DefaultClassification(code),
		message:        message,
	}
}

// Newf creates a PlatformError with a formatted message.
// The classification is the default one for code.
//
// Example:
//
//	err := errors.Newf(errors.CodePayloadEncoding, "unknown payload encoding %q", enc)
func Newf(code ErrorCode, format string, args ...interface{}) PlatformError {
	return New(code, fmt.Sprintf(format, args...))
}
