package errors

import (
	"fmt"
	"maps"
)

// platformError is the only PlatformError implementation. Values are never
// mutated after construction; every helper returns a new one.
type platformError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]interface{}
	cause          error
}

// Error returns "[CODE] message", followed by ": cause" when a cause is set.
func (e *platformError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *platformError) Code() ErrorCode {
	return e.code
}

// Classification returns the retry classification.
func (e *platformError) Classification() ErrorClassification {
	return e.classification
}

// Message returns the message without the cause.
func (e *platformError) Message() string {
	return e.message
}

// Context returns a copy of the metadata, or nil when there is none.
func (e *platformError) Context() map[string]interface{} {
	if e.context == nil {
		return nil
	}
	return maps.Clone(e.context)
}

// Unwrap returns the cause.
func (e *platformError) Unwrap() error {
	return e.cause
}

// asPlatformError returns a private copy of the outermost PlatformError in
// err, or a new CodeUnknown error wrapping err when the chain holds none.
func asPlatformError(err error) *platformError {
	var existing PlatformError
	if !As(err, &existing) {
		return &platformError{
			code:           CodeUnknown,
			classification: ClassificationPermanent,
			message:        err.Error(),
			cause:          err,
		}
	}
	return &platformError{
		code:           existing.Code(),
		classification: existing.Classification(),
		message:        existing.Message(),
		context:        existing.Context(),
		cause:          existing.Unwrap(),
	}
}
