package errors

import (
	"fmt"
	"maps"
)

// Wrap wraps err with a code and message. The cause stays reachable through
// Unwrap, errors.Is and errors.As.
//
// If err already contains a PlatformError its classification is kept, so a
// permanent failure does not become retryable by being wrapped again.
// Otherwise the default classification for code is used.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := tx.Insert(ctx, p); err != nil {
//	    return errors.Wrap(err, errors.CodeDatabase, "failed to insert diagnostic payload")
//	}
func Wrap(err error, code ErrorCode, message string) PlatformError {
	return WrapWithContext(err, code, message, nil)
}

// Wrapf wraps err with a formatted message.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err != nil {
//	    return errors.Wrapf(err, errors.CodeDatabase, "batch statement %d failed", i)
//	}
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps err and attaches metadata in one step. The map is
// copied, so later changes by the caller are not visible.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := tx.Insert(ctx, p); err != nil {
//	    return errors.WrapWithContext(err, errors.CodeDatabase, "failed to insert diagnostic payload",
//	        map[string]interface{}{"payload_name": p.Name})
//	}
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	classification := DefaultClassification(code)
	var inner PlatformError
	if As(err, &inner) {
		classification = inner.Classification()
	}

	var contextCopy map[string]interface{}
	if ctx != nil {
		contextCopy = maps.Clone(ctx)
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		context:        contextCopy,
		cause:          err,
	}
}
