package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var platformErr errors.PlatformError
//	if errors.As(err, &platformErr) {
//	    code := platformErr.Code()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if the error is nil or its chain holds no
// PlatformError. The outermost PlatformError in the chain wins.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeUniqueViolation {
//	    // another command inserted the same variable first
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Code()
	}
	return CodeUnknown
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationPermanent if the error is nil or its chain holds no
// PlatformError, so unknown failures are never retried blindly.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Classification()
	}
	return ClassificationPermanent
}

// IsRetryable returns true if err is classified as retryable.
//
// Example:
//
//	if errors.IsRetryable(err) {
//	    return job.Reschedule(ctx)
//	}
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
