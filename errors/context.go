package errors

// WithContext adds a single metadata field to an error.
// Returns a new PlatformError; existing fields are preserved.
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "sqlstate", sqlErr.State)
func WithContext(err error, key string, value interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap merges several metadata fields into an error.
// Returns a new PlatformError; new fields override existing ones with the
// same key.
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContextMap(err, map[string]interface{}{
//	    "sqlstate":    "23505",
//	    "vendor_code": 0,
//	})
func WithContextMap(err error, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	e := asPlatformError(err)
	merged := make(map[string]interface{}, len(e.context)+len(ctx))
	for k, v := range e.context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	e.context = merged
	return e
}

// WithClassification overrides the classification of an error.
// Returns a new PlatformError with the given classification.
//
// Wrap keeps the classification of an inner PlatformError; use this when
// the outer code should decide instead, for example once a generic database
// failure has been recognized as a unique violation.
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithClassification(err, errors.ClassificationPermanent)
func WithClassification(err error, classification ErrorClassification) PlatformError {
	if err == nil {
		return nil
	}

	e := asPlatformError(err)
	e.classification = classification
	return e
}
