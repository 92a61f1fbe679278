package classify

import (
	"github.com/jmgilman/go/sqlfault/errors"
	"github.com/jmgilman/go/sqlfault/sqlerr"
)

var std = New()

// IsValueTooLong reports whether err was caused by a value exceeding its
// column, using the default classifier.
func IsValueTooLong(err error) bool {
	return std.IsValueTooLong(err)
}

// IsForeignKeyViolation reports whether err was caused by a foreign-key
// violation, using the default classifier.
func IsForeignKeyViolation(err error) bool {
	return std.IsForeignKeyViolation(err)
}

// IsUniqueConstraintViolation reports whether err was caused by a duplicate
// in the variable uniqueness index, using the default classifier.
func IsUniqueConstraintViolation(err error) bool {
	return std.IsUniqueConstraintViolation(err)
}

// Classify returns the kind of err and the SQL error that matched, using the
// default classifier.
func Classify(err error) (Kind, *sqlerr.Error) {
	return std.Classify(err)
}

// Wrap classifies err with the default classifier and wraps it.
func Wrap(err error) errors.PlatformError {
	return std.Wrap(err)
}
