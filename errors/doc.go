// Package errors provides the structured error type used across sqlfault.
//
// Every failure surfaced by this module carries an ErrorCode naming the
// persistence condition behind it (unique violation, foreign-key violation,
// value too long, batch failure, ...) and an ErrorClassification telling the
// caller whether repeating the command can succeed. The package stays fully
// compatible with the standard library (errors.Is, errors.As, errors.Unwrap),
// so driver errors wrapped by a PlatformError remain reachable.
//
// # Creating and wrapping
//
//	err := errors.New(errors.CodeInvalidInput, "payload name is empty")
//
//	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
//	    return errors.Wrap(err, errors.CodeDatabase, "insert diagnostic payload")
//	}
//
// # Retry decisions
//
// The classifier in package classify maps SQL failures onto codes from this
// package. Job executors then only need one check:
//
//	if errors.IsRetryable(err) {
//	    // reschedule the job
//	}
//
// Unique and foreign-key violations are retryable by default: on an engine
// they almost always mean a concurrent command won the race. Value-too-long
// and batch failures are permanent.
//
// # Context
//
// A PlatformError may carry metadata such as the SQLSTATE or the vendor error code:
//
//	err = errors.WithContext(err, "sqlstate", "23505")
//
// Context is serialized by ToJSON but never part of Error().
package errors
