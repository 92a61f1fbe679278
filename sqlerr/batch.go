package sqlerr

import (
	"fmt"

	"github.com/jmgilman/go/sqlfault/causes"
)

// BatchError reports that a statement of a batched group failed. Statements
// before Index completed; the ones after it were not executed.
type BatchError struct {
	// Statement identifies the failing statement (a name or the SQL text).
	Statement string

	// Index is the position of the failing statement within the batch.
	Index int

	// Completed is the number of statements that succeeded before the failure.
	Completed int

	// Err is the failure reported for the statement.
	Err error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch statement %d (%s) failed after %d completed: %v", e.Index, e.Statement, e.Completed, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// FindBatch returns the first BatchError on the cause chain of err.
func FindBatch(err error) (*BatchError, bool) {
	for cause := range causes.Of(err) {
		if batch, ok := cause.(*BatchError); ok {
			return batch, true
		}
	}
	return nil, false
}
