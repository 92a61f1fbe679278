package sqlerr

import (
	"fmt"
	"iter"
)

// Error is a vendor-neutral SQL error.
type Error struct {
	// Code is the vendor error code (MySQL 1062, SQL Server 2601, Oracle 1, ...).
	// Drivers that report none leave it 0.
	Code int

	// State is the SQLSTATE or vendor state string. May be empty.
	State string

	// Message is the text reported by the driver.
	Message string

	// Dialect names the database family the error came from. Informational.
	Dialect string

	// Next is the next error reported for the same statement.
	Next *Error

	// Cause is the error that caused this one, if any.
	Cause error
}

// Error returns the driver message.
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("sql error %d (state %q)", e.Code, e.State)
	}
	return e.Message
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Siblings yields e followed by each error of its Next list. A Next list
// that loops back is cut at the first repeated error.
func (e *Error) Siblings() iter.Seq[*Error] {
	return func(yield func(*Error) bool) {
		seen := make(map[*Error]struct{})
		for cur := e; cur != nil; cur = cur.Next {
			if _, dup := seen[cur]; dup {
				return
			}
			seen[cur] = struct{}{}
			if !yield(cur) {
				return
			}
		}
	}
}

// Chain links errs through their Next fields in order and returns the head.
// It returns nil for an empty list.
func Chain(errs ...*Error) *Error {
	if len(errs) == 0 {
		return nil
	}
	for i := 0; i < len(errs)-1; i++ {
		errs[i].Next = errs[i+1]
	}
	return errs[0]
}
