package causes

import (
	stderrors "errors"
	"iter"
	"reflect"

	"github.com/jmgilman/go/sqlfault/errors"
)

// MaxDepth bounds the number of nodes produced for a single chain.
const MaxDepth = 1024

// Of returns the cause chain of err, outermost first. A nil err yields an
// empty sequence.
//
// Example:
//
//	for cause := range causes.Of(err) {
//	    if _, ok := cause.(*sqlerr.BatchError); ok {
//	        ...
//	    }
//	}
func Of(err error) iter.Seq[error] {
	return func(yield func(error) bool) {
		walk(err, yield)
	}
}

// Chain returns the cause chain of err as a slice. The returned error is a
// CodeMalformedChain error when the walk stopped on a repeated node or on
// MaxDepth; the slice then holds every node visited before that point.
func Chain(err error) ([]error, error) {
	var chain []error
	complete := walk(err, func(e error) bool {
		chain = append(chain, e)
		return true
	})
	if !complete {
		return chain, errors.WithContext(
			errors.Newf(errors.CodeMalformedChain, "cause chain does not terminate after %d nodes", len(chain)),
			"depth", len(chain),
		)
	}
	return chain, nil
}

// Root returns the innermost error of the chain, or nil for a nil err.
func Root(err error) error {
	var root error
	for e := range Of(err) {
		root = e
	}
	return root
}

// walk feeds the chain to yield. It returns false only when the chain was
// cut short by a cycle or by MaxDepth, not when yield stops early.
func walk(err error, yield func(error) bool) bool {
	seen := make(map[identity]struct{})
	for depth := 0; err != nil; depth++ {
		if depth == MaxDepth {
			return false
		}
		if id, ok := identify(err); ok {
			if _, dup := seen[id]; dup {
				return false
			}
			seen[id] = struct{}{}
		}
		if !yield(err) {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return true
}

type identity struct {
	typ reflect.Type
	ptr uintptr
}

// identify keys pointer-backed errors by address. Value errors are not
// tracked; a loop through them has to pass a pointer node to close.
func identify(err error) (identity, bool) {
	v := reflect.ValueOf(err)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return identity{}, false
	}
	return identity{typ: v.Type(), ptr: v.Pointer()}, true
}
