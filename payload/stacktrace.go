package payload

import (
	"fmt"
	"reflect"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/jmgilman/go/sqlfault/causes"
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// FormatStackTrace renders failure and each of its causes as text. Each
// section starts with the error type and message followed by the frames
// recorded by github.com/pkg/errors, if any:
//
//	*errors.withStack: flush: insert failed
//		at (*Session).Flush (session.go:88)
//		...
//	Caused by: *sqlerr.Error: Duplicate entry ...
//
// The message-only node that pkg/errors.Wrap places under its stack node
// repeats the wrapper's text and is folded into it. Every other cause gets
// its own section. Returns "" for a nil failure.
func FormatStackTrace(failure error) string {
	var b strings.Builder
	var previous string
	first := true

	for cause := range causes.Of(failure) {
		msg := cause.Error()
		st, hasStack := cause.(stackTracer)
		if !first && msg == previous && isWithMessage(cause) {
			continue
		}

		if !first {
			b.WriteString("Caused by: ")
		}
		fmt.Fprintf(&b, "%T: %s\n", cause, msg)
		if hasStack {
			for _, frame := range st.StackTrace() {
				fmt.Fprintf(&b, "\tat %n (%s:%d)\n", frame, frame, frame)
			}
		}

		previous = msg
		first = false
	}
	return b.String()
}

var pkgErrorsPath = reflect.TypeOf(pkgerrors.New("")).Elem().PkgPath()

// isWithMessage reports whether err is the unexported message node of
// github.com/pkg/errors.
func isWithMessage(err error) bool {
	t := reflect.TypeOf(err)
	if t.Kind() != reflect.Pointer {
		return false
	}
	t = t.Elem()
	return t.PkgPath() == pkgErrorsPath && t.Name() == "withMessage"
}
