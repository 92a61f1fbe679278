package sqlerr

import (
	"github.com/jmgilman/go/sqlfault/causes"
)

// Adapter converts a driver-native error into an Error. It reports false for
// errors it does not recognize. Adapters must only inspect err itself, not
// its causes; Collect walks the chain.
type Adapter func(err error) (*Error, bool)

// Collect returns every SQL error found on the cause chain of err, in
// discovery order: chain position first, then sibling order. Each node is
// recognized either as an *Error or through the first adapter that accepts
// it. Returns nil when the chain holds no SQL error.
func Collect(err error, adapters ...Adapter) []*Error {
	var found []*Error
	for cause := range causes.Of(err) {
		sqlErr, ok := normalize(cause, adapters)
		if !ok {
			continue
		}
		for sibling := range sqlErr.Siblings() {
			found = append(found, sibling)
		}
	}
	return found
}

func normalize(err error, adapters []Adapter) (*Error, bool) {
	if sqlErr, ok := err.(*Error); ok {
		return sqlErr, true
	}
	for _, adapt := range adapters {
		if sqlErr, ok := adapt(err); ok && sqlErr != nil {
			return sqlErr, true
		}
	}
	return nil, false
}
