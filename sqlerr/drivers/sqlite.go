package drivers

import (
	"modernc.org/sqlite"

	"github.com/jmgilman/go/sqlfault/sqlerr"
)

// SQLite adapts *sqlite.Error from modernc.org/sqlite. SQLite has no
// SQLSTATE; the extended result code becomes the vendor code.
func SQLite(err error) (*sqlerr.Error, bool) {
	liteErr, ok := err.(*sqlite.Error)
	if !ok || liteErr == nil {
		return nil, false
	}
	return &sqlerr.Error{
		Code:    liteErr.Code(),
		Message: liteErr.Error(),
		Dialect: DialectSQLite,
	}, true
}
