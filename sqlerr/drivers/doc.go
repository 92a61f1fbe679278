// Package drivers adapts driver-native errors to sqlerr.Error.
//
// Each adapter copies the vendor code, the state code and the message
// exactly as the driver reports them, since the classifier's vendor tables
// depend on those three fields:
//
//	Driver                         Code              State
//	github.com/jackc/pgx/v5        0                 SQLSTATE
//	github.com/lib/pq              0                 SQLSTATE
//	github.com/go-sql-driver/mysql error number      SQLSTATE
//	modernc.org/sqlite             extended result   ""
//
// PostgreSQL drivers report no vendor code; 0 matches what JDBC reports for
// the same failures, which keeps one rule table valid for both worlds.
package drivers

import "github.com/jmgilman/go/sqlfault/sqlerr"

// Dialect names reported in sqlerr.Error.Dialect.
const (
	DialectPostgres = "postgres"
	DialectMySQL    = "mysql"
	DialectSQLite   = "sqlite"
)

// All returns every adapter in this package.
func All() []sqlerr.Adapter {
	return []sqlerr.Adapter{Pgx, PQ, MySQL, SQLite}
}
