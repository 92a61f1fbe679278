package drivers

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/jmgilman/go/sqlfault/sqlerr"
)

// Pgx adapts *pgconn.PgError.
func Pgx(err error) (*sqlerr.Error, bool) {
	pgErr, ok := err.(*pgconn.PgError)
	if !ok || pgErr == nil {
		return nil, false
	}
	return &sqlerr.Error{
		Code:    0,
		State:   pgErr.Code,
		Message: pgErr.Error(),
		Dialect: DialectPostgres,
	}, true
}

// PQ adapts *pq.Error.
func PQ(err error) (*sqlerr.Error, bool) {
	pqErr, ok := err.(*pq.Error)
	if !ok || pqErr == nil {
		return nil, false
	}
	return &sqlerr.Error{
		Code:    0,
		State:   string(pqErr.Code),
		Message: pqErr.Error(),
		Dialect: DialectPostgres,
	}, true
}
