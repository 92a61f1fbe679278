package drivers

import (
	mysql "github.com/go-sql-driver/mysql"

	"github.com/jmgilman/go/sqlfault/sqlerr"
)

// MySQL adapts *mysql.MySQLError. MariaDB reports through the same type.
func MySQL(err error) (*sqlerr.Error, bool) {
	myErr, ok := err.(*mysql.MySQLError)
	if !ok || myErr == nil {
		return nil, false
	}

	var state string
	if myErr.SQLState != [5]byte{} {
		state = string(myErr.SQLState[:])
	}

	return &sqlerr.Error{
		Code:    int(myErr.Number),
		State:   state,
		Message: myErr.Error(),
		Dialect: DialectMySQL,
	}, true
}
