package classify

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"log/slog"
	"testing"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/sqlfault/errors"
	"github.com/jmgilman/go/sqlfault/sqlerr"
)

func sqlError(msg string) *sqlerr.Error {
	return &sqlerr.Error{Message: msg}
}

func TestIsValueTooLong(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"sql server truncation", sqlError("String or binary data would be truncated."), true},
		{"postgres", sqlError("value too long for type character varying(64)"), true},
		{"mysql", sqlError("Data too long for column 'NAME_' at row 1"), true},
		{"oracle 1461", sqlError("ORA-01461: can bind a LONG value only for insert into a LONG column"), true},
		{"oracle 1401", sqlError("ORA-01401: inserted value too large for column"), true},
		{"db2", sqlError("DB2 SQL Error: SQLCODE=-302, SQLSTATE=22001, SQLERRMC=null"), true},
		{"connection refused", sqlError("connection refused"), false},
		{"phrase outside sql error", stderrors.New("value too long"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValueTooLong(tt.err))
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"sql server", sqlError("The DELETE statement conflicted with the REFERENCE constraint. FOREIGN KEY constraint"), true},
		{"postgres", sqlError(`update or delete on table "act_ge_bytearray" violates foreign key constraint "act_fk_job_exception"`), true},
		{"oracle", sqlError("ORA-02292: integrity constraint (ACT_FK_JOB_EXCEPTION) violated - child record found"), true},
		{"h2", sqlError("Referential integrity constraint violation"), true},
		{"db2", sqlError("SQLCODE=-530, SQLSTATE=23503"), true},
		{"buried in chain", fmt.Errorf("a: %w", fmt.Errorf("b: %w", sqlError("foreign key constraint fails"))), true},
		{"sibling", sqlerr.Chain(sqlError("batch aborted"), sqlError("foreign key constraint fails")), true},
		{"unrelated", sqlError("deadlock detected"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsForeignKeyViolation(tt.err))
		})
	}
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	mysqlDup := &mysql.MySQLError{
		Number:   1062,
		SQLState: [5]byte{'2', '3', '0', '0', '0'},
		Message:  "Duplicate entry 'var-1' for key 'ACT_RU_VARIABLE.ACT_UNIQ_VARIABLE'",
	}
	pgDup := &pgconn.PgError{
		Severity: "ERROR",
		Code:     "23505",
		Message:  `duplicate key value violates unique constraint "act_uniq_variable"`,
	}

	assert.True(t, IsUniqueConstraintViolation(fmt.Errorf("flush: %w", mysqlDup)))
	assert.True(t, IsUniqueConstraintViolation(&sqlerr.BatchError{Statement: "insertVariable", Err: pgDup}))

	mysqlOther := *mysqlDup
	mysqlOther.Number = 1063
	assert.False(t, IsUniqueConstraintViolation(&mysqlOther))

	assert.False(t, IsUniqueConstraintViolation(sqlError("ACT_UNIQ_VARIABLE")))
}

func TestClassifier_WithAdapters(t *testing.T) {
	pgDup := &pgconn.PgError{Code: "23505", Message: `duplicate key value violates unique constraint "act_uniq_variable"`}

	c := New(WithAdapters())
	assert.False(t, c.IsUniqueConstraintViolation(pgDup))
	assert.Empty(t, c.Collect(pgDup))
}

func TestClassifier_CustomRules(t *testing.T) {
	c := New(WithUniqueRules(RuleSet{
		{Contains: "UNIQUE constraint failed: act_ru_variable", Code: 2067, Dialect: "sqlite"},
	}))

	err := &sqlerr.Error{Code: 2067, Message: "UNIQUE constraint failed: act_ru_variable.name_"}
	assert.True(t, c.IsUniqueConstraintViolation(err))
	assert.False(t, IsUniqueConstraintViolation(err))

	c = New(WithValueTooLongRules(nil), WithForeignKeyRules(nil))
	assert.False(t, c.IsValueTooLong(sqlError("too long")))
	assert.False(t, c.IsForeignKeyViolation(sqlError("foreign key constraint")))
}

func TestClassify(t *testing.T) {
	c := New()

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindNone},
		{"unique", &sqlerr.Error{Code: 1, State: "23000", Message: "ORA-00001: unique constraint (ACT_UNIQ_VARIABLE) violated"}, KindUniqueViolation},
		{"foreign key", sqlError("foreign key constraint"), KindForeignKeyViolation},
		{"too long", sqlError("too long"), KindValueTooLong},
		{"unclassified sql", sqlError("deadlock"), KindNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, _ := c.Classify(tt.err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestClassify_Default(t *testing.T) {
	sqlErr := &sqlerr.Error{Code: 23505, State: "23505", Message: "Unique index or primary key violation: ACT_UNIQ_VARIABLE_INDEX_C"}

	kind, matched := Classify(fmt.Errorf("flush: %w", sqlErr))
	assert.Equal(t, KindUniqueViolation, kind)
	assert.Same(t, sqlErr, matched)

	kind, matched = Classify(stderrors.New("timeout"))
	assert.Equal(t, KindNone, kind)
	assert.Nil(t, matched)
}

func TestClassify_PrefersUniqueOverForeignKey(t *testing.T) {
	// Oracle reports both phrases for some statements; the unique row wins.
	err := sqlerr.Chain(
		sqlError("ORA-02291: integrity constraint violated"),
		&sqlerr.Error{Code: 1, State: "23000", Message: "ORA-00001: unique constraint (ACT_UNIQ_VARIABLE) violated"},
	)

	kind, matched := New().Classify(err)
	assert.Equal(t, KindUniqueViolation, kind)
	assert.Equal(t, 1, matched.Code)
}

func TestWrap(t *testing.T) {
	sqlErr := &sqlerr.Error{Code: 1062, State: "23000", Message: "Duplicate entry for key 'ACT_UNIQ_VARIABLE'", Dialect: "mysql"}
	batch := &sqlerr.BatchError{Statement: "insertVariable", Index: 3, Completed: 3, Err: sqlErr}

	wrapped := Wrap(fmt.Errorf("flush: %w", batch))
	require.NotNil(t, wrapped)
	assert.Equal(t, errors.CodeUniqueViolation, wrapped.Code())
	assert.True(t, errors.IsRetryable(wrapped))

	ctx := wrapped.Context()
	assert.Equal(t, "unique_violation", ctx["kind"])
	assert.Equal(t, "23000", ctx["sqlstate"])
	assert.Equal(t, 1062, ctx["vendor_code"])
	assert.Equal(t, "mysql", ctx["dialect"])
	assert.Equal(t, "insertVariable", ctx["batch_statement"])
	assert.Equal(t, 3, ctx["batch_index"])
	assert.True(t, stderrors.Is(wrapped, sqlErr))
}

func TestWrap_OverridesInnerClassification(t *testing.T) {
	inner := errors.Wrap(sqlError("value too long for type character varying(4000)"), errors.CodeDatabase, "insert")
	require.True(t, errors.IsRetryable(inner))

	wrapped := Wrap(inner)
	assert.Equal(t, errors.CodeValueTooLong, wrapped.Code())
	assert.False(t, errors.IsRetryable(wrapped))
}

func TestWrap_NonSQL(t *testing.T) {
	wrapped := Wrap(stderrors.New("context canceled"))
	assert.Equal(t, errors.CodeUnknown, wrapped.Code())
	assert.False(t, errors.IsRetryable(wrapped))

	unclassified := Wrap(sqlError("deadlock detected"))
	assert.Equal(t, errors.CodeDatabase, unclassified.Code())
	assert.Equal(t, "none", unclassified.Context()["kind"])

	assert.Nil(t, Wrap(nil))
}

func TestClassifier_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(WithMetrics(reg))

	c.Classify(sqlError("foreign key constraint"))
	c.Classify(sqlError("foreign key constraint"))
	c.Classify(sqlError("too long"))

	assert.Equal(t, 2.0, testutil.ToFloat64(c.metrics.classifications.WithLabelValues("foreign_key_violation")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.classifications.WithLabelValues("value_too_long")))

	// a second classifier on the same registry shares the counter
	other := New(WithMetrics(reg))
	other.Classify(sqlError("too long"))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.metrics.classifications.WithLabelValues("value_too_long")))
}

func TestClassifier_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	New(WithLogger(logger)).Classify(sqlError("too long"))
	assert.Contains(t, buf.String(), "kind=value_too_long")
	assert.Contains(t, buf.String(), "sql_errors=1")
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "none", KindNone.String())
	assert.Equal(t, errors.CodeDatabase, KindNone.Code())
	assert.Equal(t, errors.CodeForeignKeyViolation, KindForeignKeyViolation.Code())
}
