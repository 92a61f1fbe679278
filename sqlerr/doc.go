// Package sqlerr normalizes database driver errors and extracts them from
// arbitrary cause chains.
//
// Every driver reports failures differently: PostgreSQL drivers expose a
// SQLSTATE and no vendor code, MySQL exposes both, SQLite exposes an
// extended result code only. Error is the common shape used by the
// classifier: a vendor code, a state code, the driver's message and an
// optional list of sibling errors reported for the same statement.
//
// Driver-native errors are turned into Error values by Adapters; package
// drivers ships adapters for pgx, lib/pq, go-sql-driver/mysql and
// modernc.org/sqlite.
//
// BatchError wraps the failure of one statement from a batched group. Use
// FindBatch to recover it when the batch context matters more than the
// SQL error itself.
package sqlerr
