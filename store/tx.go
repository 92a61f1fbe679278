package store

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jmgilman/go/sqlfault/errors"
	"github.com/jmgilman/go/sqlfault/payload"
	"github.com/jmgilman/go/sqlfault/sqlerr"
)

const insertStatement = "insertDiagnosticPayload"

const insertSQL = "INSERT INTO diagnostic_payload (id, name, bytes, encoding, created_at) VALUES (?, ?, ?, ?, ?)"

// Tx is a store transaction. It implements payload.Inserter.
type Tx struct {
	tx    *sql.Tx
	store *Store
}

var _ payload.Inserter = (*Tx)(nil)

// Insert writes p and assigns it a new ID when p.ID is empty. p is left
// untouched when the insert fails. Driver errors are returned unwrapped so
// callers can classify them.
func (t *Tx) Insert(ctx context.Context, p *payload.Payload) error {
	if p == nil {
		return errors.New(errors.CodeInvalidInput, "payload is nil")
	}
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}

	data, enc := t.store.pack(p.Bytes)
	if _, err := t.tx.ExecContext(ctx, insertSQL, id, p.Name, data, enc, time.Now().UnixMilli()); err != nil {
		return err
	}
	p.ID = id

	t.store.logger.DebugContext(ctx, "diagnostic payload inserted",
		slog.String("payload_id", p.ID),
		slog.String("payload_name", p.Name),
		slog.Int("stored_bytes", len(data)),
	)
	return nil
}

// InsertBatch inserts payloads with one prepared statement. The first
// failing insert stops the batch and is returned as a *sqlerr.BatchError.
func (t *Tx) InsertBatch(ctx context.Context, payloads []*payload.Payload) error {
	stmt, err := t.tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return errors.Wrap(err, errors.CodeDatabase, "prepare batch insert")
	}
	defer stmt.Close()

	for i, p := range payloads {
		id := p.ID
		if id == "" {
			id = uuid.NewString()
		}
		data, enc := t.store.pack(p.Bytes)
		if _, err := stmt.ExecContext(ctx, id, p.Name, data, enc, time.Now().UnixMilli()); err != nil {
			return &sqlerr.BatchError{Statement: insertStatement, Index: i, Completed: i, Err: err}
		}
		p.ID = id
	}
	return nil
}

// Exec runs a statement inside the transaction.
func (t *Tx) Exec(ctx context.Context, query string, args ...any) error {
	_, err := t.tx.ExecContext(ctx, query, args...)
	return err
}

// Commit commits the transaction.
func (t *Tx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return errors.Wrap(err, errors.CodeDatabase, "commit transaction")
	}
	return nil
}

// Rollback aborts the transaction.
func (t *Tx) Rollback() error {
	if err := t.tx.Rollback(); err != nil {
		return errors.Wrap(err, errors.CodeDatabase, "rollback transaction")
	}
	return nil
}
