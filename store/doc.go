// Package store persists diagnostic payloads in SQLite.
//
// The store is the persistence collaborator of package payload: a Tx is the
// unit of work payloads are inserted through, and it commits or rolls back
// with everything else written in the same transaction.
//
//	s, err := store.Open(ctx, "engine.db", store.WithCompression())
//	tx, err := s.Begin(ctx)
//	p, err := payload.CreateJob(ctx, tx, trace)
//	err = tx.Commit()
//
// Payload IDs are random UUIDs assigned on insert. With compression enabled
// payload bytes are stored zstd-compressed; the encoding is recorded per row
// so stores can be switched without rewriting existing data.
package store
