package store

import (
	"context"
	"database/sql"
	stderrors "errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"

	"github.com/jmgilman/go/sqlfault/errors"
	"github.com/jmgilman/go/sqlfault/payload"
)

const (
	encodingRaw  = ""
	encodingZstd = "zstd"
)

const schema = `
CREATE TABLE IF NOT EXISTS diagnostic_payload (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	bytes BLOB NOT NULL,
	encoding TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_diagnostic_payload_name ON diagnostic_payload(name);
`

// Store is a SQLite-backed payload store.
type Store struct {
	db        *sql.DB
	compress  bool
	mustExist bool
	encoder   *zstd.Encoder
	decoder   *zstd.Decoder
	logger    *slog.Logger
}

// Open opens the SQLite database at dsn and creates the schema if needed.
// Use ":memory:" for a private in-memory database. Foreign keys are enforced.
// With WithMustExist a missing database file is a CodeNotFound error.
func Open(ctx context.Context, dsn string, opts ...Option) (*Store, error) {
	s := &Store{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.mustExist && !isMemory(dsn) {
		path := filePath(dsn)
		if _, err := os.Stat(path); err != nil {
			code := errors.CodeDatabase
			if stderrors.Is(err, fs.ErrNotExist) {
				code = errors.CodeNotFound
			}
			return nil, errors.WithContext(errors.Wrap(err, code, "payload database not found"), "path", path)
		}
	}

	db, err := sql.Open("sqlite", withForeignKeys(dsn))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabase, "open sqlite database")
	}
	if isMemory(dsn) {
		// every connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}
	s.db = db

	if s.encoder, err = zstd.NewWriter(nil); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, errors.CodeInternal, "create zstd encoder")
	}
	if s.decoder, err = zstd.NewReader(nil); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, errors.CodeInternal, "create zstd decoder")
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = s.Close()
		return nil, errors.Wrap(err, errors.CodeDatabase, "initialize schema")
	}

	s.logger.DebugContext(ctx, "payload store opened", slog.String("dsn", dsn), slog.Bool("compress", s.compress))
	return s, nil
}

func isMemory(dsn string) bool {
	return filePath(dsn) == ":memory:" || strings.Contains(dsn, "mode=memory")
}

// filePath strips the URI scheme and query parameters from dsn.
func filePath(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return path
}

func withForeignKeys(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// DB returns the underlying database handle.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database.
func (s *Store) Close() error {
	if s.decoder != nil {
		s.decoder.Close()
	}
	if s.encoder != nil {
		_ = s.encoder.Close()
	}
	return s.db.Close()
}

// Begin starts a transaction.
func (s *Store) Begin(ctx context.Context) (*Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabase, "begin transaction")
	}
	return &Tx{tx: tx, store: s}, nil
}

// Get returns the payload with the given id.
func (s *Store) Get(ctx context.Context, id string) (*payload.Payload, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, bytes, encoding FROM diagnostic_payload WHERE id = ?", id)

	p, err := s.scan(row)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.WithContext(errors.New(errors.CodeNotFound, "diagnostic payload not found"), "payload_id", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabase, "query diagnostic payload")
	}
	return p, nil
}

// Entry describes a stored payload without its bytes.
type Entry struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Size      int       `json:"size" yaml:"size"` // stored size, after compression
	Encoding  string    `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// List returns up to limit entries, newest first. An empty name lists
// payloads of every name; limit <= 0 means no limit.
func (s *Store) List(ctx context.Context, name string, limit int) ([]Entry, error) {
	query := "SELECT id, name, length(bytes), encoding, created_at FROM diagnostic_payload"
	var args []any
	if name != "" {
		query += " WHERE name = ?"
		args = append(args, name)
	}
	query += " ORDER BY created_at DESC, rowid DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabase, "list diagnostic payloads")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var created int64
		if err := rows.Scan(&e.ID, &e.Name, &e.Size, &e.Encoding, &created); err != nil {
			return nil, errors.Wrap(err, errors.CodeDatabase, "scan diagnostic payload")
		}
		e.CreatedAt = time.UnixMilli(created).UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabase, "iterate diagnostic payloads")
	}
	return entries, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) scan(row scanner) (*payload.Payload, error) {
	var p payload.Payload
	var stored []byte
	var enc string
	if err := row.Scan(&p.ID, &p.Name, &stored, &enc); err != nil {
		return nil, err
	}

	data, err := s.unpack(stored, enc)
	if err != nil {
		return nil, err
	}
	p.Bytes = data
	return &p, nil
}

func (s *Store) pack(data []byte) ([]byte, string) {
	if !s.compress {
		return data, encodingRaw
	}
	return s.encoder.EncodeAll(data, make([]byte, 0, len(data)/2)), encodingZstd
}

func (s *Store) unpack(stored []byte, enc string) ([]byte, error) {
	switch enc {
	case encodingRaw:
		return stored, nil
	case encodingZstd:
		data, err := s.decoder.DecodeAll(stored, nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodePayloadEncoding, "decompress diagnostic payload")
		}
		return data, nil
	default:
		return nil, errors.Newf(errors.CodePayloadEncoding, "unknown payload encoding %q", enc)
	}
}
