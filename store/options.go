package store

import "log/slog"

// Option configures a Store.
type Option func(*Store)

// WithCompression stores payload bytes zstd-compressed.
func WithCompression() Option {
	return func(s *Store) {
		s.compress = true
	}
}

// WithMustExist makes Open fail with CodeNotFound instead of creating a
// database file that does not exist yet.
func WithMustExist() Option {
	return func(s *Store) {
		s.mustExist = true
	}
}

// WithLogger sets the logger used by the store.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}
