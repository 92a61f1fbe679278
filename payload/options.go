package payload

import (
	"log/slog"

	"golang.org/x/text/encoding"
)

// Option configures a Recorder.
type Option func(*Recorder)

// WithCharset sets the character set payload text is encoded in.
func WithCharset(charset encoding.Encoding) Option {
	return func(r *Recorder) {
		if charset != nil {
			r.charset = charset
		}
	}
}

// WithLogger sets the logger used to report created payloads.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) {
		if logger != nil {
			r.logger = logger
		}
	}
}
