package payload

import (
	"context"
	"io"
	"log/slog"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/jmgilman/go/sqlfault/errors"
)

//go:generate go run github.com/matryer/moq@v0.5.3 -out mocks/inserter.go -pkg mocks . Inserter

// Payload names used by the engine.
const (
	JobExceptionName          = "job.exceptionByteArray"
	ExternalTaskExceptionName = "externalTask.exceptionByteArray"
)

// Payload is a named diagnostic byte blob. ID is assigned by the store on insert.
type Payload struct {
	ID    string
	Name  string
	Bytes []byte
}

// Inserter is the unit of work a payload is inserted through. Implementations
// are expected to be transaction-scoped.
type Inserter interface {
	Insert(ctx context.Context, p *Payload) error
}

// Recorder creates and decodes diagnostic payloads.
type Recorder struct {
	charset encoding.Encoding
	logger  *slog.Logger
}

// NewRecorder creates a Recorder. The default charset is UTF-8.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		charset: unicode.UTF8,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create inserts a payload named name holding data through tx and returns
// it. When data is empty nothing is inserted and Create returns nil, nil.
// The caller owns the returned payload; the Recorder keeps no reference.
func (r *Recorder) Create(ctx context.Context, tx Inserter, name string, data []byte) (*Payload, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if tx == nil {
		return nil, errors.New(errors.CodeInvalidInput, "payload inserter is nil")
	}

	p := &Payload{Name: name, Bytes: data}
	if err := tx.Insert(ctx, p); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeDatabase, "failed to insert diagnostic payload",
			map[string]interface{}{"payload_name": name})
	}

	r.logger.DebugContext(ctx, "diagnostic payload created",
		slog.String("payload_id", p.ID),
		slog.String("payload_name", name),
		slog.Int("bytes", len(data)),
	)
	return p, nil
}

// CreateJob creates a payload named JobExceptionName.
func (r *Recorder) CreateJob(ctx context.Context, tx Inserter, data []byte) (*Payload, error) {
	return r.Create(ctx, tx, JobExceptionName, data)
}

// CreateExternalTask creates a payload named ExternalTaskExceptionName.
func (r *Recorder) CreateExternalTask(ctx context.Context, tx Inserter, data []byte) (*Payload, error) {
	return r.Create(ctx, tx, ExternalTaskExceptionName, data)
}

// CreateFromError formats the stack trace of failure, encodes it with the
// Recorder's charset and creates a payload from it. A nil failure creates
// nothing.
func (r *Recorder) CreateFromError(ctx context.Context, tx Inserter, name string, failure error) (*Payload, error) {
	if failure == nil {
		return nil, nil
	}
	data, err := r.Encode(FormatStackTrace(failure))
	if err != nil {
		return nil, err
	}
	return r.Create(ctx, tx, name, data)
}

// Encode converts text to bytes in the Recorder's charset.
func (r *Recorder) Encode(text string) ([]byte, error) {
	data, err := r.charset.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodePayloadEncoding, "failed to encode diagnostic payload")
	}
	return data, nil
}

// Decode returns the text held by p. ok is false when p is nil. A decoder
// failure is returned as a CodePayloadEncoding error wrapping it.
func (r *Recorder) Decode(p *Payload) (text string, ok bool, err error) {
	if p == nil {
		return "", false, nil
	}
	data, err := r.charset.NewDecoder().Bytes(p.Bytes)
	if err != nil {
		return "", true, errors.Wrap(err, errors.CodePayloadEncoding, "failed to decode diagnostic payload")
	}
	return string(data), true, nil
}

var std = NewRecorder()

// Create inserts a payload through tx using the default Recorder.
func Create(ctx context.Context, tx Inserter, name string, data []byte) (*Payload, error) {
	return std.Create(ctx, tx, name, data)
}

// CreateJob creates a job exception payload using the default Recorder.
func CreateJob(ctx context.Context, tx Inserter, data []byte) (*Payload, error) {
	return std.CreateJob(ctx, tx, data)
}

// CreateFromError creates a payload from the stack trace of failure using
// the default Recorder.
func CreateFromError(ctx context.Context, tx Inserter, name string, failure error) (*Payload, error) {
	return std.CreateFromError(ctx, tx, name, failure)
}

// Decode returns the UTF-8 text held by p. ok is false when p is nil.
func Decode(p *Payload) (string, bool, error) {
	return std.Decode(p)
}
