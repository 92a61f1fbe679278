package classify

import (
	"context"
	"io"
	"log/slog"

	"github.com/jmgilman/go/sqlfault/errors"
	"github.com/jmgilman/go/sqlfault/sqlerr"
	"github.com/jmgilman/go/sqlfault/sqlerr/drivers"
)

// Kind is the outcome of Classify.
type Kind int

const (
	KindNone Kind = iota
	KindUniqueViolation
	KindForeignKeyViolation
	KindValueTooLong
)

func (k Kind) String() string {
	switch k {
	case KindUniqueViolation:
		return "unique_violation"
	case KindForeignKeyViolation:
		return "foreign_key_violation"
	case KindValueTooLong:
		return "value_too_long"
	default:
		return "none"
	}
}

// Code returns the error code reported for the kind.
func (k Kind) Code() errors.ErrorCode {
	switch k {
	case KindUniqueViolation:
		return errors.CodeUniqueViolation
	case KindForeignKeyViolation:
		return errors.CodeForeignKeyViolation
	case KindValueTooLong:
		return errors.CodeValueTooLong
	default:
		return errors.CodeDatabase
	}
}

// Classifier matches collected SQL errors against vendor rule tables.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	adapters     []sqlerr.Adapter
	valueTooLong RuleSet
	foreignKey   RuleSet
	unique       RuleSet
	logger       *slog.Logger
	metrics      *metrics
}

// New creates a Classifier with the built-in tables and driver adapters.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		adapters:     drivers.All(),
		valueTooLong: ValueTooLongRules(),
		foreignKey:   ForeignKeyRules(),
		unique:       UniqueVariableRules(),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect returns the SQL errors on err's cause chain as seen by this
// classifier's adapters.
func (c *Classifier) Collect(err error) []*sqlerr.Error {
	return sqlerr.Collect(err, c.adapters...)
}

// IsValueTooLong reports whether err was caused by a value exceeding its column.
func (c *Classifier) IsValueTooLong(err error) bool {
	return c.valueTooLong.Match(c.Collect(err))
}

// IsForeignKeyViolation reports whether err was caused by a foreign-key violation.
func (c *Classifier) IsForeignKeyViolation(err error) bool {
	return c.foreignKey.Match(c.Collect(err))
}

// IsUniqueConstraintViolation reports whether err was caused by a duplicate
// in the engine's variable uniqueness index.
func (c *Classifier) IsUniqueConstraintViolation(err error) bool {
	return c.unique.Match(c.Collect(err))
}

// Classify returns the first matching kind, checking unique, foreign-key and
// value-too-long in that order. The matched SQL error is returned with it.
func (c *Classifier) Classify(err error) (Kind, *sqlerr.Error) {
	if err == nil {
		return KindNone, nil
	}
	return c.classify(c.Collect(err))
}

func (c *Classifier) classify(collected []*sqlerr.Error) (Kind, *sqlerr.Error) {
	kind := KindNone
	var matched *sqlerr.Error
	for _, candidate := range []struct {
		kind  Kind
		rules RuleSet
	}{
		{KindUniqueViolation, c.unique},
		{KindForeignKeyViolation, c.foreignKey},
		{KindValueTooLong, c.valueTooLong},
	} {
		if e, ok := candidate.rules.First(collected); ok {
			kind, matched = candidate.kind, e
			break
		}
	}

	c.metrics.observe(kind)
	c.logger.LogAttrs(context.Background(), slog.LevelDebug, "classified database failure",
		slog.String("kind", kind.String()),
		slog.Int("sql_errors", len(collected)),
	)
	return kind, matched
}

// Wrap wraps err in a PlatformError carrying the classified code and its default
// retry classification. The matched SQL error's state, vendor code and
// dialect are attached as context, as are the statement and index of a batch
// wrapper on the chain. Errors without any SQL error on their chain are
// wrapped as CodeUnknown. Returns nil if err is nil.
func (c *Classifier) Wrap(err error) errors.PlatformError {
	if err == nil {
		return nil
	}

	collected := c.Collect(err)
	if len(collected) == 0 {
		return errors.Wrap(err, errors.CodeUnknown, "operation failed without a database error")
	}

	kind, matched := c.classify(collected)
	message := "database operation failed"
	if kind != KindNone {
		message += ": " + kind.String()
	}
	wrapped := errors.WithClassification(errors.Wrap(err, kind.Code(), message), errors.DefaultClassification(kind.Code()))

	fields := map[string]interface{}{"kind": kind.String()}
	if matched != nil {
		fields["sqlstate"] = matched.State
		fields["vendor_code"] = matched.Code
		if matched.Dialect != "" {
			fields["dialect"] = matched.Dialect
		}
	}
	if batch, ok := sqlerr.FindBatch(err); ok {
		fields["batch_statement"] = batch.Statement
		fields["batch_index"] = batch.Index
	}
	return errors.WithContextMap(wrapped, fields)
}
