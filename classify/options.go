package classify

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jmgilman/go/sqlfault/sqlerr"
)

// Option configures a Classifier.
type Option func(*Classifier)

// WithAdapters replaces the driver adapters used to recognize SQL errors.
// The default is drivers.All().
func WithAdapters(adapters ...sqlerr.Adapter) Option {
	return func(c *Classifier) {
		c.adapters = adapters
	}
}

// WithLogger sets the logger used to report classifications at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics registers classification counters with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Classifier) {
		c.metrics = newMetrics(reg)
	}
}

// WithValueTooLongRules replaces the value-too-long table.
func WithValueTooLongRules(rules RuleSet) Option {
	return func(c *Classifier) {
		c.valueTooLong = rules
	}
}

// WithForeignKeyRules replaces the foreign-key table.
func WithForeignKeyRules(rules RuleSet) Option {
	return func(c *Classifier) {
		c.foreignKey = rules
	}
}

// WithUniqueRules replaces the unique-variable table, for instance after
// re-validating the vendor codes against a newer driver.
func WithUniqueRules(rules RuleSet) Option {
	return func(c *Classifier) {
		c.unique = rules
	}
}
