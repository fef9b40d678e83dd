package undo

import "github.com/dshills/undolog/internal/logging"

// Option configures a Log during creation.
type Option func(*Log)

// WithMaxEntries bounds the number of transactions kept.
// Zero or a negative value means unbounded, which is the default.
func WithMaxEntries(max int) Option {
	return func(l *Log) {
		l.maxEntries = max
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *logging.Logger) Option {
	return func(l *Log) {
		if logger != nil {
			l.logger = logger.WithComponent("undo")
		}
	}
}

// WithChangeHandler sets the change notification callback.
func WithChangeHandler(fn func(*Log)) Option {
	return func(l *Log) {
		l.changed = fn
	}
}
