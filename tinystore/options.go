package tinystore

import "log/slog"

// Option is a function that modifies Database configuration at open time.
type Option func(*Database)

// WithRoot sets the directory under which the database directory is
// created. When not set, the current working directory is used.
func WithRoot(path string) Option {
	return func(db *Database) {
		db.root = path
	}
}

// WithLogger sets the logger used for operation-level debug logging.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(db *Database) {
		db.logger = logger
	}
}
