package gapbuf

import "log/slog"

// Option configures a Buffer during creation.
type Option func(*Buffer)

// WithLogger sets the logger used to report reallocations at debug level.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Buffer) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithMaxCapacity limits the storage the buffer may allocate. Growth past the
// limit fails with ErrOutOfMemory. Non-positive values are ignored.
func WithMaxCapacity(max int) Option {
	return func(b *Buffer) {
		if max > 0 {
			b.maxCap = max
		}
	}
}
