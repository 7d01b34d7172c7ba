package buffer

import (
	"github.com/hupe1980/vcoll"
)

type options struct {
	capacity int
	logger   *vcoll.Logger
}

// Option configures a Buffer at construction.
type Option func(*options)

// WithCapacity pre-allocates room for n bytes plus the terminator.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLogger sets the logger used for growth and ownership events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *vcoll.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func (o *options) componentLogger() *vcoll.Logger {
	if o.logger == nil {
		return vcoll.OrNoop(nil)
	}
	return o.logger.WithComponent("buffer")
}
