package sorted

import (
	"github.com/hupe1980/vcoll"
	"github.com/hupe1980/vcoll/array"
)

type options struct {
	capacity int
	logger   *vcoll.Logger
}

// Option configures a Table at construction.
type Option func(*options)

// WithCapacity pre-allocates room for n elements in the backing array.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLogger sets the logger passed to the backing array.
//
// If nil is passed, logging is disabled.
func WithLogger(l *vcoll.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func (o *options) arrayOptions() []array.Option {
	opts := []array.Option{array.WithCapacity(o.capacity)}
	if o.logger != nil {
		opts = append(opts, array.WithLogger(o.logger))
	}
	return opts
}
