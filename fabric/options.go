// SPDX-License-Identifier: MIT

package fabric

import (
	"time"

	"github.com/katalvlaran/blacs2d/grid"
	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultContext is the context identifier of a fabric's grid.
	DefaultContext grid.Context = 0

	// DefaultQueueCapacity is the per-queue message capacity (rounded up to a
	// power of two).
	DefaultQueueCapacity = 8

	// DefaultReceiveTimeout of zero waits forever, like a native transport.
	DefaultReceiveTimeout time.Duration = 0
)

const (
	panicCapacityInvalid = "fabric: WithQueueCapacity: capacity must be >= 1"
	panicTimeoutInvalid  = "fabric: WithReceiveTimeout: timeout must be >= 0"
)

// Option configures a Fabric.
type Option func(*Options)

// Options is the resolved fabric configuration.
type Options struct {
	ctx      grid.Context
	capacity int
	timeout  time.Duration
	log      zerolog.Logger
}

// WithContext sets the context identifier handed out in every endpoint's grid.
func WithContext(ctx grid.Context) Option {
	return func(o *Options) { o.ctx = ctx }
}

// WithQueueCapacity sets the number of messages a queue holds before senders
// wait. Panics on capacity < 1.
func WithQueueCapacity(capacity int) Option {
	if capacity < 1 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = capacity }
}

// WithReceiveTimeout bounds every wait; zero waits forever. Panics on d < 0.
func WithReceiveTimeout(d time.Duration) Option {
	if d < 0 {
		panic(panicTimeoutInvalid)
	}

	return func(o *Options) { o.timeout = d }
}

// WithLogger receives debug events for every enqueue and dequeue.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.log = l }
}

// gatherOptions applies opts over the defaults and normalizes capacity.
func gatherOptions(opts []Option) Options {
	o := Options{
		ctx:      DefaultContext,
		capacity: DefaultQueueCapacity,
		timeout:  DefaultReceiveTimeout,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.capacity = nextPow2(o.capacity)

	return o
}

// nextPow2 rounds n >= 1 up to a power of two.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
