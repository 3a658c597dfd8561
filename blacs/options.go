// SPDX-License-Identifier: MIT

package blacs

// AnySource is the source coordinate passed to the transport when a receive
// does not name its sender: the transport takes the broadcast pending in scope.
const AnySource = -1

const panicSourceInvalid = "blacs: WithSource: row and col must be >= 0"

// Option configures a receive operation.
type Option func(*Options)

// Options is the resolved receive configuration.
type Options struct {
	srcRow, srcCol int // AnySource unless WithSource was applied
}

// WithSource names the grid coordinates of the sending process.
// Panics on negative coordinates; those are programmer errors.
func WithSource(row, col int) Option {
	if row < 0 || col < 0 {
		panic(panicSourceInvalid)
	}

	return func(o *Options) { o.srcRow, o.srcCol = row, col }
}

// WithAnySource resets the source to AnySource.
func WithAnySource() Option {
	return func(o *Options) { o.srcRow, o.srcCol = AnySource, AnySource }
}

// Source returns the resolved source coordinates.
func (o Options) Source() (row, col int) { return o.srcRow, o.srcCol }

// gatherOptions applies opts over the defaults. Later options win; nil
// entries are skipped.
func gatherOptions(opts []Option) Options {
	o := Options{srcRow: AnySource, srcCol: AnySource}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// ResolveOptions exposes gatherOptions to transports and tests that need the
// effective receive configuration.
func ResolveOptions(opts ...Option) Options { return gatherOptions(opts) }
