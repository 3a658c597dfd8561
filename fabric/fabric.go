// SPDX-License-Identifier: MIT

package fabric

import (
	"fmt"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
	"github.com/katalvlaran/blacs2d/blacs"
	"github.com/katalvlaran/blacs2d/grid"
	"golang.org/x/sync/errgroup"
)

// numScopes is the number of Scope members; queues are kept per scope so a
// row broadcast never sits in front of a column broadcast.
const numScopes = int(blacs.ScopeAll) + 1

// opKind separates general from triangular messages.
type opKind uint8

const (
	kindGeneral opKind = iota
	kindTriangular
)

func (k opKind) String() string {
	if k == kindTriangular {
		return "tr"
	}

	return "ge"
}

// message is one packed region in flight.
type message struct {
	kind       opKind
	typ        string // blacs.TypeCode of the payload
	top        string
	uplo, diag string // empty for general messages
	m, n       int
	src        int    // sender rank
	seq        uint32 // issue stamp, increasing across the fabric
	payload    any    // []T holding pack.Shape.Count() elements, never written
}

// slot is the receiver's one-message look-ahead on a queue. Only the
// queue's consumer touches it.
type slot struct {
	msg  message
	full bool
}

// Stats counts queue traffic. After every broadcast has been received,
// Sent == Received.
type Stats struct {
	Sent     uint32 // messages enqueued, one per destination
	Received uint32 // messages handed to receivers
}

// Fabric is an in-process rows×cols process grid.
type Fabric struct {
	rows, cols int
	opts       Options
	queues     []lfq.SPSC[message] // index: queueIndex(src, dst, scope)
	heads      []slot              // look-ahead per queue, same index
	endpoints  []*Endpoint         // row-major
	pending    []atomix.Uint32     // per queue: seq of a send not yet enqueued there, or 0
	seq        atomix.Uint32
	sent       atomix.Uint32
	received   atomix.Uint32
}

// New builds a rows×cols fabric and one endpoint per process.
// Returns ErrBadShape if rows<1 or cols<1.
// Complexity: O((rows*cols)^2) queue slots, only in-scope pairs initialized.
func New(rows, cols int, opts ...Option) (*Fabric, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("fabric.New(%d,%d): %w", rows, cols, ErrBadShape)
	}
	f := &Fabric{rows: rows, cols: cols, opts: gatherOptions(opts)}
	size := rows * cols
	f.queues = make([]lfq.SPSC[message], size*size*numScopes)
	f.heads = make([]slot, len(f.queues))
	f.endpoints = make([]*Endpoint, size)
	f.pending = make([]atomix.Uint32, len(f.queues))

	for rank := 0; rank < size; rank++ {
		g, err := grid.New(f.opts.ctx, rows, cols, rank/cols, rank%cols)
		if err != nil {
			return nil, err
		}
		f.endpoints[rank] = &Endpoint{f: f, g: g, rank: rank}
	}
	for s := blacs.ScopeRow; s.Valid(); s++ {
		for src := 0; src < size; src++ {
			for _, dst := range f.peers(src, s) {
				f.queues[f.queueIndex(src, dst, s)].Init(f.opts.capacity)
			}
		}
	}

	return f, nil
}

// Rows returns the number of process rows.
func (f *Fabric) Rows() int { return f.rows }

// Cols returns the number of process columns.
func (f *Fabric) Cols() int { return f.cols }

// Context returns the context identifier of every endpoint's grid.
func (f *Fabric) Context() grid.Context { return f.opts.ctx }

// Endpoint returns the process at (row, col).
func (f *Fabric) Endpoint(row, col int) (*Endpoint, error) {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return nil, fmt.Errorf("fabric.Endpoint(%d,%d): %w", row, col, grid.ErrOutOfRange)
	}

	return f.endpoints[row*f.cols+col], nil
}

// Endpoints returns every process in row-major order.
func (f *Fabric) Endpoints() []*Endpoint {
	out := make([]*Endpoint, len(f.endpoints))
	copy(out, f.endpoints)

	return out
}

// Run calls fn once per endpoint, each on its own goroutine, and returns the
// first non-nil error after all of them return. A process that fails early
// can leave its peers waiting; set WithReceiveTimeout when that matters.
func (f *Fabric) Run(fn func(ep *Endpoint) error) error {
	var g errgroup.Group
	for _, ep := range f.endpoints {
		g.Go(func() error { return fn(ep) })
	}

	return g.Wait()
}

// Stats returns a snapshot of the traffic counters.
func (f *Fabric) Stats() Stats {
	return Stats{Sent: f.sent.Load(), Received: f.received.Load()}
}

// queueIndex locates the (src → dst, scope) queue.
func (f *Fabric) queueIndex(src, dst int, s blacs.Scope) int {
	size := f.rows * f.cols

	return (src*size+dst)*numScopes + int(s)
}

// peers lists the ranks that receive a broadcast of src in scope s.
func (f *Fabric) peers(src int, s blacs.Scope) []int {
	row, col := src/f.cols, src%f.cols
	var out []int
	switch s {
	case blacs.ScopeRow:
		for c := 0; c < f.cols; c++ {
			if c != col {
				out = append(out, row*f.cols+c)
			}
		}
	case blacs.ScopeColumn:
		for r := 0; r < f.rows; r++ {
			if r != row {
				out = append(out, r*f.cols+col)
			}
		}
	default:
		for r := 0; r < f.rows*f.cols; r++ {
			if r != src {
				out = append(out, r)
			}
		}
	}

	return out
}

// inScope reports whether a and b share scope s (a != b).
func (f *Fabric) inScope(a, b int, s blacs.Scope) bool {
	if a == b {
		return false
	}
	switch s {
	case blacs.ScopeRow:
		return a/f.cols == b/f.cols
	case blacs.ScopeColumn:
		return a%f.cols == b%f.cols
	default:
		return true
	}
}

// deadline returns the wait limit for a call starting now; zero means none.
func (f *Fabric) deadline() time.Time {
	if f.opts.timeout == 0 {
		return time.Time{}
	}

	return time.Now().Add(f.opts.timeout)
}

// expired reports whether a non-zero deadline has passed.
func expired(deadline time.Time) bool {
	return !deadline.IsZero() && time.Now().After(deadline)
}

// enqueue puts msg on the (src → dst, s) queue, waiting while it is full,
// and then clears the queue's pending mark.
func (f *Fabric) enqueue(src, dst int, s blacs.Scope, msg *message, deadline time.Time) error {
	q := &f.queues[f.queueIndex(src, dst, s)]
	var bo iox.Backoff
	for {
		err := q.Enqueue(msg)
		if err == nil {
			f.pending[f.queueIndex(src, dst, s)].Store(0)
			f.sent.Add(1)
			return nil
		}
		if !iox.IsWouldBlock(err) {
			return err
		}
		if expired(deadline) {
			return fmt.Errorf("fabric: send %d->%d: %w", src, dst, ErrTimeout)
		}
		bo.Wait()
	}
}

// dequeue takes the next message for dst from srcs, waiting while none is
// pending. Among several pending messages it takes the one issued first: a
// candidate is accepted only when no other source in srcs is still
// owing dst an earlier send, and a refill of the heads still selects it.
func (f *Fabric) dequeue(srcs []int, dst int, s blacs.Scope, deadline time.Time) (message, error) {
	var bo iox.Backoff
	for {
		h, err := f.earliest(srcs, dst, s)
		if err != nil {
			return message{}, err
		}
		for h != nil && f.settled(h.msg, srcs, dst, s) {
			next, err := f.earliest(srcs, dst, s)
			if err != nil {
				return message{}, err
			}
			if next == h {
				return f.take(h), nil
			}
			h = next
		}
		if expired(deadline) {
			return message{}, fmt.Errorf("fabric: receive at %d: %w", dst, ErrTimeout)
		}
		bo.Wait()
	}
}

// earliest fills the empty heads of srcs and returns the full one with the
// lowest stamp, or nil when all are empty.
func (f *Fabric) earliest(srcs []int, dst int, s blacs.Scope) (*slot, error) {
	var best *slot
	for _, src := range srcs {
		i := f.queueIndex(src, dst, s)
		h := &f.heads[i]
		if !h.full {
			msg, err := f.queues[i].Dequeue()
			if err != nil && !iox.IsWouldBlock(err) {
				return nil, err
			}
			if err == nil {
				h.msg, h.full = msg, true
			}
		}
		if h.full && (best == nil || h.msg.seq < best.msg.seq) {
			best = h
		}
	}

	return best, nil
}

// settled reports whether no source in srcs other than msg's own sender
// still owes dst a message stamped before msg.
func (f *Fabric) settled(msg message, srcs []int, dst int, s blacs.Scope) bool {
	for _, src := range srcs {
		if src == msg.src {
			continue
		}
		if st := f.pending[f.queueIndex(src, dst, s)].Load(); st != 0 && st < msg.seq {
			return false
		}
	}

	return true
}

// take empties h and returns its message.
func (f *Fabric) take(h *slot) message {
	msg := h.msg
	*h = slot{}
	f.received.Add(1)

	return msg
}
