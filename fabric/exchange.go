// SPDX-License-Identifier: MIT

package fabric

import (
	"fmt"

	"github.com/katalvlaran/blacs2d/blacs"
	"github.com/katalvlaran/blacs2d/grid"
	"github.com/katalvlaran/blacs2d/internal/pack"
)

// Code lookups built from the blacs enumerations.
var (
	scopeByCode    = codeIndex[blacs.Scope](blacs.ScopeRow)
	topologyByCode = codeIndex[blacs.Topology](blacs.TopologyDefault)
	triangleByCode = codeIndex[blacs.Triangle](blacs.TriangleUpper)
	diagonalByCode = codeIndex[blacs.Diagonal](blacs.DiagonalUnit)
)

type codedEnum interface {
	~uint8
	Code() string
	Valid() bool
}

// codeIndex maps the wire code of every valid member from first onward.
func codeIndex[E codedEnum](first E) map[string]E {
	out := make(map[string]E)
	for v := first; v.Valid(); v++ {
		out[v.Code()] = v
	}

	return out
}

// header describes one call as it arrived at the transport.
type header struct {
	op         string // entry point, for errors and logs
	kind       opKind
	ctx        grid.Context
	scope, top string
	uplo, diag string
	m, n, lda  int
}

// check validates h against the fabric and a slice of the given length,
// returning the scope and the region to move.
func (e *Endpoint) check(h header, length int) (blacs.Scope, pack.Shape, error) {
	var shape pack.Shape
	if h.ctx != e.g.Context() {
		return 0, shape, fmt.Errorf("fabric.%s: context %d: %w", h.op, h.ctx, ErrContext)
	}
	scope, ok := scopeByCode[h.scope]
	if !ok {
		return 0, shape, fmt.Errorf("fabric.%s: scope %q: %w", h.op, h.scope, ErrCode)
	}
	if _, ok = topologyByCode[h.top]; !ok {
		return 0, shape, fmt.Errorf("fabric.%s: topology %q: %w", h.op, h.top, ErrCode)
	}

	shape = pack.Shape{Kind: pack.General, M: h.m, N: h.n, LDA: h.lda}
	if h.kind == kindTriangular {
		uplo, ok := triangleByCode[h.uplo]
		if !ok {
			return 0, shape, fmt.Errorf("fabric.%s: uplo %q: %w", h.op, h.uplo, ErrCode)
		}
		diag, ok := diagonalByCode[h.diag]
		if !ok {
			return 0, shape, fmt.Errorf("fabric.%s: diag %q: %w", h.op, h.diag, ErrCode)
		}
		shape.Kind = pack.Lower
		if uplo == blacs.TriangleUpper {
			shape.Kind = pack.Upper
		}
		shape.Unit = diag == blacs.DiagonalUnit
	}

	if h.m < 0 || h.n < 0 || h.lda < max(1, h.m) {
		return 0, shape, fmt.Errorf("fabric.%s: m=%d n=%d lda=%d: %w", h.op, h.m, h.n, h.lda, ErrDescriptor)
	}
	if length < shape.MinLen() {
		return 0, shape, fmt.Errorf("fabric.%s: len=%d need %d: %w", h.op, length, shape.MinLen(), ErrBufferTooShort)
	}

	return scope, shape, nil
}

// send packs the region of a once and enqueues it for every peer in scope.
func send[T blacs.Element](e *Endpoint, h header, a []T) error {
	scope, shape, err := e.check(h, len(a))
	if err != nil {
		return err
	}
	f := e.f
	msg := message{
		kind: h.kind, typ: blacs.TypeCode[T](), top: h.top,
		uplo: h.uplo, diag: h.diag, m: h.m, n: h.n, src: e.rank,
		payload: pack.Pack(shape, a),
	}
	peers := f.peers(e.rank, scope)
	if len(peers) == 0 {
		return nil
	}
	// Every destination is marked before the first enqueue, so a receiver
	// that already holds a later message waits for this one.
	msg.seq = f.seq.Add(1)
	for _, dst := range peers {
		f.pending[f.queueIndex(e.rank, dst, scope)].Store(msg.seq)
	}
	defer func() {
		for _, dst := range peers {
			f.pending[f.queueIndex(e.rank, dst, scope)].Store(0)
		}
	}()

	deadline := f.deadline()
	for _, dst := range peers {
		if err = f.enqueue(e.rank, dst, scope, &msg, deadline); err != nil {
			return fmt.Errorf("fabric.%s: %w", h.op, err)
		}
		f.opts.log.Debug().Str("op", h.op).Int("src", e.rank).Int("dst", dst).
			Int("m", h.m).Int("n", h.n).Msg("enqueue")
	}

	return nil
}

// recv takes one broadcast from (rsrc, csrc), or from any peer in scope when
// both are blacs.AnySource, and writes it into the region of a.
func recv[T blacs.Element](e *Endpoint, h header, a []T, rsrc, csrc int) error {
	scope, shape, err := e.check(h, len(a))
	if err != nil {
		return err
	}
	srcs, err := e.sources(h, scope, rsrc, csrc)
	if err != nil {
		return err
	}
	msg, err := e.f.dequeue(srcs, e.rank, scope, e.f.deadline())
	if err != nil {
		return fmt.Errorf("fabric.%s: %w", h.op, err)
	}
	e.f.opts.log.Debug().Str("op", h.op).Int("src", msg.src).Int("dst", e.rank).
		Int("m", msg.m).Int("n", msg.n).Msg("dequeue")

	if msg.kind != h.kind || msg.typ != blacs.TypeCode[T]() || msg.top != h.top ||
		msg.uplo != h.uplo || msg.diag != h.diag || msg.m != h.m || msg.n != h.n {
		return fmt.Errorf("fabric.%s: got %s%s2d %dx%d from rank %d: %w",
			h.op, msg.typ, msg.kind, msg.m, msg.n, msg.src, ErrProtocolMismatch)
	}
	pack.Unpack(shape, msg.payload.([]T), a)

	return nil
}

// sources resolves the ranks a receive may take from.
func (e *Endpoint) sources(h header, scope blacs.Scope, rsrc, csrc int) ([]int, error) {
	if rsrc == blacs.AnySource && csrc == blacs.AnySource {
		peers := e.f.peers(e.rank, scope)
		if len(peers) == 0 {
			return nil, fmt.Errorf("fabric.%s: no peers in scope %s: %w", h.op, scope, ErrSource)
		}
		return peers, nil
	}
	src, err := e.g.RankOf(rsrc, csrc)
	if err != nil || !e.f.inScope(src, e.rank, scope) {
		return nil, fmt.Errorf("fabric.%s: source (%d,%d) in scope %s: %w", h.op, rsrc, csrc, scope, ErrSource)
	}

	return []int{src}, nil
}
