// SPDX-License-Identifier: MIT

package blacs_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/blacs2d/blacs"
	"github.com/katalvlaran/blacs2d/grid"
	"github.com/stretchr/testify/require"
)

// column is a caller-defined buffer; it is eligible purely by its methods.
type column[T blacs.Element] struct{ vals []T }

func (c *column[T]) Data() []T { return c.vals }
func (c *column[T]) Len() int  { return len(c.vals) }

// mustGrid returns the (0,1) process of a 2x2 grid on context 5.
func mustGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(5, 2, 2, 0, 1)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}

	return g
}

// checkRouting issues all four operations for T and checks the entry point
// and every argument that reached the transport.
func checkRouting[T blacs.Element](t *testing.T) {
	t.Helper()
	g := mustGrid(t)
	rec := &recorder{}
	a := make([]T, 12)
	p := strings.ToUpper(blacs.TypeCode[T]())

	require.NoError(t, blacs.Gebs2d(rec, g, blacs.ScopeRow, blacs.TopologyIncreasingRing, 3, 4, a, 3))
	c := rec.last()
	require.Equal(t, p+"gebs2d", c.method)
	require.Equal(t, grid.Context(5), c.ctx)
	require.Equal(t, "R", c.scope)
	require.Equal(t, "I", c.top)
	require.Equal(t, [3]int{3, 4, 3}, [3]int{c.m, c.n, c.lda})
	require.Equal(t, 12, c.length)

	require.NoError(t, blacs.Gebr2d(rec, g, blacs.ScopeColumn, blacs.TopologyDefault, 2, 2, a, 4))
	c = rec.last()
	require.Equal(t, p+"gebr2d", c.method)
	require.Equal(t, "C", c.scope)
	require.Equal(t, " ", c.top)
	require.Equal(t, [2]int{blacs.AnySource, blacs.AnySource}, [2]int{c.rsrc, c.csrc})

	require.NoError(t, blacs.Trbs2d(rec, g, blacs.ScopeAll, blacs.TopologyHypercube,
		blacs.TriangleLower, blacs.DiagonalUnit, 3, 3, a, 4))
	c = rec.last()
	require.Equal(t, p+"trbs2d", c.method)
	require.Equal(t, [4]string{"A", "H", "L", "U"}, [4]string{c.scope, c.top, c.uplo, c.diag})

	require.NoError(t, blacs.Trbr2d(rec, g, blacs.ScopeAll, blacs.TopologySplitRing,
		blacs.TriangleUpper, blacs.DiagonalNonUnit, 3, 3, a, 4, blacs.WithSource(1, 0)))
	c = rec.last()
	require.Equal(t, p+"trbr2d", c.method)
	require.Equal(t, [4]string{"A", "S", "U", "N"}, [4]string{c.scope, c.top, c.uplo, c.diag})
	require.Equal(t, [2]int{1, 0}, [2]int{c.rsrc, c.csrc})

	require.Len(t, rec.calls, 4) // one transport call per operation
}

// TestRoutingPerElementType covers every (operation, element type) pair.
func TestRoutingPerElementType(t *testing.T) {
	t.Run("int32", checkRouting[int32])
	t.Run("float32", checkRouting[float32])
	t.Run("float64", checkRouting[float64])
	t.Run("complex64", checkRouting[complex64])
	t.Run("complex128", checkRouting[complex128])
}

// checkShapes asserts the three call shapes reach the transport with the
// same descriptor for each operation.
func checkShapes[T blacs.Element](t *testing.T) {
	t.Helper()
	g := mustGrid(t)
	const k = 6
	buf := &column[T]{vals: make([]T, k)}

	explicit, viaBuffer, viaSized := &recorder{}, &recorder{}, &recorder{}

	require.NoError(t, blacs.Gebs2d(explicit, g, blacs.ScopeAll, blacs.TopologyDefault, k, 1, buf.vals, k))
	require.NoError(t, blacs.Gebs2dBuffer[T](viaBuffer, g, blacs.ScopeAll, blacs.TopologyDefault, k, 1, buf, k))
	require.NoError(t, blacs.Gebs2dSized[T](viaSized, g, blacs.ScopeAll, blacs.TopologyDefault, buf))

	require.NoError(t, blacs.Gebr2d(explicit, g, blacs.ScopeAll, blacs.TopologyDefault, k, 1, buf.vals, k))
	require.NoError(t, blacs.Gebr2dBuffer[T](viaBuffer, g, blacs.ScopeAll, blacs.TopologyDefault, k, 1, buf, k))
	require.NoError(t, blacs.Gebr2dSized[T](viaSized, g, blacs.ScopeAll, blacs.TopologyDefault, buf))

	require.NoError(t, blacs.Trbs2d(explicit, g, blacs.ScopeRow, blacs.TopologyDefault,
		blacs.TriangleUpper, blacs.DiagonalUnit, k, 1, buf.vals, k))
	require.NoError(t, blacs.Trbs2dBuffer[T](viaBuffer, g, blacs.ScopeRow, blacs.TopologyDefault,
		blacs.TriangleUpper, blacs.DiagonalUnit, k, 1, buf, k))
	require.NoError(t, blacs.Trbs2dSized[T](viaSized, g, blacs.ScopeRow, blacs.TopologyDefault,
		blacs.TriangleUpper, blacs.DiagonalUnit, buf))

	require.NoError(t, blacs.Trbr2d(explicit, g, blacs.ScopeRow, blacs.TopologyDefault,
		blacs.TriangleLower, blacs.DiagonalNonUnit, k, 1, buf.vals, k))
	require.NoError(t, blacs.Trbr2dBuffer[T](viaBuffer, g, blacs.ScopeRow, blacs.TopologyDefault,
		blacs.TriangleLower, blacs.DiagonalNonUnit, k, 1, buf, k))
	require.NoError(t, blacs.Trbr2dSized[T](viaSized, g, blacs.ScopeRow, blacs.TopologyDefault,
		blacs.TriangleLower, blacs.DiagonalNonUnit, buf))

	require.Len(t, explicit.calls, 4)
	require.Equal(t, explicit.calls, viaBuffer.calls) // same pointer, dims and codes
	require.Equal(t, explicit.calls, viaSized.calls)  // M=K, N=1, LDA=K
}

// TestCallShapesAgree runs checkShapes for every element type.
func TestCallShapesAgree(t *testing.T) {
	t.Run("int32", checkShapes[int32])
	t.Run("float32", checkShapes[float32])
	t.Run("float64", checkShapes[float64])
	t.Run("complex64", checkShapes[complex64])
	t.Run("complex128", checkShapes[complex128])
}

// TestVectorInferredShape uses the slice adapter with type inference.
func TestVectorInferredShape(t *testing.T) {
	g := mustGrid(t)
	rec := &recorder{}
	v := blacs.Vector[float64]{1, 2, 3, 4, 5}

	require.NoError(t, blacs.Gebs2dSized[float64](rec, g, blacs.ScopeRow, blacs.TopologyDefault, v))
	c := rec.last()
	require.Equal(t, "Dgebs2d", c.method)
	require.Equal(t, [3]int{5, 1, 5}, [3]int{c.m, c.n, c.lda})
}

// TestEmptySizedBuffer keeps LDA at 1 for a zero-length column.
func TestEmptySizedBuffer(t *testing.T) {
	g := mustGrid(t)
	rec := &recorder{}

	require.NoError(t, blacs.Gebr2dSized[int32](rec, g, blacs.ScopeAll, blacs.TopologyDefault, blacs.Vector[int32]{}))
	c := rec.last()
	require.Equal(t, [3]int{0, 1, 1}, [3]int{c.m, c.n, c.lda})
}

// TestTransportErrorUnmodified checks faults are returned as the same value.
func TestTransportErrorUnmodified(t *testing.T) {
	g := mustGrid(t)
	fault := errors.New("transport: link down")
	rec := &recorder{err: fault}
	a := make([]complex128, 4)

	err := blacs.Gebs2d(rec, g, blacs.ScopeAll, blacs.TopologyDefault, 2, 2, a, 2)
	require.Equal(t, fault, err) // identical value, no wrapping
	err = blacs.Gebr2dSized[complex128](rec, g, blacs.ScopeAll, blacs.TopologyDefault, blacs.Vector[complex128](a))
	require.Equal(t, fault, err)
	err = blacs.Trbs2d(rec, g, blacs.ScopeAll, blacs.TopologyDefault, blacs.TriangleUpper, blacs.DiagonalUnit, 2, 2, a, 2)
	require.Equal(t, fault, err)
	err = blacs.Trbr2dBuffer[complex128](rec, g, blacs.ScopeAll, blacs.TopologyDefault,
		blacs.TriangleUpper, blacs.DiagonalUnit, 2, 2, &column[complex128]{vals: a}, 2)
	require.Equal(t, fault, err)
	require.Len(t, rec.calls, 4) // no retries
}

// TestReceiveOptions covers source resolution order and validation.
func TestReceiveOptions(t *testing.T) {
	o := blacs.ResolveOptions()
	r, c := o.Source()
	require.Equal(t, blacs.AnySource, r)
	require.Equal(t, blacs.AnySource, c)

	o = blacs.ResolveOptions(blacs.WithSource(1, 1), nil, blacs.WithAnySource(), blacs.WithSource(0, 1))
	r, c = o.Source()
	require.Equal(t, 0, r) // last option wins
	require.Equal(t, 1, c)

	require.Panics(t, func() { blacs.WithSource(-1, 0) })
	require.Panics(t, func() { blacs.WithSource(0, -3) })
}

// TestInvalidEnumPanicsBeforeTransport checks a bad control value never
// reaches the transport.
func TestInvalidEnumPanicsBeforeTransport(t *testing.T) {
	g := mustGrid(t)
	rec := &recorder{}
	a := make([]float32, 4)

	require.Panics(t, func() {
		_ = blacs.Gebs2d(rec, g, blacs.Scope(9), blacs.TopologyDefault, 2, 2, a, 2)
	})
	require.Empty(t, rec.calls)
}
