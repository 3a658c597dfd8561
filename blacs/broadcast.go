// SPDX-License-Identifier: MIT

package blacs

import "github.com/katalvlaran/blacs2d/grid"

// ---------- general send ----------

// Gebs2d sends the m×n column-major region of a (stride lda) to every other
// process of scope in g.
//
// Inputs:
//   - tr: transport owning g's context.
//   - scope, top: participating processes and communication pattern.
//   - m, n, a, lda: region; only read.
//
// Returns the transport's error unchanged.
func Gebs2d[T Element](tr Transport, g *grid.Grid, scope Scope, top Topology, m, n int, a []T, lda int) error {
	return routeGebs2d(tr, g.Context(), scope.Code(), top.Code(), m, n, a, lda)
}

// Gebs2dBuffer is Gebs2d over a's storage.
func Gebs2dBuffer[T Element](tr Transport, g *grid.Grid, scope Scope, top Topology, m, n int, a Buffer[T], lda int) error {
	return Gebs2d(tr, g, scope, top, m, n, a.Data(), lda)
}

// Gebs2dSized sends all of a as one column: m = a.Len(), n = 1, lda = a.Len().
func Gebs2dSized[T Element](tr Transport, g *grid.Grid, scope Scope, top Topology, a SizedBuffer[T]) error {
	m, n, lda := inferShape(a.Len())
	return Gebs2dBuffer[T](tr, g, scope, top, m, n, a, lda)
}

// ---------- general receive ----------

// Gebr2d receives an m×n region from the sender in scope into a (stride lda).
// Exactly the m·n logically addressed elements are overwritten; the rest of
// a, including the padding between columns, is left as is.
// WithSource names the sender; by default the transport takes the pending
// broadcast of scope.
func Gebr2d[T Element](tr Transport, g *grid.Grid, scope Scope, top Topology, m, n int, a []T, lda int, opts ...Option) error {
	o := gatherOptions(opts)
	return routeGebr2d(tr, g.Context(), scope.Code(), top.Code(), m, n, a, lda, o.srcRow, o.srcCol)
}

// Gebr2dBuffer is Gebr2d into a's storage.
func Gebr2dBuffer[T Element](tr Transport, g *grid.Grid, scope Scope, top Topology, m, n int, a Buffer[T], lda int, opts ...Option) error {
	return Gebr2d(tr, g, scope, top, m, n, a.Data(), lda, opts...)
}

// Gebr2dSized receives one column of a.Len() elements into a.
func Gebr2dSized[T Element](tr Transport, g *grid.Grid, scope Scope, top Topology, a SizedBuffer[T], opts ...Option) error {
	m, n, lda := inferShape(a.Len())
	return Gebr2dBuffer[T](tr, g, scope, top, m, n, a, lda, opts...)
}

// ---------- triangular send ----------

// Trbs2d sends the uplo trapezoid of the m×n region of a. With DiagonalUnit
// the diagonal is implied and not transferred.
func Trbs2d[T Element](tr Transport, g *grid.Grid, scope Scope, top Topology, uplo Triangle, diag Diagonal, m, n int, a []T, lda int) error {
	return routeTrbs2d(tr, g.Context(), scope.Code(), top.Code(), uplo.Code(), diag.Code(), m, n, a, lda)
}

// Trbs2dBuffer is Trbs2d over a's storage.
func Trbs2dBuffer[T Element](tr Transport, g *grid.Grid, scope Scope, top Topology, uplo Triangle, diag Diagonal, m, n int, a Buffer[T], lda int) error {
	return Trbs2d(tr, g, scope, top, uplo, diag, m, n, a.Data(), lda)
}

// Trbs2dSized is Trbs2d over one column of a.Len() elements.
func Trbs2dSized[T Element](tr Transport, g *grid.Grid, scope Scope, top Topology, uplo Triangle, diag Diagonal, a SizedBuffer[T]) error {
	m, n, lda := inferShape(a.Len())
	return Trbs2dBuffer[T](tr, g, scope, top, uplo, diag, m, n, a, lda)
}

// ---------- triangular receive ----------

// Trbr2d receives the uplo trapezoid of an m×n region into a. Elements
// outside the trapezoid, and the diagonal under DiagonalUnit, are untouched.
func Trbr2d[T Element](tr Transport, g *grid.Grid, scope Scope, top Topology, uplo Triangle, diag Diagonal, m, n int, a []T, lda int, opts ...Option) error {
	o := gatherOptions(opts)
	return routeTrbr2d(tr, g.Context(), scope.Code(), top.Code(), uplo.Code(), diag.Code(), m, n, a, lda, o.srcRow, o.srcCol)
}

// Trbr2dBuffer is Trbr2d into a's storage.
func Trbr2dBuffer[T Element](tr Transport, g *grid.Grid, scope Scope, top Topology, uplo Triangle, diag Diagonal, m, n int, a Buffer[T], lda int, opts ...Option) error {
	return Trbr2d(tr, g, scope, top, uplo, diag, m, n, a.Data(), lda, opts...)
}

// Trbr2dSized is Trbr2d into one column of a.Len() elements.
func Trbr2dSized[T Element](tr Transport, g *grid.Grid, scope Scope, top Topology, uplo Triangle, diag Diagonal, a SizedBuffer[T], opts ...Option) error {
	m, n, lda := inferShape(a.Len())
	return Trbr2dBuffer[T](tr, g, scope, top, uplo, diag, m, n, a, lda, opts...)
}
