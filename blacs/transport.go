// SPDX-License-Identifier: MIT

package blacs

import "github.com/katalvlaran/blacs2d/grid"

// Transport is the boundary to the communication substrate: exactly one
// entry point per (operation kind, element type). Method names follow the
// BLACS C interface without its "C" prefix.
//
// Arguments:
//   - ctx: context identifier taken from the Grid.
//   - scope, top: wire codes of Scope and Topology.
//   - uplo, diag: wire codes of Triangle and Diagonal (triangular only).
//   - m, n: extent of the region; a: column-major storage; lda: column stride.
//   - rsrc, csrc: coordinates of the sending process for receives, or
//     AnySource when the caller did not name one.
//
// Every method blocks until its local part completes. Errors are the
// transport's own and are handed back to the caller unchanged.
type Transport interface {
	Igebs2d(ctx grid.Context, scope, top string, m, n int, a []int32, lda int) error
	Sgebs2d(ctx grid.Context, scope, top string, m, n int, a []float32, lda int) error
	Dgebs2d(ctx grid.Context, scope, top string, m, n int, a []float64, lda int) error
	Cgebs2d(ctx grid.Context, scope, top string, m, n int, a []complex64, lda int) error
	Zgebs2d(ctx grid.Context, scope, top string, m, n int, a []complex128, lda int) error

	Igebr2d(ctx grid.Context, scope, top string, m, n int, a []int32, lda, rsrc, csrc int) error
	Sgebr2d(ctx grid.Context, scope, top string, m, n int, a []float32, lda, rsrc, csrc int) error
	Dgebr2d(ctx grid.Context, scope, top string, m, n int, a []float64, lda, rsrc, csrc int) error
	Cgebr2d(ctx grid.Context, scope, top string, m, n int, a []complex64, lda, rsrc, csrc int) error
	Zgebr2d(ctx grid.Context, scope, top string, m, n int, a []complex128, lda, rsrc, csrc int) error

	Itrbs2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []int32, lda int) error
	Strbs2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []float32, lda int) error
	Dtrbs2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []float64, lda int) error
	Ctrbs2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []complex64, lda int) error
	Ztrbs2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []complex128, lda int) error

	Itrbr2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []int32, lda, rsrc, csrc int) error
	Strbr2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []float32, lda, rsrc, csrc int) error
	Dtrbr2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []float64, lda, rsrc, csrc int) error
	Ctrbr2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []complex64, lda, rsrc, csrc int) error
	Ztrbr2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []complex128, lda, rsrc, csrc int) error
}
