// SPDX-License-Identifier: MIT

package blacs

import "github.com/katalvlaran/blacs2d/grid"

// The route* functions select the typed entry point for T with a run-time
// type switch on the slice. The switch costs one type comparison per case;
// it is not compile-time selection. What the compiler does guarantee is the
// closed Element set: no other T compiles, so the trailing panic cannot be
// reached.

func routeGebs2d[T Element](tr Transport, ctx grid.Context, scope, top string, m, n int, a []T, lda int) error {
	switch a := any(a).(type) {
	case []int32:
		return tr.Igebs2d(ctx, scope, top, m, n, a, lda)
	case []float32:
		return tr.Sgebs2d(ctx, scope, top, m, n, a, lda)
	case []float64:
		return tr.Dgebs2d(ctx, scope, top, m, n, a, lda)
	case []complex64:
		return tr.Cgebs2d(ctx, scope, top, m, n, a, lda)
	case []complex128:
		return tr.Zgebs2d(ctx, scope, top, m, n, a, lda)
	}
	panic(panicUnreachableElement)
}

func routeGebr2d[T Element](tr Transport, ctx grid.Context, scope, top string, m, n int, a []T, lda, rsrc, csrc int) error {
	switch a := any(a).(type) {
	case []int32:
		return tr.Igebr2d(ctx, scope, top, m, n, a, lda, rsrc, csrc)
	case []float32:
		return tr.Sgebr2d(ctx, scope, top, m, n, a, lda, rsrc, csrc)
	case []float64:
		return tr.Dgebr2d(ctx, scope, top, m, n, a, lda, rsrc, csrc)
	case []complex64:
		return tr.Cgebr2d(ctx, scope, top, m, n, a, lda, rsrc, csrc)
	case []complex128:
		return tr.Zgebr2d(ctx, scope, top, m, n, a, lda, rsrc, csrc)
	}
	panic(panicUnreachableElement)
}

func routeTrbs2d[T Element](tr Transport, ctx grid.Context, scope, top, uplo, diag string, m, n int, a []T, lda int) error {
	switch a := any(a).(type) {
	case []int32:
		return tr.Itrbs2d(ctx, scope, top, uplo, diag, m, n, a, lda)
	case []float32:
		return tr.Strbs2d(ctx, scope, top, uplo, diag, m, n, a, lda)
	case []float64:
		return tr.Dtrbs2d(ctx, scope, top, uplo, diag, m, n, a, lda)
	case []complex64:
		return tr.Ctrbs2d(ctx, scope, top, uplo, diag, m, n, a, lda)
	case []complex128:
		return tr.Ztrbs2d(ctx, scope, top, uplo, diag, m, n, a, lda)
	}
	panic(panicUnreachableElement)
}

func routeTrbr2d[T Element](tr Transport, ctx grid.Context, scope, top, uplo, diag string, m, n int, a []T, lda, rsrc, csrc int) error {
	switch a := any(a).(type) {
	case []int32:
		return tr.Itrbr2d(ctx, scope, top, uplo, diag, m, n, a, lda, rsrc, csrc)
	case []float32:
		return tr.Strbr2d(ctx, scope, top, uplo, diag, m, n, a, lda, rsrc, csrc)
	case []float64:
		return tr.Dtrbr2d(ctx, scope, top, uplo, diag, m, n, a, lda, rsrc, csrc)
	case []complex64:
		return tr.Ctrbr2d(ctx, scope, top, uplo, diag, m, n, a, lda, rsrc, csrc)
	case []complex128:
		return tr.Ztrbr2d(ctx, scope, top, uplo, diag, m, n, a, lda, rsrc, csrc)
	}
	panic(panicUnreachableElement)
}
