// SPDX-License-Identifier: MIT

package blacs_test

import (
	"reflect"

	"github.com/katalvlaran/blacs2d/blacs"
	"github.com/katalvlaran/blacs2d/grid"
)

// call is one transport invocation as seen at the boundary.
type call struct {
	method     string
	ctx        grid.Context
	scope, top string
	uplo, diag string
	m, n, lda  int
	rsrc, csrc int
	ptr        uintptr // address of the first element handed over
	length     int     // len of the slice handed over
}

// recorder is a blacs.Transport that records calls and returns err.
type recorder struct {
	calls []call
	err   error
}

var _ blacs.Transport = (*recorder)(nil)

// last returns the most recent call; the zero call when nothing was recorded.
func (r *recorder) last() call {
	if len(r.calls) == 0 {
		return call{}
	}

	return r.calls[len(r.calls)-1]
}

func (r *recorder) ge(method string, ctx grid.Context, scope, top string, m, n int, a any, lda, rsrc, csrc int) error {
	v := reflect.ValueOf(a)
	r.calls = append(r.calls, call{
		method: method, ctx: ctx, scope: scope, top: top,
		m: m, n: n, lda: lda, rsrc: rsrc, csrc: csrc,
		ptr: v.Pointer(), length: v.Len(),
	})

	return r.err
}

func (r *recorder) tr(method string, ctx grid.Context, scope, top, uplo, diag string, m, n int, a any, lda, rsrc, csrc int) error {
	err := r.ge(method, ctx, scope, top, m, n, a, lda, rsrc, csrc)
	r.calls[len(r.calls)-1].uplo = uplo
	r.calls[len(r.calls)-1].diag = diag

	return err
}

// noSource fills rsrc/csrc for send calls, which carry no source.
const noSource = -2

func (r *recorder) Igebs2d(ctx grid.Context, scope, top string, m, n int, a []int32, lda int) error {
	return r.ge("Igebs2d", ctx, scope, top, m, n, a, lda, noSource, noSource)
}

func (r *recorder) Sgebs2d(ctx grid.Context, scope, top string, m, n int, a []float32, lda int) error {
	return r.ge("Sgebs2d", ctx, scope, top, m, n, a, lda, noSource, noSource)
}

func (r *recorder) Dgebs2d(ctx grid.Context, scope, top string, m, n int, a []float64, lda int) error {
	return r.ge("Dgebs2d", ctx, scope, top, m, n, a, lda, noSource, noSource)
}

func (r *recorder) Cgebs2d(ctx grid.Context, scope, top string, m, n int, a []complex64, lda int) error {
	return r.ge("Cgebs2d", ctx, scope, top, m, n, a, lda, noSource, noSource)
}

func (r *recorder) Zgebs2d(ctx grid.Context, scope, top string, m, n int, a []complex128, lda int) error {
	return r.ge("Zgebs2d", ctx, scope, top, m, n, a, lda, noSource, noSource)
}

func (r *recorder) Igebr2d(ctx grid.Context, scope, top string, m, n int, a []int32, lda, rsrc, csrc int) error {
	return r.ge("Igebr2d", ctx, scope, top, m, n, a, lda, rsrc, csrc)
}

func (r *recorder) Sgebr2d(ctx grid.Context, scope, top string, m, n int, a []float32, lda, rsrc, csrc int) error {
	return r.ge("Sgebr2d", ctx, scope, top, m, n, a, lda, rsrc, csrc)
}

func (r *recorder) Dgebr2d(ctx grid.Context, scope, top string, m, n int, a []float64, lda, rsrc, csrc int) error {
	return r.ge("Dgebr2d", ctx, scope, top, m, n, a, lda, rsrc, csrc)
}

func (r *recorder) Cgebr2d(ctx grid.Context, scope, top string, m, n int, a []complex64, lda, rsrc, csrc int) error {
	return r.ge("Cgebr2d", ctx, scope, top, m, n, a, lda, rsrc, csrc)
}

func (r *recorder) Zgebr2d(ctx grid.Context, scope, top string, m, n int, a []complex128, lda, rsrc, csrc int) error {
	return r.ge("Zgebr2d", ctx, scope, top, m, n, a, lda, rsrc, csrc)
}

func (r *recorder) Itrbs2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []int32, lda int) error {
	return r.tr("Itrbs2d", ctx, scope, top, uplo, diag, m, n, a, lda, noSource, noSource)
}

func (r *recorder) Strbs2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []float32, lda int) error {
	return r.tr("Strbs2d", ctx, scope, top, uplo, diag, m, n, a, lda, noSource, noSource)
}

func (r *recorder) Dtrbs2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []float64, lda int) error {
	return r.tr("Dtrbs2d", ctx, scope, top, uplo, diag, m, n, a, lda, noSource, noSource)
}

func (r *recorder) Ctrbs2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []complex64, lda int) error {
	return r.tr("Ctrbs2d", ctx, scope, top, uplo, diag, m, n, a, lda, noSource, noSource)
}

func (r *recorder) Ztrbs2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []complex128, lda int) error {
	return r.tr("Ztrbs2d", ctx, scope, top, uplo, diag, m, n, a, lda, noSource, noSource)
}

func (r *recorder) Itrbr2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []int32, lda, rsrc, csrc int) error {
	return r.tr("Itrbr2d", ctx, scope, top, uplo, diag, m, n, a, lda, rsrc, csrc)
}

func (r *recorder) Strbr2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []float32, lda, rsrc, csrc int) error {
	return r.tr("Strbr2d", ctx, scope, top, uplo, diag, m, n, a, lda, rsrc, csrc)
}

func (r *recorder) Dtrbr2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []float64, lda, rsrc, csrc int) error {
	return r.tr("Dtrbr2d", ctx, scope, top, uplo, diag, m, n, a, lda, rsrc, csrc)
}

func (r *recorder) Ctrbr2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []complex64, lda, rsrc, csrc int) error {
	return r.tr("Ctrbr2d", ctx, scope, top, uplo, diag, m, n, a, lda, rsrc, csrc)
}

func (r *recorder) Ztrbr2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []complex128, lda, rsrc, csrc int) error {
	return r.tr("Ztrbr2d", ctx, scope, top, uplo, diag, m, n, a, lda, rsrc, csrc)
}
