// SPDX-License-Identifier: MIT

package fabric

import (
	"github.com/katalvlaran/blacs2d/blacs"
	"github.com/katalvlaran/blacs2d/grid"
)

var _ blacs.Transport = (*Endpoint)(nil)

// Endpoint is one process of a Fabric. It implements blacs.Transport for
// its own grid position and must be used from a single goroutine.
type Endpoint struct {
	f    *Fabric
	g    *grid.Grid
	rank int
}

// Grid returns the process grid as seen from this endpoint.
func (e *Endpoint) Grid() *grid.Grid { return e.g }

// Rank returns the row-major rank of this endpoint.
func (e *Endpoint) Rank() int { return e.rank }

// Igebs2d implements blacs.Transport for int32 general sends.
func (e *Endpoint) Igebs2d(ctx grid.Context, scope, top string, m, n int, a []int32, lda int) error {
	return send(e, header{op: "Igebs2d", kind: kindGeneral, ctx: ctx, scope: scope, top: top, m: m, n: n, lda: lda}, a)
}

// Igebr2d implements blacs.Transport for int32 general receives.
func (e *Endpoint) Igebr2d(ctx grid.Context, scope, top string, m, n int, a []int32, lda, rsrc, csrc int) error {
	return recv(e, header{op: "Igebr2d", kind: kindGeneral, ctx: ctx, scope: scope, top: top, m: m, n: n, lda: lda}, a, rsrc, csrc)
}

// Itrbs2d implements blacs.Transport for int32 triangular sends.
func (e *Endpoint) Itrbs2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []int32, lda int) error {
	return send(e, header{op: "Itrbs2d", kind: kindTriangular, ctx: ctx, scope: scope, top: top, uplo: uplo, diag: diag, m: m, n: n, lda: lda}, a)
}

// Itrbr2d implements blacs.Transport for int32 triangular receives.
func (e *Endpoint) Itrbr2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []int32, lda, rsrc, csrc int) error {
	return recv(e, header{op: "Itrbr2d", kind: kindTriangular, ctx: ctx, scope: scope, top: top, uplo: uplo, diag: diag, m: m, n: n, lda: lda}, a, rsrc, csrc)
}

// Sgebs2d implements blacs.Transport for float32 general sends.
func (e *Endpoint) Sgebs2d(ctx grid.Context, scope, top string, m, n int, a []float32, lda int) error {
	return send(e, header{op: "Sgebs2d", kind: kindGeneral, ctx: ctx, scope: scope, top: top, m: m, n: n, lda: lda}, a)
}

// Sgebr2d implements blacs.Transport for float32 general receives.
func (e *Endpoint) Sgebr2d(ctx grid.Context, scope, top string, m, n int, a []float32, lda, rsrc, csrc int) error {
	return recv(e, header{op: "Sgebr2d", kind: kindGeneral, ctx: ctx, scope: scope, top: top, m: m, n: n, lda: lda}, a, rsrc, csrc)
}

// Strbs2d implements blacs.Transport for float32 triangular sends.
func (e *Endpoint) Strbs2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []float32, lda int) error {
	return send(e, header{op: "Strbs2d", kind: kindTriangular, ctx: ctx, scope: scope, top: top, uplo: uplo, diag: diag, m: m, n: n, lda: lda}, a)
}

// Strbr2d implements blacs.Transport for float32 triangular receives.
func (e *Endpoint) Strbr2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []float32, lda, rsrc, csrc int) error {
	return recv(e, header{op: "Strbr2d", kind: kindTriangular, ctx: ctx, scope: scope, top: top, uplo: uplo, diag: diag, m: m, n: n, lda: lda}, a, rsrc, csrc)
}

// Dgebs2d implements blacs.Transport for float64 general sends.
func (e *Endpoint) Dgebs2d(ctx grid.Context, scope, top string, m, n int, a []float64, lda int) error {
	return send(e, header{op: "Dgebs2d", kind: kindGeneral, ctx: ctx, scope: scope, top: top, m: m, n: n, lda: lda}, a)
}

// Dgebr2d implements blacs.Transport for float64 general receives.
func (e *Endpoint) Dgebr2d(ctx grid.Context, scope, top string, m, n int, a []float64, lda, rsrc, csrc int) error {
	return recv(e, header{op: "Dgebr2d", kind: kindGeneral, ctx: ctx, scope: scope, top: top, m: m, n: n, lda: lda}, a, rsrc, csrc)
}

// Dtrbs2d implements blacs.Transport for float64 triangular sends.
func (e *Endpoint) Dtrbs2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []float64, lda int) error {
	return send(e, header{op: "Dtrbs2d", kind: kindTriangular, ctx: ctx, scope: scope, top: top, uplo: uplo, diag: diag, m: m, n: n, lda: lda}, a)
}

// Dtrbr2d implements blacs.Transport for float64 triangular receives.
func (e *Endpoint) Dtrbr2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []float64, lda, rsrc, csrc int) error {
	return recv(e, header{op: "Dtrbr2d", kind: kindTriangular, ctx: ctx, scope: scope, top: top, uplo: uplo, diag: diag, m: m, n: n, lda: lda}, a, rsrc, csrc)
}

// Cgebs2d implements blacs.Transport for complex64 general sends.
func (e *Endpoint) Cgebs2d(ctx grid.Context, scope, top string, m, n int, a []complex64, lda int) error {
	return send(e, header{op: "Cgebs2d", kind: kindGeneral, ctx: ctx, scope: scope, top: top, m: m, n: n, lda: lda}, a)
}

// Cgebr2d implements blacs.Transport for complex64 general receives.
func (e *Endpoint) Cgebr2d(ctx grid.Context, scope, top string, m, n int, a []complex64, lda, rsrc, csrc int) error {
	return recv(e, header{op: "Cgebr2d", kind: kindGeneral, ctx: ctx, scope: scope, top: top, m: m, n: n, lda: lda}, a, rsrc, csrc)
}

// Ctrbs2d implements blacs.Transport for complex64 triangular sends.
func (e *Endpoint) Ctrbs2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []complex64, lda int) error {
	return send(e, header{op: "Ctrbs2d", kind: kindTriangular, ctx: ctx, scope: scope, top: top, uplo: uplo, diag: diag, m: m, n: n, lda: lda}, a)
}

// Ctrbr2d implements blacs.Transport for complex64 triangular receives.
func (e *Endpoint) Ctrbr2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []complex64, lda, rsrc, csrc int) error {
	return recv(e, header{op: "Ctrbr2d", kind: kindTriangular, ctx: ctx, scope: scope, top: top, uplo: uplo, diag: diag, m: m, n: n, lda: lda}, a, rsrc, csrc)
}

// Zgebs2d implements blacs.Transport for complex128 general sends.
func (e *Endpoint) Zgebs2d(ctx grid.Context, scope, top string, m, n int, a []complex128, lda int) error {
	return send(e, header{op: "Zgebs2d", kind: kindGeneral, ctx: ctx, scope: scope, top: top, m: m, n: n, lda: lda}, a)
}

// Zgebr2d implements blacs.Transport for complex128 general receives.
func (e *Endpoint) Zgebr2d(ctx grid.Context, scope, top string, m, n int, a []complex128, lda, rsrc, csrc int) error {
	return recv(e, header{op: "Zgebr2d", kind: kindGeneral, ctx: ctx, scope: scope, top: top, m: m, n: n, lda: lda}, a, rsrc, csrc)
}

// Ztrbs2d implements blacs.Transport for complex128 triangular sends.
func (e *Endpoint) Ztrbs2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []complex128, lda int) error {
	return send(e, header{op: "Ztrbs2d", kind: kindTriangular, ctx: ctx, scope: scope, top: top, uplo: uplo, diag: diag, m: m, n: n, lda: lda}, a)
}

// Ztrbr2d implements blacs.Transport for complex128 triangular receives.
func (e *Endpoint) Ztrbr2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []complex128, lda, rsrc, csrc int) error {
	return recv(e, header{op: "Ztrbr2d", kind: kindTriangular, ctx: ctx, scope: scope, top: top, uplo: uplo, diag: diag, m: m, n: n, lda: lda}, a, rsrc, csrc)
}
