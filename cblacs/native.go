// SPDX-License-Identifier: MIT

//go:build blacs

package cblacs

/*
#include <stdlib.h>

void Cblacs_pinfo(int *mypnum, int *nprocs);
void Cblacs_get(int icontxt, int what, int *val);
void Cblacs_gridinit(int *icontxt, char *order, int nprow, int npcol);
void Cblacs_gridinfo(int icontxt, int *nprow, int *npcol, int *myrow, int *mycol);
void Cblacs_gridexit(int icontxt);
void Cblacs_exit(int notDone);

void Cigebs2d(int icontxt, char *scope, char *top, int m, int n, int *A, int lda);
void Cigebr2d(int icontxt, char *scope, char *top, int m, int n, int *A, int lda, int rsrc, int csrc);
void Citrbs2d(int icontxt, char *scope, char *top, char *uplo, char *diag, int m, int n, int *A, int lda);
void Citrbr2d(int icontxt, char *scope, char *top, char *uplo, char *diag, int m, int n, int *A, int lda, int rsrc, int csrc);

void Csgebs2d(int icontxt, char *scope, char *top, int m, int n, float *A, int lda);
void Csgebr2d(int icontxt, char *scope, char *top, int m, int n, float *A, int lda, int rsrc, int csrc);
void Cstrbs2d(int icontxt, char *scope, char *top, char *uplo, char *diag, int m, int n, float *A, int lda);
void Cstrbr2d(int icontxt, char *scope, char *top, char *uplo, char *diag, int m, int n, float *A, int lda, int rsrc, int csrc);

void Cdgebs2d(int icontxt, char *scope, char *top, int m, int n, double *A, int lda);
void Cdgebr2d(int icontxt, char *scope, char *top, int m, int n, double *A, int lda, int rsrc, int csrc);
void Cdtrbs2d(int icontxt, char *scope, char *top, char *uplo, char *diag, int m, int n, double *A, int lda);
void Cdtrbr2d(int icontxt, char *scope, char *top, char *uplo, char *diag, int m, int n, double *A, int lda, int rsrc, int csrc);

void Ccgebs2d(int icontxt, char *scope, char *top, int m, int n, void *A, int lda);
void Ccgebr2d(int icontxt, char *scope, char *top, int m, int n, void *A, int lda, int rsrc, int csrc);
void Cctrbs2d(int icontxt, char *scope, char *top, char *uplo, char *diag, int m, int n, void *A, int lda);
void Cctrbr2d(int icontxt, char *scope, char *top, char *uplo, char *diag, int m, int n, void *A, int lda, int rsrc, int csrc);

void Czgebs2d(int icontxt, char *scope, char *top, int m, int n, void *A, int lda);
void Czgebr2d(int icontxt, char *scope, char *top, int m, int n, void *A, int lda, int rsrc, int csrc);
void Cztrbs2d(int icontxt, char *scope, char *top, char *uplo, char *diag, int m, int n, void *A, int lda);
void Cztrbr2d(int icontxt, char *scope, char *top, char *uplo, char *diag, int m, int n, void *A, int lda, int rsrc, int csrc);
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/blacs2d/grid"
)

// cstrings holds C copies of control codes for one call.
type cstrings []*C.char

func cstr(ss ...string) cstrings {
	out := make(cstrings, len(ss))
	for i, s := range ss {
		out[i] = C.CString(s)
	}

	return out
}

func (cs cstrings) free() {
	for _, p := range cs {
		C.free(unsafe.Pointer(p))
	}
}

// ProcessInfo returns this process's BLACS number and the process count.
func ProcessInfo() (rank, nprocs int, err error) {
	var me, np C.int
	C.Cblacs_pinfo(&me, &np)

	return int(me), int(np), nil
}

// GridInit builds a rows×cols grid on the default system context.
// Returns ErrNotInGrid on processes the grid leaves out.
func GridInit(order Order, rows, cols int) (*grid.Grid, error) {
	if err := checkGrid(order, rows, cols); err != nil {
		return nil, err
	}
	var ctx C.int
	C.Cblacs_get(-1, 0, &ctx)
	o := cstr(string(order))
	defer o.free()
	C.Cblacs_gridinit(&ctx, o[0], C.int(rows), C.int(cols))

	var nr, nc, mr, mc C.int
	C.Cblacs_gridinfo(ctx, &nr, &nc, &mr, &mc)
	if mr < 0 || mc < 0 {
		return nil, fmt.Errorf("cblacs.GridInit(%d,%d): %w", rows, cols, ErrNotInGrid)
	}

	return grid.New(grid.Context(ctx), int(nr), int(nc), int(mr), int(mc))
}

// GridExit releases the context of g.
func GridExit(g *grid.Grid) error {
	C.Cblacs_gridexit(C.int(g.Context()))

	return nil
}

// Exit shuts BLACS down together with the message-passing layer beneath it.
func Exit() error {
	C.Cblacs_exit(0)

	return nil
}

// Igebs2d implements blacs.Transport for int32 general sends through Cigebs2d.
func (Native) Igebs2d(ctx grid.Context, scope, top string, m, n int, a []int32, lda int) error {
	if err := checkRegion("Igebs2d", m, n, lda, len(a)); err != nil {
		return err
	}
	s := cstr(scope, top)
	defer s.free()
	C.Cigebs2d(C.int(ctx), s[0], s[1], C.int(m), C.int(n), (*C.int)(unsafe.Pointer(unsafe.SliceData(a))), C.int(lda))

	return nil
}

// Igebr2d implements blacs.Transport for int32 general receives through Cigebr2d.
func (Native) Igebr2d(ctx grid.Context, scope, top string, m, n int, a []int32, lda, rsrc, csrc int) error {
	if err := checkRegion("Igebr2d", m, n, lda, len(a)); err != nil {
		return err
	}
	if err := checkSource("Igebr2d", rsrc, csrc); err != nil {
		return err
	}
	s := cstr(scope, top)
	defer s.free()
	C.Cigebr2d(C.int(ctx), s[0], s[1], C.int(m), C.int(n), (*C.int)(unsafe.Pointer(unsafe.SliceData(a))), C.int(lda), C.int(rsrc), C.int(csrc))

	return nil
}

// Itrbs2d implements blacs.Transport for int32 triangular sends through Citrbs2d.
func (Native) Itrbs2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []int32, lda int) error {
	if err := checkRegion("Itrbs2d", m, n, lda, len(a)); err != nil {
		return err
	}
	s := cstr(scope, top, uplo, diag)
	defer s.free()
	C.Citrbs2d(C.int(ctx), s[0], s[1], s[2], s[3], C.int(m), C.int(n), (*C.int)(unsafe.Pointer(unsafe.SliceData(a))), C.int(lda))

	return nil
}

// Itrbr2d implements blacs.Transport for int32 triangular receives through Citrbr2d.
func (Native) Itrbr2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []int32, lda, rsrc, csrc int) error {
	if err := checkRegion("Itrbr2d", m, n, lda, len(a)); err != nil {
		return err
	}
	if err := checkSource("Itrbr2d", rsrc, csrc); err != nil {
		return err
	}
	s := cstr(scope, top, uplo, diag)
	defer s.free()
	C.Citrbr2d(C.int(ctx), s[0], s[1], s[2], s[3], C.int(m), C.int(n), (*C.int)(unsafe.Pointer(unsafe.SliceData(a))), C.int(lda), C.int(rsrc), C.int(csrc))

	return nil
}

// Sgebs2d implements blacs.Transport for float32 general sends through Csgebs2d.
func (Native) Sgebs2d(ctx grid.Context, scope, top string, m, n int, a []float32, lda int) error {
	if err := checkRegion("Sgebs2d", m, n, lda, len(a)); err != nil {
		return err
	}
	s := cstr(scope, top)
	defer s.free()
	C.Csgebs2d(C.int(ctx), s[0], s[1], C.int(m), C.int(n), (*C.float)(unsafe.Pointer(unsafe.SliceData(a))), C.int(lda))

	return nil
}

// Sgebr2d implements blacs.Transport for float32 general receives through Csgebr2d.
func (Native) Sgebr2d(ctx grid.Context, scope, top string, m, n int, a []float32, lda, rsrc, csrc int) error {
	if err := checkRegion("Sgebr2d", m, n, lda, len(a)); err != nil {
		return err
	}
	if err := checkSource("Sgebr2d", rsrc, csrc); err != nil {
		return err
	}
	s := cstr(scope, top)
	defer s.free()
	C.Csgebr2d(C.int(ctx), s[0], s[1], C.int(m), C.int(n), (*C.float)(unsafe.Pointer(unsafe.SliceData(a))), C.int(lda), C.int(rsrc), C.int(csrc))

	return nil
}

// Strbs2d implements blacs.Transport for float32 triangular sends through Cstrbs2d.
func (Native) Strbs2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []float32, lda int) error {
	if err := checkRegion("Strbs2d", m, n, lda, len(a)); err != nil {
		return err
	}
	s := cstr(scope, top, uplo, diag)
	defer s.free()
	C.Cstrbs2d(C.int(ctx), s[0], s[1], s[2], s[3], C.int(m), C.int(n), (*C.float)(unsafe.Pointer(unsafe.SliceData(a))), C.int(lda))

	return nil
}

// Strbr2d implements blacs.Transport for float32 triangular receives through Cstrbr2d.
func (Native) Strbr2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []float32, lda, rsrc, csrc int) error {
	if err := checkRegion("Strbr2d", m, n, lda, len(a)); err != nil {
		return err
	}
	if err := checkSource("Strbr2d", rsrc, csrc); err != nil {
		return err
	}
	s := cstr(scope, top, uplo, diag)
	defer s.free()
	C.Cstrbr2d(C.int(ctx), s[0], s[1], s[2], s[3], C.int(m), C.int(n), (*C.float)(unsafe.Pointer(unsafe.SliceData(a))), C.int(lda), C.int(rsrc), C.int(csrc))

	return nil
}

// Dgebs2d implements blacs.Transport for float64 general sends through Cdgebs2d.
func (Native) Dgebs2d(ctx grid.Context, scope, top string, m, n int, a []float64, lda int) error {
	if err := checkRegion("Dgebs2d", m, n, lda, len(a)); err != nil {
		return err
	}
	s := cstr(scope, top)
	defer s.free()
	C.Cdgebs2d(C.int(ctx), s[0], s[1], C.int(m), C.int(n), (*C.double)(unsafe.Pointer(unsafe.SliceData(a))), C.int(lda))

	return nil
}

// Dgebr2d implements blacs.Transport for float64 general receives through Cdgebr2d.
func (Native) Dgebr2d(ctx grid.Context, scope, top string, m, n int, a []float64, lda, rsrc, csrc int) error {
	if err := checkRegion("Dgebr2d", m, n, lda, len(a)); err != nil {
		return err
	}
	if err := checkSource("Dgebr2d", rsrc, csrc); err != nil {
		return err
	}
	s := cstr(scope, top)
	defer s.free()
	C.Cdgebr2d(C.int(ctx), s[0], s[1], C.int(m), C.int(n), (*C.double)(unsafe.Pointer(unsafe.SliceData(a))), C.int(lda), C.int(rsrc), C.int(csrc))

	return nil
}

// Dtrbs2d implements blacs.Transport for float64 triangular sends through Cdtrbs2d.
func (Native) Dtrbs2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []float64, lda int) error {
	if err := checkRegion("Dtrbs2d", m, n, lda, len(a)); err != nil {
		return err
	}
	s := cstr(scope, top, uplo, diag)
	defer s.free()
	C.Cdtrbs2d(C.int(ctx), s[0], s[1], s[2], s[3], C.int(m), C.int(n), (*C.double)(unsafe.Pointer(unsafe.SliceData(a))), C.int(lda))

	return nil
}

// Dtrbr2d implements blacs.Transport for float64 triangular receives through Cdtrbr2d.
func (Native) Dtrbr2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []float64, lda, rsrc, csrc int) error {
	if err := checkRegion("Dtrbr2d", m, n, lda, len(a)); err != nil {
		return err
	}
	if err := checkSource("Dtrbr2d", rsrc, csrc); err != nil {
		return err
	}
	s := cstr(scope, top, uplo, diag)
	defer s.free()
	C.Cdtrbr2d(C.int(ctx), s[0], s[1], s[2], s[3], C.int(m), C.int(n), (*C.double)(unsafe.Pointer(unsafe.SliceData(a))), C.int(lda), C.int(rsrc), C.int(csrc))

	return nil
}

// Cgebs2d implements blacs.Transport for complex64 general sends through Ccgebs2d.
func (Native) Cgebs2d(ctx grid.Context, scope, top string, m, n int, a []complex64, lda int) error {
	if err := checkRegion("Cgebs2d", m, n, lda, len(a)); err != nil {
		return err
	}
	s := cstr(scope, top)
	defer s.free()
	C.Ccgebs2d(C.int(ctx), s[0], s[1], C.int(m), C.int(n), unsafe.Pointer(unsafe.SliceData(a)), C.int(lda))

	return nil
}

// Cgebr2d implements blacs.Transport for complex64 general receives through Ccgebr2d.
func (Native) Cgebr2d(ctx grid.Context, scope, top string, m, n int, a []complex64, lda, rsrc, csrc int) error {
	if err := checkRegion("Cgebr2d", m, n, lda, len(a)); err != nil {
		return err
	}
	if err := checkSource("Cgebr2d", rsrc, csrc); err != nil {
		return err
	}
	s := cstr(scope, top)
	defer s.free()
	C.Ccgebr2d(C.int(ctx), s[0], s[1], C.int(m), C.int(n), unsafe.Pointer(unsafe.SliceData(a)), C.int(lda), C.int(rsrc), C.int(csrc))

	return nil
}

// Ctrbs2d implements blacs.Transport for complex64 triangular sends through Cctrbs2d.
func (Native) Ctrbs2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []complex64, lda int) error {
	if err := checkRegion("Ctrbs2d", m, n, lda, len(a)); err != nil {
		return err
	}
	s := cstr(scope, top, uplo, diag)
	defer s.free()
	C.Cctrbs2d(C.int(ctx), s[0], s[1], s[2], s[3], C.int(m), C.int(n), unsafe.Pointer(unsafe.SliceData(a)), C.int(lda))

	return nil
}

// Ctrbr2d implements blacs.Transport for complex64 triangular receives through Cctrbr2d.
func (Native) Ctrbr2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []complex64, lda, rsrc, csrc int) error {
	if err := checkRegion("Ctrbr2d", m, n, lda, len(a)); err != nil {
		return err
	}
	if err := checkSource("Ctrbr2d", rsrc, csrc); err != nil {
		return err
	}
	s := cstr(scope, top, uplo, diag)
	defer s.free()
	C.Cctrbr2d(C.int(ctx), s[0], s[1], s[2], s[3], C.int(m), C.int(n), unsafe.Pointer(unsafe.SliceData(a)), C.int(lda), C.int(rsrc), C.int(csrc))

	return nil
}

// Zgebs2d implements blacs.Transport for complex128 general sends through Czgebs2d.
func (Native) Zgebs2d(ctx grid.Context, scope, top string, m, n int, a []complex128, lda int) error {
	if err := checkRegion("Zgebs2d", m, n, lda, len(a)); err != nil {
		return err
	}
	s := cstr(scope, top)
	defer s.free()
	C.Czgebs2d(C.int(ctx), s[0], s[1], C.int(m), C.int(n), unsafe.Pointer(unsafe.SliceData(a)), C.int(lda))

	return nil
}

// Zgebr2d implements blacs.Transport for complex128 general receives through Czgebr2d.
func (Native) Zgebr2d(ctx grid.Context, scope, top string, m, n int, a []complex128, lda, rsrc, csrc int) error {
	if err := checkRegion("Zgebr2d", m, n, lda, len(a)); err != nil {
		return err
	}
	if err := checkSource("Zgebr2d", rsrc, csrc); err != nil {
		return err
	}
	s := cstr(scope, top)
	defer s.free()
	C.Czgebr2d(C.int(ctx), s[0], s[1], C.int(m), C.int(n), unsafe.Pointer(unsafe.SliceData(a)), C.int(lda), C.int(rsrc), C.int(csrc))

	return nil
}

// Ztrbs2d implements blacs.Transport for complex128 triangular sends through Cztrbs2d.
func (Native) Ztrbs2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []complex128, lda int) error {
	if err := checkRegion("Ztrbs2d", m, n, lda, len(a)); err != nil {
		return err
	}
	s := cstr(scope, top, uplo, diag)
	defer s.free()
	C.Cztrbs2d(C.int(ctx), s[0], s[1], s[2], s[3], C.int(m), C.int(n), unsafe.Pointer(unsafe.SliceData(a)), C.int(lda))

	return nil
}

// Ztrbr2d implements blacs.Transport for complex128 triangular receives through Cztrbr2d.
func (Native) Ztrbr2d(ctx grid.Context, scope, top, uplo, diag string, m, n int, a []complex128, lda, rsrc, csrc int) error {
	if err := checkRegion("Ztrbr2d", m, n, lda, len(a)); err != nil {
		return err
	}
	if err := checkSource("Ztrbr2d", rsrc, csrc); err != nil {
		return err
	}
	s := cstr(scope, top, uplo, diag)
	defer s.free()
	C.Cztrbr2d(C.int(ctx), s[0], s[1], s[2], s[3], C.int(m), C.int(n), unsafe.Pointer(unsafe.SliceData(a)), C.int(lda), C.int(rsrc), C.int(csrc))

	return nil
}
