// SPDX-License-Identifier: MIT

//go:build !blacs

package cblacs

import "github.com/katalvlaran/blacs2d/grid"

// ProcessInfo returns ErrNotLinked.
func ProcessInfo() (rank, nprocs int, err error) { return 0, 0, ErrNotLinked }

// GridInit checks its arguments and returns ErrNotLinked.
func GridInit(order Order, rows, cols int) (*grid.Grid, error) {
	if err := checkGrid(order, rows, cols); err != nil {
		return nil, err
	}

	return nil, ErrNotLinked
}

// GridExit returns ErrNotLinked.
func GridExit(*grid.Grid) error { return ErrNotLinked }

// Exit returns ErrNotLinked.
func Exit() error { return ErrNotLinked }

// stubSend and stubRecv keep argument faults ahead of ErrNotLinked, as in
// the linked build.
func stubSend(op string, m, n, lda, length int) error {
	if err := checkRegion(op, m, n, lda, length); err != nil {
		return err
	}

	return ErrNotLinked
}

func stubRecv(op string, m, n, lda, length, rsrc, csrc int) error {
	if err := checkRegion(op, m, n, lda, length); err != nil {
		return err
	}
	if err := checkSource(op, rsrc, csrc); err != nil {
		return err
	}

	return ErrNotLinked
}

// Igebs2d implements blacs.Transport for int32 general sends. It returns
// ErrNotLinked once the arguments pass.
func (Native) Igebs2d(_ grid.Context, _, _ string, m, n int, a []int32, lda int) error {
	return stubSend("Igebs2d", m, n, lda, len(a))
}

// Igebr2d implements blacs.Transport for int32 general receives. It returns
// ErrNotLinked once the arguments pass.
func (Native) Igebr2d(_ grid.Context, _, _ string, m, n int, a []int32, lda, rsrc, csrc int) error {
	return stubRecv("Igebr2d", m, n, lda, len(a), rsrc, csrc)
}

// Itrbs2d implements blacs.Transport for int32 triangular sends. It returns
// ErrNotLinked once the arguments pass.
func (Native) Itrbs2d(_ grid.Context, _, _, _, _ string, m, n int, a []int32, lda int) error {
	return stubSend("Itrbs2d", m, n, lda, len(a))
}

// Itrbr2d implements blacs.Transport for int32 triangular receives. It returns
// ErrNotLinked once the arguments pass.
func (Native) Itrbr2d(_ grid.Context, _, _, _, _ string, m, n int, a []int32, lda, rsrc, csrc int) error {
	return stubRecv("Itrbr2d", m, n, lda, len(a), rsrc, csrc)
}

// Sgebs2d implements blacs.Transport for float32 general sends. It returns
// ErrNotLinked once the arguments pass.
func (Native) Sgebs2d(_ grid.Context, _, _ string, m, n int, a []float32, lda int) error {
	return stubSend("Sgebs2d", m, n, lda, len(a))
}

// Sgebr2d implements blacs.Transport for float32 general receives. It returns
// ErrNotLinked once the arguments pass.
func (Native) Sgebr2d(_ grid.Context, _, _ string, m, n int, a []float32, lda, rsrc, csrc int) error {
	return stubRecv("Sgebr2d", m, n, lda, len(a), rsrc, csrc)
}

// Strbs2d implements blacs.Transport for float32 triangular sends. It returns
// ErrNotLinked once the arguments pass.
func (Native) Strbs2d(_ grid.Context, _, _, _, _ string, m, n int, a []float32, lda int) error {
	return stubSend("Strbs2d", m, n, lda, len(a))
}

// Strbr2d implements blacs.Transport for float32 triangular receives. It returns
// ErrNotLinked once the arguments pass.
func (Native) Strbr2d(_ grid.Context, _, _, _, _ string, m, n int, a []float32, lda, rsrc, csrc int) error {
	return stubRecv("Strbr2d", m, n, lda, len(a), rsrc, csrc)
}

// Dgebs2d implements blacs.Transport for float64 general sends. It returns
// ErrNotLinked once the arguments pass.
func (Native) Dgebs2d(_ grid.Context, _, _ string, m, n int, a []float64, lda int) error {
	return stubSend("Dgebs2d", m, n, lda, len(a))
}

// Dgebr2d implements blacs.Transport for float64 general receives. It returns
// ErrNotLinked once the arguments pass.
func (Native) Dgebr2d(_ grid.Context, _, _ string, m, n int, a []float64, lda, rsrc, csrc int) error {
	return stubRecv("Dgebr2d", m, n, lda, len(a), rsrc, csrc)
}

// Dtrbs2d implements blacs.Transport for float64 triangular sends. It returns
// ErrNotLinked once the arguments pass.
func (Native) Dtrbs2d(_ grid.Context, _, _, _, _ string, m, n int, a []float64, lda int) error {
	return stubSend("Dtrbs2d", m, n, lda, len(a))
}

// Dtrbr2d implements blacs.Transport for float64 triangular receives. It returns
// ErrNotLinked once the arguments pass.
func (Native) Dtrbr2d(_ grid.Context, _, _, _, _ string, m, n int, a []float64, lda, rsrc, csrc int) error {
	return stubRecv("Dtrbr2d", m, n, lda, len(a), rsrc, csrc)
}

// Cgebs2d implements blacs.Transport for complex64 general sends. It returns
// ErrNotLinked once the arguments pass.
func (Native) Cgebs2d(_ grid.Context, _, _ string, m, n int, a []complex64, lda int) error {
	return stubSend("Cgebs2d", m, n, lda, len(a))
}

// Cgebr2d implements blacs.Transport for complex64 general receives. It returns
// ErrNotLinked once the arguments pass.
func (Native) Cgebr2d(_ grid.Context, _, _ string, m, n int, a []complex64, lda, rsrc, csrc int) error {
	return stubRecv("Cgebr2d", m, n, lda, len(a), rsrc, csrc)
}

// Ctrbs2d implements blacs.Transport for complex64 triangular sends. It returns
// ErrNotLinked once the arguments pass.
func (Native) Ctrbs2d(_ grid.Context, _, _, _, _ string, m, n int, a []complex64, lda int) error {
	return stubSend("Ctrbs2d", m, n, lda, len(a))
}

// Ctrbr2d implements blacs.Transport for complex64 triangular receives. It returns
// ErrNotLinked once the arguments pass.
func (Native) Ctrbr2d(_ grid.Context, _, _, _, _ string, m, n int, a []complex64, lda, rsrc, csrc int) error {
	return stubRecv("Ctrbr2d", m, n, lda, len(a), rsrc, csrc)
}

// Zgebs2d implements blacs.Transport for complex128 general sends. It returns
// ErrNotLinked once the arguments pass.
func (Native) Zgebs2d(_ grid.Context, _, _ string, m, n int, a []complex128, lda int) error {
	return stubSend("Zgebs2d", m, n, lda, len(a))
}

// Zgebr2d implements blacs.Transport for complex128 general receives. It returns
// ErrNotLinked once the arguments pass.
func (Native) Zgebr2d(_ grid.Context, _, _ string, m, n int, a []complex128, lda, rsrc, csrc int) error {
	return stubRecv("Zgebr2d", m, n, lda, len(a), rsrc, csrc)
}

// Ztrbs2d implements blacs.Transport for complex128 triangular sends. It returns
// ErrNotLinked once the arguments pass.
func (Native) Ztrbs2d(_ grid.Context, _, _, _, _ string, m, n int, a []complex128, lda int) error {
	return stubSend("Ztrbs2d", m, n, lda, len(a))
}

// Ztrbr2d implements blacs.Transport for complex128 triangular receives. It returns
// ErrNotLinked once the arguments pass.
func (Native) Ztrbr2d(_ grid.Context, _, _, _, _ string, m, n int, a []complex128, lda, rsrc, csrc int) error {
	return stubRecv("Ztrbr2d", m, n, lda, len(a), rsrc, csrc)
}
