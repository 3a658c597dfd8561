// SPDX-License-Identifier: MIT

package cblacs

import (
	"fmt"

	"github.com/katalvlaran/blacs2d/blacs"
	"github.com/katalvlaran/blacs2d/grid"
	"github.com/katalvlaran/blacs2d/internal/pack"
)

var _ blacs.Transport = Native{}

// Native is the cgo-backed transport. It holds no state; the library keeps
// its own per-context state.
type Native struct{}

// Order is the process numbering used by GridInit.
type Order string

const (
	// OrderRow numbers processes row by row.
	OrderRow Order = "Row"
	// OrderColumn numbers processes column by column.
	OrderColumn Order = "Col"
)

func (o Order) valid() bool { return o == OrderRow || o == OrderColumn }

// checkRegion rejects descriptors that would address memory past a.
func checkRegion(op string, m, n, lda, length int) error {
	if m < 0 || n < 0 || lda < max(1, m) {
		return fmt.Errorf("cblacs.%s: m=%d n=%d lda=%d: %w", op, m, n, lda, ErrDescriptor)
	}
	if need := (pack.Shape{M: m, N: n, LDA: lda}).MinLen(); length < need {
		return fmt.Errorf("cblacs.%s: len=%d need %d: %w", op, length, need, ErrBufferTooShort)
	}

	return nil
}

// checkSource rejects the wildcard source.
func checkSource(op string, rsrc, csrc int) error {
	if rsrc == blacs.AnySource || csrc == blacs.AnySource {
		return fmt.Errorf("cblacs.%s: source (%d,%d): %w", op, rsrc, csrc, ErrSourceRequired)
	}

	return nil
}

// checkGrid rejects GridInit arguments the library would abort on.
func checkGrid(order Order, rows, cols int) error {
	if !order.valid() {
		return fmt.Errorf("cblacs.GridInit: order %q: %w", order, ErrOrder)
	}
	if rows < 1 || cols < 1 {
		return fmt.Errorf("cblacs.GridInit(%d,%d): %w", rows, cols, grid.ErrBadShape)
	}

	return nil
}
