// SPDX-License-Identifier: MIT

package dense

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match with errors.Is; methods wrap them with context.
var (
	// ErrBadShape indicates negative dimensions or a window outside its parent.
	ErrBadShape = errors.New("dense: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the buffer.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrStride indicates a leading dimension smaller than max(1, rows).
	ErrStride = errors.New("dense: leading dimension too small")

	// ErrShortData indicates backing storage shorter than the shape requires.
	ErrShortData = errors.New("dense: backing slice too short")
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxView = "View"
)

// colMajorErrorf wraps err with the method tag and coordinates.
func colMajorErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("ColMajor.%s(%d,%d): %w", method, row, col, err)
}
