// SPDX-License-Identifier: MIT

package grid

import "errors"

// Sentinel errors for grid construction and coordinate lookups.
var (
	// ErrBadShape indicates a grid with fewer than one row or one column.
	ErrBadShape = errors.New("grid: rows and cols must be >= 1")

	// ErrOutOfRange indicates a process coordinate or rank outside the grid.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
)
