// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Context is the opaque communication context identifier of a grid.
// Its meaning is process-wide and owned by the transport that issued it.
type Context int

// Grid is a read-only view of one 2D process arrangement.
// rows×cols is the grid shape; (myRow, myCol) locates the calling process.
type Grid struct {
	ctx          Context
	rows, cols   int
	myRow, myCol int
}

// New builds a Grid for the process at (myRow, myCol) of a rows×cols grid
// sharing context ctx.
// Returns ErrBadShape if rows<1 or cols<1, ErrOutOfRange if the coordinates
// fall outside the grid.
// Complexity: O(1).
func New(ctx Context, rows, cols, myRow, myCol int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("grid.New(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if myRow < 0 || myRow >= rows || myCol < 0 || myCol >= cols {
		return nil, fmt.Errorf("grid.New: process (%d,%d) in %dx%d: %w", myRow, myCol, rows, cols, ErrOutOfRange)
	}

	return &Grid{ctx: ctx, rows: rows, cols: cols, myRow: myRow, myCol: myCol}, nil
}

// Context returns the communication context identifier.
func (g *Grid) Context() Context { return g.ctx }

// Rows returns the number of process rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of process columns.
func (g *Grid) Cols() int { return g.cols }

// MyRow returns the calling process's row coordinate.
func (g *Grid) MyRow() int { return g.myRow }

// MyCol returns the calling process's column coordinate.
func (g *Grid) MyCol() int { return g.myCol }

// Size returns the number of processes in the grid.
func (g *Grid) Size() int { return g.rows * g.cols }

// Rank returns the calling process's row-major rank.
func (g *Grid) Rank() int { return g.index(g.myRow, g.myCol) }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// RankOf maps (row, col) to its row-major rank.
// Returns ErrOutOfRange if the coordinate is outside the grid.
func (g *Grid) RankOf(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return -1, fmt.Errorf("grid.RankOf(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return g.index(row, col), nil
}

// Coord maps a row-major rank back to (row, col).
// Returns ErrOutOfRange if rank is not in [0, Size()).
func (g *Grid) Coord(rank int) (row, col int, err error) {
	if rank < 0 || rank >= g.Size() {
		return -1, -1, fmt.Errorf("grid.Coord(%d): %w", rank, ErrOutOfRange)
	}

	return rank / g.cols, rank % g.cols, nil
}

// WithProcess returns a copy of g located at another process of the same
// grid and context.
func (g *Grid) WithProcess(row, col int) (*Grid, error) {
	return New(g.ctx, g.rows, g.cols, row, col)
}

// String implements fmt.Stringer.
func (g *Grid) String() string {
	return fmt.Sprintf("grid{ctx=%d %dx%d at (%d,%d)}", g.ctx, g.rows, g.cols, g.myRow, g.myCol)
}

// index is the row-major offset row*cols + col.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}
