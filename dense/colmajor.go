// SPDX-License-Identifier: MIT

package dense

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/blacs2d/blacs"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// ColMajor is a rows×cols column-major buffer.
//   - ld is the column stride (>= max(1, rows)).
//   - data starts at element (0,0); len(data) >= ld*(cols-1) + rows.
type ColMajor[T blacs.Element] struct {
	rows, cols int // logical shape
	ld         int // leading dimension
	data       []T // storage, possibly shared with a parent
}

// Compile-time capability checks.
var (
	_ blacs.SizedBuffer[float64]    = (*ColMajor[float64])(nil)
	_ blacs.SizedBuffer[complex128] = (*ColMajor[complex128])(nil)
	_ fmt.Stringer                  = (*ColMajor[int32])(nil)
)

// minLen is the storage a rows×cols region with stride ld addresses.
func minLen(rows, cols, ld int) int {
	if rows == 0 || cols == 0 {
		return 0
	}

	return ld*(cols-1) + rows
}

// minLD is max(1, rows).
func minLD(rows int) int {
	if rows < 1 {
		return 1
	}

	return rows
}

// New allocates a zeroed rows×cols buffer with ld = max(1, rows).
// Zero rows or cols are legal (an empty region); negatives return ErrBadShape.
// Complexity: O(rows*cols).
func New[T blacs.Element](rows, cols int) (*ColMajor[T], error) {
	return NewStrided[T](rows, cols, minLD(rows))
}

// NewStrided allocates a zeroed rows×cols buffer with column stride ld.
// The ld-rows padding rows of each column are allocated but not part of the shape.
// Returns ErrBadShape on negative dims, ErrStride when ld < max(1, rows).
func NewStrided[T blacs.Element](rows, cols, ld int) (*ColMajor[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("dense.NewStrided(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if ld < minLD(rows) {
		return nil, fmt.Errorf("dense.NewStrided: ld=%d rows=%d: %w", ld, rows, ErrStride)
	}

	return &ColMajor[T]{rows: rows, cols: cols, ld: ld, data: make([]T, ld*cols)}, nil
}

// FromSlice wraps data (no copy) as a rows×cols buffer with stride ld.
// Writes through the buffer are visible in data.
func FromSlice[T blacs.Element](rows, cols, ld int, data []T) (*ColMajor[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("dense.FromSlice(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if ld < minLD(rows) {
		return nil, fmt.Errorf("dense.FromSlice: ld=%d rows=%d: %w", ld, rows, ErrStride)
	}
	if need := minLen(rows, cols, ld); len(data) < need {
		return nil, fmt.Errorf("dense.FromSlice: len=%d need=%d: %w", len(data), need, ErrShortData)
	}

	return &ColMajor[T]{rows: rows, cols: cols, ld: ld, data: data}, nil
}

// Identity returns the n×n identity.
func Identity[T blacs.Element](n int) (*ColMajor[T], error) {
	m, err := New[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i+i*m.ld] = T(1)
	}

	return m, nil
}

// Rows returns the row count.
func (m *ColMajor[T]) Rows() int { return m.rows }

// Cols returns the column count.
func (m *ColMajor[T]) Cols() int { return m.cols }

// Stride returns the leading dimension.
func (m *ColMajor[T]) Stride() int { return m.ld }

// Data returns the backing storage starting at (0,0). Implements blacs.Buffer.
func (m *ColMajor[T]) Data() []T { return m.data }

// Len returns len(Data()), padding rows included. Implements blacs.SizedBuffer.
func (m *ColMajor[T]) Len() int { return len(m.data) }

// indexOf returns the column-major offset of (row, col) or ErrOutOfRange.
func (m *ColMajor[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, ErrOutOfRange
	}

	return row + col*m.ld, nil
}

// At returns element (row, col).
func (m *ColMajor[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, colMajorErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
func (m *ColMajor[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return colMajorErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// View returns the h×w window at (r0, c0) sharing m's storage and stride.
// Returns ErrBadShape when the window leaves m.
// Complexity: O(1).
func (m *ColMajor[T]) View(r0, c0, h, w int) (*ColMajor[T], error) {
	if r0 < 0 || c0 < 0 || h < 0 || w < 0 || r0+h > m.rows || c0+w > m.cols {
		return nil, fmt.Errorf("ColMajor.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, h, w, ErrBadShape)
	}
	if h == 0 || w == 0 {
		return &ColMajor[T]{rows: h, cols: w, ld: m.ld, data: m.data[:0]}, nil
	}
	start := r0 + c0*m.ld

	return &ColMajor[T]{rows: h, cols: w, ld: m.ld, data: m.data[start : start+minLen(h, w, m.ld)]}, nil
}

// Clone returns a compact deep copy (ld = max(1, rows)).
// Complexity: O(rows*cols).
func (m *ColMajor[T]) Clone() *ColMajor[T] {
	out := &ColMajor[T]{rows: m.rows, cols: m.cols, ld: minLD(m.rows), data: make([]T, minLD(m.rows)*m.cols)}
	if m.rows == 0 {
		return out
	}
	for j := 0; j < m.cols; j++ {
		copy(out.data[j*out.ld:j*out.ld+m.rows], m.data[j*m.ld:j*m.ld+m.rows])
	}

	return out
}

// Equal reports whether o has the same shape and elements. Strides may differ.
func (m *ColMajor[T]) Equal(o *ColMajor[T]) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for j := 0; j < m.cols; j++ {
		for i := 0; i < m.rows; i++ {
			if m.data[i+j*m.ld] != o.data[i+j*o.ld] {
				return false
			}
		}
	}

	return true
}

// Do visits each element in column-major order; f returning false stops the walk.
func (m *ColMajor[T]) Do(f func(i, j int, v T) bool) {
	for j := 0; j < m.cols; j++ {
		for i := 0; i < m.rows; i++ {
			if !f(i, j, m.data[i+j*m.ld]) {
				return
			}
		}
	}
}

// String dumps the buffer row by row, "[a, b]\n" per row.
func (m *ColMajor[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.cols; j++ {
			fmt.Fprintf(&b, "%v", m.data[i+j*m.ld])
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
