// SPDX-License-Identifier: MIT

package pack

// Kind is the region selector.
type Kind uint8

const (
	// General selects the full M×N rectangle.
	General Kind = iota
	// Upper selects the upper trapezoid.
	Upper
	// Lower selects the lower trapezoid.
	Lower
)

// Shape is a region of an M×N column-major buffer with column stride LDA.
// Unit excludes the diagonal; it is ignored for General.
type Shape struct {
	Kind      Kind
	Unit      bool
	M, N, LDA int
}

// rows returns the half-open row range [lo, hi) of column j inside s.
func (s Shape) rows(j int) (lo, hi int) {
	switch s.Kind {
	case Upper:
		hi = j + 1
		if s.Unit {
			hi = j
		}
		if hi > s.M {
			hi = s.M
		}
		return 0, hi
	case Lower:
		lo = j
		if s.Unit {
			lo = j + 1
		}
		if lo > s.M {
			lo = s.M
		}
		return lo, s.M
	default:
		return 0, s.M
	}
}

// Contains reports whether (i, j) belongs to the region.
func (s Shape) Contains(i, j int) bool {
	if i < 0 || j < 0 || i >= s.M || j >= s.N {
		return false
	}
	lo, hi := s.rows(j)

	return i >= lo && i < hi
}

// Count returns the number of elements in the region.
// Complexity: O(N).
func (s Shape) Count() int {
	if s.M <= 0 || s.N <= 0 {
		return 0
	}
	total := 0
	for j := 0; j < s.N; j++ {
		lo, hi := s.rows(j)
		total += hi - lo
	}

	return total
}

// MinLen returns the shortest slice that holds every element addressed by
// the full M×N rectangle: LDA*(N-1) + M, or 0 for an empty region.
func (s Shape) MinLen() int {
	if s.M <= 0 || s.N <= 0 {
		return 0
	}

	return s.LDA*(s.N-1) + s.M
}

// Pack copies the region of a into a new contiguous slice of Count() elements.
// a must hold at least MinLen() elements.
// Complexity: O(M*N) time, O(Count()) space.
func Pack[T any](s Shape, a []T) []T {
	out := make([]T, 0, s.Count())
	if s.M <= 0 || s.N <= 0 {
		return out
	}
	for j := 0; j < s.N; j++ {
		lo, hi := s.rows(j)
		if lo < hi {
			out = append(out, a[j*s.LDA+lo:j*s.LDA+hi]...)
		}
	}

	return out
}

// Unpack writes src, as produced by Pack for the same Shape, back into the
// region of a. Elements of a outside the region are not touched.
// src must hold Count() elements and a at least MinLen().
func Unpack[T any](s Shape, src, a []T) {
	if s.M <= 0 || s.N <= 0 {
		return
	}
	k := 0
	for j := 0; j < s.N; j++ {
		lo, hi := s.rows(j)
		if lo < hi {
			k += copy(a[j*s.LDA+lo:j*s.LDA+hi], src[k:k+hi-lo])
		}
	}
}
