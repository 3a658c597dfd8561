// SPDX-License-Identifier: MIT

package blacs

// Buffer is any value exposing contiguous element storage.
// Data must return the storage itself, not a copy: receive operations write
// through it.
type Buffer[T Element] interface {
	Data() []T
}

// SizedBuffer is a Buffer that also knows its element count.
// Operations taking a SizedBuffer treat it as one column of Len() elements.
type SizedBuffer[T Element] interface {
	Buffer[T]
	Len() int
}

// Vector adapts a plain slice to SizedBuffer.
type Vector[T Element] []T

// Data returns the slice itself.
func (v Vector[T]) Data() []T { return v }

// Len returns len(v).
func (v Vector[T]) Len() int { return len(v) }

var (
	_ SizedBuffer[float64] = Vector[float64](nil)
	_ SizedBuffer[int32]   = Vector[int32](nil)
)

// inferShape is the single-column interpretation of a sized buffer:
// M = Len(), N = 1, LDA = Len(). LDA is raised to 1 for an empty buffer so
// the LDA >= 1 requirement of the transport boundary still holds.
func inferShape(count int) (m, n, lda int) {
	lda = count
	if lda < 1 {
		lda = 1
	}

	return count, 1, lda
}
