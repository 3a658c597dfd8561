// SPDX-License-Identifier: MIT

// Package blacs is a typed dispatch layer over a 2D process-grid
// communication substrate (BLACS). It routes a send or receive of a
// rectangular or triangular buffer to the one transport entry point that
// matches the element type, and encodes the control parameters the way the
// transport expects them.
//
// What:
//
//   - Four operations, three call shapes each:
//
//     general-send       Gebs2d  Gebs2dBuffer  Gebs2dSized
//     general-receive    Gebr2d  Gebr2dBuffer  Gebr2dSized
//     triangular-send    Trbs2d  Trbs2dBuffer  Trbs2dSized
//     triangular-receive Trbr2d  Trbr2dBuffer  Trbr2dSized
//
//   - Shapes: explicit slice + (M, N, LDA); a Buffer with explicit dims; a
//     SizedBuffer with inferred dims (M = Len(), N = 1, LDA = Len()).
//   - Control enumerations Scope, Topology, Triangle, Diagonal with a single
//     table each mapping members to wire codes (Code).
//
// Type safety:
//
//   - Element is a closed constraint (int32, float32, float64, complex64,
//     complex128). Any other element type is rejected by the compiler.
//   - Buffer and SizedBuffer are structural: any type with Data() []T (and
//     Len() int) qualifies without registration.
//
// Pass-through:
//
//   - One call is one transport invocation. Nothing is retried, buffered or
//     logged here, and the transport's error is returned unmodified.
//   - All processes in the chosen Scope must issue matching calls (same
//     operation, shape, Scope, Topology and, for triangular operations, the
//     same Triangle and Diagonal) in the same order. Mismatches are not
//     detected locally.
//
// Storage is column-major: element (i, j) lives at a[i + j*lda].
package blacs
