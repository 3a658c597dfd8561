// SPDX-License-Identifier: MIT

// Package dense provides ColMajor, a column-major buffer with an explicit
// leading dimension that satisfies blacs.Buffer and blacs.SizedBuffer.
//
// Layout:
//
//   - Element (i, j) lives at data[i + j*ld], ld >= max(1, rows).
//   - View(r0, c0, h, w) shares storage with its parent and keeps the
//     parent's ld, so a sub-block can be sent or received in place with
//     (h, w, view, view.Stride()).
//
// Safety:
//
//   - At/Set return ErrOutOfRange instead of panicking.
//   - Constructors return ErrBadShape, ErrStride or ErrShortData.
//
// Complexity quicksheet:
//   - New: O(ld*cols) zero-init; At/Set: O(1); View: O(1); Clone: O(rows*cols).
package dense
