// SPDX-License-Identifier: MIT

// Package pack selects the logically addressed elements of a column-major
// region so a transport can move them as one contiguous message.
//
// Regions:
//
//   - General: every (i, j) with 0 <= i < M, 0 <= j < N.
//   - Upper trapezoid: i <= j (i < j when the diagonal is unit).
//   - Lower trapezoid: i >= j (i > j when the diagonal is unit).
//
// Element (i, j) lives at a[i + j*LDA]. Pack walks columns left to right and
// rows top to bottom inside each column; Unpack is its exact inverse and
// writes nothing outside the region.
package pack
