// SPDX-License-Identifier: MIT

// Package grid describes one logical two-dimensional arrangement of
// cooperating processes that share a communication context.
//
// What:
//
//   - Grid is an immutable handle: context identifier, grid shape (Rows × Cols)
//     and the calling process's coordinates (MyRow, MyCol).
//   - Processes are numbered row-major: rank = row*Cols + col.
//
// Why:
//
//   - Every send/receive operation of package blacs binds exactly one Grid and
//     reads its context identifier. Nothing here mutates after construction, so
//     a *Grid may be shared freely between goroutines.
//
// Lifecycle:
//
//   - Grids are created by a grid-setup collaborator (see packages fabric and
//     cblacs) and destroyed by the same collaborator. Package grid never talks
//     to a transport.
//
// Errors:
//
//   - ErrBadShape: rows or cols < 1.
//   - ErrOutOfRange: a coordinate or rank lies outside the grid.
package grid
