// SPDX-License-Identifier: MIT

package cblacs

import "errors"

var (
	// ErrNotLinked indicates a build without the "blacs" tag.
	ErrNotLinked = errors.New("cblacs: native BLACS not linked (build with -tags blacs)")

	// ErrSourceRequired indicates a receive without explicit source coordinates.
	ErrSourceRequired = errors.New("cblacs: receive needs explicit source coordinates")

	// ErrDescriptor indicates negative M/N or LDA < max(1, M).
	ErrDescriptor = errors.New("cblacs: invalid buffer descriptor")

	// ErrBufferTooShort indicates a slice shorter than LDA*(N-1)+M.
	ErrBufferTooShort = errors.New("cblacs: buffer too short for descriptor")

	// ErrOrder indicates a process ordering other than OrderRow or OrderColumn.
	ErrOrder = errors.New("cblacs: invalid grid order")

	// ErrNotInGrid indicates a process left out of the grid GridInit built.
	ErrNotInGrid = errors.New("cblacs: process is not part of the grid")
)
