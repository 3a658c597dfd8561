// SPDX-License-Identifier: MIT

package fabric

import "errors"

// Sentinel errors. Transport faults are wrapped with call context via %w.
var (
	// ErrBadShape indicates a fabric with fewer than one row or column.
	ErrBadShape = errors.New("fabric: rows and cols must be >= 1")

	// ErrContext indicates a context identifier this fabric did not issue.
	ErrContext = errors.New("fabric: unknown context")

	// ErrCode indicates a scope, topology, triangle or diagonal code the
	// transport does not recognize.
	ErrCode = errors.New("fabric: invalid control code")

	// ErrDescriptor indicates negative M/N or LDA < max(1, M).
	ErrDescriptor = errors.New("fabric: invalid buffer descriptor")

	// ErrBufferTooShort indicates a slice shorter than LDA*(N-1)+M.
	ErrBufferTooShort = errors.New("fabric: buffer too short for descriptor")

	// ErrSource indicates a receive source outside the scope, equal to the
	// receiver, half-specified, or absent because the scope has no peers.
	ErrSource = errors.New("fabric: invalid receive source")

	// ErrProtocolMismatch indicates sender and receiver issued different calls.
	ErrProtocolMismatch = errors.New("fabric: mismatched send/receive")

	// ErrTimeout indicates a send or receive made no progress in time.
	ErrTimeout = errors.New("fabric: timed out")
)
