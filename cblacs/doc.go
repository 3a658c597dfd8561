// SPDX-License-Identifier: MIT

// Package cblacs binds blacs.Transport to a native BLACS library through
// cgo. The binding is compiled only with the "blacs" build tag:
//
//	CGO_LDFLAGS="-lscalapack -lmpi" go build -tags blacs ./...
//
// Without the tag the package keeps the same API and every call fails with
// ErrNotLinked after its arguments are checked, so code that selects a
// transport at run time builds everywhere.
//
// Native BLACS has no wildcard source, so receives reject blacs.AnySource
// with ErrSourceRequired. Faults inside the library are fatal to the process
// as in any BLACS program; the Go side only rejects arguments that would make
// the library read or write past a slice.
package cblacs
