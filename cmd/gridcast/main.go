// SPDX-License-Identifier: MIT

// Command gridcast runs a general and a triangular broadcast over an
// in-process process grid and checks what every receiver got.
//
//	gridcast -config gridcast.toml -log-level debug
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}
