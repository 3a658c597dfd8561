// SPDX-License-Identifier: MIT

package blacs_test

import (
	"fmt"

	"github.com/katalvlaran/blacs2d/blacs"
)

// ExampleScope_Code prints the wire tokens of each scope.
func ExampleScope_Code() {
	for _, s := range []blacs.Scope{blacs.ScopeRow, blacs.ScopeColumn, blacs.ScopeAll} {
		fmt.Printf("%s=%q\n", s, s.Code())
	}

	// Output:
	// row="R"
	// column="C"
	// all="A"
}
