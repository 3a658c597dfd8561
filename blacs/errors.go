// SPDX-License-Identifier: MIT

package blacs

import "errors"

// ErrUnknownName is returned by the Parse functions (and UnmarshalText) for a
// name or code that is not a member of the enumeration.
var ErrUnknownName = errors.New("blacs: unknown enumeration name")
