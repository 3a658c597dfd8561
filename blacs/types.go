// SPDX-License-Identifier: MIT

package blacs

// Element is the closed set of element types the transport has primitives
// for. The set is exact (no ~ terms): a named float type must be converted
// by the caller, since the transport entry points take the builtin slices.
type Element interface {
	int32 | float32 | float64 | complex64 | complex128
}

// TypeCode returns the one-letter BLACS type prefix of T:
// "i" int32, "s" float32, "d" float64, "c" complex64, "z" complex128.
func TypeCode[T Element]() string {
	var zero T
	switch any(zero).(type) {
	case int32:
		return "i"
	case float32:
		return "s"
	case float64:
		return "d"
	case complex64:
		return "c"
	case complex128:
		return "z"
	}
	panic(panicUnreachableElement)
}

// panicUnreachableElement marks a type switch branch the Element constraint excludes.
const panicUnreachableElement = "blacs: element type outside Element constraint"
