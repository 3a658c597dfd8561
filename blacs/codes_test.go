// SPDX-License-Identifier: MIT

package blacs_test

import (
	"testing"

	"github.com/katalvlaran/blacs2d/blacs"
	"github.com/stretchr/testify/require"
)

// TestScopeCodes pins the wire tokens of every Scope member.
func TestScopeCodes(t *testing.T) {
	want := map[blacs.Scope]string{
		blacs.ScopeRow:    "R",
		blacs.ScopeColumn: "C",
		blacs.ScopeAll:    "A",
	}
	for s, code := range want {
		require.True(t, s.Valid())
		require.Equal(t, code, s.Code())
		require.Equal(t, s.Code(), s.Code()) // deterministic
	}
	require.False(t, blacs.Scope(3).Valid())
}

// TestTopologyCodes pins the wire tokens of every Topology member.
func TestTopologyCodes(t *testing.T) {
	want := map[blacs.Topology]string{
		blacs.TopologyDefault:        " ",
		blacs.TopologyIncreasingRing: "I",
		blacs.TopologyDecreasingRing: "D",
		blacs.TopologySplitRing:      "S",
		blacs.TopologyMultiRing:      "M",
		blacs.TopologyHypercube:      "H",
		blacs.TopologyFullyConnected: "F",
	}
	seen := make(map[string]bool, len(want))
	for top, code := range want {
		require.Equal(t, code, top.Code())
		require.False(t, seen[code], "duplicate code %q", code)
		seen[code] = true
	}
	require.False(t, blacs.Topology(7).Valid())
}

// TestTriangleDiagonalCodes pins the triangular control tokens.
func TestTriangleDiagonalCodes(t *testing.T) {
	require.Equal(t, "U", blacs.TriangleUpper.Code())
	require.Equal(t, "L", blacs.TriangleLower.Code())
	require.Equal(t, "U", blacs.DiagonalUnit.Code())
	require.Equal(t, "N", blacs.DiagonalNonUnit.Code())
	require.False(t, blacs.Triangle(2).Valid())
	require.False(t, blacs.Diagonal(2).Valid())
}

// TestInvalidValuePanics checks out-of-range members are programmer errors.
func TestInvalidValuePanics(t *testing.T) {
	require.Panics(t, func() { _ = blacs.Scope(42).Code() })
	require.Panics(t, func() { _ = blacs.Topology(42).Code() })
	require.Panics(t, func() { _ = blacs.Triangle(42).String() })
	require.Panics(t, func() { _ = blacs.Diagonal(42).Code() })
}

// TestParseNamesAndCodes covers name, code and case handling.
func TestParseNamesAndCodes(t *testing.T) {
	s, err := blacs.ParseScope(" Column ")
	require.NoError(t, err)
	require.Equal(t, blacs.ScopeColumn, s)

	s, err = blacs.ParseScope("a")
	require.NoError(t, err)
	require.Equal(t, blacs.ScopeAll, s)

	top, err := blacs.ParseTopology(" ")
	require.NoError(t, err)
	require.Equal(t, blacs.TopologyDefault, top)

	top, err = blacs.ParseTopology("hypercube")
	require.NoError(t, err)
	require.Equal(t, blacs.TopologyHypercube, top)

	uplo, err := blacs.ParseTriangle("l")
	require.NoError(t, err)
	require.Equal(t, blacs.TriangleLower, uplo)

	diag, err := blacs.ParseDiagonal("NON-UNIT")
	require.NoError(t, err)
	require.Equal(t, blacs.DiagonalNonUnit, diag)

	_, err = blacs.ParseScope("diagonal")
	require.ErrorIs(t, err, blacs.ErrUnknownName)
	_, err = blacs.ParseTopology("star")
	require.ErrorIs(t, err, blacs.ErrUnknownName)
}

// TestTextRoundTrip checks MarshalText/UnmarshalText agree for every member.
func TestTextRoundTrip(t *testing.T) {
	for s := blacs.ScopeRow; s.Valid(); s++ {
		b, err := s.MarshalText()
		require.NoError(t, err)
		var back blacs.Scope
		require.NoError(t, back.UnmarshalText(b))
		require.Equal(t, s, back)
	}
	for top := blacs.TopologyDefault; top.Valid(); top++ {
		b, err := top.MarshalText()
		require.NoError(t, err)
		var back blacs.Topology
		require.NoError(t, back.UnmarshalText(b))
		require.Equal(t, top, back)
	}
	for u := blacs.TriangleUpper; u.Valid(); u++ {
		b, _ := u.MarshalText()
		var back blacs.Triangle
		require.NoError(t, back.UnmarshalText(b))
		require.Equal(t, u, back)
	}
	for d := blacs.DiagonalUnit; d.Valid(); d++ {
		b, _ := d.MarshalText()
		var back blacs.Diagonal
		require.NoError(t, back.UnmarshalText(b))
		require.Equal(t, d, back)
	}

	var s blacs.Scope
	require.ErrorIs(t, s.UnmarshalText([]byte("nowhere")), blacs.ErrUnknownName)
}

// TestTypeCode pins the element prefixes.
func TestTypeCode(t *testing.T) {
	require.Equal(t, "i", blacs.TypeCode[int32]())
	require.Equal(t, "s", blacs.TypeCode[float32]())
	require.Equal(t, "d", blacs.TypeCode[float64]())
	require.Equal(t, "c", blacs.TypeCode[complex64]())
	require.Equal(t, "z", blacs.TypeCode[complex128]())
}
