// SPDX-License-Identifier: MIT

package blacs

import (
	"fmt"
	"strings"
)

// Scope selects which processes of a grid take part in an operation.
type Scope uint8

const (
	// ScopeRow is every process in the caller's grid row.
	ScopeRow Scope = iota
	// ScopeColumn is every process in the caller's grid column.
	ScopeColumn
	// ScopeAll is every process in the grid.
	ScopeAll
)

// Topology selects the communication pattern the transport uses within a scope.
type Topology uint8

const (
	// TopologyDefault lets the transport choose.
	TopologyDefault Topology = iota
	// TopologyIncreasingRing passes data around a ring of increasing coordinates.
	TopologyIncreasingRing
	// TopologyDecreasingRing passes data around a ring of decreasing coordinates.
	TopologyDecreasingRing
	// TopologySplitRing sends along both halves of a ring at once.
	TopologySplitRing
	// TopologyMultiRing splits the scope into several rings.
	TopologyMultiRing
	// TopologyHypercube uses a hypercube spanning pattern.
	TopologyHypercube
	// TopologyFullyConnected sends directly from the source to every process.
	TopologyFullyConnected
)

// Triangle selects the half of a rectangular buffer a triangular operation moves.
type Triangle uint8

const (
	// TriangleUpper keeps elements on or above the diagonal.
	TriangleUpper Triangle = iota
	// TriangleLower keeps elements on or below the diagonal.
	TriangleLower
)

// Diagonal tells a triangular operation whether the diagonal is implied.
type Diagonal uint8

const (
	// DiagonalUnit implies an all-ones diagonal; it is not transferred.
	DiagonalUnit Diagonal = iota
	// DiagonalNonUnit transfers the diagonal with the triangle.
	DiagonalNonUnit
)

// codeEntry pairs the transport's wire token with a stable human name.
type codeEntry struct {
	code string // wire token handed to the transport
	name string // lower-case name used by String, Parse and text encoding
}

// Wire tables. Index == enumeration value.
var (
	scopeTable = [...]codeEntry{
		ScopeRow:    {code: "R", name: "row"},
		ScopeColumn: {code: "C", name: "column"},
		ScopeAll:    {code: "A", name: "all"},
	}

	topologyTable = [...]codeEntry{
		TopologyDefault:        {code: " ", name: "default"},
		TopologyIncreasingRing: {code: "I", name: "increasing-ring"},
		TopologyDecreasingRing: {code: "D", name: "decreasing-ring"},
		TopologySplitRing:      {code: "S", name: "split-ring"},
		TopologyMultiRing:      {code: "M", name: "multi-ring"},
		TopologyHypercube:      {code: "H", name: "hypercube"},
		TopologyFullyConnected: {code: "F", name: "fully-connected"},
	}

	triangleTable = [...]codeEntry{
		TriangleUpper: {code: "U", name: "upper"},
		TriangleLower: {code: "L", name: "lower"},
	}

	diagonalTable = [...]codeEntry{
		DiagonalUnit:    {code: "U", name: "unit"},
		DiagonalNonUnit: {code: "N", name: "non-unit"},
	}
)

// enum is the common underlying shape of the control enumerations.
type enum interface {
	~uint8
}

// entryOf returns the table row of v. An out-of-range v is a programmer
// error and panics.
func entryOf[E enum](table []codeEntry, v E, kind string) codeEntry {
	if int(v) >= len(table) {
		panic(fmt.Sprintf("blacs: invalid %s value %d", kind, uint8(v)))
	}

	return table[v]
}

// parseEnum matches s against names first, then wire codes. Names match
// case-insensitively after trimming; codes match exactly so " " stays
// distinguishable.
func parseEnum[E enum](table []codeEntry, s, kind string) (E, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, e := range table {
		if e.name == name {
			return E(i), nil
		}
	}
	for i, e := range table {
		if e.code == s || (len(s) == 1 && strings.EqualFold(e.code, s)) {
			return E(i), nil
		}
	}

	return 0, fmt.Errorf("blacs: %s %q: %w", kind, s, ErrUnknownName)
}

// Code returns the transport wire token for s.
func (s Scope) Code() string { return entryOf(scopeTable[:], s, "Scope").code }

// String returns the lower-case name of s.
func (s Scope) String() string { return entryOf(scopeTable[:], s, "Scope").name }

// Valid reports whether s is a member of Scope.
func (s Scope) Valid() bool { return int(s) < len(scopeTable) }

// MarshalText implements encoding.TextMarshaler.
func (s Scope) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scope) UnmarshalText(b []byte) error {
	v, err := ParseScope(string(b))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// ParseScope resolves a name ("row", "column", "all") or wire code.
func ParseScope(s string) (Scope, error) { return parseEnum[Scope](scopeTable[:], s, "Scope") }

// Code returns the transport wire token for t.
func (t Topology) Code() string { return entryOf(topologyTable[:], t, "Topology").code }

// String returns the lower-case name of t.
func (t Topology) String() string { return entryOf(topologyTable[:], t, "Topology").name }

// Valid reports whether t is a member of Topology.
func (t Topology) Valid() bool { return int(t) < len(topologyTable) }

// MarshalText implements encoding.TextMarshaler.
func (t Topology) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Topology) UnmarshalText(b []byte) error {
	v, err := ParseTopology(string(b))
	if err != nil {
		return err
	}
	*t = v

	return nil
}

// ParseTopology resolves a name ("default", "increasing-ring", ...) or wire code.
func ParseTopology(s string) (Topology, error) {
	return parseEnum[Topology](topologyTable[:], s, "Topology")
}

// Code returns the transport wire token for t.
func (t Triangle) Code() string { return entryOf(triangleTable[:], t, "Triangle").code }

// String returns the lower-case name of t.
func (t Triangle) String() string { return entryOf(triangleTable[:], t, "Triangle").name }

// Valid reports whether t is a member of Triangle.
func (t Triangle) Valid() bool { return int(t) < len(triangleTable) }

// MarshalText implements encoding.TextMarshaler.
func (t Triangle) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Triangle) UnmarshalText(b []byte) error {
	v, err := ParseTriangle(string(b))
	if err != nil {
		return err
	}
	*t = v

	return nil
}

// ParseTriangle resolves "upper", "lower" or a wire code.
func ParseTriangle(s string) (Triangle, error) {
	return parseEnum[Triangle](triangleTable[:], s, "Triangle")
}

// Code returns the transport wire token for d.
func (d Diagonal) Code() string { return entryOf(diagonalTable[:], d, "Diagonal").code }

// String returns the lower-case name of d.
func (d Diagonal) String() string { return entryOf(diagonalTable[:], d, "Diagonal").name }

// Valid reports whether d is a member of Diagonal.
func (d Diagonal) Valid() bool { return int(d) < len(diagonalTable) }

// MarshalText implements encoding.TextMarshaler.
func (d Diagonal) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Diagonal) UnmarshalText(b []byte) error {
	v, err := ParseDiagonal(string(b))
	if err != nil {
		return err
	}
	*d = v

	return nil
}

// ParseDiagonal resolves "unit", "non-unit" or a wire code.
func ParseDiagonal(s string) (Diagonal, error) {
	return parseEnum[Diagonal](diagonalTable[:], s, "Diagonal")
}
