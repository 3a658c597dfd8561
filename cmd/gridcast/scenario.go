// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/blacs2d/blacs"
	"github.com/katalvlaran/blacs2d/config"
	"github.com/katalvlaran/blacs2d/dense"
	"github.com/katalvlaran/blacs2d/fabric"
	"github.com/katalvlaran/blacs2d/grid"
)

// errVerify indicates a receiver whose buffer differs from what the root sent.
var errVerify = errors.New("gridcast: received data differs from root")

// untouched fills receive buffers before a triangular broadcast; every
// element outside the trapezoid must still hold it afterwards.
const untouched = -1.0

type scenario struct {
	name string
	run  func(ep *fabric.Endpoint, b config.BroadcastConfig) error
}

var scenarios = []scenario{
	{name: "general-identity", run: generalIdentity},
	{name: "lower-unit-triangle", run: lowerUnitTriangle},
}

// participates reports whether g takes part in a broadcast rooted at b.
func participates(g *grid.Grid, b config.BroadcastConfig) bool {
	switch b.Scope {
	case blacs.ScopeRow:
		return g.MyRow() == b.RootRow
	case blacs.ScopeColumn:
		return g.MyCol() == b.RootCol
	default:
		return true
	}
}

func isRoot(g *grid.Grid, b config.BroadcastConfig) bool {
	return g.MyRow() == b.RootRow && g.MyCol() == b.RootCol
}

// generalIdentity broadcasts the Size×Size identity from the root.
func generalIdentity(ep *fabric.Endpoint, b config.BroadcastConfig) error {
	g := ep.Grid()
	if !participates(g, b) {
		return nil
	}
	id, err := dense.Identity[float64](b.Size)
	if err != nil {
		return err
	}
	if isRoot(g, b) {
		return blacs.Gebs2dBuffer[float64](ep, g, b.Scope, b.Topology, b.Size, b.Size, id, id.Stride())
	}

	got, err := dense.New[float64](b.Size, b.Size)
	if err != nil {
		return err
	}
	err = blacs.Gebr2dBuffer[float64](ep, g, b.Scope, b.Topology, b.Size, b.Size, got, got.Stride(),
		blacs.WithSource(b.RootRow, b.RootCol))
	if err != nil {
		return err
	}
	if !got.Equal(id) {
		return fmt.Errorf("%s: %w", g, errVerify)
	}

	return nil
}

// lowerUnitTriangle broadcasts the strictly lower part of a numbered matrix
// and checks that the receiver's diagonal and upper part are untouched.
func lowerUnitTriangle(ep *fabric.Endpoint, b config.BroadcastConfig) error {
	g := ep.Grid()
	if !participates(g, b) {
		return nil
	}
	n := b.Size
	src, err := dense.New[float64](n, n)
	if err != nil {
		return err
	}
	sd, ld := src.Data(), src.Stride()
	src.Do(func(i, j int, _ float64) bool {
		sd[i+j*ld] = float64(i + j*n + 1)
		return true
	})
	if isRoot(g, b) {
		return blacs.Trbs2dBuffer[float64](ep, g, b.Scope, b.Topology,
			blacs.TriangleLower, blacs.DiagonalUnit, n, n, src, src.Stride())
	}

	got, err := dense.New[float64](n, n)
	if err != nil {
		return err
	}
	gd := got.Data()
	for k := range gd {
		gd[k] = untouched
	}
	err = blacs.Trbr2dBuffer[float64](ep, g, b.Scope, b.Topology,
		blacs.TriangleLower, blacs.DiagonalUnit, n, n, got, got.Stride(),
		blacs.WithSource(b.RootRow, b.RootCol))
	if err != nil {
		return err
	}

	bad := false
	got.Do(func(i, j int, v float64) bool {
		want := untouched
		if i > j {
			want = sd[i+j*ld]
		}
		bad = v != want

		return !bad
	})
	if bad {
		return fmt.Errorf("%s: %w", g, errVerify)
	}

	return nil
}
