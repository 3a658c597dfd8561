// SPDX-License-Identifier: MIT

// Package grid_test verifies construction, accessors and coordinate maps of grid.Grid.
package grid_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/blacs2d/grid"
	"github.com/stretchr/testify/require"
)

// TestNewBadShape ensures non-positive shapes are rejected.
func TestNewBadShape(t *testing.T) {
	_, err := grid.New(0, 0, 2, 0, 0)           // zero rows
	require.ErrorIs(t, err, grid.ErrBadShape) // expect ErrBadShape

	_, err = grid.New(0, 2, -1, 0, 0)           // negative cols
	require.ErrorIs(t, err, grid.ErrBadShape) // expect ErrBadShape
}

// TestNewOutOfRange ensures the calling process must lie inside the grid.
func TestNewOutOfRange(t *testing.T) {
	_, err := grid.New(0, 2, 2, 2, 0)
	require.ErrorIs(t, err, grid.ErrOutOfRange)

	_, err = grid.New(0, 2, 2, 0, -1)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
}

// TestAccessors checks every read-only accessor.
func TestAccessors(t *testing.T) {
	g, err := grid.New(7, 2, 3, 1, 2)
	require.NoError(t, err)

	require.Equal(t, grid.Context(7), g.Context())
	require.Equal(t, 2, g.Rows())
	require.Equal(t, 3, g.Cols())
	require.Equal(t, 1, g.MyRow())
	require.Equal(t, 2, g.MyCol())
	require.Equal(t, 6, g.Size())
	require.Equal(t, 5, g.Rank()) // row-major: 1*3 + 2
	require.Equal(t, "grid{ctx=7 2x3 at (1,2)}", g.String())
}

// TestRankCoordRoundTrip walks every process of a 3x4 grid.
func TestRankCoordRoundTrip(t *testing.T) {
	g, err := grid.New(0, 3, 4, 0, 0)
	require.NoError(t, err)

	for rank := 0; rank < g.Size(); rank++ {
		r, c, err := g.Coord(rank)
		require.NoError(t, err)
		require.True(t, g.InBounds(r, c))

		back, err := g.RankOf(r, c)
		require.NoError(t, err)
		require.Equal(t, rank, back)
	}

	_, _, err = g.Coord(12)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = g.RankOf(3, 0)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	require.False(t, g.InBounds(-1, 0))
}

// TestWithProcess keeps context and shape, moves coordinates.
func TestWithProcess(t *testing.T) {
	g, err := grid.New(3, 2, 2, 0, 0)
	require.NoError(t, err)

	h, err := g.WithProcess(1, 1)
	require.NoError(t, err)
	require.Equal(t, g.Context(), h.Context())
	require.Equal(t, 3, h.Rank())
	require.Equal(t, 0, g.Rank()) // original untouched

	_, err = g.WithProcess(2, 0)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
}

// TestConcurrentReads shares one Grid across goroutines.
func TestConcurrentReads(t *testing.T) {
	g, err := grid.New(1, 4, 4, 2, 3)
	require.NoError(t, err)

	const readers = 64
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			if g.Context() != 1 || g.Rank() != 11 {
				t.Error("unexpected grid state")
			}
		}()
	}
	wg.Wait()
}
