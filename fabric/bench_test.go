// SPDX-License-Identifier: MIT

// Package fabric_test benchmarks broadcasts across a 1×2 fabric: one
// process sends, the other receives, b.N times per run.
package fabric_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/blacs2d/blacs"
	"github.com/katalvlaran/blacs2d/fabric"
)

// benchOrders are the square block orders to benchmark.
var benchOrders = []int{16, 64, 256}

func BenchmarkGeneral(b *testing.B) {
	skipRace(b)
	b.ReportAllocs()
	for _, n := range benchOrders {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			f, err := fabric.New(1, 2)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			err = f.Run(func(ep *fabric.Endpoint) error {
				g := ep.Grid()
				a := make([]float64, n*n)
				for i := 0; i < b.N; i++ {
					var err error
					if g.MyCol() == 0 {
						err = blacs.Gebs2d(ep, g, blacs.ScopeRow, blacs.TopologyDefault, n, n, a, n)
					} else {
						err = blacs.Gebr2d(ep, g, blacs.ScopeRow, blacs.TopologyDefault, n, n, a, n)
					}
					if err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				b.Fatal(err)
			}
		})
	}
}

func BenchmarkTriangular(b *testing.B) {
	skipRace(b)
	b.ReportAllocs()
	for _, n := range benchOrders {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			f, err := fabric.New(1, 2)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			err = f.Run(func(ep *fabric.Endpoint) error {
				g := ep.Grid()
				a := make([]complex128, n*n)
				for i := 0; i < b.N; i++ {
					var err error
					if g.MyCol() == 0 {
						err = blacs.Trbs2d(ep, g, blacs.ScopeRow, blacs.TopologyDefault,
							blacs.TriangleUpper, blacs.DiagonalNonUnit, n, n, a, n)
					} else {
						err = blacs.Trbr2d(ep, g, blacs.ScopeRow, blacs.TopologyDefault,
							blacs.TriangleUpper, blacs.DiagonalNonUnit, n, n, a, n)
					}
					if err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				b.Fatal(err)
			}
		})
	}
}
