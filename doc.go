// Package blacs2d is a typed front end to BLACS broadcasts over a 2D process
// grid: general and trapezoidal send/receive of int32, float32, float64,
// complex64 and complex128 blocks, each routed by element type to the matching
// per-type transport entry point.
//
// What is inside?
//
//	grid/          process-grid handle (context, shape, this process's coordinates)
//	blacs/         control codes, buffer capabilities and the broadcast operations
//	fabric/        in-process transport: one goroutine per process, lock-free queues
//	cblacs/        cgo binding to a native BLACS (build tag "blacs")
//	dense/         column-major blocks with a leading dimension
//	config/        TOML configuration for the gridcast command
//	cmd/gridcast/  runs and verifies broadcasts on the in-process fabric
//
// Quick picture of a ScopeRow broadcast rooted at (0,0) on a 2×3 grid:
//
//	(0,0) ──► (0,1)
//	  └─────► (0,2)
//	(1,0)     (1,1)     (1,2)   untouched
//
// Every operation takes the transport first, then the grid:
//
//	blacs.Gebs2d(tr, g, blacs.ScopeRow, blacs.TopologyDefault, m, n, a, lda)
//	blacs.Gebr2d(tr, g, blacs.ScopeRow, blacs.TopologyDefault, m, n, a, lda, blacs.WithSource(0, 0))
//
//	go get github.com/katalvlaran/blacs2d
package blacs2d
