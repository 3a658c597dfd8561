// SPDX-License-Identifier: MIT

//go:build race

package fabric_test

import "testing"

// skipRace skips tests that drive the fabric's lfq SPSC queues.
// The race detector tracks happens-before per variable and cannot see the
// queues' cross-variable ordering (store-release on data, load-acquire on
// index), so it reports false positives.
func skipRace(tb testing.TB) {
	tb.Helper()
	tb.Skip("skip: SPSC uses cross-variable memory ordering")
}
