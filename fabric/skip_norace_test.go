// SPDX-License-Identifier: MIT

//go:build !race

package fabric_test

import "testing"

func skipRace(testing.TB) {}
