// SPDX-License-Identifier: MIT

// Package config loads the gridcast TOML file:
//
//	[grid]
//	rows = 2
//	cols = 2
//	context = 0
//
//	[fabric]
//	queue_capacity = 8
//	receive_timeout = "5s"
//
//	[broadcast]
//	scope = "all"          # name or wire code
//	topology = "default"
//	root_row = 0
//	root_col = 0
//	size = 4
//
//	[log]
//	level = "info"
//
// Keys left out keep the value from Default. Load validates the result.
package config
