// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/blacs2d/blacs"
	"github.com/katalvlaran/blacs2d/grid"
	"github.com/katalvlaran/blacs2d/internal/logging"
)

// Config is the resolved gridcast configuration.
type Config struct {
	Grid      GridConfig
	Fabric    FabricConfig
	Broadcast BroadcastConfig
	Log       LogConfig
}

// GridConfig shapes the process grid.
type GridConfig struct {
	Rows, Cols int
	Context    grid.Context
}

// FabricConfig tunes the in-process transport.
type FabricConfig struct {
	QueueCapacity  int
	ReceiveTimeout time.Duration // zero waits forever
}

// BroadcastConfig describes the demo broadcast.
type BroadcastConfig struct {
	Scope            blacs.Scope
	Topology         blacs.Topology
	RootRow, RootCol int
	Size             int // order of the broadcast matrix
}

// LogConfig selects the log level by name.
type LogConfig struct {
	Level string
}

// Default returns a 2x2 grid broadcasting a 4x4 block from (0,0) to all.
func Default() Config {
	return Config{
		Grid:      GridConfig{Rows: 2, Cols: 2},
		Fabric:    FabricConfig{QueueCapacity: 8, ReceiveTimeout: 5 * time.Second},
		Broadcast: BroadcastConfig{Scope: blacs.ScopeAll, Topology: blacs.TopologyDefault, Size: 4},
		Log:       LogConfig{Level: "info"},
	}
}

type fileConfig struct {
	Grid struct {
		Rows    int `toml:"rows"`
		Cols    int `toml:"cols"`
		Context int `toml:"context"`
	} `toml:"grid"`
	Fabric struct {
		QueueCapacity  int    `toml:"queue_capacity"`
		ReceiveTimeout string `toml:"receive_timeout"`
	} `toml:"fabric"`
	Broadcast struct {
		Scope    string `toml:"scope"`
		Topology string `toml:"topology"`
		RootRow  int    `toml:"root_row"`
		RootCol  int    `toml:"root_col"`
		Size     int    `toml:"size"`
	} `toml:"broadcast"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return resolve(raw, meta)
}

// Parse is Load for TOML text already in memory.
func Parse(data string) (Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	return resolve(raw, meta)
}

func resolve(raw fileConfig, meta toml.MetaData) (Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config: unknown key %q: %w", undecoded[0].String(), ErrInvalid)
	}
	cfg := Default()

	if meta.IsDefined("grid", "rows") {
		cfg.Grid.Rows = raw.Grid.Rows
	}
	if meta.IsDefined("grid", "cols") {
		cfg.Grid.Cols = raw.Grid.Cols
	}
	if meta.IsDefined("grid", "context") {
		cfg.Grid.Context = grid.Context(raw.Grid.Context)
	}

	if meta.IsDefined("fabric", "queue_capacity") {
		cfg.Fabric.QueueCapacity = raw.Fabric.QueueCapacity
	}
	if meta.IsDefined("fabric", "receive_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Fabric.ReceiveTimeout))
		if err != nil {
			return Config{}, fmt.Errorf("config: fabric.receive_timeout: %v: %w", err, ErrInvalid)
		}
		cfg.Fabric.ReceiveTimeout = d
	}

	if meta.IsDefined("broadcast", "scope") {
		s, err := blacs.ParseScope(raw.Broadcast.Scope)
		if err != nil {
			return Config{}, fmt.Errorf("config: broadcast.scope: %v: %w", err, ErrInvalid)
		}
		cfg.Broadcast.Scope = s
	}
	if meta.IsDefined("broadcast", "topology") {
		top, err := blacs.ParseTopology(raw.Broadcast.Topology)
		if err != nil {
			return Config{}, fmt.Errorf("config: broadcast.topology: %v: %w", err, ErrInvalid)
		}
		cfg.Broadcast.Topology = top
	}
	if meta.IsDefined("broadcast", "root_row") {
		cfg.Broadcast.RootRow = raw.Broadcast.RootRow
	}
	if meta.IsDefined("broadcast", "root_col") {
		cfg.Broadcast.RootCol = raw.Broadcast.RootCol
	}
	if meta.IsDefined("broadcast", "size") {
		cfg.Broadcast.Size = raw.Broadcast.Size
	}

	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field and returns the first violation, wrapping
// ErrInvalid.
func (c Config) Validate() error {
	switch {
	case c.Grid.Rows < 1:
		return invalidf("grid.rows", c.Grid.Rows, ">= 1")
	case c.Grid.Cols < 1:
		return invalidf("grid.cols", c.Grid.Cols, ">= 1")
	case c.Fabric.QueueCapacity < 1:
		return invalidf("fabric.queue_capacity", c.Fabric.QueueCapacity, ">= 1")
	case c.Fabric.ReceiveTimeout < 0:
		return invalidf("fabric.receive_timeout", c.Fabric.ReceiveTimeout, ">= 0")
	case !c.Broadcast.Scope.Valid():
		return invalidf("broadcast.scope", uint8(c.Broadcast.Scope), "a scope")
	case !c.Broadcast.Topology.Valid():
		return invalidf("broadcast.topology", uint8(c.Broadcast.Topology), "a topology")
	case c.Broadcast.RootRow < 0 || c.Broadcast.RootRow >= c.Grid.Rows:
		return invalidf("broadcast.root_row", c.Broadcast.RootRow, "inside the grid")
	case c.Broadcast.RootCol < 0 || c.Broadcast.RootCol >= c.Grid.Cols:
		return invalidf("broadcast.root_col", c.Broadcast.RootCol, "inside the grid")
	case c.Broadcast.Size < 1:
		return invalidf("broadcast.size", c.Broadcast.Size, ">= 1")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return invalidf("log.level", c.Log.Level, "a level name")
	}

	return nil
}

func invalidf(field string, got any, want string) error {
	return fmt.Errorf("config: %s = %v, want %s: %w", field, got, want, ErrInvalid)
}
