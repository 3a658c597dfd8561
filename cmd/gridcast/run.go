// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/blacs2d/config"
	"github.com/katalvlaran/blacs2d/fabric"
	"github.com/katalvlaran/blacs2d/internal/logging"
)

// run parses args, runs both scenarios and returns the exit status.
func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("gridcast", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("config", "", "TOML config path (defaults when empty)")
	level := fs.String("log-level", "", "overrides [log] level")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := config.Default()
	if *path != "" {
		var err error
		if cfg, err = config.Load(*path); err != nil {
			fmt.Fprintf(stderr, "gridcast: %v\n", err)
			return 1
		}
	}
	if *level != "" {
		cfg.Log.Level = *level
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(stderr, "gridcast: %v\n", err)
			return 1
		}
	}

	// Precedence: -log-level, then the environment, then the file.
	log := logging.New(logging.ProfileRuntime, stderr)
	if *level != "" || os.Getenv(logging.EnvLogLevel) == "" {
		if lvl, err := logging.ParseLevel(cfg.Log.Level); err == nil {
			log = log.Level(lvl)
		}
	}

	f, err := fabric.New(cfg.Grid.Rows, cfg.Grid.Cols,
		fabric.WithContext(cfg.Grid.Context),
		fabric.WithQueueCapacity(cfg.Fabric.QueueCapacity),
		fabric.WithReceiveTimeout(cfg.Fabric.ReceiveTimeout),
		fabric.WithLogger(log),
	)
	if err != nil {
		log.Error().Err(err).Msg("build fabric")
		return 1
	}

	b := cfg.Broadcast
	log.Info().Int("rows", f.Rows()).Int("cols", f.Cols()).
		Stringer("scope", b.Scope).Stringer("topology", b.Topology).
		Int("root_row", b.RootRow).Int("root_col", b.RootCol).Int("size", b.Size).
		Msg("start")

	for _, sc := range scenarios {
		if err := f.Run(func(ep *fabric.Endpoint) error { return sc.run(ep, b) }); err != nil {
			log.Error().Err(err).Str("scenario", sc.name).Msg("failed")
			return 1
		}
		log.Info().Str("scenario", sc.name).Msg("verified")
	}

	st := f.Stats()
	log.Info().Uint32("sent", st.Sent).Uint32("received", st.Received).Msg("done")

	return 0
}
