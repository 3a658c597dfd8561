// SPDX-License-Identifier: MIT

// Package logging builds the zerolog loggers used by the gridcast command
// and handed to fabric.WithLogger.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// EnvLogLevel overrides the profile level when set to a known level name.
const EnvLogLevel = "GRIDCAST_LOG_LEVEL"

// ErrUnknownLevel indicates a level name ParseLevel does not know.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Profile selects level and formatting defaults.
type Profile int

const (
	// ProfileRuntime logs at info with RFC 3339 timestamps.
	ProfileRuntime Profile = iota
	// ProfileTest logs at debug without timestamps, for stable output.
	ProfileTest
)

// New returns a console logger writing to w for the given profile, with the
// level taken from EnvLogLevel when it names a valid level.
func New(profile Profile, w io.Writer) zerolog.Logger {
	level, timestamp := zerolog.InfoLevel, true
	if profile == ProfileTest {
		level, timestamp = zerolog.DebugLevel, false
	}
	if lvl, err := ParseLevel(os.Getenv(EnvLogLevel)); err == nil {
		level = lvl
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: profile == ProfileTest}
	ctx := zerolog.New(out).Level(level).With().Str("app", "gridcast")
	if timestamp {
		ctx = ctx.Timestamp()
	}

	return ctx.Logger()
}

// ParseLevel maps a level name to a zerolog level. The empty string is an
// error so callers can tell "unset" from "info".
func ParseLevel(raw string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, fmt.Errorf("logging: empty name: %w", ErrUnknownLevel)
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off", "none":
		return zerolog.Disabled, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("logging: %q: %w", raw, ErrUnknownLevel)
	}
}
