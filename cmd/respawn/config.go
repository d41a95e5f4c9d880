package main

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/SanjoDeundiak/respawn/pkg/lib/respawn"
)

const (
	terminatorPkill  = "pkill"
	terminatorNative = "native"

	defaultLogLevel = zerolog.InfoLevel
)

type config struct {
	Terminator  string
	Signal      string
	Exact       bool
	NewGroup    bool
	NoUsage     bool
	LogLevel    string
	PkillBinary string
}

// defaultConfig reads the RESPAWN_* environment; flags override it.
func defaultConfig() config {
	return config{
		Terminator:  envOr("RESPAWN_TERMINATOR", terminatorPkill),
		Signal:      envOr("RESPAWN_SIGNAL", "TERM"),
		LogLevel:    envOr("RESPAWN_LOG_LEVEL", defaultLogLevel.String()),
		PkillBinary: envOr("RESPAWN_PKILL", "pkill"),
	}
}

func envOr(key, fallback string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// resolved is config after validation.
type resolved struct {
	signal      syscall.Signal
	level       zerolog.Level
	missingMode respawn.MissingProcessMode
}

func (c config) resolve() (*resolved, error) {
	switch c.Terminator {
	case terminatorPkill, terminatorNative:
	default:
		return nil, fmt.Errorf("unknown terminator %q; expected %q or %q", c.Terminator, terminatorPkill, terminatorNative)
	}

	sig, err := respawn.ParseSignal(c.Signal)
	if err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if level == zerolog.NoLevel {
		level = defaultLogLevel
	}

	mode := respawn.ReportWithUsage
	if c.NoUsage {
		mode = respawn.ReportOnly
	}

	return &resolved{signal: sig, level: level, missingMode: mode}, nil
}
