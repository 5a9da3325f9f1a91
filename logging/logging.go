// Package logging configures the global zerolog logger for the
// harness once, from the command line flags.
package logging

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	base zerolog.Logger
)

// Configure initialises the global logger exactly once. Invalid
// levels fall back to info.
func Configure(level string) {
	once.Do(func() {
		parsed := zerolog.InfoLevel
		if level != "" {
			if l, err := zerolog.ParseLevel(level); err == nil {
				parsed = l
			}
		}
		zerolog.SetGlobalLevel(parsed)
		zerolog.TimeFieldFormat = time.RFC3339

		base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().
			Timestamp().
			Logger()
	})
}

// L returns the configured logger
func L() zerolog.Logger {
	Configure("")
	return base
}

// With returns the configured logger tagged with a component name
func With(component string) zerolog.Logger {
	return L().With().Str("component", component).Logger()
}
