// Package logging builds the zerolog logger shared by the CLI and generators.
//
// Logging is off unless a level is configured; when enabled it writes to
// stderr so it never interleaves with the interactive prompts on stdout.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LevelDisabled turns logging off. It is the default.
const LevelDisabled = "disabled"

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// New creates a logger from opts. An empty level or LevelDisabled yields
// a logger that discards everything.
func New(opts Options) (zerolog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if level == zerolog.Disabled {
		return zerolog.Nop(), nil
	}

	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.TimeOnly
		output = console
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}

// ParseLevel maps a level name to a zerolog level. Names are
// case-insensitive; "off" and "none" are accepted for LevelDisabled.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", LevelDisabled, "off", "none":
		return zerolog.Disabled, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return zerolog.Disabled, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}
