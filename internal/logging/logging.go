// Package logging builds the hclog logger shared by the editor and the
// command line tools.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where log output goes and how much of it there is.
type Options struct {
	Level string // trace, debug, info, warn, error
	File  string // optional rotating log file; empty logs to stderr only
}

// New creates the application logger. When a file is configured, records go
// to both stderr and a size-rotated file.
func New(name string, opts Options) (hclog.Logger, func()) {
	level := opts.Level
	if level == "" {
		level = os.Getenv("SLICED_IMAGE_LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}

	var output io.Writer = os.Stderr
	cleanup := func() {}
	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 3,
			LocalTime:  true,
		}
		output = io.MultiWriter(os.Stderr, lj)
		cleanup = func() { lj.Close() }
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn:     func() time.Time { return time.Now().UTC() },
	})
	return logger, cleanup
}
