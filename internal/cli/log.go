// Package cli implements the tierpyramid command-line interface.
//
// The commands render the tier pyramid to files, print the scale in the
// terminal, browse it interactively and serve it over HTTP. The CLI is
// built using cobra; settings come from flags, a viper config file and
// TIERPYRAMID_* environment variables.
//
// # Commands
//
// The main commands are:
//   - render: Generate SVG, PNG, PDF, JSON or DOT output
//   - levels, describe, brands: Print the catalog
//   - browse: Interactive terminal browser
//   - serve: HTTP server with optional catalog reload
//   - catalog: Create and validate catalog files
//   - cache: Manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to w with short wall-clock timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
		Prefix:          appName,
	})
}

// tracker logs how long an operation took.
type tracker struct {
	logger *log.Logger
	start  time.Time
}

func newTracker(l *log.Logger) *tracker {
	return &tracker{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to milliseconds.
func (t *tracker) done(msg string) {
	t.logger.Info(msg, "elapsed", time.Since(t.start).Round(time.Millisecond))
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext falls back to log.Default when ctx carries no logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
