// Package observe bundles structured logging and OTel tracing behind
// one Observer handed to every component of the bot.
package observe

import (
	"context"
	"io"

	"github.com/felixgeelhaar/bolt/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("sleuthbot")

// Observer handles logging and tracing.
type Observer struct {
	log *bolt.Logger
}

// New creates an Observer with human-readable console output.
// Verbose lowers the threshold to debug; otherwise info and above.
func New(out io.Writer, verbose bool) *Observer {
	return level(bolt.New(bolt.NewConsoleHandler(out)), verbose)
}

// NewJSON creates an Observer with JSON output, meant for
// non-interactive runs where logs are scraped.
func NewJSON(out io.Writer, verbose bool) *Observer {
	return level(bolt.New(bolt.NewJSONHandler(out)), verbose)
}

// NewSilent creates an Observer that discards all output. Used by
// tests and by the one-shot CLI path where replies go to stdout.
func NewSilent() *Observer {
	return New(io.Discard, false)
}

func level(l *bolt.Logger, verbose bool) *Observer {
	if verbose {
		l.SetLevel(bolt.DEBUG)
	} else {
		l.SetLevel(bolt.INFO)
	}
	return &Observer{log: l}
}

// Log returns the underlying logger.
func (o *Observer) Log() *bolt.Logger {
	return o.log
}

// Component returns a child logger tagged with the component name.
func (o *Observer) Component(name string) *bolt.Logger {
	return o.log.With().Str("component", name).Logger()
}

// StartSpan starts an OTel span.
func (o *Observer) StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name)
}

// Close flushes any buffered logs or traces.
func (o *Observer) Close() error {
	return nil
}
