// Package dbx provides the diagnostic tracing switches for the generator.
// Tracing never alters the non-debug output bytes: the tty tracer writes to
// stderr, and the html tracer emits self-contained comment lines.
package dbx

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Tracer receives diagnostic trace lines.
type Tracer interface {
	Tracef(format string, args ...any)
}

type nopTracer struct{}

func (nopTracer) Tracef(string, ...any) {}

// Nop discards all trace lines.
var Nop Tracer = nopTracer{}

type ttyTracer struct {
	log *logrus.Logger
}

// NewTTY returns a tracer that logs trace lines to stderr.
func NewTTY() Tracer {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.DebugLevel)
	return &ttyTracer{log: log}
}

func (t *ttyTracer) Tracef(format string, args ...any) {
	t.log.WithField("dbx", true).Debugf(format, args...)
}

type htmlTracer struct {
	w io.Writer
}

// NewHTML returns a tracer that interleaves trace lines as HTML comments on
// the given writer.
func NewHTML(w io.Writer) Tracer {
	return &htmlTracer{w: w}
}

func (t *htmlTracer) Tracef(format string, args ...any) {
	fmt.Fprintf(t.w, "<!-- dbx: "+format+" -->\n", args...)
}
