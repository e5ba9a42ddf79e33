package mlst

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Reporter receives the structured outcomes of a run: warnings, notes and
// the typing report itself. Warnings and notes are counted here rather
// than in package globals so independent runs stay independent.
type Reporter struct {
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr *log.Logger

	// out receives the tab-separated typing report
	out io.Writer

	Warnings int
	Notes    int
}

// NewReporter returns a Reporter that logs diagnostics to Stderr and
// writes the typing report to out.
func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	return &Reporter{stderr: log.New(os.Stderr, "", 0), out: out}
}

// Warnf logs a recoverable problem and counts it.
func (r *Reporter) Warnf(format string, args ...interface{}) {
	r.Warnings++
	r.stderr.Printf("WARNING: "+format, args...)
}

// Notef logs an informational observation and counts it.
func (r *Reporter) Notef(format string, args ...interface{}) {
	r.Notes++
	r.stderr.Printf("NOTE: "+format, args...)
}

// Infof logs progress without counting.
func (r *Reporter) Infof(format string, args ...interface{}) {
	r.stderr.Printf("INFO: "+format, args...)
}

// Reportf writes one line of the typing report.
func (r *Reporter) Reportf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}

// Summary logs the end-of-run warning and note counts.
func (r *Reporter) Summary() {
	r.stderr.Printf("INFO: run complete: %d warnings, %d notes", r.Warnings, r.Notes)
}
