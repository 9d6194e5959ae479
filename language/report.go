package language

import (
	"fmt"
	"io"
	"time"
)

// Reporter receives progress messages from the build pipeline.
type Reporter interface {
	Report(format string, args ...any)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(format string, args ...any)

// Report calls f.
func (f ReporterFunc) Report(format string, args ...any) { f(format, args...) }

type nopReporter struct{}

func (nopReporter) Report(string, ...any) {}

// NopReporter discards all progress messages.
var NopReporter Reporter = nopReporter{}

type timedReporter struct {
	w     io.Writer
	start time.Time
}

// NewTimedReporter returns a Reporter that writes one line per message to w,
// prefixed with the seconds elapsed since its creation:
//
//	[  0.42  \t] A total of 1200 unigrams found
func NewTimedReporter(w io.Writer) Reporter {
	return &timedReporter{w: w, start: time.Now()}
}

func (r *timedReporter) Report(format string, args ...any) {
	fmt.Fprintf(r.w, "[  %.2f  \t] %s\n", time.Since(r.start).Seconds(), fmt.Sprintf(format, args...))
}
