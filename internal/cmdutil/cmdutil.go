// internal/cmdutil/cmdutil.go
package cmdutil

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/time/rate"

	"motifscan/internal/pipeline"
)

// Warnf prints a warning to w unless quiet is set.
func Warnf(w io.Writer, quiet bool, format string, args ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(w, "WARN: "+format+"\n", args...)
}

// ProgressPrinter renders per-window progress lines, throttled so a scan
// with thousands of windows does not flood the terminal. The final window
// is always printed.
type ProgressPrinter struct {
	w       io.Writer
	limiter *rate.Limiter
	seen    int
}

// NewProgressPrinter writes at most ~5 progress lines per second to w.
func NewProgressPrinter(w io.Writer) *ProgressPrinter {
	return &ProgressPrinter{
		w:       w,
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 1),
	}
}

// Report is the pipeline progress callback.
func (p *ProgressPrinter) Report(pr pipeline.Progress) {
	p.seen++
	last := p.seen == pr.TotalWindows
	if !last && !p.limiter.Allow() {
		return
	}
	_, _ = fmt.Fprintf(p.w, "progress: window %d/%d  %d bp  %.2f Mbp/s\n",
		p.seen, pr.TotalWindows, pr.BasesProcessed, pr.Throughput/1e6)
}
