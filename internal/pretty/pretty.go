// internal/pretty/pretty.go
package pretty

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"motifscan/internal/common"
	"motifscan/internal/pipeline"
)

const linePrefix = "# "

var classColors = map[string]*color.Color{
	"gquad":     color.New(color.FgGreen),
	"str":       color.New(color.FgCyan),
	"zdna":      color.New(color.FgMagenta),
	"cruciform": color.New(color.FgYellow),
}

var (
	boldScore = color.New(color.Bold)
	dimText   = color.New(color.Faint)
)

func classLabel(class string) string {
	if c, ok := classColors[class]; ok {
		return c.Sprint(class)
	}
	return class
}

func scoreLabel(s float64) string {
	txt := common.FormatScore(s)
	if s >= 2.5 {
		return boldScore.Sprint(txt)
	}
	return txt
}

// Render produces a human-readable per-sequence report. Every line starts
// with "# " so the report can be interleaved with TSV rows and still be
// skipped by downstream parsers.
func Render(res *pipeline.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s  %d bp  %d windows  %d motifs / %d hybrids / %d clusters\n",
		linePrefix, res.SequenceName, res.SequenceLength, res.Windows,
		len(res.Motifs), len(res.Hybrids), len(res.Clusters))

	for _, m := range res.Motifs {
		fmt.Fprintf(&b, "%s  %-10s %-14s %9d..%-9d %s  score %s\n",
			linePrefix, classLabel(m.Class), m.Subclass, m.Start, m.End, m.Strand, scoreLabel(m.Score))
	}
	for _, h := range res.Hybrids {
		fmt.Fprintf(&b, "%s  hybrid     %-14s %9d..%-9d .  score %s\n",
			linePrefix, common.JoinClasses(h.Classes), h.Start, h.End, scoreLabel(h.Score))
	}
	for _, c := range res.Clusters {
		fmt.Fprintf(&b, "%s  cluster    %-14s %9d..%-9d .  %d motifs\n",
			linePrefix, common.JoinClasses(c.Classes), c.Start, c.End, c.Count)
	}
	for _, d := range res.Diagnostics {
		fmt.Fprintf(&b, "%s  %s\n", linePrefix, dimText.Sprintf("warning[%s]: %s", d.Stage, d.Message))
	}
	return b.String()
}
