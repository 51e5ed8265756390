// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"motifscan/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqFiles   []string
	ConfigFile string

	// Chunking
	ChunkSize      int
	ChunkThreshold int
	Overlap        int // 0 = derived from the longest detectable motif

	// Performance
	Threads       int
	WindowTimeout time.Duration

	// Merging / composition
	DedupeOverlap     float64
	HybridOverlap     float64
	ClusterWindow     int
	ClusterMinCount   int
	ClusterMinClasses int

	// Output
	Output          string // text | json
	Pretty          bool
	Sort            bool // order text output by descending score
	Header          bool // true unless --no-header
	NoMotifExitCode int

	// Misc
	Progress bool
	Quiet    bool
	Version  bool

	// Explicit records which flags appeared on the command line, so a
	// config profile only fills in what the user left unset.
	Explicit map[string]bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: non-B DNA motif scanner

License: MIT
Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	var seq stringSlice
	fs.Var(&seq, "sequences", "FASTA file(s) (repeatable or '-') [*]")
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML scan profile; flags given on the command line win []")

	// Chunking
	fs.IntVar(&opt.ChunkSize, "chunk-size", 0, "window size for oversized sequences (0 = 50000) [0]")
	fs.IntVar(&opt.ChunkThreshold, "chunk-threshold", 0, "sequences at or below this length run as one window (0 = 100000) [0]")
	fs.IntVar(&opt.Overlap, "overlap", 0, "window overlap in bp (0 = longest detectable motif) [0]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")
	fs.DurationVar(&opt.WindowTimeout, "window-timeout", 0, "per-window time budget; a window over budget degrades to empty (0 = none) [0]")

	// Merging / composition
	fs.Float64Var(&opt.DedupeOverlap, "dedupe-overlap", 0, "boundary-duplicate overlap fraction (0 = 0.5) [0]")
	fs.Float64Var(&opt.HybridOverlap, "hybrid-overlap", 0, "hybrid-region overlap fraction (0 = 0.5) [0]")
	fs.IntVar(&opt.ClusterWindow, "cluster-window", 0, "cluster window size in bp (0 = 300) [0]")
	fs.IntVar(&opt.ClusterMinCount, "cluster-min-count", 0, "minimum motifs per cluster window (0 = 4) [0]")
	fs.IntVar(&opt.ClusterMinClasses, "cluster-min-classes", 0, "minimum distinct classes per cluster window (0 = 3) [0]")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | tsv | json [text]")
	fs.BoolVar(&opt.Pretty, "pretty", false, "colorized per-sequence report (text) [false]")
	fs.BoolVar(&opt.Sort, "sort", false, "order text output by descending score instead of position [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")
	fs.IntVar(&opt.NoMotifExitCode, "no-motif-exit-code", 0, "exit code when no motifs are found [0]")

	// Misc
	fs.BoolVar(&opt.Progress, "progress", false, "print scan progress to stderr [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.SeqFiles = seq
	opt.Header = !noHeader
	opt.Explicit = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opt.Explicit[f.Name] = true })

	// Validation
	if len(opt.SeqFiles) == 0 {
		return opt, errors.New("at least one --sequences file is required")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.ChunkSize < 0 || opt.ChunkThreshold < 0 || opt.Overlap < 0 {
		return opt, errors.New("--chunk-size, --chunk-threshold and --overlap must be ≥ 0")
	}
	if opt.ChunkSize > 0 && opt.Overlap >= opt.ChunkSize {
		return opt, errors.New("--overlap must be smaller than --chunk-size")
	}
	if opt.DedupeOverlap < 0 || opt.DedupeOverlap > 1 || opt.HybridOverlap < 0 || opt.HybridOverlap > 1 {
		return opt, errors.New("overlap fractions must be in [0,1]")
	}
	if opt.ClusterWindow < 0 || opt.ClusterMinCount < 0 || opt.ClusterMinClasses < 0 {
		return opt, errors.New("cluster parameters must be ≥ 0")
	}
	if opt.WindowTimeout < 0 {
		return opt, errors.New("--window-timeout must be ≥ 0")
	}
	if opt.Output != "text" && opt.Output != "tsv" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.NoMotifExitCode < 0 || opt.NoMotifExitCode > 125 {
		return opt, errors.New("--no-motif-exit-code must be in [0,125]")
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
