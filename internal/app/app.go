// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"motifscan-core/fasta"

	"motifscan/internal/cli"
	"motifscan/internal/cmdutil"
	"motifscan/internal/config"
	"motifscan/internal/output"
	"motifscan/internal/pipeline"
	"motifscan/internal/pretty"
	"motifscan/internal/version"
)

// RunContext parses argv, scans every sequence, and writes the results.
// Exit codes: 0 ok, 2 usage error, 3 runtime error; --no-motif-exit-code
// opts in to a non-zero code for motif-free runs.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("motifscan")
	fs.SetOutput(io.Discard)

	usage := func() int {
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); output.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		return usage()
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usage()
		}
		_, _ = fmt.Fprintln(stderr, err)
		if code := usage(); code != 0 {
			return code
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "motifscan version %s\n", version.Version)
		if e := outw.Flush(); output.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if opts.ConfigFile != "" {
		prof, err := config.Load(opts.ConfigFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		prof.Apply(&opts)
		if opts.Output != "text" && opts.Output != "tsv" && opts.Output != "json" {
			_, _ = fmt.Fprintf(stderr, "invalid output %q in %s\n", opts.Output, opts.ConfigFile)
			return 2
		}
	}

	cfg := pipeline.Config{
		Workers:           opts.Threads,
		ChunkSize:         opts.ChunkSize,
		ChunkThreshold:    opts.ChunkThreshold,
		Overlap:           opts.Overlap,
		WindowTimeout:     opts.WindowTimeout,
		DedupeOverlap:     opts.DedupeOverlap,
		HybridOverlap:     opts.HybridOverlap,
		ClusterWindow:     opts.ClusterWindow,
		ClusterMinCount:   opts.ClusterMinCount,
		ClusterMinClasses: opts.ClusterMinClasses,
	}

	var results []*pipeline.Result
	for _, path := range opts.SeqFiles {
		recs, err := fasta.ReadFile(path)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		for _, rec := range recs {
			scanCfg := cfg
			if opts.Progress {
				scanCfg.Progress = cmdutil.NewProgressPrinter(stderr).Report
			}
			res, err := pipeline.Scan(parent, scanCfg, rec.ID, rec.Seq)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return 0 // the shell reports interruption
				}
				_, _ = fmt.Fprintln(stderr, err)
				if errors.Is(err, pipeline.ErrConfig) {
					return 2
				}
				return 3
			}
			for _, d := range res.Diagnostics {
				cmdutil.Warnf(stderr, opts.Quiet, "%s: %s", rec.ID, d.Message)
			}
			results = append(results, res)
		}
	}

	var werr error
	switch opts.Output {
	case "json":
		werr = output.WriteJSON(outw, results)
	case "tsv":
		werr = output.WriteText(outw, results, opts.Header, opts.Sort)
	default:
		if opts.Pretty {
			for _, res := range results {
				if _, err := io.WriteString(outw, pretty.Render(res)); err != nil {
					werr = err
					break
				}
			}
		}
		if werr == nil {
			werr = output.WriteText(outw, results, opts.Header, opts.Sort)
		}
	}
	if werr == nil {
		werr = outw.Flush()
	}
	if output.IsBrokenPipe(werr) {
		return 0
	}
	if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}

	if opts.NoMotifExitCode > 0 {
		total := 0
		for _, res := range results {
			total += len(res.Motifs)
		}
		if total == 0 {
			return opts.NoMotifExitCode
		}
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
