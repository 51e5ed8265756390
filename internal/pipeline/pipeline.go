// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"motifscan-core/compose"
	"motifscan-core/detect"
	"motifscan-core/dispatch"
	"motifscan-core/merge"
	"motifscan-core/motif"
	"motifscan-core/seq"
)

// ErrConfig marks parameter combinations that cannot be worked around;
// they are rejected before any processing begins.
var ErrConfig = errors.New("invalid configuration")

// Defaults applied by Scan for zero-valued Config fields.
const (
	DefaultChunkSize      = 50000
	DefaultChunkThreshold = 100000
	DefaultInnerThreshold = 25000
)

// Config controls one scan.
type Config struct {
	Workers        int           // window-level workers (0 = all CPUs)
	ChunkSize      int           // window size for oversized sequences
	ChunkThreshold int           // sequences at or below this run as one window
	Overlap        int           // window overlap (0 = derived from detector MaxSpan)
	WindowTimeout  time.Duration // per-window budget; 0 disables

	InnerThreshold int // window length above which detectors run concurrently
	InnerParallel  int // detector workers per window (0 = one per detector)

	DedupeOverlap float64 // boundary-dedup fraction (0 = default 0.5)
	HybridOverlap float64 // hybrid composition fraction (0 = default 0.5)

	ClusterWindow     int
	ClusterMinCount   int
	ClusterMinClasses int

	Detectors []detect.Registered // nil = detect.Defaults()
	Progress  func(Progress)      // optional; observational only
}

// Progress is reported once per completed window.
type Progress struct {
	WindowIndex    int
	TotalWindows   int
	BasesProcessed int
	Elapsed        time.Duration
	Throughput     float64 // bases per second
}

// Diagnostic records a non-fatal degradation attached to the Result.
// Window and Detector are -1 / empty when not applicable.
type Diagnostic struct {
	Stage    string `json:"stage"`
	Window   int    `json:"window"`
	Detector string `json:"detector,omitempty"`
	Message  string `json:"message"`
}

// Result is the complete annotation set for one sequence.
type Result struct {
	RunID          string
	SequenceName   string
	SequenceLength int
	Windows        int
	Motifs         []motif.Candidate
	Hybrids        []compose.HybridRegion
	Clusters       []compose.ClusterRegion
	Diagnostics    []Diagnostic
	Degraded       bool
}

func withDefaults(cfg Config) Config {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.ChunkThreshold <= 0 {
		cfg.ChunkThreshold = DefaultChunkThreshold
	}
	if cfg.InnerThreshold == 0 {
		cfg.InnerThreshold = DefaultInnerThreshold
	}
	if cfg.Detectors == nil {
		cfg.Detectors = detect.Defaults()
	}
	if cfg.Overlap <= 0 {
		cfg.Overlap = detect.MaxSpan(cfg.Detectors)
	}
	if cfg.DedupeOverlap <= 0 {
		cfg.DedupeOverlap = merge.DefaultDedupeOverlap
	}
	if cfg.HybridOverlap <= 0 {
		cfg.HybridOverlap = compose.DefaultHybridOverlap
	}
	if cfg.ClusterWindow <= 0 {
		cfg.ClusterWindow = compose.DefaultClusterWindow
	}
	if cfg.ClusterMinCount <= 0 {
		cfg.ClusterMinCount = compose.DefaultClusterMinCount
	}
	if cfg.ClusterMinClasses <= 0 {
		cfg.ClusterMinClasses = compose.DefaultClusterMinClasses
	}
	return cfg
}

func validate(cfg Config) error {
	if cfg.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be > 0", ErrConfig)
	}
	if cfg.Overlap < 0 || cfg.Overlap >= cfg.ChunkSize {
		return fmt.Errorf("%w: overlap %d must be in [0,%d)", ErrConfig, cfg.Overlap, cfg.ChunkSize)
	}
	if span := detect.MaxSpan(cfg.Detectors); cfg.Overlap < span {
		return fmt.Errorf("%w: overlap %d is smaller than the longest detectable motif (%d); boundary motifs would be lost", ErrConfig, cfg.Overlap, span)
	}
	if cfg.DedupeOverlap > 1 || cfg.HybridOverlap > 1 {
		return fmt.Errorf("%w: overlap fractions must be <= 1", ErrConfig)
	}
	return nil
}

// Scan runs the full engine over one sequence: chunk, dispatch detectors per
// window (in parallel when configured), rebase, deduplicate across window
// boundaries, resolve same-class overlaps, and derive hybrid and cluster
// regions. The final output is deterministically ordered regardless of
// worker count or window processing order.
func Scan(ctx context.Context, cfg Config, name string, text []byte) (*Result, error) {
	if cfg.ChunkSize < 0 || cfg.Overlap < 0 || cfg.ChunkThreshold < 0 {
		return nil, fmt.Errorf("%w: sizes must not be negative", ErrConfig)
	}
	cfg = withDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:          uuid.NewString(),
		SequenceName:   name,
		SequenceLength: len(text),
	}
	if len(text) == 0 {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Stage: "input", Window: -1, Message: "empty sequence: nothing to scan",
		})
		return res, nil
	}

	wins, err := seq.Split(len(text), cfg.ChunkThreshold, cfg.ChunkSize, cfg.Overlap)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	res.Windows = len(wins)

	sc := &scanState{
		cfg:   cfg,
		text:  text,
		wins:  wins,
		opts:  dispatch.Options{ConcurrencyThreshold: cfg.InnerThreshold, MaxParallel: cfg.InnerParallel},
		per:   make([][]motif.Candidate, len(wins)),
		start: time.Now(),
	}
	sc.run = sc.runWindow

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(wins) {
		workers = len(wins)
	}

	if workers <= 1 {
		sc.runSequential(ctx, res, nil)
	} else {
		sc.runParallel(ctx, res, workers)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	all := make([]motif.Candidate, 0, totalCandidates(sc.per))
	for i := range sc.per {
		merge.Rebase(sc.per[i], wins[i])
		all = append(all, sc.per[i]...)
	}
	merge.Sort(all)

	deduped := merge.Dedupe(all, cfg.DedupeOverlap)
	resolved := merge.Resolve(deduped)
	res.Motifs = resolved
	res.Hybrids = compose.Hybrids(resolved, cfg.HybridOverlap)
	res.Clusters = compose.Clusters(resolved, cfg.ClusterWindow, cfg.ClusterMinCount, cfg.ClusterMinClasses)

	sortDiagnostics(res.Diagnostics)
	return res, nil
}

type scanState struct {
	cfg  Config
	text []byte
	wins []seq.Window
	opts dispatch.Options
	per  [][]motif.Candidate
	run  func(context.Context, seq.Window) ([]motif.Candidate, []Diagnostic)

	start     time.Time
	processed int
}

// runWindow dispatches one window, converting detector faults and a window
// timeout into diagnostics. A timed-out window degrades to an empty result.
func (s *scanState) runWindow(ctx context.Context, w seq.Window) ([]motif.Candidate, []Diagnostic) {
	wctx := ctx
	cancel := func() {}
	if s.cfg.WindowTimeout > 0 {
		wctx, cancel = context.WithTimeout(ctx, s.cfg.WindowTimeout)
	}
	defer cancel()

	cands, faults := dispatch.Window(wctx, s.text[w.Start:w.End], s.cfg.Detectors, s.opts)
	if errors.Is(wctx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		return nil, []Diagnostic{{
			Stage: "window", Window: w.Index,
			Message: fmt.Sprintf("timed out after %s; window degraded to empty", s.cfg.WindowTimeout),
		}}
	}
	for i := range cands {
		cands[i].Window = w.Index
	}
	diags := make([]Diagnostic, 0, len(faults))
	for _, f := range faults {
		diags = append(diags, Diagnostic{
			Stage: "detector", Window: w.Index, Detector: f.Detector, Message: f.Err.Error(),
		})
	}
	return cands, diags
}

func (s *scanState) report(w seq.Window) {
	s.processed += w.Len()
	if s.cfg.Progress == nil {
		return
	}
	elapsed := time.Since(s.start)
	tp := 0.0
	if secs := elapsed.Seconds(); secs > 0 {
		tp = float64(s.processed) / secs
	}
	s.cfg.Progress(Progress{
		WindowIndex:    w.Index,
		TotalWindows:   len(s.wins),
		BasesProcessed: s.processed,
		Elapsed:        elapsed,
		Throughput:     tp,
	})
}

// runSequential processes windows one after another in-process. skip marks
// windows that already completed (used by the parallel fallback path).
func (s *scanState) runSequential(ctx context.Context, res *Result, skip []bool) {
	for _, w := range s.wins {
		if skip != nil && skip[w.Index] {
			continue
		}
		if ctx.Err() != nil {
			return
		}
		cands, diags := s.safeRun(ctx, w)
		s.per[w.Index] = cands
		res.Diagnostics = append(res.Diagnostics, diags...)
		s.report(w)
	}
}

// safeRun shields the sequential path from a window that keeps failing: a
// panic degrades that window to empty instead of taking down the scan.
func (s *scanState) safeRun(ctx context.Context, w seq.Window) (cands []motif.Candidate, diags []Diagnostic) {
	defer func() {
		if p := recover(); p != nil {
			cands = nil
			diags = []Diagnostic{{
				Stage: "window", Window: w.Index,
				Message: fmt.Sprintf("window processing failed (%v); degraded to empty", p),
			}}
		}
	}()
	return s.run(ctx, w)
}

// runParallel fans windows out to share-nothing workers: each receives its
// window over a channel and sends its candidate list back by value. On the
// first worker failure the orchestrator stops feeding the pool, keeps every
// completed window, and falls back to sequential processing for the rest.
func (s *scanState) runParallel(ctx context.Context, res *Result, workers int) {
	type winResult struct {
		index int
		cands []motif.Candidate
		diags []Diagnostic
		err   error
	}

	jobs := make(chan seq.Window)
	results := make(chan winResult, workers)
	stop := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for w := range jobs {
				func(w seq.Window) {
					defer func() {
						if p := recover(); p != nil {
							results <- winResult{index: w.Index, err: fmt.Errorf("window %d worker panicked: %v", w.Index, p)}
						}
					}()
					cands, diags := s.run(ctx, w)
					results <- winResult{index: w.Index, cands: cands, diags: diags}
				}(w)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, w := range s.wins {
			select {
			case jobs <- w:
			case <-stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	completed := make([]bool, len(s.wins))
	var failure error
	for r := range results {
		if r.err != nil {
			if failure == nil {
				failure = r.err
				close(stop)
			}
			continue
		}
		s.per[r.index] = r.cands
		res.Diagnostics = append(res.Diagnostics, r.diags...)
		completed[r.index] = true
		s.report(s.wins[r.index])
	}

	if ctx.Err() != nil {
		return
	}
	if failure != nil {
		res.Degraded = true
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Stage: "orchestrator", Window: -1,
			Message: fmt.Sprintf("parallel execution degraded (%v); remaining windows processed sequentially", failure),
		})
		s.runSequential(ctx, res, completed)
		return
	}
	// No failure: anything unfed (cancellation) is caught by the caller's
	// ctx check; otherwise every window completed.
	for i, ok := range completed {
		if !ok {
			s.per[i] = nil
		}
	}
}

func totalCandidates(per [][]motif.Candidate) int {
	n := 0
	for _, p := range per {
		n += len(p)
	}
	return n
}

func sortDiagnostics(ds []Diagnostic) {
	sort.Slice(ds, func(i, j int) bool {
		if ds[i].Window != ds[j].Window {
			return ds[i].Window < ds[j].Window
		}
		if ds[i].Stage != ds[j].Stage {
			return ds[i].Stage < ds[j].Stage
		}
		if ds[i].Detector != ds[j].Detector {
			return ds[i].Detector < ds[j].Detector
		}
		return ds[i].Message < ds[j].Message
	})
}
