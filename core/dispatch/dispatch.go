// core/dispatch/dispatch.go
package dispatch

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"motifscan-core/detect"
	"motifscan-core/motif"
)

// Options control how one window's detector set is dispatched.
type Options struct {
	// ConcurrencyThreshold is the window length above which detectors run on
	// a bounded worker group instead of one after another. <= 0 disables
	// in-window concurrency entirely.
	ConcurrencyThreshold int
	// MaxParallel caps the worker group size (<= 0 means one worker per
	// detector).
	MaxParallel int
}

// Fault records a detector failure on one window. The dispatch continues
// with the remaining detectors; the failed detector contributes nothing.
type Fault struct {
	Detector string
	Err      error
}

func (f Fault) String() string { return fmt.Sprintf("%s: %v", f.Detector, f.Err) }

// Window runs every registered detector over text and returns window-local
// candidates with normalized scores filled in from each Descriptor. A
// detector that returns an error or panics yields one Fault instead of
// aborting the dispatch.
func Window(ctx context.Context, text []byte, dets []detect.Registered, opts Options) ([]motif.Candidate, []Fault) {
	if len(dets) == 0 || len(text) == 0 {
		return nil, nil
	}
	if opts.ConcurrencyThreshold <= 0 || len(text) <= opts.ConcurrencyThreshold || len(dets) == 1 {
		return sequential(ctx, text, dets)
	}
	return parallel(ctx, text, dets, opts.MaxParallel)
}

func sequential(ctx context.Context, text []byte, dets []detect.Registered) ([]motif.Candidate, []Fault) {
	var (
		out    []motif.Candidate
		faults []Fault
	)
	for _, r := range dets {
		if err := ctx.Err(); err != nil {
			faults = append(faults, Fault{Detector: r.Desc.ID, Err: err})
			continue
		}
		cands, err := runOne(text, r)
		if err != nil {
			faults = append(faults, Fault{Detector: r.Desc.ID, Err: err})
			continue
		}
		out = append(out, cands...)
	}
	return out, faults
}

func parallel(ctx context.Context, text []byte, dets []detect.Registered, limit int) ([]motif.Candidate, []Fault) {
	if limit <= 0 {
		limit = len(dets)
	}
	var (
		mu     sync.Mutex
		out    []motif.Candidate
		faults []Fault
	)
	// Detectors never cancel each other: each reads the shared window text,
	// fills a private buffer, and merges it under the lock. The group exists
	// only to bound fan-out and observe ctx.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, r := range dets {
		r := r
		g.Go(func() error {
			var (
				cands []motif.Candidate
				err   error
			)
			if err = gctx.Err(); err == nil {
				cands, err = runOne(text, r)
			}
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				faults = append(faults, Fault{Detector: r.Desc.ID, Err: err})
				return nil
			}
			out = append(out, cands...)
			return nil
		})
	}
	_ = g.Wait()
	return out, faults
}

// runOne invokes a single detector, converting a panic into an error and
// stamping normalized scores.
func runOne(text []byte, r detect.Registered) (cands []motif.Candidate, err error) {
	defer func() {
		if p := recover(); p != nil {
			cands = nil
			err = fmt.Errorf("detector %s panicked: %v", r.Desc.ID, p)
		}
	}()
	cands, err = r.Det.Detect(text)
	if err != nil {
		return nil, fmt.Errorf("detector %s: %w", r.Desc.ID, err)
	}
	for i := range cands {
		cands[i].Score = r.Desc.Norm.Normalize(cands[i].RawScore)
	}
	return cands, nil
}
