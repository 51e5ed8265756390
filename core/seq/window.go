// core/seq/window.go
package seq

import "fmt"

// Window is one contiguous slice of the input sequence in global 0-based
// half-open coordinates. Overlap is the number of bases shared with the
// following window (0 for the last).
type Window struct {
	Index   int
	Start   int
	End     int
	Overlap int
}

// Len returns the window length in bases.
func (w Window) Len() int { return w.End - w.Start }

// Split cuts a sequence of length n into overlapping windows. Sequences no
// longer than threshold come back as a single window covering everything.
// Otherwise windows advance by chunk-overlap and the final window is clipped
// to n. Overlap must be at least the longest match any detector can report,
// so an occurrence straddling a boundary is fully contained in one window;
// that bound is the caller's to enforce.
func Split(n, threshold, chunk, overlap int) ([]Window, error) {
	if n < 0 {
		return nil, fmt.Errorf("sequence length must be >= 0, got %d", n)
	}
	if chunk <= 0 {
		return nil, fmt.Errorf("chunk size must be > 0, got %d", chunk)
	}
	if overlap < 0 || overlap >= chunk {
		return nil, fmt.Errorf("overlap must be in [0,%d), got %d", chunk, overlap)
	}
	if n <= threshold || n <= chunk {
		return []Window{{Index: 0, Start: 0, End: n}}, nil
	}

	step := chunk - overlap
	wins := make([]Window, 0, n/step+1)
	for start := 0; ; start += step {
		end := start + chunk
		if end >= n {
			wins = append(wins, Window{Index: len(wins), Start: start, End: n})
			return wins, nil
		}
		wins = append(wins, Window{Index: len(wins), Start: start, End: end, Overlap: overlap})
	}
}
