package motif

import (
	"math"
	"testing"
)

func TestNormalizeBoundsLinear(t *testing.T) {
	n := Normalizer{RawMin: 0, RawMax: 100, Method: Linear}
	for _, raw := range []float64{0, 1, 33, 50, 99, 100} {
		s := n.Normalize(raw)
		if s < ScoreMin || s > ScoreMax {
			t.Errorf("raw %v: score %v outside [%v,%v]", raw, s, ScoreMin, ScoreMax)
		}
	}
	if got := n.Normalize(0); got != ScoreMin {
		t.Errorf("domain min should map to %v, got %v", ScoreMin, got)
	}
	if got := n.Normalize(100); got != ScoreMax {
		t.Errorf("domain max should map to %v, got %v", ScoreMax, got)
	}
	if got := n.Normalize(50); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("midpoint should map to 2.0, got %v", got)
	}
}

func TestNormalizeClampsOutsideDomain(t *testing.T) {
	n := Normalizer{RawMin: 10, RawMax: 20, Method: Linear}
	if got := n.Normalize(-5); got != ScoreMin {
		t.Errorf("below-domain input must clamp to %v, got %v", ScoreMin, got)
	}
	if got := n.Normalize(1e9); got != ScoreMax {
		t.Errorf("above-domain input must clamp to %v, got %v", ScoreMax, got)
	}
}

func TestNormalizeMonotonic(t *testing.T) {
	norms := []Normalizer{
		{RawMin: 0, RawMax: 50, Method: Linear},
		{RawMin: 1, RawMax: 1000, Method: Log},
		{RawMin: 0, RawMax: 10, Method: Custom, Fn: func(x float64) float64 { return x * x }},
	}
	for _, n := range norms {
		prev := math.Inf(-1)
		for raw := n.RawMin - 10; raw <= n.RawMax+10; raw += 0.5 {
			s := n.Normalize(raw)
			if s < prev-1e-12 {
				t.Fatalf("method %v: score decreased at raw=%v (%v -> %v)", n.Method, raw, prev, s)
			}
			if s < ScoreMin || s > ScoreMax {
				t.Fatalf("method %v: raw %v gave out-of-range score %v", n.Method, raw, s)
			}
			prev = s
		}
	}
}

func TestNormalizeDegenerateDomain(t *testing.T) {
	n := Normalizer{RawMin: 5, RawMax: 5, Method: Linear}
	if got := n.Normalize(5); got != ScoreMin {
		t.Errorf("degenerate domain should pin to %v, got %v", ScoreMin, got)
	}
}

func TestOverlapHelpers(t *testing.T) {
	a := Candidate{Start: 0, End: 10}
	b := Candidate{Start: 5, End: 20}
	if got := OverlapLen(a, b); got != 5 {
		t.Errorf("overlap length = %d, want 5", got)
	}
	if got := OverlapFrac(a, b); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("overlap fraction = %v, want 0.5 (relative to shorter)", got)
	}
	c := Candidate{Start: 10, End: 12}
	if OverlapLen(a, c) != 0 {
		t.Error("half-open adjacency must not count as overlap")
	}
}
