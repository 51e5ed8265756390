// core/motif/score.go
package motif

import "math"

// Bounds of the universal normalized score scale. Every detector's raw
// domain maps onto this range, whatever its native units.
const (
	ScoreMin = 1.0
	ScoreMax = 3.0
)

// Method selects how a raw score maps onto the universal scale.
type Method int

const (
	Linear Method = iota
	Log
	Custom
)

// Normalizer maps a detector's raw score domain [RawMin,RawMax] onto
// [ScoreMin,ScoreMax]. The mapping is monotonic non-decreasing and clamps
// out-of-domain inputs to the nearest bound. Fn is consulted for Custom only
// and must itself be monotonic non-decreasing over the raw domain.
type Normalizer struct {
	RawMin float64
	RawMax float64
	Method Method
	Fn     func(float64) float64
}

// Normalize converts one raw score to the universal scale.
func (n Normalizer) Normalize(raw float64) float64 {
	lo, hi := n.RawMin, n.RawMax
	if raw < lo {
		raw = lo
	}
	if raw > hi {
		raw = hi
	}
	switch n.Method {
	case Log:
		// Shift so the whole domain sits at >= 1 before taking the log.
		shift := 1 - lo
		raw = math.Log(raw + shift)
		hi = math.Log(hi + shift)
		lo = 0
	case Custom:
		if n.Fn != nil {
			raw = n.Fn(raw)
			lo = n.Fn(n.RawMin)
			hi = n.Fn(n.RawMax)
		}
	}
	if hi <= lo {
		return ScoreMin
	}
	s := ScoreMin + (ScoreMax-ScoreMin)*(raw-lo)/(hi-lo)
	if s < ScoreMin {
		return ScoreMin
	}
	if s > ScoreMax {
		return ScoreMax
	}
	return s
}
