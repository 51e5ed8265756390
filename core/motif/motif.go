// core/motif/motif.go
package motif

// Strand markers.
const (
	Plus  = "+"
	Minus = "-"
	None  = "."
)

// Candidate is one detected motif occurrence. Start/End are 0-based
// half-open, window-local until rebased and global afterwards. Window is the
// origin window index and is cleared to -1 by the rebase step; identity from
// that point on is (Class, Subclass, Start, End).
type Candidate struct {
	Class    string
	Subclass string
	Start    int
	End      int
	Strand   string
	RawScore float64
	Score    float64 // normalized onto [ScoreMin, ScoreMax]
	Seq      string
	Window   int
}

// Len returns the candidate span length.
func (c Candidate) Len() int { return c.End - c.Start }

// OverlapLen returns the number of positions shared by a and b.
func OverlapLen(a, b Candidate) int {
	lo := a.Start
	if b.Start > lo {
		lo = b.Start
	}
	hi := a.End
	if b.End < hi {
		hi = b.End
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// OverlapFrac returns the shared length relative to the shorter of the two
// candidates (0 when either is empty).
func OverlapFrac(a, b Candidate) float64 {
	short := a.Len()
	if l := b.Len(); l < short {
		short = l
	}
	if short <= 0 {
		return 0
	}
	return float64(OverlapLen(a, b)) / float64(short)
}
