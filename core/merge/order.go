// core/merge/order.go
package merge

import (
	"sort"

	"motifscan-core/motif"
)

// Less defines the canonical candidate order: Start, End, Class, Subclass,
// Strand. Every merge stage sorts with it, which is what makes the final
// output independent of window processing order and worker count.
func Less(a, b motif.Candidate) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	if a.End != b.End {
		return a.End < b.End
	}
	if a.Class != b.Class {
		return a.Class < b.Class
	}
	if a.Subclass != b.Subclass {
		return a.Subclass < b.Subclass
	}
	return a.Strand < b.Strand
}

// Sort orders candidates canonically in place.
func Sort(cands []motif.Candidate) {
	sort.Slice(cands, func(i, j int) bool { return Less(cands[i], cands[j]) })
}

// wins reports whether challenger c beats incumbent a when the two conflict:
// higher normalized score, then greater length, then earlier start. On a
// full tie the incumbent (first accepted) is retained.
func wins(c, a motif.Candidate) bool {
	if c.Score != a.Score {
		return c.Score > a.Score
	}
	if c.Len() != a.Len() {
		return c.Len() > a.Len()
	}
	return c.Start < a.Start
}
