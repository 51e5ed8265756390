// core/merge/dedupe.go
package merge

import (
	"sort"

	"motifscan-core/motif"
)

// DefaultDedupeOverlap is the overlap fraction (relative to the shorter
// interval) above which two same-class, same-subclass candidates are treated
// as one motif reported twice by overlapping windows.
const DefaultDedupeOverlap = 0.5

type ivalKey struct{ class, subclass string }

type openIval struct {
	end int
	idx int
}

// collapse is the shared sweep behind Dedupe and Resolve: candidates are
// processed in canonical order while, per key, an index of still-open
// accepted intervals sorted by end supports binary-search lookup and
// insertion. dup decides whether an open interval conflicts with the
// incoming candidate; the winner is chosen by wins. Intervals ending at or
// before the incoming start are closed for good, so each accepted candidate
// enters and leaves the open set once and the sweep stays O(n log n).
func collapse(cands []motif.Candidate, keyOf func(motif.Candidate) ivalKey, dup func(a, c motif.Candidate) bool) []motif.Candidate {
	if len(cands) <= 1 {
		return append([]motif.Candidate(nil), cands...)
	}
	sorted := make([]motif.Candidate, len(cands))
	copy(sorted, cands)
	Sort(sorted)

	accepted := make([]motif.Candidate, 0, len(sorted))
	alive := make([]bool, 0, len(sorted))
	open := make(map[ivalKey][]openIval)

	for _, c := range sorted {
		k := keyOf(c)
		lst := open[k]
		i := sort.Search(len(lst), func(i int) bool { return lst[i].end > c.Start })
		lst = lst[i:]

		drop := false
		for _, o := range lst {
			if !alive[o.idx] {
				continue
			}
			a := accepted[o.idx]
			if !dup(a, c) {
				continue
			}
			if wins(c, a) {
				alive[o.idx] = false
			} else {
				drop = true
				break
			}
		}
		if !drop {
			idx := len(accepted)
			accepted = append(accepted, c)
			alive = append(alive, true)
			pos := sort.Search(len(lst), func(i int) bool { return lst[i].end > c.End })
			lst = append(lst, openIval{})
			copy(lst[pos+1:], lst[pos:])
			lst[pos] = openIval{end: c.End, idx: idx}
		}
		open[k] = lst
	}

	out := make([]motif.Candidate, 0, len(accepted))
	for i, a := range accepted {
		if alive[i] {
			out = append(out, a)
		}
	}
	return out
}

// Dedupe removes near-duplicate candidates produced by overlapping windows:
// same class and subclass, overlapping by at least minFrac of the shorter
// interval. Exact-coordinate matching is not enough here; a motif split
// across two windows is reported at two slightly different ranges, and on
// large inputs that silently loses every boundary-adjacent motif. The
// higher-scored duplicate survives (ties: longer, then earlier start).
// Output is in canonical order.
func Dedupe(cands []motif.Candidate, minFrac float64) []motif.Candidate {
	if minFrac <= 0 {
		minFrac = DefaultDedupeOverlap
	}
	return collapse(cands,
		func(c motif.Candidate) ivalKey { return ivalKey{c.Class, c.Subclass} },
		func(a, c motif.Candidate) bool {
			short := a.Len()
			if l := c.Len(); l < short {
				short = l
			}
			return float64(motif.OverlapLen(a, c)) >= minFrac*float64(short)
		})
}

// Resolve collapses the remaining same-class overlaps into a maximal
// non-conflicting subset: within one class any positive overlap is a
// conflict and only the winner stays. Cross-class overlaps are preserved
// deliberately; the hybrid composer depends on them. Output is in canonical
// order.
func Resolve(cands []motif.Candidate) []motif.Candidate {
	return collapse(cands,
		func(c motif.Candidate) ivalKey { return ivalKey{class: c.Class} },
		func(a, c motif.Candidate) bool { return motif.OverlapLen(a, c) > 0 })
}
