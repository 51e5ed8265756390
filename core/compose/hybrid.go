// core/compose/hybrid.go
package compose

import (
	"sort"

	"motifscan-core/merge"
	"motifscan-core/motif"
)

// DefaultHybridOverlap is the overlap fraction (relative to the shorter
// member) above which two candidates of different classes are joined into
// one hybrid region.
const DefaultHybridOverlap = 0.5

// HybridRegion is a composite over two or more overlapping candidates of
// distinct classes. Span is the union of the members; Score is the maximum
// member score. Max is a documented choice: a mean or weighted sum would be
// equally defensible, this engine picks the strongest member.
type HybridRegion struct {
	Start   int
	End     int
	Classes []string
	Score   float64
	Members []motif.Candidate
}

// Len returns the region span length.
func (h HybridRegion) Len() int { return h.End - h.Start }

// Hybrids sweeps the resolved candidate set once and groups cross-class
// pairs whose overlap fraction (relative to the shorter) reaches minFrac.
// Transitively linked pairs merge into one region via union-find. The input
// is re-sorted internally, so the result is independent of input order.
func Hybrids(cands []motif.Candidate, minFrac float64) []HybridRegion {
	if minFrac <= 0 {
		minFrac = DefaultHybridOverlap
	}
	if len(cands) < 2 {
		return nil
	}
	sorted := make([]motif.Candidate, len(cands))
	copy(sorted, cands)
	merge.Sort(sorted)

	parent := make([]int, len(sorted))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[rb] = ra
		}
	}

	type act struct {
		end int
		idx int
	}
	linked := make([]bool, len(sorted))
	var active []act
	for i, c := range sorted {
		j := sort.Search(len(active), func(k int) bool { return active[k].end > c.Start })
		active = active[j:]
		for _, a := range active {
			o := sorted[a.idx]
			if o.Class == c.Class {
				continue
			}
			if motif.OverlapFrac(o, c) >= minFrac {
				union(a.idx, i)
				linked[a.idx], linked[i] = true, true
			}
		}
		pos := sort.Search(len(active), func(k int) bool { return active[k].end > c.End })
		active = append(active, act{})
		copy(active[pos+1:], active[pos:])
		active[pos] = act{end: c.End, idx: i}
	}

	groups := make(map[int][]int)
	for i := range sorted {
		if linked[i] {
			r := find(i)
			groups[r] = append(groups[r], i)
		}
	}

	out := make([]HybridRegion, 0, len(groups))
	for _, idxs := range groups {
		sort.Ints(idxs)
		h := HybridRegion{Start: sorted[idxs[0]].Start, End: sorted[idxs[0]].End}
		classes := make(map[string]struct{})
		for _, i := range idxs {
			c := sorted[i]
			if c.Start < h.Start {
				h.Start = c.Start
			}
			if c.End > h.End {
				h.End = c.End
			}
			if c.Score > h.Score {
				h.Score = c.Score
			}
			classes[c.Class] = struct{}{}
			h.Members = append(h.Members, c)
		}
		for cl := range classes {
			h.Classes = append(h.Classes, cl)
		}
		sort.Strings(h.Classes)
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})
	return out
}
