// core/compose/cluster.go
package compose

import (
	"sort"

	"motifscan-core/merge"
	"motifscan-core/motif"
)

// Cluster composer defaults.
const (
	DefaultClusterWindow     = 300
	DefaultClusterMinCount   = 4
	DefaultClusterMinClasses = 3
)

// ClusterRegion is a composite over a dense, class-diverse run of
// candidates: within some window-sized stretch at least minCount candidates
// of at least minClasses distinct classes start. Adjacent qualifying
// stretches merge into one maximal region.
type ClusterRegion struct {
	Start   int
	End     int
	Count   int
	Classes []string
	Members []motif.Candidate
}

// Len returns the region span length.
func (r ClusterRegion) Len() int { return r.End - r.Start }

// Clusters slides a window of the given size across the resolved candidate
// set with an incremental two-pointer sweep; every candidate enters and
// leaves the window exactly once, so the whole pass is O(n) after the sort.
func Clusters(cands []motif.Candidate, window, minCount, minClasses int) []ClusterRegion {
	if window <= 0 {
		window = DefaultClusterWindow
	}
	if minCount <= 0 {
		minCount = DefaultClusterMinCount
	}
	if minClasses <= 0 {
		minClasses = DefaultClusterMinClasses
	}
	if len(cands) < minCount {
		return nil
	}
	sorted := make([]motif.Candidate, len(cands))
	copy(sorted, cands)
	merge.Sort(sorted)

	classCount := make(map[string]int)
	distinct := 0
	add := func(c motif.Candidate) {
		if classCount[c.Class] == 0 {
			distinct++
		}
		classCount[c.Class]++
	}
	remove := func(c motif.Candidate) {
		classCount[c.Class]--
		if classCount[c.Class] == 0 {
			distinct--
		}
	}

	var out []ClusterRegion
	curFirst, curLast := -1, -1 // member index range of the region being built
	curQualEnd := 0             // end of the last qualifying window position
	flush := func() {
		if curFirst < 0 {
			return
		}
		members := sorted[curFirst : curLast+1]
		r := ClusterRegion{Start: members[0].Start, End: members[0].End, Count: len(members)}
		classes := make(map[string]struct{})
		for _, m := range members {
			if m.End > r.End {
				r.End = m.End
			}
			classes[m.Class] = struct{}{}
		}
		for cl := range classes {
			r.Classes = append(r.Classes, cl)
		}
		sort.Strings(r.Classes)
		r.Members = append([]motif.Candidate(nil), members...)
		out = append(out, r)
		curFirst, curLast = -1, -1
	}

	j := 0
	for i := range sorted {
		if i > 0 {
			remove(sorted[i-1])
		}
		for j < len(sorted) && sorted[j].Start < sorted[i].Start+window {
			add(sorted[j])
			j++
		}
		if j-i >= minCount && distinct >= minClasses {
			if curFirst >= 0 && sorted[i].Start <= curQualEnd {
				// qualifying windows overlap or abut: extend the region
				if j-1 > curLast {
					curLast = j - 1
				}
			} else {
				flush()
				curFirst, curLast = i, j-1
			}
			curQualEnd = sorted[i].Start + window
		}
	}
	flush()
	return out
}
