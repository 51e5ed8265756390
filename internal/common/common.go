// internal/common/common.go
package common

import (
	"fmt"
	"sort"
	"strings"

	"motifscan-core/motif"
)

// FormatScore renders a normalized score for text and report output.
func FormatScore(s float64) string {
	return fmt.Sprintf("%.2f", s)
}

// JoinClasses renders a class list as a stable "a+b+c" label.
func JoinClasses(classes []string) string {
	return strings.Join(classes, "+")
}

// SortByScore orders candidates by descending score, breaking ties by
// position so the ordering stays deterministic.
func SortByScore(cands []motif.Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score != cands[j].Score {
			return cands[i].Score > cands[j].Score
		}
		if cands[i].Start != cands[j].Start {
			return cands[i].Start < cands[j].Start
		}
		return cands[i].End < cands[j].End
	})
}
