// core/merge/rebase.go
package merge

import (
	"motifscan-core/motif"
	"motifscan-core/seq"
)

// Rebase shifts one window's candidates from window-local to global
// coordinates and clears the origin window index. It is applied exactly once
// per candidate; from here on identity is (Class, Subclass, Start, End).
func Rebase(cands []motif.Candidate, win seq.Window) {
	for i := range cands {
		cands[i].Start += win.Start
		cands[i].End += win.Start
		cands[i].Window = -1
	}
}
