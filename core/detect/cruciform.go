// core/detect/cruciform.go
package detect

import (
	"motifscan-core/motif"
	"motifscan-core/seq"
)

// Cruciform detects inverted repeats: two reverse-complementary arms of
// cruMinArm..cruMaxArm bases around a spacer of at most cruMaxSpacer bases.
// For each arm boundary only the highest-scoring (longest-arm, then
// shortest-spacer) repeat is reported; residual same-class overlaps are the
// overlap resolver's job.
type Cruciform struct{}

const (
	cruMinArm    = 6
	cruMaxArm    = 20
	cruMaxSpacer = 8
	cruMaxSpan   = 2*cruMaxArm + cruMaxSpacer
)

func (Cruciform) Detect(text []byte) ([]motif.Candidate, error) {
	var out []motif.Candidate
	for i := cruMinArm; i < len(text); i++ {
		bestArm, bestSpacer := 0, 0
		for spacer := 0; spacer <= cruMaxSpacer; spacer++ {
			k := 0
			for k < cruMaxArm && i-1-k >= 0 && i+spacer+k < len(text) {
				l, r := text[i-1-k], text[i+spacer+k]
				if !isACGT(l) || l != seq.Comp(r) {
					break
				}
				k++
			}
			if k > bestArm {
				bestArm, bestSpacer = k, spacer
			}
		}
		if bestArm >= cruMinArm {
			start := i - bestArm
			end := i + bestSpacer + bestArm
			out = append(out, motif.Candidate{
				Class:    "cruciform",
				Subclass: "inverted_repeat",
				Start:    start,
				End:      end,
				Strand:   motif.None,
				RawScore: float64(bestArm),
				Seq:      string(text[start:end]),
			})
		}
	}
	return out, nil
}
