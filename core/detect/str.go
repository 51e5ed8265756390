// core/detect/str.go
package detect

import (
	"fmt"

	"motifscan-core/motif"
)

// STR detects short tandem repeats (slipped-structure motifs): a unit of
// 1..strMaxUnit bases repeated back to back. Units that are themselves
// periodic are skipped so a tract is reported once, at its smallest unit.
type STR struct{}

const (
	strMaxUnit   = 6
	strMinCopies = 3
	strMinTract  = 12
	strMaxSpan   = 120
)

func (STR) Detect(text []byte) ([]motif.Candidate, error) {
	var out []motif.Candidate
	for unit := 1; unit <= strMaxUnit; unit++ {
		for i := 0; i+2*unit <= len(text); {
			pat := text[i : i+unit]
			if !allACGT(pat) || smallestPeriod(pat) != unit {
				i++
				continue
			}
			j := i + unit
			for j < len(text) && text[j] == text[j-unit] {
				j++
			}
			tract := j - i
			if tract/unit >= strMinCopies && tract >= strMinTract {
				if tract > strMaxSpan {
					tract = strMaxSpan
				}
				end := i + tract
				out = append(out, motif.Candidate{
					Class:    "str",
					Subclass: fmt.Sprintf("unit%d", unit),
					Start:    i,
					End:      end,
					Strand:   motif.None,
					RawScore: float64(tract),
					Seq:      string(text[i:end]),
				})
				i = j
				continue
			}
			i++
		}
	}
	return out, nil
}

func allACGT(p []byte) bool {
	for _, b := range p {
		if !isACGT(b) {
			return false
		}
	}
	return true
}

// smallestPeriod returns the shortest p such that s is a prefix of an
// infinite repetition of s[:p].
func smallestPeriod(s []byte) int {
	for p := 1; p < len(s); p++ {
		ok := true
		for k := p; k < len(s); k++ {
			if s[k] != s[k-p] {
				ok = false
				break
			}
		}
		if ok {
			return p
		}
	}
	return len(s)
}
