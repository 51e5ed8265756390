// core/detect/zdna.go
package detect

import "motifscan-core/motif"

// ZDNA detects Z-prone tracts: runs of alternating purine/pyrimidine steps
// of at least zMinLen bases. GC/CG steps carry the highest weight, AT/TA the
// lowest, matching their relative propensity to adopt the left-handed form.
type ZDNA struct{}

const (
	zMinLen  = 10
	zMaxSpan = 100
	zMinRaw  = 4.5 // weakest qualifying run: 9 AT steps
	zMaxRaw  = 297 // strongest capped run: 99 GC steps
)

func zWeight(a, b byte) float64 {
	switch {
	case (a == 'G' && b == 'C') || (a == 'C' && b == 'G'):
		return 3.0
	case (a == 'C' && b == 'A') || (a == 'A' && b == 'C'),
		(a == 'G' && b == 'T') || (a == 'T' && b == 'G'):
		return 1.0
	case (a == 'A' && b == 'T') || (a == 'T' && b == 'A'):
		return 0.5
	default:
		return -1 // not an alternating purine/pyrimidine step
	}
}

func (ZDNA) Detect(text []byte) ([]motif.Candidate, error) {
	var out []motif.Candidate
	for i := 0; i+1 < len(text); {
		if zWeight(text[i], text[i+1]) < 0 {
			i++
			continue
		}
		j := i + 1
		for j+1 < len(text) && zWeight(text[j], text[j+1]) >= 0 {
			j++
		}
		runLen := j - i + 1
		if runLen >= zMinLen {
			if runLen > zMaxSpan {
				runLen = zMaxSpan
			}
			end := i + runLen
			raw := 0.0
			for k := i; k+1 < end; k++ {
				raw += zWeight(text[k], text[k+1])
			}
			out = append(out, motif.Candidate{
				Class:    "zdna",
				Subclass: "alternating",
				Start:    i,
				End:      end,
				Strand:   motif.None,
				RawScore: raw,
				Seq:      string(text[i:end]),
			})
		}
		i = j + 1
	}
	return out, nil
}
