// core/detect/gquad.go
package detect

import "motifscan-core/motif"

// GQuad detects G-quadruplex motifs: four G-runs of at least g4MinRun bases
// separated by loops of 1..g4MaxLoop bases. The C-rich mirror of the same
// geometry is reported on the minus strand with subclass "c-rich".
type GQuad struct{}

const (
	g4MinRun  = 3
	g4MaxLoop = 7
	g4MaxSpan = 45
)

func (GQuad) Detect(text []byte) ([]motif.Candidate, error) {
	out := g4Scan(text, 'G', motif.Plus, "canonical")
	out = append(out, g4Scan(text, 'C', motif.Minus, "c-rich")...)
	return out, nil
}

func g4Scan(text []byte, base byte, strand, subclass string) []motif.Candidate {
	type run struct{ start, end int }
	var runs []run
	for i := 0; i < len(text); {
		if text[i] != base {
			i++
			continue
		}
		j := i
		for j < len(text) && text[j] == base {
			j++
		}
		if j-i >= g4MinRun {
			runs = append(runs, run{i, j})
		}
		i = j
	}

	var out []motif.Candidate
	for i := 0; i+3 < len(runs); i++ {
		ok := true
		for k := i; k < i+3; k++ {
			loop := runs[k+1].start - runs[k].end
			if loop < 1 || loop > g4MaxLoop {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		start, end := runs[i].start, runs[i+3].end
		if end-start > g4MaxSpan {
			continue
		}
		total, shortest := 0, runs[i].end-runs[i].start
		for k := i; k < i+4; k++ {
			l := runs[k].end - runs[k].start
			total += l
			if l < shortest {
				shortest = l
			}
		}
		// density of tract bases over the span, weighted by the weakest run
		raw := float64(total) / float64(end-start) * float64(shortest)
		out = append(out, motif.Candidate{
			Class:    "gquad",
			Subclass: subclass,
			Start:    start,
			End:      end,
			Strand:   strand,
			RawScore: raw,
			Seq:      string(text[start:end]),
		})
	}
	return out
}
