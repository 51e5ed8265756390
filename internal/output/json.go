// internal/output/json.go
package output

import (
	"io"

	"motifscan/internal/jsonutil"
	"motifscan/internal/pipeline"
	"motifscan/pkg/api"
)

// ToAPIResult converts a scan Result to the stable wire schema (v1).
func ToAPIResult(res *pipeline.Result) api.ResultV1 {
	v := api.ResultV1{
		RunID:    res.RunID,
		Sequence: res.SequenceName,
		Length:   res.SequenceLength,
		Windows:  res.Windows,
		Motifs:   make([]api.MotifV1, 0, len(res.Motifs)),
		Degraded: res.Degraded,
	}
	for _, m := range res.Motifs {
		v.Motifs = append(v.Motifs, api.MotifV1{
			Class:    m.Class,
			Subclass: m.Subclass,
			Start:    m.Start,
			End:      m.End,
			Length:   m.Len(),
			Strand:   m.Strand,
			Score:    m.Score,
			RawScore: m.RawScore,
			Seq:      m.Seq,
		})
	}
	for _, h := range res.Hybrids {
		v.Hybrids = append(v.Hybrids, api.HybridV1{
			Start:   h.Start,
			End:     h.End,
			Classes: append([]string(nil), h.Classes...),
			Score:   h.Score,
			Members: len(h.Members),
		})
	}
	for _, c := range res.Clusters {
		v.Clusters = append(v.Clusters, api.ClusterV1{
			Start:   c.Start,
			End:     c.End,
			Count:   c.Count,
			Classes: append([]string(nil), c.Classes...),
		})
	}
	for _, d := range res.Diagnostics {
		v.Diagnostics = append(v.Diagnostics, api.DiagnosticV1{
			Stage:    d.Stage,
			Window:   d.Window,
			Detector: d.Detector,
			Message:  d.Message,
		})
	}
	return v
}

// WriteJSON writes a single JSON array of v1 results (pretty-indented).
func WriteJSON(w io.Writer, list []*pipeline.Result) error {
	out := make([]api.ResultV1, 0, len(list))
	for _, res := range list {
		out = append(out, ToAPIResult(res))
	}
	return jsonutil.EncodePretty(w, out)
}
