// pkg/api/results_v1.go
package api

// Stable JSON schema (v1) for scan results. Keep fields, names, and types
// stable. Add new fields only with ",omitempty".

// MotifV1 is one annotated motif occurrence in absolute coordinates.
type MotifV1 struct {
	Class    string  `json:"class"`
	Subclass string  `json:"subclass,omitempty"`
	Start    int     `json:"start"`
	End      int     `json:"end"`
	Length   int     `json:"length"`
	Strand   string  `json:"strand"`
	Score    float64 `json:"score"`
	RawScore float64 `json:"raw_score"`
	Seq      string  `json:"seq,omitempty"`
}

// HybridV1 is a composite region of overlapping motifs of distinct classes.
type HybridV1 struct {
	Start   int      `json:"start"`
	End     int      `json:"end"`
	Classes []string `json:"classes"`
	Score   float64  `json:"score"`
	Members int      `json:"members"`
}

// ClusterV1 is a motif-dense region.
type ClusterV1 struct {
	Start   int      `json:"start"`
	End     int      `json:"end"`
	Count   int      `json:"count"`
	Classes []string `json:"classes"`
}

// DiagnosticV1 records a non-fatal degradation that occurred during the scan.
type DiagnosticV1 struct {
	Stage    string `json:"stage"`
	Window   int    `json:"window"`
	Detector string `json:"detector,omitempty"`
	Message  string `json:"message"`
}

// ResultV1 is the complete annotation set for one sequence.
type ResultV1 struct {
	RunID       string         `json:"run_id"`
	Sequence    string         `json:"sequence"`
	Length      int            `json:"length"`
	Windows     int            `json:"windows"`
	Motifs      []MotifV1      `json:"motifs"`
	Hybrids     []HybridV1     `json:"hybrids,omitempty"`
	Clusters    []ClusterV1    `json:"clusters,omitempty"`
	Diagnostics []DiagnosticV1 `json:"diagnostics,omitempty"`
	Degraded    bool           `json:"degraded,omitempty"`
}
