package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motifscan-core/compose"
	"motifscan-core/motif"

	"motifscan/internal/pipeline"
	"motifscan/pkg/api"
)

func sampleResult() *pipeline.Result {
	return &pipeline.Result{
		RunID:          "run-1",
		SequenceName:   "chr1",
		SequenceLength: 1000,
		Windows:        1,
		Motifs: []motif.Candidate{
			{Class: "gquad", Subclass: "canonical", Start: 100, End: 121, Strand: motif.Plus, RawScore: 12, Score: 2.40, Seq: "G", Window: -1},
			{Class: "zdna", Subclass: "alternating", Start: 110, End: 130, Strand: motif.None, RawScore: 30, Score: 1.80, Window: -1},
		},
		Hybrids: []compose.HybridRegion{
			{Start: 100, End: 130, Classes: []string{"gquad", "zdna"}, Score: 2.40,
				Members: []motif.Candidate{{Class: "gquad"}, {Class: "zdna"}}},
		},
		Clusters: []compose.ClusterRegion{
			{Start: 90, End: 400, Count: 5, Classes: []string{"gquad", "str", "zdna"}},
		},
		Diagnostics: []pipeline.Diagnostic{
			{Stage: "detector", Window: 0, Detector: "zdna", Message: "boom"},
		},
	}
}

func TestWriteTextRowsAndHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, []*pipeline.Result{sampleResult()}, true, false))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5, "header + 2 motifs + 1 hybrid + 1 cluster")
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "chr1\tmotif\tgquad\tcanonical\t100\t121\t21\t+\t2.40\t1", lines[1])
	assert.Equal(t, "chr1\thybrid\tgquad+zdna\t.\t100\t130\t30\t.\t2.40\t2", lines[3])
	assert.Equal(t, "chr1\tcluster\tgquad+str+zdna\t.\t90\t400\t310\t.\t.\t5", lines[4])
}

func TestWriteTextNoHeaderSortedByScore(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, []*pipeline.Result{sampleResult()}, false, true))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "\tgquad\t", "highest score first")
	assert.Contains(t, lines[1], "\tzdna\t")
}

func TestWriteTextSortDoesNotMutateResult(t *testing.T) {
	res := sampleResult()
	res.Motifs[0].Score, res.Motifs[1].Score = 1.1, 2.9 // position order != score order
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, []*pipeline.Result{res}, false, true))
	assert.Equal(t, "gquad", res.Motifs[0].Class, "caller's slice must keep position order")
}

func TestWriteJSONStableSchema(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []*pipeline.Result{sampleResult()}))

	var got []api.ResultV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "run-1", got[0].RunID)
	assert.Equal(t, "chr1", got[0].Sequence)
	require.Len(t, got[0].Motifs, 2)
	assert.Equal(t, 21, got[0].Motifs[0].Length)
	require.Len(t, got[0].Hybrids, 1)
	assert.Equal(t, 2, got[0].Hybrids[0].Members)
	require.Len(t, got[0].Diagnostics, 1)
	assert.Equal(t, "zdna", got[0].Diagnostics[0].Detector)
}
