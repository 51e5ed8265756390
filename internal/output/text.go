// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"motifscan-core/motif"

	"motifscan/internal/common"
	"motifscan/internal/pipeline"
)

// Header is the column line for text output.
const Header = "sequence\tkind\tclass\tsubclass\tstart\tend\tlength\tstrand\tscore\tcount"

// WriteText prints one row per motif, hybrid region, and cluster region.
// Motifs keep canonical position order unless sortByScore is set.
func WriteText(w io.Writer, list []*pipeline.Result, header, sortByScore bool) error {
	if header {
		if _, err := fmt.Fprintln(w, Header); err != nil {
			return err
		}
	}
	for _, res := range list {
		motifs := res.Motifs
		if sortByScore {
			motifs = append([]motif.Candidate(nil), res.Motifs...)
			common.SortByScore(motifs)
		}
		for _, m := range motifs {
			_, err := fmt.Fprintf(w, "%s\tmotif\t%s\t%s\t%d\t%d\t%d\t%s\t%s\t1\n",
				res.SequenceName, m.Class, m.Subclass,
				m.Start, m.End, m.Len(), m.Strand, common.FormatScore(m.Score))
			if err != nil {
				return err
			}
		}
		for _, h := range res.Hybrids {
			_, err := fmt.Fprintf(w, "%s\thybrid\t%s\t.\t%d\t%d\t%d\t.\t%s\t%d\n",
				res.SequenceName, common.JoinClasses(h.Classes),
				h.Start, h.End, h.End-h.Start, common.FormatScore(h.Score), len(h.Members))
			if err != nil {
				return err
			}
		}
		for _, c := range res.Clusters {
			_, err := fmt.Fprintf(w, "%s\tcluster\t%s\t.\t%d\t%d\t%d\t.\t.\t%d\n",
				res.SequenceName, common.JoinClasses(c.Classes),
				c.Start, c.End, c.End-c.Start, c.Count)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
