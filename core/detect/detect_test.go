package detect

import (
	"strings"
	"testing"

	"motifscan-core/motif"
)

func findClass(cands []motif.Candidate, class string) []motif.Candidate {
	var out []motif.Candidate
	for _, c := range cands {
		if c.Class == class {
			out = append(out, c)
		}
	}
	return out
}

func TestGQuadCanonical(t *testing.T) {
	text := []byte("TTTTT" + "GGGTTAGGGTTAGGGTTAGGG" + "TTTTT")
	cands, err := GQuad{}.Detect(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(cands) != 1 {
		t.Fatalf("expected one candidate, got %d: %+v", len(cands), cands)
	}
	c := cands[0]
	if c.Start != 5 || c.End != 26 {
		t.Errorf("unexpected span [%d,%d), want [5,26)", c.Start, c.End)
	}
	if c.Subclass != "canonical" || c.Strand != motif.Plus {
		t.Errorf("unexpected subclass/strand: %+v", c)
	}
	if c.Seq != "GGGTTAGGGTTAGGGTTAGGG" {
		t.Errorf("source text mismatch: %q", c.Seq)
	}
	if c.RawScore <= 0 {
		t.Errorf("raw score should be positive, got %v", c.RawScore)
	}
}

func TestGQuadCRichMinusStrand(t *testing.T) {
	text := []byte("CCCTAACCCTAACCCTAACCC")
	cands, err := GQuad{}.Detect(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(cands) != 1 {
		t.Fatalf("expected one candidate, got %d", len(cands))
	}
	if cands[0].Strand != motif.Minus || cands[0].Subclass != "c-rich" {
		t.Errorf("C-rich motif should be minus strand c-rich: %+v", cands[0])
	}
}

func TestGQuadRejectsLongLoops(t *testing.T) {
	text := []byte("GGGTTTTTTTTTTGGGTTTTTTTTTTGGGTTTTTTTTTTGGG")
	cands, err := GQuad{}.Detect(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(cands) != 0 {
		t.Fatalf("loops over the cap must not qualify, got %+v", cands)
	}
}

func TestSTRFindsTract(t *testing.T) {
	text := []byte("ACGT" + strings.Repeat("CAG", 8) + "ACGT")
	cands, err := STR{}.Detect(text)
	if err != nil {
		t.Fatal(err)
	}
	strs := findClass(cands, "str")
	if len(strs) != 1 {
		t.Fatalf("expected one tract, got %d: %+v", len(strs), strs)
	}
	c := strs[0]
	if c.Start != 4 || c.End != 4+24 {
		t.Errorf("unexpected span [%d,%d)", c.Start, c.End)
	}
	if c.Subclass != "unit3" {
		t.Errorf("unexpected subclass %q", c.Subclass)
	}
	if c.RawScore != 24 {
		t.Errorf("raw score %v, want tract length 24", c.RawScore)
	}
}

func TestSTRSkipsPeriodicUnits(t *testing.T) {
	// A poly-A tract must be reported once at unit 1, not again at 2..6.
	text := []byte(strings.Repeat("A", 20))
	cands, err := STR{}.Detect(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(cands) != 1 || cands[0].Subclass != "unit1" {
		t.Fatalf("expected a single unit1 tract, got %+v", cands)
	}
}

func TestZDNAAlternatingRun(t *testing.T) {
	text := []byte("AAAA" + strings.Repeat("GC", 10) + "AAAA")
	cands, err := ZDNA{}.Detect(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(cands) != 1 {
		t.Fatalf("expected one run, got %d: %+v", len(cands), cands)
	}
	c := cands[0]
	// the run legitimately extends one base right: the final C->A step still
	// alternates purine/pyrimidine
	if c.Start != 4 || c.End != 25 {
		t.Errorf("unexpected span [%d,%d), want [4,25)", c.Start, c.End)
	}
	// 19 GC/CG steps at weight 3 plus one CA step at weight 1
	if c.RawScore != 58 {
		t.Errorf("raw score %v, want 58", c.RawScore)
	}
}

func TestZDNAIgnoresShortRuns(t *testing.T) {
	cands, err := ZDNA{}.Detect([]byte("TTTTGCGCGTTTT"))
	if err != nil {
		t.Fatal(err)
	}
	if len(cands) != 0 {
		t.Fatalf("sub-minimum run must not qualify: %+v", cands)
	}
}

func TestCruciformInvertedRepeat(t *testing.T) {
	arm := "GATTCCGA"
	spacer := "TTT"
	// flanks chosen so the repeat cannot extend into them
	text := []byte("CCCCAAAA" + arm + spacer + string(revCompForTest(arm)) + "AAAACCCC")
	cands, err := Cruciform{}.Detect(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(cands) == 0 {
		t.Fatal("expected at least one inverted repeat")
	}
	best := cands[0]
	for _, c := range cands {
		if c.RawScore > best.RawScore {
			best = c
		}
	}
	if best.Start != 8 || best.End != 8+len(arm)*2+len(spacer) {
		t.Errorf("unexpected span [%d,%d)", best.Start, best.End)
	}
	if best.RawScore != float64(len(arm)) {
		t.Errorf("raw score %v, want arm length %d", best.RawScore, len(arm))
	}
}

func TestDefaultsDescribeThemselves(t *testing.T) {
	dets := Defaults()
	if len(dets) != 4 {
		t.Fatalf("expected 4 built-ins, got %d", len(dets))
	}
	seen := map[string]bool{}
	for _, d := range dets {
		if d.Desc.ID == "" || d.Desc.Class == "" || d.Det == nil {
			t.Errorf("incomplete registration: %+v", d.Desc)
		}
		if d.Desc.MaxSpan <= 0 {
			t.Errorf("%s: MaxSpan must be positive", d.Desc.ID)
		}
		if seen[d.Desc.ID] {
			t.Errorf("duplicate detector id %s", d.Desc.ID)
		}
		seen[d.Desc.ID] = true
	}
	if got := MaxSpan(dets); got != strMaxSpan {
		t.Errorf("MaxSpan = %d, want %d", got, strMaxSpan)
	}
}

func revCompForTest(s string) []byte {
	comp := map[byte]byte{'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A'}
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = comp[s[len(s)-1-i]]
	}
	return out
}
