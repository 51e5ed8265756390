// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"motifscan/internal/app"
	"motifscan/pkg/api"
)

// testFASTA is a neutral repeat with one G-quadruplex planted mid-sequence.
func testFASTA() string {
	seq := []byte(strings.Repeat("AATCGTTG", 60))
	copy(seq[102:], "GGGTTAGGGTTAGGGTTAGGG")
	return ">s test sequence\n" + string(seq) + "\n"
}

func write(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestEndToEnd(t *testing.T) {
	fa := write(t, "itest.fa", testFASTA())

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--sequences", fa}, &out, &errBuf)

	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "gquad") {
		t.Fatalf("expected a gquad row, got:\n%s", out.String())
	}
	if !strings.HasPrefix(out.String(), "sequence\t") {
		t.Fatalf("expected a header line, got:\n%s", out.String())
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	fa := write(t, "par.fa", testFASTA())

	run := func(threads int) string {
		var out, errB bytes.Buffer
		code := app.Run([]string{
			"--sequences", fa,
			"--threads", fmt.Sprint(threads),
			"--chunk-size", "200",
			"--chunk-threshold", "50",
			"--overlap", "120",
		}, &out, &errB)
		if code != 0 {
			t.Fatalf("exit %d err %s", code, errB.String())
		}
		return out.String()
	}

	serial := run(1)
	parallel := run(4)

	if serial != parallel {
		t.Fatalf("parallel output differs from serial\nserial: %s\nparallel:%s", serial, parallel)
	}
}

func TestJSONOutput(t *testing.T) {
	fa := write(t, "json.fa", testFASTA())

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--sequences", fa, "--output", "json"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errBuf.String())
	}
	var got []api.ResultV1
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 1 || got[0].Sequence != "s" {
		t.Fatalf("unexpected results %+v", got)
	}
	if len(got[0].Motifs) == 0 {
		t.Fatal("expected at least one motif")
	}
	if got[0].RunID == "" {
		t.Fatal("run_id must be stamped")
	}
}

func TestConfigProfile(t *testing.T) {
	fa := write(t, "prof.fa", testFASTA())
	cfgFile := write(t, "scan.yaml", "output: json\nquiet: true\n")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--sequences", fa, "--config", cfgFile}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errBuf.String())
	}
	if !json.Valid(out.Bytes()) {
		t.Fatalf("profile output=json not honored:\n%s", out.String())
	}
}

func TestUsageErrors(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := app.Run([]string{"--sequences"}, &out, &errBuf); code != 2 {
		t.Fatalf("missing flag value: expected exit 2, got %d", code)
	}
	out.Reset()
	errBuf.Reset()
	if code := app.Run([]string{"--sequences", "x.fa", "--output", "xml"}, &out, &errBuf); code != 2 {
		t.Fatalf("bad output format: expected exit 2, got %d", code)
	}
}

func TestMissingInputFile(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := app.Run([]string{"--sequences", "does-not-exist.fa"}, &out, &errBuf); code != 3 {
		t.Fatalf("unreadable input: expected exit 3, got %d", code)
	}
}

func TestNoMotifExitCode(t *testing.T) {
	fa := write(t, "plain.fa", ">s\n"+strings.Repeat("AATCGTTG", 30)+"\n")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--sequences", fa, "--no-motif-exit-code", "1"}, &out, &errBuf)
	if code != 1 {
		t.Fatalf("expected opt-in exit 1 for a motif-free scan, got %d", code)
	}
}

func TestVersionFlag(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := app.Run([]string{"--version"}, &out, &errBuf); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out.String(), "motifscan version") {
		t.Fatalf("unexpected version output %q", out.String())
	}
}
