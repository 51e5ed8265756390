// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Record is one parsed FASTA sequence, uppercased.
type Record struct {
	ID  string
	Seq []byte
}

// ReadAll parses every record from r. Sequence lines are uppercased; the
// record ID is the header token before the first whitespace.
func ReadAll(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		out []Record
		id  string
		seq []byte
		n   int
	)
	flush := func() {
		if id == "" && len(seq) == 0 {
			return
		}
		out = append(out, Record{ID: id, Seq: seq})
		seq = nil
	}
	for sc.Scan() {
		n++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			fields := strings.Fields(string(line[1:]))
			if len(fields) == 0 {
				return nil, fmt.Errorf("line %d: empty FASTA header", n)
			}
			id = fields[0]
			continue
		}
		if id == "" {
			return nil, fmt.Errorf("line %d: sequence data before any FASTA header", n)
		}
		seq = append(seq, bytes.ToUpper(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	return out, nil
}

// ReadFile parses every record from path ("-" for stdin, gzip transparent).
func ReadFile(path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	recs, err := ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
