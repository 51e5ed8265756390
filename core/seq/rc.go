// core/seq/rc.go
package seq

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
	complement['N'] = 'N'
}

// Comp returns the complement of a single base ('N' for anything unknown).
func Comp(b byte) byte {
	c := complement[b]
	if c == 0 {
		c = 'N'
	}
	return c
}

// RevComp returns the reverse complement of seq.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = Comp(seq[n-1-i])
	}
	return out
}
