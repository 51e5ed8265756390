// core/detect/detect.go
package detect

import "motifscan-core/motif"

// Detector finds motif occurrences in one window of sequence text.
// Implementations must be safe for concurrent use: Detect only reads the
// shared window bytes and returns freshly allocated candidates carrying
// window-local coordinates and raw scores. Normalization onto the universal
// scale happens in the dispatcher, driven by the Descriptor.
type Detector interface {
	Detect(text []byte) ([]motif.Candidate, error)
}

// Descriptor identifies a detector and declares its score domain. It is
// supplied once at registration and never mutated afterwards. MaxSpan is the
// longest match the detector can report; callers use it to size the chunk
// overlap so no true occurrence can straddle a window boundary unseen.
type Descriptor struct {
	ID      string
	Class   string
	MaxSpan int
	Norm    motif.Normalizer
}

// Registered pairs a Detector with its Descriptor.
type Registered struct {
	Desc Descriptor
	Det  Detector
}

// MaxSpan returns the largest MaxSpan across the set (0 for an empty set).
func MaxSpan(dets []Registered) int {
	m := 0
	for _, d := range dets {
		if d.Desc.MaxSpan > m {
			m = d.Desc.MaxSpan
		}
	}
	return m
}

// Defaults returns the built-in detector set.
func Defaults() []Registered {
	return []Registered{
		{
			Desc: Descriptor{
				ID: "gquad", Class: "gquad", MaxSpan: g4MaxSpan,
				Norm: motif.Normalizer{RawMin: 0, RawMax: 10, Method: motif.Log},
			},
			Det: GQuad{},
		},
		{
			Desc: Descriptor{
				ID: "str", Class: "str", MaxSpan: strMaxSpan,
				Norm: motif.Normalizer{RawMin: strMinTract, RawMax: strMaxSpan, Method: motif.Log},
			},
			Det: STR{},
		},
		{
			Desc: Descriptor{
				ID: "zdna", Class: "zdna", MaxSpan: zMaxSpan,
				Norm: motif.Normalizer{RawMin: zMinRaw, RawMax: zMaxRaw, Method: motif.Linear},
			},
			Det: ZDNA{},
		},
		{
			Desc: Descriptor{
				ID: "cruciform", Class: "cruciform", MaxSpan: cruMaxSpan,
				Norm: motif.Normalizer{RawMin: cruMinArm, RawMax: cruMaxArm, Method: motif.Linear},
			},
			Det: Cruciform{},
		},
	}
}

func isACGT(b byte) bool {
	return b == 'A' || b == 'C' || b == 'G' || b == 'T'
}
