// Package design provides biquad coefficient design for the equalizer.
//
// Only the peaking-EQ (RBJ) shape is implemented; the runtime that applies
// the coefficients lives in dsp/filter/biquad.
package design

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// DefaultQ is the quality factor used for equalizer bands when the caller
// does not choose one. It gives roughly one-octave bandwidth, wide enough
// that ten bands cover the audible range without deep gaps.
const DefaultQ = 1.4

// Peaking designs a peaking-EQ biquad centered at freq (Hz) with the given
// gain in dB and quality factor q, for the given sample rate (Hz).
//
// A gain of exactly 0 dB returns the bit-exact identity coefficients
// {B0: 1}, not merely a numerically near-unity filter. Runtimes rely on
// this to key their bypass fast path off the same exact-zero comparison.
//
// No validation is performed: the caller must ensure sampleRate > 0 and
// 0 < freq < sampleRate/2. Out-of-range values yield a computable but
// physically meaningless (possibly unstable) filter.
func Peaking(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	if gainDB == 0.0 {
		return biquad.Identity()
	}

	a := math.Pow(10, gainDB/40)
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := 1 + alpha*a
	b1 := -2 * cw
	b2 := 1 - alpha*a
	a0 := 1 + alpha/a
	a1 := -2 * cw
	a2 := 1 - alpha/a

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
