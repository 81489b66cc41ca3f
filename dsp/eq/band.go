package eq

import (
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

// Band is one peaking-EQ band: a center frequency fixed for the band's
// lifetime, a mutable gain, and a stereo biquad carrying the filter state.
type Band struct {
	frequency  float64
	q          float64
	sampleRate float64
	gainDB     float64

	section biquad.StereoSection
}

// NewBand creates a band at the given center frequency (Hz) with an initial
// gain (dB) and quality factor q ([design.DefaultQ] is the usual choice).
// Coefficients are computed immediately.
//
// No validation is performed: the caller must ensure sampleRate > 0 and
// 0 < frequency < sampleRate/2.
func NewBand(sampleRate, frequency, gainDB, q float64) *Band {
	b := &Band{
		frequency:  frequency,
		q:          q,
		sampleRate: sampleRate,
		gainDB:     gainDB,
	}
	b.section.Coefficients = design.Peaking(frequency, gainDB, q, sampleRate)

	return b
}

// Frequency returns the band's center frequency in Hz.
func (b *Band) Frequency() float64 { return b.frequency }

// Q returns the band's quality factor.
func (b *Band) Q() float64 { return b.q }

// Gain returns the band's current gain in dB.
func (b *Band) Gain() float64 { return b.gainDB }

// SampleRate returns the sample rate the band was designed for.
func (b *Band) SampleRate() float64 { return b.sampleRate }

// Coefficients returns the band's current biquad coefficients.
func (b *Band) Coefficients() biquad.Coefficients { return b.section.Coefficients }

// SetGain updates the band gain and recomputes the coefficients. Setting
// the current value is a no-op.
//
// The channel histories are deliberately kept: the new coefficients take
// effect on the next sample using the old state, which can produce a brief
// transient. Resetting here would instead produce a click from the sudden
// state discontinuity, and would make sweeping a slider audibly stutter.
func (b *Band) SetGain(gainDB float64) {
	if b.gainDB == gainDB {
		return
	}

	b.gainDB = gainDB
	b.section.Coefficients = design.Peaking(b.frequency, gainDB, b.q, b.sampleRate)
}

// ProcessInterleaved filters an interleaved stereo buffer (L, R, L, R, ...)
// and returns the result.
//
// At exactly 0 dB the band is bit-exact transparent and the input slice is
// returned unchanged, with no allocation. Otherwise a new output buffer of
// equal length is allocated and both channels are filtered independently.
// A trailing unpaired sample in an odd-length buffer is filtered through
// the left channel.
func (b *Band) ProcessInterleaved(buf []float64) []float64 {
	if b.gainDB == 0.0 {
		return buf
	}

	out := make([]float64, len(buf))
	b.section.ProcessInterleavedTo(out, buf)

	return out
}

// Reset zeroes the channel histories of both channels. Coefficients are
// untouched.
func (b *Band) Reset() {
	b.section.Reset()
}
