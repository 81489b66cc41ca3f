package eq

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

// NumBands is the fixed number of equalizer bands.
const NumBands = 10

// DefaultSampleRate is the conventional construction rate when the host has
// not negotiated one yet.
const DefaultSampleRate = 44100

// frequencies holds the canonical band centers in Hz, ascending. The list
// is fixed: bands are rebuilt on a sample-rate change but the centers never
// move.
var frequencies = [NumBands]float64{31, 62, 125, 250, 500, 1000, 2000, 4000, 8000, 16000}

// Frequencies returns the canonical center frequencies (Hz) of the ten
// bands, ascending.
func Frequencies() []float64 {
	out := make([]float64, NumBands)
	copy(out, frequencies[:])
	return out
}

// Processor is a ten-band stereo equalizer: a cascade of peaking-EQ biquads
// at the canonical center frequencies, applied in ascending order.
//
// Process is the steady-state hot path and is meant to be driven by a
// single audio thread. The processor performs no internal locking; callers
// that let control methods run concurrently with Process must serialize
// them externally.
type Processor struct {
	sampleRate float64
	enabled    bool
	bands      [NumBands]Band

	// scratch is reused across Process calls so that an active cascade
	// costs no per-call allocation in steady state.
	scratch []float64
}

// NewProcessor creates an equalizer for the given sample rate (Hz) with all
// bands at 0 dB and processing disabled.
//
// The sample rate is not validated; the caller must ensure it is positive
// and above twice the highest band frequency (32 kHz for the canonical
// 16 kHz top band).
func NewProcessor(sampleRate float64) *Processor {
	p := &Processor{sampleRate: sampleRate}
	p.rebuild(nil)

	return p
}

// rebuild constructs all ten bands from scratch at the current sample rate,
// applying gains[i] where provided and 0 dB otherwise. All filter history
// is lost.
func (p *Processor) rebuild(gains []float64) {
	for i := range p.bands {
		g := 0.0
		if i < len(gains) {
			g = gains[i]
		}
		p.bands[i] = *NewBand(p.sampleRate, frequencies[i], g, design.DefaultQ)
	}
}

// SampleRate returns the current sample rate in Hz.
func (p *Processor) SampleRate() float64 { return p.sampleRate }

// Enabled reports whether processing is active.
func (p *Processor) Enabled() bool { return p.enabled }

// SetEnabled switches the processor between its identity (disabled) and
// cascading (enabled) states. Filter history is kept across toggles.
func (p *Processor) SetEnabled(enabled bool) { p.enabled = enabled }

// SetBands applies gains[i] (dB) to band i for i < min(len(gains), 10).
// Extra values are ignored; when fewer than ten are supplied the remaining
// bands keep their current gain.
func (p *Processor) SetBands(gains []float64) {
	n := len(gains)
	if n > NumBands {
		n = NumBands
	}

	for i := 0; i < n; i++ {
		p.bands[i].SetGain(gains[i])
	}
}

// Gains returns the current gain (dB) of each band, ascending by frequency.
func (p *Processor) Gains() []float64 {
	out := make([]float64, NumBands)
	for i := range p.bands {
		out[i] = p.bands[i].Gain()
	}
	return out
}

// Gain returns the gain (dB) of band i. Band 0 is the lowest frequency.
func (p *Processor) Gain(i int) float64 { return p.bands[i].Gain() }

// Band returns the i-th band for inspection.
func (p *Processor) Band(i int) *Band { return &p.bands[i] }

// SetSampleRate changes the processing sample rate. Setting the current
// value is a no-op. Otherwise all ten bands are discarded and rebuilt at
// the new rate with their gains preserved; the filter history is reset to
// zero as a side effect of the reconstruction (IIR state does not carry
// meaning across a rate change).
func (p *Processor) SetSampleRate(sampleRate float64) {
	if p.sampleRate == sampleRate {
		return
	}

	gains := p.Gains()
	p.sampleRate = sampleRate
	p.rebuild(gains)
}

// Process threads an interleaved stereo buffer (L, R, L, R, ...) through
// the band cascade and returns the result.
//
// When the processor is disabled, or every band sits at exactly 0 dB, the
// input slice is returned unchanged with no work done. Otherwise the output
// is written to an internal scratch buffer that is reused across calls: the
// returned slice is owned by the processor and only valid until the next
// Process call. The input buffer is never modified.
//
// Output samples are not clamped; cascaded positive gain can exceed the
// nominal [-1, 1] range.
func (p *Processor) Process(buf []float64) []float64 {
	if !p.enabled {
		return buf
	}

	out := buf
	active := false

	for i := range p.bands {
		b := &p.bands[i]
		if b.gainDB == 0.0 {
			continue
		}

		if !active {
			p.scratch = core.EnsureLen(p.scratch, len(buf))
			b.section.ProcessInterleavedTo(p.scratch, buf)
			out = p.scratch
			active = true

			continue
		}

		b.section.ProcessInterleavedInPlace(out)
	}

	return out
}

// Reset zeroes the filter history of every band. Coefficients, gains and
// the enabled state are untouched.
func (p *Processor) Reset() {
	for i := range p.bands {
		p.bands[i].Reset()
	}
}

// Response computes the complex frequency response of the full cascade at
// the given frequency (Hz) as the product of the band responses. The
// enabled flag is ignored: this describes the filter bank itself.
func (p *Processor) Response(freqHz float64) complex128 {
	h := complex(1, 0)
	for i := range p.bands {
		c := p.bands[i].Coefficients()
		h *= c.Response(freqHz, p.sampleRate)
	}
	return h
}

// MagnitudeDB returns the cascaded magnitude response in dB at the given
// frequency (Hz).
func (p *Processor) MagnitudeDB(freqHz float64) float64 {
	return 20 * math.Log10(cmplx.Abs(p.Response(freqHz)))
}
