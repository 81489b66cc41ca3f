package response

import (
	"errors"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// Errors returned by Measure.
var (
	ErrNilProcessor      = errors.New("response: processor must not be nil")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
)

const defaultFFTSize = 4096

// Processor is the minimal surface a stereo processor must expose to be
// measured: block processing of an interleaved stereo buffer and a filter
// state reset. eq.Processor satisfies it.
type Processor interface {
	Process(buf []float64) []float64
	Reset()
}

type config struct {
	fftSize int
}

func defaultConfig() config {
	return config{fftSize: defaultFFTSize}
}

// Option configures a measurement.
type Option func(*config)

// WithFFTSize sets the FFT length, rounded up to the next power of two.
// Larger sizes resolve narrower filters at the cost of more work.
// Default is 4096.
func WithFFTSize(n int) Option {
	return func(cfg *config) {
		if n > 1 {
			cfg.fftSize = nextPowerOf2(n)
		}
	}
}

// Result holds a measured magnitude response.
type Result struct {
	SampleRate float64
	FFTSize    int

	// Frequencies holds the bin center frequencies from DC to Nyquist;
	// MagnitudeDB the measured magnitude per bin. Both have FFTSize/2+1
	// elements.
	Frequencies []float64
	MagnitudeDB []float64
}

// MagnitudeAt returns the measured magnitude (dB) at the bin nearest to
// freqHz. Frequencies outside [0, Nyquist] are clamped to the valid range.
func (r *Result) MagnitudeAt(freqHz float64) float64 {
	nyquist := r.SampleRate / 2
	freqHz = core.Clamp(freqHz, 0, nyquist)

	bin := int(freqHz/r.SampleRate*float64(r.FFTSize) + 0.5)
	if bin >= len(r.MagnitudeDB) {
		bin = len(r.MagnitudeDB) - 1
	}
	return r.MagnitudeDB[bin]
}

// Measure captures the left-channel magnitude response of a stereo
// processor by feeding it a stereo-interleaved unit impulse and FFT-ing the
// resulting impulse response.
//
// The processor is Reset before and after the measurement, so a live
// stream driven through p must be restarted by the caller anyway; Measure
// is meant for analysis and test use, not for insertion into the hot path.
// The impulse response is truncated to the FFT length, which understates
// filters whose response rings longer; raise WithFFTSize for very narrow,
// high-gain filters.
func Measure(p Processor, sampleRate float64, opts ...Option) (*Result, error) {
	if p == nil {
		return nil, ErrNilProcessor
	}

	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	fftSize := cfg.fftSize

	p.Reset()

	impulse := make([]float64, 2*fftSize)
	impulse[0] = 1
	out := p.Process(impulse)

	p.Reset()

	inData := make([]complex128, fftSize)
	for i := 0; i < fftSize; i++ {
		inData[i] = complex(out[2*i], 0) // left channel
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, err
	}

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, inData); err != nil {
		return nil, err
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(spectrum[i])
		im[i] = imag(spectrum[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	res := &Result{
		SampleRate:  sampleRate,
		FFTSize:     fftSize,
		Frequencies: make([]float64, bins),
		MagnitudeDB: make([]float64, bins),
	}
	for i := 0; i < bins; i++ {
		res.Frequencies[i] = float64(i) * sampleRate / float64(fftSize)
		res.MagnitudeDB[i] = core.LinearToDB(mag[i])
	}

	return res, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
