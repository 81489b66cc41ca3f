// Package testutil provides deterministic signal generators and tolerance
// helpers shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for
// reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// StereoImpulse generates an interleaved stereo buffer of the given frame
// count with a unit impulse in the first left sample: [1, 0, 0, 0, ...].
func StereoImpulse(frames int) []float64 {
	out := make([]float64, 2*frames)
	if frames > 0 {
		out[0] = 1
	}
	return out
}

// Interleave merges left/right channel slices into an interleaved stereo
// buffer (L, R, L, R, ...). Both slices must have the same length.
func Interleave(left, right []float64) []float64 {
	out := make([]float64, 2*len(left))
	for i := range left {
		out[2*i] = left[i]
		out[2*i+1] = right[i]
	}
	return out
}

// Deinterleave splits an interleaved stereo buffer into left and right
// channel slices. The buffer length must be even.
func Deinterleave(buf []float64) (left, right []float64) {
	n := len(buf) / 2
	left = make([]float64, n)
	right = make([]float64, n)
	for i := 0; i < n; i++ {
		left[i] = buf[2*i]
		right[i] = buf[2*i+1]
	}
	return left, right
}
