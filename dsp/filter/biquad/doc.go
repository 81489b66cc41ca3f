// Package biquad provides biquad (second-order IIR) filter runtime primitives
// for stereo audio.
//
// A [StereoSection] implements Direct Form I processing for a single
// second-order section defined by [Coefficients], with fully independent
// left/right channel histories. Direct Form I is used instead of the more
// compact transposed form because the equalizer's state model requires the
// last two inputs and outputs of each channel to be individually addressable.
//
// This package provides the processing runtime only. Coefficient design
// (the peaking-EQ formula) lives in dsp/filter/design.
package biquad
