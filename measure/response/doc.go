// Package response measures the magnitude response of a stereo processor
// by impulse excitation.
//
// An interleaved stereo unit impulse is fed through the processor's block
// API, the left-channel impulse response is transformed with an FFT, and
// the bin magnitudes are returned in dB from DC to Nyquist. Because the
// excitation is a pure impulse, no window is applied; the truncation of the
// IR to the FFT length is the only source of measurement error, and it is
// negligible for the wide, well-damped filters of a graphic equalizer.
//
// The measured curve can be compared against the theoretical cascade
// response (eq.Processor.MagnitudeDB) to validate an actual processing
// path end to end, or rendered by a host UI.
package response
