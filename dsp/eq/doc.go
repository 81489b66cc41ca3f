// Package eq implements a fixed ten-band stereo graphic equalizer built
// from cascaded peaking-EQ biquads.
//
// A [Processor] owns one [Band] per canonical center frequency
// (31 Hz … 16 kHz) and threads interleaved stereo buffers through the
// active bands in ascending-frequency order. Bands sitting at exactly
// 0 dB are bit-exact transparent and cost nothing; a fully flat or
// disabled processor returns its input slice unchanged.
//
// The package performs no internal synchronization. The intended model is
// a single audio thread driving Process while control changes (SetBands,
// SetSampleRate, SetEnabled, Reset) are serialized with it externally.
package eq
