package biquad

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form I:
//
//	y0 = B0*x0 + B1*x1 + B2*x2 - A1*y1 - A2*y2
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Identity returns coefficients for a bit-exact unity passthrough
// (B0=1, all other coefficients 0).
func Identity() Coefficients {
	return Coefficients{B0: 1}
}

// channelState is the Direct Form I delay line for one channel: the
// previous two input and output samples.
type channelState struct {
	x1, x2 float64
	y1, y2 float64
}

func (s *channelState) process(c Coefficients, x0 float64) float64 {
	y0 := c.B0*x0 + c.B1*s.x1 + c.B2*s.x2 - c.A1*s.y1 - c.A2*s.y2
	s.x2, s.x1 = s.x1, x0
	s.y2, s.y1 = s.y1, y0

	return y0
}

// StereoSection is a single biquad filter with coefficients and independent
// Direct Form I state for the left and right channels. The two histories are
// never shared: a sample fed to one channel leaves the other untouched.
type StereoSection struct {
	Coefficients

	left, right channelState
}

// NewStereoSection returns a StereoSection initialized with the given
// coefficients and zero state.
func NewStereoSection(c Coefficients) *StereoSection {
	return &StereoSection{Coefficients: c}
}

// ProcessSample filters one stereo sample pair and returns the outputs.
func (s *StereoSection) ProcessSample(left, right float64) (float64, float64) {
	return s.left.process(s.Coefficients, left), s.right.process(s.Coefficients, right)
}

// ProcessLeft filters one left-channel sample. The right-channel history is
// untouched.
func (s *StereoSection) ProcessLeft(x float64) float64 {
	return s.left.process(s.Coefficients, x)
}

// ProcessInterleavedTo filters interleaved stereo samples (L, R, L, R, ...)
// from src into dst. dst must be at least as long as src and may alias it.
// Zero-alloc.
//
// A trailing unpaired sample in an odd-length src is treated as a
// left-channel sample and filtered through the left history.
func (s *StereoSection) ProcessInterleavedTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint

	c := s.Coefficients

	n := len(src)
	i := 0
	for ; i+1 < n; i += 2 {
		dst[i] = s.left.process(c, src[i])
		dst[i+1] = s.right.process(c, src[i+1])
	}

	if i < n {
		dst[i] = s.left.process(c, src[i])
	}
}

// ProcessInterleavedInPlace filters an interleaved stereo buffer in place.
func (s *StereoSection) ProcessInterleavedInPlace(buf []float64) {
	s.ProcessInterleavedTo(buf, buf)
}

// Reset clears both channel delay lines to zero. Coefficients are untouched.
func (s *StereoSection) Reset() {
	s.left = channelState{}
	s.right = channelState{}
}

// State returns the current delay-line state as
// [channel][x1, x2, y1, y2] with channel 0 = left, 1 = right.
func (s *StereoSection) State() [2][4]float64 {
	return [2][4]float64{
		{s.left.x1, s.left.x2, s.left.y1, s.left.y2},
		{s.right.x1, s.right.x2, s.right.y1, s.right.y2},
	}
}

// SetState restores a previously saved delay-line state.
func (s *StereoSection) SetState(state [2][4]float64) {
	s.left = channelState{x1: state[0][0], x2: state[0][1], y1: state[0][2], y2: state[0][3]}
	s.right = channelState{x1: state[1][0], x2: state[1][1], y1: state[1][2], y2: state[1][3]}
}
