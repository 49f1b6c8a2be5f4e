// ABOUTME: Exact-inverse VIS header decoder for test verification
// ABOUTME: Walks encoded segments and recovers the mode code via FFT
package vis

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Walker reproduces the synthesizer's segment rounding so a decoder can
// locate tone boundaries exactly, including the carried fractional
// remainder.
type Walker struct {
	usPerSample float64
	fudge       float64
	pos         int
}

// NewWalker creates a segment walker for the given sample rate.
func NewWalker(rate int) *Walker {
	return &Walker{usPerSample: 1e6 / float64(rate)}
}

// Next consumes a segment of the given duration in microseconds and
// returns its start index and sample count.
func (w *Walker) Next(durUS float64) (start, n int) {
	total := (durUS + w.fudge) / w.usPerSample
	n = int(total + 0.5)
	start = w.pos
	w.pos += n
	w.fudge += durUS - float64(n)*w.usPerSample
	return start, n
}

// Pos returns the current sample position.
func (w *Walker) Pos() int { return w.pos }

// DominantFrequency estimates the strongest frequency in a PCM segment
// using the peak FFT magnitude bin.
func DominantFrequency(seg []int16, rate int) float64 {
	if len(seg) < 2 {
		return 0
	}
	seq := make([]float64, len(seg))
	for i, v := range seg {
		seq[i] = float64(v)
	}
	fft := fourier.NewFFT(len(seq))
	coeffs := fft.Coefficients(nil, seq)

	best, bestMag := 0, 0.0
	for i, c := range coeffs {
		mag := real(c)*real(c) + imag(c)*imag(c)
		if mag > bestMag {
			best, bestMag = i, mag
		}
	}
	return fft.Freq(best) * float64(rate)
}

// DecodeHeader recovers the VIS code from the start of an encoded sample
// stream. It verifies the leader and start/stop structure and the even
// parity contract, so a header that round-trips here is bit-exact.
func DecodeHeader(samples []int16, rate int) (uint8, error) {
	w := NewWalker(rate)

	grab := func(durMS float64) ([]int16, error) {
		start, n := w.Next(durMS * 1000)
		if start+n > len(samples) {
			return nil, fmt.Errorf("sample stream too short: need %d, have %d", start+n, len(samples))
		}
		return samples[start : start+n], nil
	}
	expect := func(durMS, wantHz, tolHz float64) error {
		seg, err := grab(durMS)
		if err != nil {
			return err
		}
		got := DominantFrequency(seg, rate)
		if got < wantHz-tolHz || got > wantHz+tolHz {
			return fmt.Errorf("expected %v Hz segment, measured %v Hz", wantHz, got)
		}
		return nil
	}

	if err := expect(LeaderMS, LeaderHz, 50); err != nil {
		return 0, fmt.Errorf("leader: %w", err)
	}
	if err := expect(BreakMS, BreakHz, 200); err != nil {
		return 0, fmt.Errorf("break: %w", err)
	}
	if err := expect(LeaderMS, LeaderHz, 50); err != nil {
		return 0, fmt.Errorf("leader: %w", err)
	}
	if err := expect(BitMS, StartStopHz, 80); err != nil {
		return 0, fmt.Errorf("start bit: %w", err)
	}

	var code uint8
	ones := 0
	for bit := 0; bit < DataBits; bit++ {
		seg, err := grab(BitMS)
		if err != nil {
			return 0, fmt.Errorf("data bit %d: %w", bit, err)
		}
		if DominantFrequency(seg, rate) < (OneHz+ZeroHz)/2 {
			code |= 1 << bit
			ones++
		}
	}

	paritySeg, err := grab(BitMS)
	if err != nil {
		return 0, fmt.Errorf("parity bit: %w", err)
	}
	parityOne := DominantFrequency(paritySeg, rate) < (OneHz+ZeroHz)/2
	if parityOne {
		ones++
	}
	if ones%2 != 0 {
		return 0, fmt.Errorf("parity violation decoding code %d", code)
	}

	if err := expect(BitMS, StartStopHz, 80); err != nil {
		return 0, fmt.Errorf("stop bit: %w", err)
	}
	return code, nil
}
