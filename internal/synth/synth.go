// ABOUTME: Phase-continuous sine tone synthesizer for SSTV encoding
// ABOUTME: Carries phase and fractional-sample remainder across segments
package synth

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/window"

	"github.com/hamwave/sstv-go/pkg/audio"
)

// Amplitude is the output level as a fraction of full-scale int16.
// 65% leaves headroom against clipping on receivers that add DC bias.
const Amplitude = 0.65

// ErrPrecision reports tone parameters whose sample arithmetic would
// overflow or lose precision (very long durations at high sample rates).
var ErrPrecision = errors.New("synthesis precision exceeded")

// Synthesizer appends phase-continuous sine tones to an audio buffer.
//
// The phase accumulator carries over between calls so consecutive tones
// join without a waveform discontinuity. The fractional remainder ("fudge")
// carries the sub-sample error of each segment's rounding into the next,
// keeping long scans on the nominal timing grid.
type Synthesizer struct {
	buf   *audio.Buffer
	phase float64 // radians
	fudge float64 // microseconds not yet emitted

	twoPiOverRate float64
	usPerSample   float64
	scale         float64
}

// New creates a synthesizer writing to buf.
func New(buf *audio.Buffer) *Synthesizer {
	return &Synthesizer{
		buf:           buf,
		twoPiOverRate: 2 * math.Pi / float64(buf.Rate()),
		usPerSample:   1e6 / float64(buf.Rate()),
		scale:         Amplitude * math.MaxInt16,
	}
}

// Buffer returns the destination buffer.
func (s *Synthesizer) Buffer() *audio.Buffer { return s.buf }

// SegmentSamples returns the number of samples a segment of the given
// duration would occupy right now, including the carried remainder. It does
// not change synthesizer state.
func (s *Synthesizer) SegmentSamples(durUS float64) (int, error) {
	if math.IsNaN(durUS) || math.IsInf(durUS, 0) || durUS < 0 {
		return 0, fmt.Errorf("%w: bad duration %v us", ErrPrecision, durUS)
	}
	total := (durUS + s.fudge) / s.usPerSample
	if total > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v us at %d Hz", ErrPrecision, durUS, s.buf.Rate())
	}
	n := int(total + 0.5)
	if n < 0 {
		n = 0
	}
	return n, nil
}

// Tone appends durUS microseconds of a sine wave at freq Hz, continuing
// the phase where the previous segment ended. Frequency 0 emits silence
// without advancing the phase.
func (s *Synthesizer) Tone(freq, durUS float64) error {
	n, err := s.SegmentSamples(durUS)
	if err != nil {
		return err
	}
	win, err := s.buf.Extend(n)
	if err != nil {
		return err
	}
	if freq == 0 {
		for i := range win {
			win[i] = 0
		}
	} else {
		delta := s.twoPiOverRate * freq
		for i := range win {
			win[i] = int16(math.Sin(s.phase) * s.scale)
			s.phase += delta
		}
		s.phase = math.Mod(s.phase, 2*math.Pi)
	}
	s.fudge += durUS - float64(n)*s.usPerSample
	return nil
}

// ToneMS is Tone with the duration given in milliseconds.
func (s *Synthesizer) ToneMS(freq, durMS float64) error {
	return s.Tone(freq, durMS*1000)
}

// Silence appends durUS microseconds of silence.
func (s *Synthesizer) Silence(durUS float64) error {
	return s.Tone(0, durUS)
}

// Burst appends a tone shaped by a Tukey window, used for CW elements so
// key clicks do not splatter outside the audio passband. The cosine taper
// covers 25% of the duration per side, clamped to 5-40 ms.
func (s *Synthesizer) Burst(freq, durUS float64) error {
	if freq == 0 {
		return s.Silence(durUS)
	}
	n, err := s.SegmentSamples(durUS)
	if err != nil {
		return err
	}
	win, err := s.buf.Extend(n)
	if err != nil {
		return err
	}
	if n > 0 {
		env := make([]float64, n)
		delta := s.twoPiOverRate * freq
		for i := range env {
			env[i] = math.Sin(s.phase)
			s.phase += delta
		}
		s.phase = math.Mod(s.phase, 2*math.Pi)

		taperUS := durUS * 0.25
		if taperUS < 5000 {
			taperUS = 5000
		}
		if taperUS > 40000 {
			taperUS = 40000
		}
		alpha := 2 * taperUS / durUS
		if alpha > 1 {
			alpha = 1
		}
		window.Tukey{Alpha: alpha}.Transform(env)

		for i, v := range env {
			win[i] = int16(v * s.scale)
		}
	}
	s.fudge += durUS - float64(n)*s.usPerSample
	return nil
}

// Reset clears the phase and remainder for a fresh encode.
func (s *Synthesizer) Reset() {
	s.phase = 0
	s.fudge = 0
}
