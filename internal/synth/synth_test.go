// ABOUTME: Tests for the phase-continuous tone synthesizer
// ABOUTME: Verifies sample counts, phase carry-over, remainder and guards
package synth

import (
	"errors"
	"math"
	"testing"

	"github.com/hamwave/sstv-go/pkg/audio"
)

func newTestSynth(t *testing.T, rate, capacity int) *Synthesizer {
	t.Helper()
	buf, err := audio.NewBuffer(rate, capacity)
	if err != nil {
		t.Fatalf("failed to create buffer: %v", err)
	}
	return New(buf)
}

func TestToneSampleCount(t *testing.T) {
	s := newTestSynth(t, 8000, 100000)
	if err := s.ToneMS(1000, 100); err != nil {
		t.Fatalf("tone failed: %v", err)
	}
	// 100 ms at 8000 Hz is exactly 800 samples.
	if got := s.Buffer().Len(); got != 800 {
		t.Errorf("expected 800 samples, got %d", got)
	}
}

func TestFractionalRemainderCarries(t *testing.T) {
	// 30 ms at 44100 Hz is 1323 samples exactly, but 0.3 ms is 13.23:
	// individual segments round, the remainder must carry so the total
	// stays within one sample of the ideal.
	buf, err := audio.NewBuffer(44100, 1000000)
	if err != nil {
		t.Fatalf("failed to create buffer: %v", err)
	}
	s := New(buf)

	const segUS = 457.6 // Martin 1 pixel time
	const n = 4000
	for i := 0; i < n; i++ {
		if err := s.Tone(1500, segUS); err != nil {
			t.Fatalf("tone %d failed: %v", i, err)
		}
	}
	ideal := segUS * n / 1e6 * 44100
	if diff := math.Abs(float64(buf.Len()) - ideal); diff > 1 {
		t.Errorf("total drifted %v samples from ideal %v", diff, ideal)
	}
}

func TestPhaseContinuity(t *testing.T) {
	s := newTestSynth(t, 48000, 100000)
	if err := s.ToneMS(1900, 100); err != nil {
		t.Fatalf("first tone failed: %v", err)
	}
	if err := s.ToneMS(1200, 100); err != nil {
		t.Fatalf("second tone failed: %v", err)
	}

	samples := s.Buffer().Samples()
	// A continuing sinusoid can move at most amplitude*delta between
	// adjacent samples. A phase reset would jump by up to 2*amplitude.
	amp := Amplitude * math.MaxInt16
	maxStep := amp*2*math.Pi*1900/48000 + 2 // +2 for int16 truncation
	for i := 1; i < len(samples); i++ {
		step := math.Abs(float64(samples[i]) - float64(samples[i-1]))
		if step > maxStep {
			t.Fatalf("discontinuity at sample %d: step %v exceeds %v", i, step, maxStep)
		}
	}
}

func TestSilenceDoesNotAdvancePhase(t *testing.T) {
	s := newTestSynth(t, 8000, 100000)
	if err := s.ToneMS(1000, 10); err != nil {
		t.Fatalf("tone failed: %v", err)
	}
	before := s.phase
	if err := s.Silence(50000); err != nil {
		t.Fatalf("silence failed: %v", err)
	}
	if s.phase != before {
		t.Errorf("silence changed phase from %v to %v", before, s.phase)
	}
	samples := s.Buffer().Samples()
	for i := 80; i < s.Buffer().Len(); i++ {
		if samples[i] != 0 {
			t.Fatalf("silence sample %d is %d, expected 0", i, samples[i])
		}
	}
}

func TestToneOverflow(t *testing.T) {
	s := newTestSynth(t, 8000, 100)
	err := s.ToneMS(1000, 1000) // needs 8000 samples
	if !errors.Is(err, audio.ErrBufferOverflow) {
		t.Errorf("expected ErrBufferOverflow, got %v", err)
	}
}

func TestPrecisionGuard(t *testing.T) {
	s := newTestSynth(t, 48000, 100)
	for _, dur := range []float64{-1, math.NaN(), math.Inf(1), 1e18} {
		if err := s.Tone(1000, dur); !errors.Is(err, ErrPrecision) {
			t.Errorf("duration %v: expected ErrPrecision, got %v", dur, err)
		}
	}
}

func TestBurstDeterministicAndTapered(t *testing.T) {
	s1 := newTestSynth(t, 22050, 100000)
	s2 := newTestSynth(t, 22050, 100000)
	if err := s1.Burst(800, 80000); err != nil {
		t.Fatalf("burst failed: %v", err)
	}
	if err := s2.Burst(800, 80000); err != nil {
		t.Fatalf("burst failed: %v", err)
	}
	a, b := s1.Buffer().Samples(), s2.Buffer().Samples()
	if len(a) != len(b) {
		t.Fatalf("burst lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("burst sample %d differs", i)
		}
	}

	// Taper: the first and last samples are at or near zero while the
	// middle runs at full scale.
	if math.Abs(float64(a[0])) > 100 {
		t.Errorf("burst start not tapered: %d", a[0])
	}
	if math.Abs(float64(a[len(a)-1])) > 1000 {
		t.Errorf("burst end not tapered: %d", a[len(a)-1])
	}
	peak := 0.0
	for _, v := range a {
		if f := math.Abs(float64(v)); f > peak {
			peak = f
		}
	}
	if peak < Amplitude*math.MaxInt16*0.9 {
		t.Errorf("burst peak %v below expected full scale", peak)
	}
}
