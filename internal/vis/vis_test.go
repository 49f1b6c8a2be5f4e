// ABOUTME: Tests for the VIS header codec
// ABOUTME: Round-trips mode codes and checks timing and parity contracts
package vis

import (
	"testing"

	"github.com/hamwave/sstv-go/internal/synth"
	"github.com/hamwave/sstv-go/pkg/audio"
)

func encodeHeader(t *testing.T, rate int, code uint8) *audio.Buffer {
	t.Helper()
	buf, err := audio.NewBuffer(rate, rate*5)
	if err != nil {
		t.Fatalf("failed to create buffer: %v", err)
	}
	s := synth.New(buf)
	if err := EncodeHeader(s, code); err != nil {
		t.Fatalf("encode header failed: %v", err)
	}
	return buf
}

func TestHeaderRoundTrip(t *testing.T) {
	// Every registered SSTV mode code plus edge values.
	codes := []uint8{44, 40, 60, 56, 76, 8, 12, 0, 127}
	for _, rate := range []int{8000, 11025, 22050, 48000} {
		for _, code := range codes {
			buf := encodeHeader(t, rate, code)
			got, err := DecodeHeader(buf.Samples(), rate)
			if err != nil {
				t.Errorf("rate %d code %d: decode failed: %v", rate, code, err)
				continue
			}
			if got != code {
				t.Errorf("rate %d: encoded %d, decoded %d", rate, code, got)
			}
		}
	}
}

func TestHeaderRejectsOutOfRangeCode(t *testing.T) {
	buf, err := audio.NewBuffer(8000, 80000)
	if err != nil {
		t.Fatalf("failed to create buffer: %v", err)
	}
	if err := EncodeHeader(synth.New(buf), 200); err == nil {
		t.Error("expected error for code above 7-bit range")
	}
	if buf.Len() != 0 {
		t.Errorf("rejected encode must not emit samples, got %d", buf.Len())
	}
}

func TestHeaderSampleCount(t *testing.T) {
	// The header occupies the per-segment rounded sum of its nominal
	// durations, within one sample of rate * total_ms / 1000.
	for _, rate := range []int{8000, 11025, 16000, 22050, 44100, 48000} {
		buf := encodeHeader(t, rate, 44)
		ideal := HeaderMS() * float64(rate) / 1000
		diff := float64(buf.Len()) - ideal
		if diff < -1 || diff > 1 {
			t.Errorf("rate %d: header is %d samples, ideal %v", rate, buf.Len(), ideal)
		}
	}
}

func TestTrailerAppends(t *testing.T) {
	buf, err := audio.NewBuffer(22050, 22050*5)
	if err != nil {
		t.Fatalf("failed to create buffer: %v", err)
	}
	s := synth.New(buf)
	if err := EncodeTrailer(s); err != nil {
		t.Fatalf("trailer failed: %v", err)
	}
	// 300+10+100+30 ms of tones plus 500 ms silence.
	ideal := 0.94 * 22050
	diff := float64(buf.Len()) - ideal
	if diff < -5 || diff > 5 {
		t.Errorf("trailer is %d samples, ideal %v", buf.Len(), ideal)
	}
	// The tail is silent.
	samples := buf.Samples()
	for i := buf.Len() - 100; i < buf.Len(); i++ {
		if samples[i] != 0 {
			t.Fatalf("trailer tail sample %d is %d, expected silence", i, samples[i])
		}
	}
}

func TestWalkerMatchesSynthesizer(t *testing.T) {
	buf, err := audio.NewBuffer(11025, 1000000)
	if err != nil {
		t.Fatalf("failed to create buffer: %v", err)
	}
	s := synth.New(buf)
	w := NewWalker(11025)

	durations := []float64{300000, 10000, 457.6, 457.6, 457.6, 30000, 137.5, 9000}
	for _, durUS := range durations {
		before := buf.Len()
		if err := s.Tone(1500, durUS); err != nil {
			t.Fatalf("tone failed: %v", err)
		}
		start, n := w.Next(durUS)
		if start != before || start+n != buf.Len() {
			t.Fatalf("walker [%d,%d) disagrees with synthesizer [%d,%d)",
				start, start+n, before, buf.Len())
		}
	}
}
