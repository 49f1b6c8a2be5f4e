// ABOUTME: VIS calibration header and trailer codec
// ABOUTME: Encodes the mode identifier with LSB-first data bits and even parity
package vis

import (
	"fmt"

	"github.com/hamwave/sstv-go/internal/synth"
)

// VIS tone plan. All durations in milliseconds.
const (
	LeaderHz = 1900
	LeaderMS = 300

	BreakHz = 1200
	BreakMS = 10

	// Start and stop bits share the 1200 Hz break frequency.
	StartStopHz = 1200
	BitMS       = 30

	ZeroHz = 1300
	OneHz  = 1100

	// DataBits is the number of VIS data bits, sent LSB first.
	DataBits = 7

	// MaxCode is the largest encodable mode identifier.
	MaxCode = 1<<DataBits - 1
)

// Trailer tone plan, shared by all mode families.
const (
	trailer1Hz = 2300
	trailer1MS = 300
	trailer2Hz = 1200
	trailer2MS = 10
	trailer3Hz = 2300
	trailer3MS = 100
	trailer4Hz = 1200
	trailer4MS = 30

	trailerSilenceMS = 500
)

// EncodeHeader appends the VIS calibration header for the given mode code:
// leader, break, leader, start bit, seven data bits LSB first, an even
// parity bit, and a stop bit.
func EncodeHeader(s *synth.Synthesizer, code uint8) error {
	if code > MaxCode {
		return fmt.Errorf("vis code %d out of range 0-%d", code, MaxCode)
	}

	segments := []struct {
		hz float64
		ms float64
	}{
		{LeaderHz, LeaderMS},
		{BreakHz, BreakMS},
		{LeaderHz, LeaderMS},
		{StartStopHz, BitMS},
	}
	for _, seg := range segments {
		if err := s.ToneMS(seg.hz, seg.ms); err != nil {
			return err
		}
	}

	parity := 0
	for bit := 0; bit < DataBits; bit++ {
		if code&(1<<bit) != 0 {
			parity ^= 1
			if err := s.ToneMS(OneHz, BitMS); err != nil {
				return err
			}
		} else if err := s.ToneMS(ZeroHz, BitMS); err != nil {
			return err
		}
	}

	// Parity bit keeps the total count of 1-bits even.
	parityHz := float64(ZeroHz)
	if parity != 0 {
		parityHz = OneHz
	}
	if err := s.ToneMS(parityHz, BitMS); err != nil {
		return err
	}

	return s.ToneMS(StartStopHz, BitMS)
}

// EncodeTrailer appends the end-of-scan marker and a silence tail.
func EncodeTrailer(s *synth.Synthesizer) error {
	segments := []struct {
		hz float64
		ms float64
	}{
		{trailer1Hz, trailer1MS},
		{trailer2Hz, trailer2MS},
		{trailer3Hz, trailer3MS},
		{trailer4Hz, trailer4MS},
	}
	for _, seg := range segments {
		if err := s.ToneMS(seg.hz, seg.ms); err != nil {
			return err
		}
	}
	return s.Silence(trailerSilenceMS * 1000)
}

// HeaderMS returns the nominal header duration in milliseconds.
func HeaderMS() float64 {
	return LeaderMS + BreakMS + LeaderMS + BitMS + DataBits*BitMS + BitMS + BitMS
}
