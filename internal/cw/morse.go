// ABOUTME: CW station-identification encoder
// ABOUTME: Morse-encodes "SSTV de <callsign>" with click-free keying
package cw

import (
	"fmt"
	"strings"

	"github.com/hamwave/sstv-go/internal/synth"
)

// Message parameter bounds.
const (
	MaxCallsignLen = 31
	MinWPM         = 1
	MaxWPM         = 50
	MinToneHz      = 400
	MaxToneHz      = 2000
)

// leadSilenceUS separates the SSTV trailer from the CW signature.
const leadSilenceUS = 2e6

// International Morse Code table. Characters without an entry are skipped.
var morseTable = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	'/': "-..-.", '?': "..--..", '=': "-...-",
}

// Message describes a CW signature request.
type Message struct {
	Callsign string
	WPM      int
	ToneHz   float64
}

// Validate checks the message parameters against amateur-practice bounds.
func (m Message) Validate() error {
	if m.Callsign == "" {
		return fmt.Errorf("callsign must not be empty")
	}
	if len(m.Callsign) > MaxCallsignLen {
		return fmt.Errorf("callsign %q longer than %d characters", m.Callsign, MaxCallsignLen)
	}
	for _, r := range m.Callsign {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '/':
		default:
			return fmt.Errorf("callsign %q contains invalid character %q", m.Callsign, r)
		}
	}
	if m.WPM < MinWPM || m.WPM > MaxWPM {
		return fmt.Errorf("wpm %d out of range %d-%d", m.WPM, MinWPM, MaxWPM)
	}
	if m.ToneHz < MinToneHz || m.ToneHz > MaxToneHz {
		return fmt.Errorf("tone %v Hz out of range %d-%d", m.ToneHz, MinToneHz, MaxToneHz)
	}
	return nil
}

// Text returns the literal message transmitted on the air.
func (m Message) Text() string {
	return "SSTV de " + strings.ToUpper(m.Callsign)
}

// Encode appends the Morse signature to the synthesizer's buffer: a fixed
// leading silence, then the message keyed at 1200/wpm ms per dot. Dashes
// are three units, intra-character gaps one, inter-character gaps three
// and word gaps seven.
func Encode(s *synth.Synthesizer, m Message) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dotUS := 1.2e6 / float64(m.WPM)

	if err := s.Silence(leadSilenceUS); err != nil {
		return err
	}

	for _, r := range strings.ToUpper(m.Text()) {
		if r == ' ' {
			if err := s.Silence(7 * dotUS); err != nil {
				return err
			}
			continue
		}
		pattern, ok := morseTable[r]
		if !ok {
			continue
		}
		for i, sym := range pattern {
			durUS := dotUS
			if sym == '-' {
				durUS = 3 * dotUS
			}
			if err := s.Burst(m.ToneHz, durUS); err != nil {
				return err
			}
			if i < len(pattern)-1 {
				if err := s.Silence(dotUS); err != nil {
					return err
				}
			}
		}
		if err := s.Silence(3 * dotUS); err != nil {
			return err
		}
	}
	return nil
}
