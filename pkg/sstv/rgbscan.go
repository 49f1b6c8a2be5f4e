// ABOUTME: Scan-line encoder for the RGB-direct mode family
// ABOUTME: Martin and Scottie element ordering over green/blue/red scans
package sstv

import (
	"github.com/hamwave/sstv-go/internal/synth"
	"github.com/hamwave/sstv-go/pkg/pixel"
)

// pixelToneHz maps an 8-bit channel value onto the 1500-2300 Hz video
// band: black at 1500 Hz, white at 2300 Hz.
func pixelToneHz(v uint8) float64 {
	return 1500 + float64(v)*(2300-1500)/255
}

func scanChannel(s *synth.Synthesizer, vals []uint8, pixelUS float64) error {
	for _, v := range vals {
		if err := s.Tone(pixelToneHz(v), pixelUS); err != nil {
			return err
		}
	}
	return nil
}

// encodeRGBLines walks the image and emits every scan line in the mode's
// standardized element order. Channel order is green, blue, red for both
// layouts; they differ in sync placement and separator use.
func encodeRGBLines(s *synth.Synthesizer, m *Mode, img *pixel.Image, progress func(line, total int)) error {
	t := m.RGB

	if t.Layout == LayoutScottie {
		// Scottie transmits a single sync pulse before the first line.
		if err := s.Tone(t.SyncHz, t.SyncUS); err != nil {
			return err
		}
	}

	red := make([]uint8, m.Width)
	green := make([]uint8, m.Width)
	blue := make([]uint8, m.Width)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			red[x], green[x], blue[x] = img.RGB(x, y)
		}

		var err error
		switch t.Layout {
		case LayoutMartin:
			err = encodeMartinLine(s, t, green, blue, red)
		case LayoutScottie:
			err = encodeScottieLine(s, t, green, blue, red)
		}
		if err != nil {
			return err
		}

		if progress != nil {
			progress(y+1, m.Height)
		}
	}
	return nil
}

// Martin: sync, porch, G, sep, B, sep, R, sep.
func encodeMartinLine(s *synth.Synthesizer, t *RGBTiming, green, blue, red []uint8) error {
	if err := s.Tone(t.SyncHz, t.SyncUS); err != nil {
		return err
	}
	if err := s.Tone(t.PorchHz, t.PorchUS); err != nil {
		return err
	}
	for _, ch := range [][]uint8{green, blue, red} {
		if err := scanChannel(s, ch, t.PixelUS); err != nil {
			return err
		}
		if err := s.Tone(t.SeparatorHz, t.SeparatorUS); err != nil {
			return err
		}
	}
	return nil
}

// Scottie: sep, G, sep, B, sync, porch, R. The sync sits between the
// second and third channel rather than at the line start.
func encodeScottieLine(s *synth.Synthesizer, t *RGBTiming, green, blue, red []uint8) error {
	if err := s.Tone(t.SeparatorHz, t.SeparatorUS); err != nil {
		return err
	}
	if err := scanChannel(s, green, t.PixelUS); err != nil {
		return err
	}
	if err := s.Tone(t.SeparatorHz, t.SeparatorUS); err != nil {
		return err
	}
	if err := scanChannel(s, blue, t.PixelUS); err != nil {
		return err
	}
	if err := s.Tone(t.SyncHz, t.SyncUS); err != nil {
		return err
	}
	if err := s.Tone(t.PorchHz, t.PorchUS); err != nil {
		return err
	}
	return scanChannel(s, red, t.PixelUS)
}
