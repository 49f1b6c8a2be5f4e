// ABOUTME: Scan-line encoder for the YUV-subsampled mode family
// ABOUTME: Robot luma scans with parity-alternating R-Y / B-Y chroma
package sstv

import (
	"github.com/hamwave/sstv-go/internal/synth"
	"github.com/hamwave/sstv-go/pkg/pixel"
)

// encodeYUVLines walks the image in line pairs. Each line carries sync,
// porch, a full-resolution luma scan, a parity-keyed separator, a chroma
// porch and one half-resolution-in-time chroma scan: R-Y on even lines,
// B-Y on odd. Robot 36 derives chroma from the pair average (4:2:0);
// Robot 72 derives it from each line (4:2:2).
func encodeYUVLines(s *synth.Synthesizer, m *Mode, img *pixel.Image, progress func(line, total int)) error {
	t := m.YUV

	luma := make([]uint8, m.Width)
	chroma := make([]uint8, m.Width)

	for y := 0; y < m.Height; y += 2 {
		for _, line := range []int{y, y + 1} {
			even := line%2 == 0
			for x := 0; x < m.Width; x++ {
				r, g, b := img.RGB(x, line)
				luma[x] = pixel.Luma(r, g, b)

				if t.PairAveragedChroma {
					r2, g2, b2 := img.RGB(x, line^1)
					r = uint8((uint16(r) + uint16(r2)) / 2)
					g = uint8((uint16(g) + uint16(g2)) / 2)
					b = uint8((uint16(b) + uint16(b2)) / 2)
				}
				if even {
					chroma[x] = pixel.ChromaRY(r, g, b)
				} else {
					chroma[x] = pixel.ChromaBY(r, g, b)
				}
			}

			if err := encodeRobotLine(s, t, even, luma, chroma); err != nil {
				return err
			}
			if progress != nil {
				progress(line+1, m.Height)
			}
		}
	}
	return nil
}

func encodeRobotLine(s *synth.Synthesizer, t *YUVTiming, even bool, luma, chroma []uint8) error {
	if err := s.Tone(t.SyncHz, t.SyncUS); err != nil {
		return err
	}
	if err := s.Tone(t.PorchHz, t.PorchUS); err != nil {
		return err
	}
	for _, v := range luma {
		if err := s.Tone(pixelToneHz(v), t.LumaPixelUS); err != nil {
			return err
		}
	}

	sepHz := t.SeparatorEven
	if !even {
		sepHz = t.SeparatorOdd
	}
	if err := s.Tone(sepHz, t.SeparatorUS); err != nil {
		return err
	}
	if err := s.Tone(t.ChromaPorchHz, t.ChromaPorchUS); err != nil {
		return err
	}
	for _, v := range chroma {
		if err := s.Tone(pixelToneHz(v), t.ChromaPixelUS); err != nil {
			return err
		}
	}
	return nil
}
