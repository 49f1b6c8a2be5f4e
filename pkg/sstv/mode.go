// ABOUTME: SSTV mode descriptors and the VIS-code registry
// ABOUTME: Carries each mode's standardized timing table as data
package sstv

import (
	"fmt"
	"sort"
	"strings"
)

// Family identifies a mode's color-space convention.
type Family int

const (
	// FamilyRGB maps each color channel directly to tone frequency
	// (Martin, Scottie).
	FamilyRGB Family = iota
	// FamilyYUV transmits luma plus subsampled offset-scale chroma
	// (Robot).
	FamilyYUV
)

func (f Family) String() string {
	switch f {
	case FamilyRGB:
		return "rgb"
	case FamilyYUV:
		return "yuv"
	}
	return "unknown"
}

// ScanLayout selects the per-line element order within the RGB family.
type ScanLayout int

const (
	// LayoutMartin starts each line with sync+porch, then G, B, R scans
	// each followed by a separator.
	LayoutMartin ScanLayout = iota
	// LayoutScottie starts the transmission with a single sync pulse and
	// places the per-line sync between the blue and red scans.
	LayoutScottie
)

// RGBTiming is the timing table for Martin/Scottie modes. Durations are
// microseconds, frequencies Hz.
type RGBTiming struct {
	PixelUS     float64
	SyncHz      float64
	SyncUS      float64
	PorchHz     float64
	PorchUS     float64
	SeparatorHz float64
	SeparatorUS float64
	Layout      ScanLayout
}

// YUVTiming is the timing table for Robot modes. The separator frequency
// alternates with line parity and announces which chroma channel follows.
type YUVTiming struct {
	LumaPixelUS   float64
	ChromaPixelUS float64
	SyncHz        float64
	SyncUS        float64
	PorchHz       float64
	PorchUS       float64
	SeparatorUS   float64
	SeparatorEven float64 // Hz, precedes the R-Y scan
	SeparatorOdd  float64 // Hz, precedes the B-Y scan
	ChromaPorchHz float64
	ChromaPorchUS float64

	// PairAveragedChroma selects 4:2:0 (chroma computed from the average
	// of a line pair, Robot 36) over 4:2:2 (per-line chroma, Robot 72).
	PairAveragedChroma bool
}

// Mode describes one SSTV transmission mode. Descriptors are immutable;
// sessions hold them by pointer.
type Mode struct {
	VIS    uint8
	Name   string
	Family Family
	Width  int
	Height int

	// NominalSeconds is the published transmit time, for display only.
	NominalSeconds float64

	RGB *RGBTiming // set when Family == FamilyRGB
	YUV *YUVTiming // set when Family == FamilyYUV
}

func (m *Mode) String() string {
	return fmt.Sprintf("%s (VIS %d, %dx%d)", m.Name, m.VIS, m.Width, m.Height)
}

var martinTiming = RGBTiming{
	SyncHz: 1200, SyncUS: 4862,
	PorchHz: 1500, PorchUS: 572,
	SeparatorHz: 1500, SeparatorUS: 572,
	Layout: LayoutMartin,
}

var scottieTiming = RGBTiming{
	SyncHz: 1200, SyncUS: 9000,
	PorchHz: 1500, PorchUS: 1500,
	SeparatorHz: 1500, SeparatorUS: 1500,
	Layout: LayoutScottie,
}

var robotTiming = YUVTiming{
	SyncHz: 1200, SyncUS: 9000,
	PorchHz: 1500, PorchUS: 3000,
	SeparatorUS: 4500, SeparatorEven: 1500, SeparatorOdd: 2300,
	ChromaPorchHz: 1900, ChromaPorchUS: 1500,
}

func rgbMode(vis uint8, name string, pixelUS, nominal float64, base RGBTiming) *Mode {
	t := base
	t.PixelUS = pixelUS
	return &Mode{
		VIS: vis, Name: name, Family: FamilyRGB,
		Width: 320, Height: 256,
		NominalSeconds: nominal,
		RGB:            &t,
	}
}

func yuvMode(vis uint8, name string, lumaUS, nominal float64, pairAveraged bool) *Mode {
	t := robotTiming
	t.LumaPixelUS = lumaUS
	t.ChromaPixelUS = lumaUS / 2
	t.PairAveragedChroma = pairAveraged
	return &Mode{
		VIS: vis, Name: name, Family: FamilyYUV,
		Width: 320, Height: 240,
		NominalSeconds: nominal,
		YUV:            &t,
	}
}

// registry holds every supported mode keyed by VIS code.
var registry = func() map[uint8]*Mode {
	modes := []*Mode{
		rgbMode(44, "Martin 1", 457.6, 114, martinTiming),
		rgbMode(40, "Martin 2", 228.8, 58, martinTiming),
		rgbMode(60, "Scottie 1", 432.0, 110, scottieTiming),
		rgbMode(56, "Scottie 2", 275.2, 71, scottieTiming),
		rgbMode(76, "Scottie DX", 1080.0, 269, scottieTiming),
		yuvMode(8, "Robot 36", 275.0, 36, true),
		yuvMode(12, "Robot 72", 550.0, 72, false),
	}
	out := make(map[uint8]*Mode, len(modes))
	for _, m := range modes {
		out[m.VIS] = m
	}
	return out
}()

// ModeByVIS looks up a mode by its VIS code.
func ModeByVIS(code uint8) (*Mode, error) {
	m, ok := registry[code]
	if !ok {
		return nil, fmt.Errorf("%w: vis code %d", ErrUnsupportedMode, code)
	}
	return m, nil
}

// ModeByName looks up a mode by name, ignoring case and spaces, so both
// "Martin 1" and "martin1" resolve.
func ModeByName(name string) (*Mode, error) {
	want := canonicalName(name)
	for _, m := range registry {
		if canonicalName(m.Name) == want {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, name)
}

func canonicalName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "")
}

// Modes returns all supported modes ordered by VIS code.
func Modes() []*Mode {
	out := make([]*Mode, 0, len(registry))
	for _, m := range registry {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VIS < out[j].VIS })
	return out
}
