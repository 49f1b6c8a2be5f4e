// ABOUTME: Broadcast YUV conversion for the Robot SSTV modes
// ABOUTME: BT.601 studio-swing luma and offset-scale chroma
package pixel

// BT.601 studio-swing coefficients. Luma sits on a 16-235 scale and the
// chroma components on an offset scale where zero chroma maps to 128.
// The 1/256 factor matches the reference encoder's fixed-point scaling.
const yuvScale = 0.003906

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Luma converts an RGB pixel to Y on the 16-235 studio scale.
func Luma(r, g, b uint8) uint8 {
	return clamp255(16.0 + yuvScale*(65.738*float64(r)+129.057*float64(g)+25.064*float64(b)))
}

// ChromaRY converts an RGB pixel to the R-Y (Cr) component, mid-scale 128.
func ChromaRY(r, g, b uint8) uint8 {
	return clamp255(128.0 + yuvScale*(112.439*float64(r)-94.154*float64(g)-18.285*float64(b)))
}

// ChromaBY converts an RGB pixel to the B-Y (Cb) component, mid-scale 128.
func ChromaBY(r, g, b uint8) uint8 {
	return clamp255(128.0 + yuvScale*(-37.945*float64(r)-74.494*float64(g)+112.439*float64(b)))
}
