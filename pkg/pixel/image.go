// ABOUTME: Read-only RGB image view with explicit bounds checks
// ABOUTME: Wraps a caller-supplied row-major 8-bit RGB byte slice
package pixel

import "fmt"

// Image is a read-only view over row-major 8-bit RGB pixel data
// (3 bytes per pixel). It does not own or copy the underlying slice.
type Image struct {
	width  int
	height int
	stride int // bytes per row
	pix    []byte
}

// NewImage allocates a zeroed (black) image of the given dimensions.
func NewImage(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	return &Image{
		width:  width,
		height: height,
		stride: width * 3,
		pix:    make([]byte, width*height*3),
	}, nil
}

// FromBytes wraps an existing RGB byte slice. stride is the distance in
// bytes between the starts of consecutive rows; pass width*3 for tightly
// packed data.
func FromBytes(width, height, stride int, pix []byte) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	if stride < width*3 {
		return nil, fmt.Errorf("stride %d too small for width %d", stride, width)
	}
	need := (height-1)*stride + width*3
	if len(pix) < need {
		return nil, fmt.Errorf("pixel data too short: have %d bytes, need %d", len(pix), need)
	}
	return &Image{width: width, height: height, stride: stride, pix: pix}, nil
}

// Width returns the image width in pixels.
func (im *Image) Width() int { return im.width }

// Height returns the image height in pixels.
func (im *Image) Height() int { return im.height }

// RGB returns the pixel at (x, y). Out-of-bounds coordinates return black,
// so scan loops never index outside the caller's slice.
func (im *Image) RGB(x, y int) (r, g, b uint8) {
	if x < 0 || x >= im.width || y < 0 || y >= im.height {
		return 0, 0, 0
	}
	off := y*im.stride + x*3
	return im.pix[off], im.pix[off+1], im.pix[off+2]
}

// SetRGB writes the pixel at (x, y), ignoring out-of-bounds coordinates.
// Intended for tests and example pattern generators.
func (im *Image) SetRGB(x, y int, r, g, b uint8) {
	if x < 0 || x >= im.width || y < 0 || y >= im.height {
		return
	}
	off := y*im.stride + x*3
	im.pix[off] = r
	im.pix[off+1] = g
	im.pix[off+2] = b
}

// Fill sets every pixel to the given color.
func (im *Image) Fill(r, g, b uint8) {
	for y := 0; y < im.height; y++ {
		for x := 0; x < im.width; x++ {
			im.SetRGB(x, y, r, g, b)
		}
	}
}
