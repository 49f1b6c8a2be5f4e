// ABOUTME: Pixel buffer view package for SSTV encoding
// ABOUTME: Bounds-checked RGB access and broadcast YUV conversion
// Package pixel provides a read-only, bounds-checked view over the RGB
// pixel buffer supplied by an image-loading collaborator.
//
// The view expects row-major 8-bit RGB data, three bytes per pixel, with a
// configurable row stride. It also provides the BT.601 studio-swing
// conversions (luma plus offset-scale R-Y / B-Y chroma) used by the
// YUV-subsampled SSTV modes.
package pixel
