// ABOUTME: Audio fundamentals package for SSTV encoding
// ABOUTME: Defines the bounded PCM sample buffer handed to container writers
// Package audio provides the PCM sample buffer that every SSTV encoder
// stage appends to.
//
// A Buffer is mono signed 16-bit PCM at a fixed sample rate between
// 8000 and 48000 Hz. Capacity is fixed when the buffer is created; an
// append that would exceed it fails with ErrBufferOverflow rather than
// truncating the signal.
//
// The finished buffer is handed off to external collaborators (WAV, AIFF
// or OGG writers) via Samples or Bytes; this package performs no file I/O.
//
// Example:
//
//	buf, err := audio.NewBuffer(22050, 22050*60)
//	if err != nil {
//	    return err
//	}
//	// ... encoders fill the buffer ...
//	pcm := buf.Bytes() // little-endian s16, ready for a WAV writer
package audio
