// ABOUTME: Public SSTV encoding API
// ABOUTME: Mode registry, encode sessions and the one-shot Encode facade
// Package sstv converts RGB images into SSTV audio waveforms.
//
// A transmission is built by an encode Session: the VIS calibration
// header identifying the mode, the per-mode scan lines, the end-of-scan
// trailer, and an optional Morse station identification. The finished
// session yields a mono 16-bit PCM buffer ready for an external WAV,
// AIFF or OGG writer.
//
// Supported modes cover two color families: Martin and Scottie map each
// RGB channel directly onto the 1500-2300 Hz video band, while Robot 36
// and Robot 72 transmit BT.601 luma with subsampled chroma.
//
// Example:
//
//	mode, err := sstv.ModeByVIS(44) // Martin 1
//	if err != nil {
//	    return err
//	}
//	img, _ := pixel.FromBytes(mode.Width, mode.Height, mode.Width*3, rgb)
//	buf, err := sstv.Encode(mode, img, sstv.Config{SampleRate: 22050},
//	    &sstv.CWConfig{Callsign: "W1AW", WPM: 15, ToneHz: 800})
//	if err != nil {
//	    return err
//	}
//	pcm := buf.Bytes() // hand to a container writer
//
// Sessions own their synthesis state and buffer exclusively, so separate
// sessions can encode concurrently without coordination.
package sstv
