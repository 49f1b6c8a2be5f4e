// ABOUTME: Error taxonomy for the SSTV encoder
// ABOUTME: Sentinel errors matched with errors.Is by callers
package sstv

import (
	"errors"

	"github.com/hamwave/sstv-go/internal/synth"
	"github.com/hamwave/sstv-go/pkg/audio"
)

var (
	// ErrInvalidArgument reports a bad parameter (VIS code, WPM, tone
	// frequency, callsign, image dimensions) or an out-of-sequence
	// session transition.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedMode reports a VIS code with no registry entry.
	ErrUnsupportedMode = errors.New("unsupported sstv mode")

	// ErrBufferOverflow reports an encode that would exceed the session
	// buffer's fixed capacity. The encode aborts; nothing is truncated.
	ErrBufferOverflow = audio.ErrBufferOverflow

	// ErrPrecision reports tone arithmetic outside the safe range.
	ErrPrecision = synth.ErrPrecision
)
