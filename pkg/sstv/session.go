// ABOUTME: Per-encode session owning mode, synthesis state and buffer
// ABOUTME: Enforces the header -> lines -> trailer -> cw -> ready sequence
package sstv

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hamwave/sstv-go/internal/cw"
	"github.com/hamwave/sstv-go/internal/synth"
	"github.com/hamwave/sstv-go/internal/vis"
	"github.com/hamwave/sstv-go/pkg/audio"
	"github.com/hamwave/sstv-go/pkg/pixel"
)

const (
	// DefaultSampleRate matches the reference encoder's default.
	DefaultSampleRate = 22050

	// DefaultMaxDuration bounds the session buffer: ten minutes covers
	// the slowest mode plus trailer and CW signature with margin.
	DefaultMaxDuration = 10 * time.Minute
)

// State tracks a session's position in the encode sequence.
type State int

const (
	StateInit State = iota
	StateHeaderEncoded
	StateLinesEncoded
	StateTrailerEncoded
	StateCwAppended
	StateReady
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateHeaderEncoded:
		return "header-encoded"
	case StateLinesEncoded:
		return "lines-encoded"
	case StateTrailerEncoded:
		return "trailer-encoded"
	case StateCwAppended:
		return "cw-appended"
	case StateReady:
		return "ready"
	}
	return "unknown"
}

// Config holds per-session encode parameters.
type Config struct {
	// SampleRate in Hz, 8000-48000. Defaults to DefaultSampleRate.
	SampleRate int

	// MaxDuration fixes the buffer capacity as duration * rate.
	// Defaults to DefaultMaxDuration.
	MaxDuration time.Duration

	// OnProgress, if set, is called after each encoded scan line.
	OnProgress func(line, total int)
}

// CWConfig holds the optional Morse station-identification parameters.
type CWConfig struct {
	Callsign string  `yaml:"callsign"`
	WPM      int     `yaml:"wpm"`
	ToneHz   float64 `yaml:"tone_hz"`
}

// Session owns exactly one mode descriptor, one synthesis state and one
// sample buffer for the lifetime of a single encode. Sessions share no
// mutable state, so independent sessions may run concurrently.
type Session struct {
	id    string
	mode  *Mode
	cfg   Config
	buf   *audio.Buffer
	syn   *synth.Synthesizer
	state State
}

// NewSession opens an encode session for the given mode.
func NewSession(mode *Mode, cfg Config) (*Session, error) {
	if mode == nil {
		return nil, fmt.Errorf("%w: nil mode", ErrInvalidArgument)
	}
	if cfg.SampleRate == 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if cfg.SampleRate < audio.MinSampleRate || cfg.SampleRate > audio.MaxSampleRate {
		return nil, fmt.Errorf("%w: sample rate %d out of range %d-%d Hz",
			ErrInvalidArgument, cfg.SampleRate, audio.MinSampleRate, audio.MaxSampleRate)
	}
	if cfg.MaxDuration == 0 {
		cfg.MaxDuration = DefaultMaxDuration
	}
	if cfg.MaxDuration < 0 {
		return nil, fmt.Errorf("%w: negative max duration", ErrInvalidArgument)
	}

	capacity := int(cfg.MaxDuration.Seconds() * float64(cfg.SampleRate))
	buf, err := audio.NewBuffer(cfg.SampleRate, capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	return &Session{
		id:   uuid.NewString(),
		mode: mode,
		cfg:  cfg,
		buf:  buf,
		syn:  synth.New(buf),
	}, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Mode returns the session's mode descriptor.
func (s *Session) Mode() *Mode { return s.mode }

// State returns the session's current encode stage.
func (s *Session) State() State { return s.state }

// SampleRate returns the session's PCM rate in Hz.
func (s *Session) SampleRate() int { return s.buf.Rate() }

func (s *Session) require(op string, want ...State) error {
	for _, w := range want {
		if s.state == w {
			return nil
		}
	}
	return fmt.Errorf("%w: cannot %s in state %s", ErrInvalidArgument, op, s.state)
}

// EncodeHeader appends the VIS calibration header.
func (s *Session) EncodeHeader() error {
	if err := s.require("encode header", StateInit); err != nil {
		return err
	}
	if err := vis.EncodeHeader(s.syn, s.mode.VIS); err != nil {
		return err
	}
	s.state = StateHeaderEncoded
	return nil
}

// EncodeLines appends every scan line of the image, whose dimensions must
// match the mode's resolution exactly.
func (s *Session) EncodeLines(img *pixel.Image) error {
	if err := s.require("encode lines", StateHeaderEncoded); err != nil {
		return err
	}
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	if img.Width() != s.mode.Width || img.Height() != s.mode.Height {
		return fmt.Errorf("%w: image is %dx%d, %s requires %dx%d",
			ErrInvalidArgument, img.Width(), img.Height(), s.mode.Name, s.mode.Width, s.mode.Height)
	}

	var err error
	switch s.mode.Family {
	case FamilyRGB:
		err = encodeRGBLines(s.syn, s.mode, img, s.cfg.OnProgress)
	case FamilyYUV:
		err = encodeYUVLines(s.syn, s.mode, img, s.cfg.OnProgress)
	default:
		err = fmt.Errorf("%w: family %v", ErrUnsupportedMode, s.mode.Family)
	}
	if err != nil {
		return err
	}
	s.state = StateLinesEncoded
	return nil
}

// EncodeTrailer appends the end-of-scan marker.
func (s *Session) EncodeTrailer() error {
	if err := s.require("encode trailer", StateLinesEncoded); err != nil {
		return err
	}
	if err := vis.EncodeTrailer(s.syn); err != nil {
		return err
	}
	s.state = StateTrailerEncoded
	return nil
}

// AppendCW appends the optional Morse station identification.
func (s *Session) AppendCW(cfg CWConfig) error {
	if err := s.require("append cw", StateTrailerEncoded); err != nil {
		return err
	}
	msg := cw.Message{Callsign: cfg.Callsign, WPM: cfg.WPM, ToneHz: cfg.ToneHz}
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if err := cw.Encode(s.syn, msg); err != nil {
		return err
	}
	s.state = StateCwAppended
	return nil
}

// Finalize completes the encode and returns the finished buffer for
// hand-off to a container-writer collaborator.
func (s *Session) Finalize() (*audio.Buffer, error) {
	if err := s.require("finalize", StateTrailerEncoded, StateCwAppended); err != nil {
		return nil, err
	}
	s.state = StateReady
	return s.buf, nil
}

// Reset returns the session to the initial state for a new encode at the
// same sample rate, keeping the buffer's backing storage.
func (s *Session) Reset() {
	s.buf.Reset()
	s.syn.Reset()
	s.state = StateInit
}

// Encode runs the full pipeline for one image: header, scan lines,
// trailer, optional CW signature. cwCfg may be nil.
func Encode(mode *Mode, img *pixel.Image, cfg Config, cwCfg *CWConfig) (*audio.Buffer, error) {
	sess, err := NewSession(mode, cfg)
	if err != nil {
		return nil, err
	}
	if err := sess.EncodeHeader(); err != nil {
		return nil, err
	}
	if err := sess.EncodeLines(img); err != nil {
		return nil, err
	}
	if err := sess.EncodeTrailer(); err != nil {
		return nil, err
	}
	if cwCfg != nil {
		if err := sess.AppendCW(*cwCfg); err != nil {
			return nil, err
		}
	}
	return sess.Finalize()
}
