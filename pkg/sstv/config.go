// ABOUTME: YAML encode-settings loader
// ABOUTME: Resolves mode, sample rate and CW parameters from a config file
package sstv

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Options is the YAML-loadable encode configuration:
//
//	mode: martin1
//	sample_rate: 22050
//	cw:
//	  callsign: W1AW
//	  wpm: 15
//	  tone_hz: 800
type Options struct {
	Mode       string    `yaml:"mode"`
	SampleRate int       `yaml:"sample_rate"`
	CW         *CWConfig `yaml:"cw"`
}

// LoadOptions reads and validates encode options from YAML.
func LoadOptions(r io.Reader) (*Options, error) {
	var opts Options
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		return nil, fmt.Errorf("failed to parse encode options: %w", err)
	}
	if opts.SampleRate == 0 {
		opts.SampleRate = DefaultSampleRate
	}
	if _, err := opts.ModeDescriptor(); err != nil {
		return nil, err
	}
	return &opts, nil
}

// ModeDescriptor resolves the configured mode name.
func (o *Options) ModeDescriptor() (*Mode, error) {
	if o.Mode == "" {
		return nil, fmt.Errorf("%w: no mode configured", ErrInvalidArgument)
	}
	return ModeByName(o.Mode)
}

// SessionConfig converts the options into a session configuration.
func (o *Options) SessionConfig() Config {
	return Config{SampleRate: o.SampleRate}
}
