// ABOUTME: Bounded PCM sample buffer for SSTV synthesis
// ABOUTME: Fixed-capacity mono int16 storage with little-endian export
package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// MinSampleRate and MaxSampleRate bound the supported PCM rates.
	MinSampleRate = 8000
	MaxSampleRate = 48000
)

// ErrBufferOverflow reports an append that would exceed the buffer's fixed
// capacity. The encode must abort; samples are never silently dropped.
var ErrBufferOverflow = errors.New("audio buffer overflow")

// Buffer holds mono signed 16-bit PCM samples at a fixed sample rate.
// Capacity is set at construction and never grows; length never exceeds it.
type Buffer struct {
	samples []int16
	rate    int
}

// NewBuffer creates a buffer for the given sample rate with room for
// capacity samples.
func NewBuffer(rate, capacity int) (*Buffer, error) {
	if rate < MinSampleRate || rate > MaxSampleRate {
		return nil, fmt.Errorf("sample rate %d out of range %d-%d Hz", rate, MinSampleRate, MaxSampleRate)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("buffer capacity must be positive, got %d", capacity)
	}
	return &Buffer{
		samples: make([]int16, 0, capacity),
		rate:    rate,
	}, nil
}

// Extend grows the buffer by n samples and returns the writable window.
// Fails with ErrBufferOverflow if the buffer cannot hold n more samples.
func (b *Buffer) Extend(n int) ([]int16, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot extend by %d samples", n)
	}
	if len(b.samples)+n > cap(b.samples) {
		return nil, fmt.Errorf("%w: %d + %d exceeds capacity %d",
			ErrBufferOverflow, len(b.samples), n, cap(b.samples))
	}
	b.samples = b.samples[: len(b.samples)+n : cap(b.samples)]
	return b.samples[len(b.samples)-n:], nil
}

// Len returns the current number of samples.
func (b *Buffer) Len() int { return len(b.samples) }

// Cap returns the fixed capacity in samples.
func (b *Buffer) Cap() int { return cap(b.samples) }

// Rate returns the sample rate in Hz.
func (b *Buffer) Rate() int { return b.rate }

// Duration returns the buffered audio length in seconds.
func (b *Buffer) Duration() float64 {
	return float64(len(b.samples)) / float64(b.rate)
}

// Samples returns the buffered samples. The slice aliases the buffer's
// storage and is valid until the next Extend or Reset.
func (b *Buffer) Samples() []int16 { return b.samples }

// Bytes exports the samples as little-endian signed 16-bit PCM, the layout
// consumed by external container writers.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.samples)*2)
	for i, s := range b.samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

// Reset empties the buffer without releasing its backing storage.
func (b *Buffer) Reset() {
	b.samples = b.samples[:0]
}
