// ABOUTME: Tests for the bounded PCM sample buffer
// ABOUTME: Covers capacity enforcement, reset reuse and little-endian export
package audio

import (
	"errors"
	"testing"
)

func TestNewBufferValidation(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		capacity int
		wantErr  bool
	}{
		{"min rate", 8000, 100, false},
		{"max rate", 48000, 100, false},
		{"rate too low", 7999, 100, true},
		{"rate too high", 48001, 100, true},
		{"zero capacity", 22050, 0, true},
		{"negative capacity", 22050, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBuffer(tt.rate, tt.capacity)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewBuffer(%d, %d) error = %v, wantErr %v", tt.rate, tt.capacity, err, tt.wantErr)
			}
		})
	}
}

func TestExtendOverflow(t *testing.T) {
	buf, err := NewBuffer(8000, 10)
	if err != nil {
		t.Fatalf("failed to create buffer: %v", err)
	}

	win, err := buf.Extend(10)
	if err != nil {
		t.Fatalf("extend within capacity failed: %v", err)
	}
	if len(win) != 10 {
		t.Errorf("expected window of 10 samples, got %d", len(win))
	}

	_, err = buf.Extend(1)
	if !errors.Is(err, ErrBufferOverflow) {
		t.Errorf("expected ErrBufferOverflow, got %v", err)
	}
	if buf.Len() != 10 {
		t.Errorf("overflow must not change length, got %d", buf.Len())
	}
}

func TestResetKeepsStorage(t *testing.T) {
	buf, err := NewBuffer(8000, 32)
	if err != nil {
		t.Fatalf("failed to create buffer: %v", err)
	}
	if _, err := buf.Extend(32); err != nil {
		t.Fatalf("extend failed: %v", err)
	}

	buf.Reset()
	if buf.Len() != 0 {
		t.Errorf("expected empty buffer after reset, got %d", buf.Len())
	}
	if buf.Cap() != 32 {
		t.Errorf("reset must keep capacity, got %d", buf.Cap())
	}
	if _, err := buf.Extend(32); err != nil {
		t.Errorf("reuse after reset failed: %v", err)
	}
}

func TestBytesLittleEndian(t *testing.T) {
	buf, err := NewBuffer(8000, 4)
	if err != nil {
		t.Fatalf("failed to create buffer: %v", err)
	}
	win, err := buf.Extend(2)
	if err != nil {
		t.Fatalf("extend failed: %v", err)
	}
	win[0] = 0x0102
	win[1] = -2 // 0xFFFE

	out := buf.Bytes()
	want := []byte{0x02, 0x01, 0xFE, 0xFF}
	if len(out) != len(want) {
		t.Fatalf("expected %d bytes, got %d", len(want), len(out))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("byte %d: expected %#x, got %#x", i, want[i], out[i])
		}
	}
}

func TestDuration(t *testing.T) {
	buf, err := NewBuffer(8000, 16000)
	if err != nil {
		t.Fatalf("failed to create buffer: %v", err)
	}
	if _, err := buf.Extend(12000); err != nil {
		t.Fatalf("extend failed: %v", err)
	}
	if got := buf.Duration(); got != 1.5 {
		t.Errorf("expected 1.5s, got %v", got)
	}
}
