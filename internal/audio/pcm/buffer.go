// Package pcm holds the buffer passed between conversion stages.
package pcm

import (
	"fmt"
	"time"
)

// Buffer is interleaved PCM in the source integer scale: a 16-bit sample
// of 1000 is stored as 1000.0 regardless of any gain applied later.
type Buffer struct {
	Data       []float64
	SampleRate int
	Channels   int
	BitDepth   int
}

// Frames returns the number of samples per channel.
func (b *Buffer) Frames() int {
	if b.Channels <= 0 {
		return 0
	}
	return len(b.Data) / b.Channels
}

func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.SampleRate)
}

// WithData returns a copy of the buffer metadata holding data.
func (b *Buffer) WithData(data []float64) *Buffer {
	return &Buffer{
		Data:       data,
		SampleRate: b.SampleRate,
		Channels:   b.Channels,
		BitDepth:   b.BitDepth,
	}
}

// Channel extracts one channel as a contiguous slice.
func (b *Buffer) Channel(ch int) []float64 {
	frames := b.Frames()
	out := make([]float64, frames)
	for i := 0; i < frames; i++ {
		out[i] = b.Data[i*b.Channels+ch]
	}
	return out
}

// SetChannel writes a contiguous slice back into channel ch.
func (b *Buffer) SetChannel(ch int, samples []float64) {
	for i, v := range samples {
		b.Data[i*b.Channels+ch] = v
	}
}

func (b *Buffer) Validate() error {
	if b.Channels < 1 {
		return fmt.Errorf("invalid channel count %d", b.Channels)
	}
	if b.SampleRate < 1 {
		return fmt.Errorf("invalid sample rate %d", b.SampleRate)
	}
	if len(b.Data)%b.Channels != 0 {
		return fmt.Errorf("%d samples do not divide into %d channels", len(b.Data), b.Channels)
	}
	return nil
}
