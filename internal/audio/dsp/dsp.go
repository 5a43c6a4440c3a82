// Package dsp implements the buffer transforms used before encoding.
//
// Every primitive returns a new buffer and leaves its input untouched.
package dsp

import (
	"wav2adpcm/internal/audio/config"
	"wav2adpcm/internal/audio/pcm"
)

// Processor is the default DSP backend: gonum for vector math, a Butterworth
// IIR for low-pass filtering and libsamplerate for rate conversion.
type Processor struct {
	Quality config.ResamplerQuality
}

func NewProcessor(quality config.ResamplerQuality) *Processor {
	if quality == "" {
		quality = config.DefaultResampler
	}
	return &Processor{Quality: quality}
}

func clone(buf *pcm.Buffer) *pcm.Buffer {
	data := make([]float64, len(buf.Data))
	copy(data, buf.Data)
	return buf.WithData(data)
}
