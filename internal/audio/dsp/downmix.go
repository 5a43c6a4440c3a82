package dsp

import (
	"gonum.org/v1/gonum/stat"

	"wav2adpcm/internal/audio/pcm"
)

// Downmix averages all channels of each frame into a mono buffer.
func (p *Processor) Downmix(buf *pcm.Buffer) *pcm.Buffer {
	if buf.Channels == 1 {
		return clone(buf)
	}
	frames := buf.Frames()
	mono := make([]float64, frames)
	for i := 0; i < frames; i++ {
		mono[i] = stat.Mean(buf.Data[i*buf.Channels:(i+1)*buf.Channels], nil)
	}
	return &pcm.Buffer{
		Data:       mono,
		SampleRate: buf.SampleRate,
		Channels:   1,
		BitDepth:   buf.BitDepth,
	}
}
