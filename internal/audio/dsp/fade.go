package dsp

import (
	"time"

	"gonum.org/v1/gonum/floats"

	"wav2adpcm/internal/audio/pcm"
)

// FadeOut ramps the amplitude linearly from 1 down to 0 over the final d of
// the buffer, or over the whole buffer if it is shorter.
func (p *Processor) FadeOut(buf *pcm.Buffer, d time.Duration) *pcm.Buffer {
	out := clone(buf)
	frames := buf.Frames()
	n := int(d.Seconds() * float64(buf.SampleRate))
	if n > frames {
		n = frames
	}
	if n <= 0 {
		return out
	}

	ramp := make([]float64, n)
	if n == 1 {
		ramp[0] = 0
	} else {
		floats.Span(ramp, 1, 0)
	}

	start := frames - n
	for i, g := range ramp {
		off := (start + i) * buf.Channels
		for ch := 0; ch < buf.Channels; ch++ {
			out.Data[off+ch] *= g
		}
	}
	return out
}
