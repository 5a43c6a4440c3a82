package dsp

import (
	"fmt"

	"wav2adpcm/internal/audio/errs"
	"wav2adpcm/internal/audio/pcm"
)

// LowPass filters every channel with a Butterworth low-pass of the given order.
// The cutoff must lie strictly below the Nyquist frequency of buf.
func (p *Processor) LowPass(buf *pcm.Buffer, cutoffHz float64, order int) (*pcm.Buffer, error) {
	nyquist := 0.5 * float64(buf.SampleRate)
	b, a, err := Butterworth(order, cutoffHz/nyquist)
	if err != nil {
		return nil, fmt.Errorf("%w: low-pass %g Hz at %d Hz: %w", errs.ErrPipeline, cutoffHz, buf.SampleRate, err)
	}

	out := clone(buf)
	for ch := 0; ch < buf.Channels; ch++ {
		out.SetChannel(ch, LFilter(b, a, buf.Channel(ch)))
	}
	return out, nil
}
