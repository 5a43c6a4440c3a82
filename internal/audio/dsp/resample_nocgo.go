//go:build !cgo

package dsp

import "math"

// resample falls back to linear interpolation when libsamplerate is not
// available. Quality settings are ignored.
func (p *Processor) resample(data []float64, ratio float64, channels int) ([]float64, error) {
	frames := len(data) / channels
	outFrames := int(math.Floor(float64(frames)*ratio + 0.5))
	out := make([]float64, outFrames*channels)
	step := 1 / ratio

	for i := 0; i < outFrames; i++ {
		at := float64(i) * step
		idx := int(at)
		frac := at - float64(idx)
		for ch := 0; ch < channels; ch++ {
			out[i*channels+ch] = sampleAt(data, idx, ch, channels, frames, frac)
		}
	}
	return out, nil
}

func sampleAt(data []float64, idx, ch, channels, frames int, frac float64) float64 {
	if idx+1 >= frames {
		return data[(frames-1)*channels+ch]
	}
	a := data[idx*channels+ch]
	b := data[(idx+1)*channels+ch]
	return a*(1-frac) + b*frac
}
