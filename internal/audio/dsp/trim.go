package dsp

import "wav2adpcm/internal/audio/pcm"

// Trim keeps at most the first maxSeconds of the buffer. maxSeconds <= 0 keeps everything.
func (p *Processor) Trim(buf *pcm.Buffer, maxSeconds float64) *pcm.Buffer {
	if maxSeconds <= 0 {
		return clone(buf)
	}
	frames := int(maxSeconds * float64(buf.SampleRate))
	if frames >= buf.Frames() {
		return clone(buf)
	}
	data := make([]float64, frames*buf.Channels)
	copy(data, buf.Data)
	return buf.WithData(data)
}
