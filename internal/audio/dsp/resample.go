package dsp

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"wav2adpcm/internal/audio/errs"
	"wav2adpcm/internal/audio/pcm"
)

// libsamplerate accepts ratios in [1/256, 256].
const maxRatio = 256

// Resample converts buf to dstRate. Equal rates pass through unchanged.
func (p *Processor) Resample(buf *pcm.Buffer, dstRate int) (*pcm.Buffer, error) {
	if dstRate <= 0 || buf.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: resample %d Hz to %d Hz: invalid rate", errs.ErrPipeline, buf.SampleRate, dstRate)
	}
	if dstRate == buf.SampleRate {
		return clone(buf), nil
	}
	ratio := float64(dstRate) / float64(buf.SampleRate)
	if ratio > maxRatio || ratio < 1.0/maxRatio {
		return nil, fmt.Errorf("%w: resample %d Hz to %d Hz: ratio %g out of range", errs.ErrPipeline, buf.SampleRate, dstRate, ratio)
	}
	if buf.Frames() == 0 {
		out := buf.WithData(nil)
		out.SampleRate = dstRate
		return out, nil
	}

	data, err := p.resample(buf.Data, ratio, buf.Channels)
	if err != nil {
		return nil, fmt.Errorf("%w: resample %d Hz to %d Hz: %w", errs.ErrPipeline, buf.SampleRate, dstRate, err)
	}
	log.Debug().
		Int("from", buf.SampleRate).
		Int("to", dstRate).
		Int("frames_in", buf.Frames()).
		Int("frames_out", len(data)/buf.Channels).
		Str("quality", p.Quality.String()).
		Msg("Resampled")

	out := buf.WithData(data)
	out.SampleRate = dstRate
	return out, nil
}
