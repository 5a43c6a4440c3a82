// Package pipeline runs the preprocessing stages that bring a decoded
// source to the codec's rate and channel layout.
package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"wav2adpcm/internal/audio/config"
	"wav2adpcm/internal/audio/errs"
	"wav2adpcm/internal/audio/pcm"
)

// DSP is the set of buffer transforms the pipeline is built from.
type DSP interface {
	Trim(buf *pcm.Buffer, maxSeconds float64) *pcm.Buffer
	Gain(buf *pcm.Buffer, db float64) *pcm.Buffer
	FadeOut(buf *pcm.Buffer, d time.Duration) *pcm.Buffer
	LowPass(buf *pcm.Buffer, cutoffHz float64, order int) (*pcm.Buffer, error)
	Downmix(buf *pcm.Buffer) *pcm.Buffer
	Resample(buf *pcm.Buffer, dstRate int) (*pcm.Buffer, error)
}

var ErrDSPNil = errors.New("dsp cannot be nil")

type Pipeline struct {
	dsp DSP
	cfg config.ConversionConfig
}

func New(dsp DSP, cfg config.ConversionConfig) (*Pipeline, error) {
	if dsp == nil {
		return nil, ErrDSPNil
	}
	return &Pipeline{dsp: dsp, cfg: cfg}, nil
}

// Process runs trim -> gain -> fade-out -> low-pass -> downmix -> resample.
// The result is always mono at config.TargetSampleRate.
func (p *Pipeline) Process(buf *pcm.Buffer) (*pcm.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrPipeline, err)
	}
	start := time.Now()

	buf = p.dsp.Trim(buf, float64(p.cfg.TrimSeconds))
	buf = p.dsp.Gain(buf, float64(p.cfg.VolumeDB))
	if p.cfg.FadeOut {
		buf = p.dsp.FadeOut(buf, config.FadeOutDuration)
	}
	if p.cfg.Filter {
		var err error
		buf, err = p.dsp.LowPass(buf, config.LowPassCutoffHz, config.LowPassOrder)
		if err != nil {
			return nil, err
		}
	}
	buf = p.dsp.Downmix(buf)
	buf, err := p.dsp.Resample(buf, config.TargetSampleRate)
	if err != nil {
		return nil, err
	}

	if buf.SampleRate != config.TargetSampleRate || buf.Channels != config.TargetChannels {
		return nil, fmt.Errorf("%w: stages produced %d Hz %d ch", errs.ErrPipeline, buf.SampleRate, buf.Channels)
	}

	log.Debug().
		Int("frames", buf.Frames()).
		Dur("took", time.Since(start)).
		Msg("Pipeline finished")
	return buf, nil
}
