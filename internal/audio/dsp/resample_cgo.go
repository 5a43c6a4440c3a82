//go:build cgo

package dsp

import (
	"github.com/dh1tw/gosamplerate"

	"wav2adpcm/internal/audio/config"
	"wav2adpcm/internal/audio/convert"
)

func converterType(q config.ResamplerQuality) int {
	switch q {
	case config.ResamplerMedium:
		return gosamplerate.SRC_SINC_MEDIUM_QUALITY
	case config.ResamplerFastest:
		return gosamplerate.SRC_SINC_FASTEST
	case config.ResamplerZOH:
		return gosamplerate.SRC_ZERO_ORDER_HOLD
	case config.ResamplerLinear:
		return gosamplerate.SRC_LINEAR
	default:
		return gosamplerate.SRC_SINC_BEST_QUALITY
	}
}

// resample runs libsamplerate's one-shot converter over interleaved data.
func (p *Processor) resample(data []float64, ratio float64, channels int) ([]float64, error) {
	out, err := gosamplerate.Simple(convert.Float64ToFloat32(data), ratio, channels, converterType(p.Quality))
	if err != nil {
		return nil, err
	}
	return convert.Float32ToFloat64(out), nil
}
