package encoder

import (
	"fmt"

	"wav2adpcm/internal/audio/config"
	"wav2adpcm/internal/audio/errs"
)

type Encoder interface {
	Encode(pcm []int16) ([]byte, error)
}

// New returns the encoder for the given stream layout. Only the mono
// 15625 Hz layout of the target codec is accepted.
func New(sampleRate, channels uint32) (Encoder, error) {
	if sampleRate == config.TargetSampleRate && channels == config.TargetChannels {
		return &ADPCMEncoder{}, nil
	}
	return nil, fmt.Errorf("%w: no encoder for %d Hz, %d channels", errs.ErrEncode, sampleRate, channels)
}
