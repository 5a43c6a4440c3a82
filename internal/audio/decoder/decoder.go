package decoder

import (
	"fmt"

	"wav2adpcm/internal/audio/config"
	"wav2adpcm/internal/audio/errs"
)

type Decoder interface {
	Decode(encoded []byte) ([]int16, error)
}

func New(sampleRate, channels uint32) (Decoder, error) {
	if sampleRate == config.TargetSampleRate && channels == config.TargetChannels {
		return &ADPCMDecoder{}, nil
	}
	return nil, fmt.Errorf("%w: no decoder for %d Hz, %d channels", errs.ErrDecode, sampleRate, channels)
}
