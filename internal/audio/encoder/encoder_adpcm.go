package encoder

import (
	"fmt"

	"wav2adpcm/internal/audio/codec"
	"wav2adpcm/internal/audio/errs"
)

// ADPCMEncoder encodes 12-bit mono samples into packed 4-bit codes.
// Every Encode call starts from the initial codec state.
type ADPCMEncoder struct{}

func (e *ADPCMEncoder) Encode(samples []int16) ([]byte, error) {
	var state codec.State
	packer := codec.NewPacker(len(samples))

	for i, s := range samples {
		if s < codec.MinEstimate || s > codec.MaxEstimate {
			return nil, fmt.Errorf("%w: sample %d value %d outside 12-bit range", errs.ErrEncode, i, s)
		}
		packer.Add(state.Encode(s))
	}
	return packer.Bytes(), nil
}
