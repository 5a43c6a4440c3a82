package decoder

import (
	"wav2adpcm/internal/audio/codec"
)

// ADPCMDecoder turns packed 4-bit codes back into 12-bit estimates,
// two samples per byte, low nibble first.
type ADPCMDecoder struct{}

// Decode decodes every nibble of encoded from the initial state. A stream
// with an odd sample count yields one extra trailing sample from the zero
// pad nibble.
func (d *ADPCMDecoder) Decode(encoded []byte) ([]int16, error) {
	return DecodeADPCM(encoded, -1), nil
}

// DecodeADPCM decodes the first n codes of encoded; n < 0 decodes all of them.
func DecodeADPCM(encoded []byte, n int) []int16 {
	var state codec.State
	codes := codec.Unpack(encoded, n)
	out := make([]int16, len(codes))
	for i, c := range codes {
		out[i] = state.Decode(c)
	}
	return out
}
