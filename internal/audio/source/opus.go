package source

import (
	"errors"
	"fmt"
	"io"

	"github.com/thesyncim/gopus"
	"github.com/thesyncim/gopus/container/ogg"

	"wav2adpcm/internal/audio/convert"
	"wav2adpcm/internal/audio/pcm"
)

const (
	opusSampleRate = 48000
	// 120 ms at 48 kHz, the longest packet Opus allows
	opusMaxPacketSamples = 5760
)

// ReadOpus decodes an Ogg Opus stream at 48 kHz. Samples are scaled to
// the 16-bit range.
func ReadOpus(r io.Reader) (*pcm.Buffer, error) {
	oggReader, err := ogg.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("create ogg reader: %w", err)
	}

	channels := int(oggReader.Channels())
	if channels < 1 {
		return nil, errors.New("invalid channel count in OpusHead")
	}
	dec, err := gopus.NewDecoder(gopus.DefaultDecoderConfig(opusSampleRate, channels))
	if err != nil {
		return nil, fmt.Errorf("create decoder: %w", err)
	}

	pcmOut := make([]float32, opusMaxPacketSamples*channels)
	remainingSkip := int(oggReader.PreSkip())
	var samples []float32
	var packets int

	for {
		packet, _, err := oggReader.ReadPacket()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read packet: %w", err)
		}
		packets++

		n, err := dec.Decode(packet, pcmOut)
		if err != nil {
			return nil, fmt.Errorf("decode packet %d: %w", packets, err)
		}

		frame := pcmOut[:n*channels]
		if remainingSkip > 0 {
			if n <= remainingSkip {
				remainingSkip -= n
				continue
			}
			frame = frame[remainingSkip*channels:]
			remainingSkip = 0
		}
		samples = append(samples, frame...)
	}

	return &pcm.Buffer{
		Data:       convert.Float32ToScaled(samples),
		SampleRate: opusSampleRate,
		Channels:   channels,
		BitDepth:   16,
	}, nil
}
