package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/riff"
	"github.com/go-audio/wav"

	"wav2adpcm/internal/audio/convert"
	"wav2adpcm/internal/audio/pcm"
)

const (
	wavFormatPCM        = 1
	wavFormatFloat      = 3
	wavFormatExtensible = 0xfffe
)

// Bytes 2..15 of every KSDATAFORMAT_SUBTYPE_* GUID; the first two hold the format tag.
var ksDataFormatSuffix = []byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71}

var ErrInvalidWAV = errors.New("not a valid wave file")

// on-disk sizes of the fmt chunk parts below
const (
	fmtHeaderSize    = 16
	fmtExtensionSize = 24
)

type fmtHeader struct {
	FormatTag     uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

type fmtExtension struct {
	Size        uint16
	ValidBits   uint16
	ChannelMask uint32
	SubFormat   [16]byte
}

// wavSampleFormat returns the effective format tag of the fmt chunk,
// resolving WAVE_FORMAT_EXTENSIBLE to its sub-format. r is rewound.
func wavSampleFormat(r io.ReadSeeker) (uint16, error) {
	defer r.Seek(0, io.SeekStart)

	p := riff.New(r)
	if err := p.ParseHeaders(); err != nil {
		return 0, err
	}
	if p.Format != riff.WavFormatID {
		return 0, ErrInvalidWAV
	}
	for {
		ch, err := p.NextChunk()
		if err != nil {
			return 0, err
		}
		if ch.ID != riff.FmtID {
			ch.Drain()
			continue
		}

		var hdr fmtHeader
		if err := ch.ReadLE(&hdr); err != nil {
			return 0, err
		}
		if hdr.FormatTag != wavFormatExtensible {
			return hdr.FormatTag, nil
		}
		var ext fmtExtension
		if ch.Size < fmtHeaderSize+fmtExtensionSize {
			return 0, fmt.Errorf("extensible fmt chunk too short (%d bytes)", ch.Size)
		}
		if err := ch.ReadLE(&ext); err != nil {
			return 0, err
		}
		if !bytes.Equal(ext.SubFormat[2:], ksDataFormatSuffix) {
			return 0, fmt.Errorf("unknown extensible sub-format %x", ext.SubFormat)
		}
		return uint16(ext.SubFormat[0]) | uint16(ext.SubFormat[1])<<8, nil
	}
}

// ReadWAV decodes integer PCM and 32-bit float WAV data. 8-bit samples are
// unsigned on disk and are centred on zero here. Float samples are scaled
// to the 16-bit range.
func ReadWAV(r io.ReadSeeker) (*pcm.Buffer, error) {
	format, err := wavSampleFormat(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWAV, err)
	}

	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, ErrInvalidWAV
	}
	bits := int(d.BitDepth)
	switch {
	case format == wavFormatPCM && convert.IsBitDepthSupported(bits):
	case format == wavFormatFloat && bits == 32:
	default:
		return nil, fmt.Errorf("unsupported wave format %#x at %d bits (integer PCM or 32-bit float only)", format, bits)
	}

	ib, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("read samples: %w", err)
	}

	buf := &pcm.Buffer{
		SampleRate: int(d.SampleRate),
		Channels:   int(d.NumChans),
		BitDepth:   bits,
	}
	if format == wavFormatFloat {
		// the decoder hands back the raw 32-bit patterns
		f := make([]float32, len(ib.Data))
		for i, v := range ib.Data {
			f[i] = math.Float32frombits(uint32(int32(v)))
		}
		buf.Data = convert.Float32ToScaled(f)
		buf.BitDepth = 16
		return buf, nil
	}

	buf.Data = make([]float64, len(ib.Data))
	for i, v := range ib.Data {
		if bits == 8 {
			v -= 128
		}
		buf.Data[i] = float64(v)
	}
	return buf, nil
}
