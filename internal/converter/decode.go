package converter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/rs/zerolog/log"

	"wav2adpcm/internal/audio/config"
	"wav2adpcm/internal/audio/convert"
	"wav2adpcm/internal/audio/decoder"
	"wav2adpcm/internal/audio/errs"
	"wav2adpcm/internal/audio/playback"
)

const (
	wavBitDepth  = 16
	wavFormatPCM = 1
)

type DecodeOptions struct {
	Input  string
	Output string
	Play   bool
}

// Decode expands a raw ADPCM file into a mono 16-bit WAV at the codec rate.
// Every nibble is decoded, including the pad nibble of an odd-length stream.
func Decode(ctx context.Context, opts DecodeOptions) (Result, error) {
	packed, err := os.ReadFile(opts.Input)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", errs.ErrDecode, err)
	}

	dec, err := decoder.New(config.TargetSampleRate, config.TargetChannels)
	if err != nil {
		return Result{}, err
	}
	estimates, err := dec.Decode(packed)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %w", errs.ErrDecode, opts.Input, err)
	}
	pcm := convert.Int12ToInt16(estimates)

	if err := writeWAV(opts.Output, pcm); err != nil {
		return Result{}, err
	}

	res := Result{FramesIn: 2 * len(packed), SamplesEncoded: len(pcm), BytesWritten: len(pcm) * 2}
	log.Info().
		Str("input", opts.Input).
		Str("output", opts.Output).
		Int("samples", len(pcm)).
		Msg("Decode finished")

	if opts.Play {
		if err := playback.Play(ctx, pcm, config.TargetSampleRate); err != nil {
			return res, fmt.Errorf("preview: %w", err)
		}
	}
	return res, nil
}

func writeWAV(path string, pcm []int16) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrWrite, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	enc := wav.NewEncoder(tmp, config.TargetSampleRate, wavBitDepth, config.TargetChannels, wavFormatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: config.TargetChannels, SampleRate: config.TargetSampleRate},
		Data:           convert.Int16ToInt(pcm),
		SourceBitDepth: wavBitDepth,
	}
	if err = enc.Write(buf); err != nil {
		return fmt.Errorf("%w: %s: %w", errs.ErrWrite, path, err)
	}
	if err = enc.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", errs.ErrWrite, path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", errs.ErrWrite, path, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", errs.ErrWrite, path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %s: %w", errs.ErrWrite, path, err)
	}
	return nil
}
