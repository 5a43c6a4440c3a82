// Package converter ties the source reader, preprocessing pipeline, codec
// and output writer into the two command operations.
package converter

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"wav2adpcm/internal/audio/config"
	"wav2adpcm/internal/audio/convert"
	"wav2adpcm/internal/audio/decoder"
	"wav2adpcm/internal/audio/dsp"
	"wav2adpcm/internal/audio/encoder"
	"wav2adpcm/internal/audio/output"
	"wav2adpcm/internal/audio/pipeline"
	"wav2adpcm/internal/audio/playback"
	"wav2adpcm/internal/audio/source"
)

type Options struct {
	Input  string
	Output string

	Filter         bool
	VolumeDB       int
	TrimSeconds    int
	FadeOut        bool
	DumpAsText     bool
	DumpAsAssembly bool
	Resampler      config.ResamplerQuality

	// Play previews the encoded stream after it has been written.
	Play bool
}

// Result summarises a finished conversion. For Decode, FramesIn counts the
// 4-bit codes read.
type Result struct {
	FramesIn       int
	SamplesEncoded int
	BytesWritten   int
	Form           config.OutputForm
}

// Convert reads opts.Input, encodes it and writes opts.Output.
func Convert(ctx context.Context, opts Options) (Result, error) {
	cfg, err := config.NewConversionConfig(opts.Filter, opts.VolumeDB, opts.TrimSeconds, opts.FadeOut,
		opts.DumpAsText, opts.DumpAsAssembly, opts.Resampler)
	if err != nil {
		return Result{}, err
	}
	start := time.Now()

	src, err := source.Open(opts.Input)
	if err != nil {
		return Result{}, err
	}

	p, err := pipeline.New(dsp.NewProcessor(cfg.Resampler), cfg)
	if err != nil {
		return Result{}, err
	}
	buf, err := p.Process(src)
	if err != nil {
		return Result{}, err
	}

	enc, err := encoder.New(uint32(buf.SampleRate), uint32(buf.Channels))
	if err != nil {
		return Result{}, err
	}
	samples := convert.SamplesTo12Bit(buf.Data, buf.BitDepth)
	packed, err := enc.Encode(samples)
	if err != nil {
		return Result{}, err
	}

	if err := output.WriteFile(opts.Output, cfg.Form, packed); err != nil {
		return Result{}, err
	}

	res := Result{
		FramesIn:       src.Frames(),
		SamplesEncoded: len(samples),
		BytesWritten:   len(packed),
		Form:           cfg.Form,
	}
	log.Info().
		Str("input", opts.Input).
		Str("output", opts.Output).
		Str("form", res.Form.String()).
		Dur("source_duration", src.Duration()).
		Int("samples", res.SamplesEncoded).
		Int("bytes", res.BytesWritten).
		Dur("took", time.Since(start)).
		Msg("Conversion finished")

	if opts.Play {
		if err := preview(ctx, packed, len(samples)); err != nil {
			return res, err
		}
	}
	return res, nil
}

func preview(ctx context.Context, packed []byte, n int) error {
	pcm := convert.Int12ToInt16(decoder.DecodeADPCM(packed, n))
	if err := playback.Play(ctx, pcm, config.TargetSampleRate); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
