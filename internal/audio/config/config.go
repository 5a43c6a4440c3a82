package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"wav2adpcm/internal/audio/errs"
)

const (
	TargetSampleRate = 15625 // MSM6258 clock / 512
	TargetChannels   = 1

	LowPassCutoffHz = 18000
	LowPassOrder    = 5

	FadeOutDuration = time.Second

	ValuesPerLine = 16 // text dump wrapping
)

// OutputForm selects how the packed stream is written.
type OutputForm string

func (f OutputForm) String() string {
	return string(f)
}

const (
	FormBinary OutputForm = "binary"
	FormC      OutputForm = "c"
	FormAsm    OutputForm = "asm"
)

// ResamplerQuality names a libsamplerate converter.
type ResamplerQuality string

func (q ResamplerQuality) String() string {
	return string(q)
}

const (
	ResamplerBest    ResamplerQuality = "best"
	ResamplerMedium  ResamplerQuality = "medium"
	ResamplerFastest ResamplerQuality = "fastest"
	ResamplerZOH     ResamplerQuality = "zoh"
	ResamplerLinear  ResamplerQuality = "linear"

	DefaultResampler = ResamplerBest
)

// ParseResamplerQuality accepts the names above, case-insensitively. Empty selects the default.
func ParseResamplerQuality(s string) (ResamplerQuality, error) {
	q := ResamplerQuality(strings.ToLower(strings.TrimSpace(s)))
	switch q {
	case "":
		return DefaultResampler, nil
	case ResamplerBest, ResamplerMedium, ResamplerFastest, ResamplerZOH, ResamplerLinear:
		return q, nil
	}
	return "", fmt.Errorf("%w: unknown resampler %q (valid: best, medium, fastest, zoh, linear)", errs.ErrInvalidConfig, s)
}

// ConversionConfig holds the parameters of one conversion. It is built once
// by NewConversionConfig and not modified afterwards.
type ConversionConfig struct {
	Filter      bool
	VolumeDB    int
	TrimSeconds int
	FadeOut     bool
	Form        OutputForm
	Resampler   ResamplerQuality
}

// DefaultConversionConfig matches the command line defaults: filter on, no gain, raw binary.
func DefaultConversionConfig() ConversionConfig {
	return ConversionConfig{
		Filter:    true,
		Form:      FormBinary,
		Resampler: DefaultResampler,
	}
}

// NewConversionConfig validates the given settings.
func NewConversionConfig(filter bool, volumeDB, trimSeconds int, fadeOut, dumpAsText, dumpAsAssembly bool, resampler ResamplerQuality) (ConversionConfig, error) {
	if dumpAsText && dumpAsAssembly {
		return ConversionConfig{}, fmt.Errorf("%w: C and assembler dumps are mutually exclusive", errs.ErrInvalidConfig)
	}
	if resampler == "" {
		resampler = DefaultResampler
	}
	if _, err := ParseResamplerQuality(string(resampler)); err != nil {
		return ConversionConfig{}, err
	}

	form := FormBinary
	switch {
	case dumpAsText:
		form = FormC
	case dumpAsAssembly:
		form = FormAsm
	}

	cfg := ConversionConfig{
		Filter:      filter,
		VolumeDB:    volumeDB,
		TrimSeconds: trimSeconds,
		FadeOut:     fadeOut,
		Form:        form,
		Resampler:   resampler,
	}
	log.Debug().
		Bool("filter", cfg.Filter).
		Int("volume_db", cfg.VolumeDB).
		Int("trim_s", cfg.TrimSeconds).
		Bool("fadeout", cfg.FadeOut).
		Str("form", cfg.Form.String()).
		Str("resampler", cfg.Resampler.String()).
		Msg("Conversion config")
	return cfg, nil
}
