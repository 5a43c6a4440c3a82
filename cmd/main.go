package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"wav2adpcm/internal/audio/config"
	"wav2adpcm/internal/converter"
	"wav2adpcm/pkg/logger"
	"wav2adpcm/pkg/system"
)

// loadEnv loads variables from a .env file if one can be found
func loadEnv() {
	if err := system.LoadEnv(".env"); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "wav2adpcm: loading .env: %v\n", err)
	}
}

var errFilterChoice = errors.New("-f must be 0 or 1")

type cliFlags struct {
	filter    int
	volume    int
	trim      int
	fadeout   bool
	dumpC     bool
	dumpAsm   bool
	decode    bool
	play      bool
	resampler string
}

func parseFlags(fs *flag.FlagSet, args []string) (cliFlags, []string, error) {
	var f cliFlags
	fs.IntVar(&f.filter, "f", 1, "low-pass filter (1: yes, 0: no)")
	fs.IntVar(&f.filter, "filter", 1, "alias for -f")
	fs.IntVar(&f.volume, "v", 0, "volume adjustment in dB")
	fs.IntVar(&f.volume, "volume", 0, "alias for -v")
	fs.IntVar(&f.trim, "t", 0, "trim to the first N seconds (0: off)")
	fs.IntVar(&f.trim, "trim", 0, "alias for -t")
	fs.BoolVar(&f.fadeout, "o", false, "1 second fade-out at the end")
	fs.BoolVar(&f.fadeout, "fadeout", false, "alias for -o")
	fs.BoolVar(&f.dumpC, "c", false, "dump as C array source")
	fs.BoolVar(&f.dumpAsm, "a", false, "dump as assembler source")
	fs.BoolVar(&f.decode, "d", false, "decode an ADPCM file to WAV instead")
	fs.BoolVar(&f.decode, "decode", false, "alias for -d")
	fs.BoolVar(&f.play, "p", false, "preview the result on the default audio device")
	fs.BoolVar(&f.play, "play", false, "alias for -p")
	fs.StringVar(&f.resampler, "resampler", system.Getenv("WAV2ADPCM_RESAMPLER", string(config.DefaultResampler)),
		"resampler quality: best, medium, fastest, zoh, linear")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: wav2adpcm [flags] <infile> <outfile>\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return f, nil, err
	}
	if f.filter != 0 && f.filter != 1 {
		fmt.Fprintf(fs.Output(), "invalid value %d for flag -f: %v\n", f.filter, errFilterChoice)
		fs.Usage()
		return f, nil, errFilterChoice
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return f, nil, flag.ErrHelp
	}
	return f, fs.Args(), nil
}

func run(ctx context.Context, f cliFlags, in, out string) error {
	if f.decode {
		_, err := converter.Decode(ctx, converter.DecodeOptions{Input: in, Output: out, Play: f.play})
		return err
	}

	quality, err := config.ParseResamplerQuality(f.resampler)
	if err != nil {
		return err
	}
	_, err = converter.Convert(ctx, converter.Options{
		Input:          in,
		Output:         out,
		Filter:         f.filter != 0,
		VolumeDB:       f.volume,
		TrimSeconds:    f.trim,
		FadeOut:        f.fadeout,
		DumpAsText:     f.dumpC,
		DumpAsAssembly: f.dumpAsm,
		Resampler:      quality,
		Play:           f.play,
	})
	return err
}

func main() {
	loadEnv()
	logger.InitLogger(os.Getenv("LOG_LEVEL"))

	fs := flag.NewFlagSet("wav2adpcm", flag.ContinueOnError)
	f, args, err := parseFlags(fs, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, f, args[0], args[1]); err != nil {
		log.Error().Err(err).Msg("Conversion failed")
		stop()
		os.Exit(1)
	}
}
