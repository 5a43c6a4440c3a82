// Package source decodes audio files into PCM buffers.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"wav2adpcm/internal/audio/errs"
	"wav2adpcm/internal/audio/pcm"
)

// Open reads the whole file at path. The container is chosen by extension.
func Open(path string) (*pcm.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrDecode, err)
	}
	defer f.Close()

	var buf *pcm.Buffer
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav", ".wave":
		buf, err = ReadWAV(f)
	case ".opus", ".ogg":
		buf, err = ReadOpus(f)
	default:
		return nil, fmt.Errorf("%w: %s: unsupported file type %q", errs.ErrDecode, path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errs.ErrDecode, path, err)
	}
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errs.ErrDecode, path, err)
	}

	log.Debug().
		Str("path", path).
		Int("rate", buf.SampleRate).
		Int("channels", buf.Channels).
		Int("bits", buf.BitDepth).
		Int("frames", buf.Frames()).
		Msg("Source decoded")
	return buf, nil
}
