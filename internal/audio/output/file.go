package output

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"wav2adpcm/internal/audio/config"
	"wav2adpcm/internal/audio/errs"
)

// WriteFile serializes data into path. The content goes to a temporary
// file in the same directory which is renamed over path once complete,
// so a failed write never leaves a partial artifact behind.
func WriteFile(path string, form config.OutputForm, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrWrite, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = Serialize(bw, form, ArrayName(path), data); err != nil {
		return fmt.Errorf("%w: %s: %w", errs.ErrWrite, path, err)
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("%w: %s: %w", errs.ErrWrite, path, err)
	}
	if err = tmp.Sync(); err != nil {
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

	log.Debug().Str("path", path).Str("form", form.String()).Int("bytes", len(data)).Msg("Output written")
	return nil
}
