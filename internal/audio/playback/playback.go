//go:build cgo

package playback

import (
	"context"
	"fmt"
	"sync"

	"github.com/gen2brain/malgo"
	"github.com/rs/zerolog/log"

	"wav2adpcm/internal/audio/config"
)

type MalgoPlayback struct {
	device *malgo.Device
	ctx    *malgo.AllocatedContext
	rate   uint32

	mu   sync.Mutex
	cur  cursor
	done chan struct{}
	once sync.Once
}

// NewMalgoPlayback opens a mono signed 16-bit output device at rate.
// The device is not started until Play.
func NewMalgoPlayback(rate uint32) (*MalgoPlayback, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(msg string) {
		log.Debug().Str("msg", msg).Msg("Malgo context message")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init malgo context: %w", err)
	}

	mp := &MalgoPlayback{ctx: ctx, rate: rate, done: make(chan struct{})}

	playCfg := malgo.DefaultDeviceConfig(malgo.Playback)
	playCfg.Playback.Format = malgo.FormatS16
	playCfg.Playback.Channels = config.TargetChannels
	playCfg.SampleRate = rate

	onPlay := func(pOutputSamples, _ []byte, _ uint32) {
		mp.mu.Lock()
		finished := mp.cur.fill(pOutputSamples)
		mp.mu.Unlock()
		if finished {
			mp.once.Do(func() { close(mp.done) })
		}
	}

	playDev, err := malgo.InitDevice(ctx.Context, playCfg, malgo.DeviceCallbacks{Data: onPlay})
	if err != nil {
		_ = ctx.Uninit()
		ctx.Free()
		return nil, fmt.Errorf("failed to open playback device: %w", err)
	}
	mp.device = playDev
	return mp, nil
}

// Play blocks until samples have been played out or ctx is done.
func (mp *MalgoPlayback) Play(ctx context.Context, samples []int16) error {
	mp.mu.Lock()
	mp.cur = cursor{samples: samples}
	mp.mu.Unlock()

	if err := mp.device.Start(); err != nil {
		return fmt.Errorf("failed to start playback device: %w", err)
	}
	log.Info().Int("samples", len(samples)).Uint32("rate", mp.rate).Msg("Playback started")

	select {
	case <-mp.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (mp *MalgoPlayback) Close() {
	if mp.device != nil {
		mp.device.Uninit()
	}
	if mp.ctx != nil {
		_ = mp.ctx.Uninit()
		mp.ctx.Free()
	}
}

// Play previews mono samples at rate on the default output device.
func Play(ctx context.Context, samples []int16, rate uint32) error {
	mp, err := NewMalgoPlayback(rate)
	if err != nil {
		return err
	}
	defer mp.Close()
	return mp.Play(ctx, samples)
}
