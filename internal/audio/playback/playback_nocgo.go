//go:build !cgo

package playback

import (
	"context"
	"errors"
)

var ErrUnavailable = errors.New("playback requires a cgo build")

func Play(ctx context.Context, samples []int16, rate uint32) error {
	return ErrUnavailable
}
