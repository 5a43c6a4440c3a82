package dsp

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"wav2adpcm/internal/audio/pcm"
)

// DBToFactor converts a gain in dB to a linear amplitude factor.
func DBToFactor(db float64) float64 {
	return math.Pow(10, db/20)
}

// Gain scales the buffer by db decibels.
func (p *Processor) Gain(buf *pcm.Buffer, db float64) *pcm.Buffer {
	out := clone(buf)
	if db != 0 {
		floats.Scale(DBToFactor(db), out.Data)
	}
	return out
}
