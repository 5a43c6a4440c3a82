// Package playback previews decoded audio on the default output device.
package playback

// fillFrames copies little-endian samples from src[pos:] into out and pads
// the rest with silence. It returns the new read position.
func fillFrames(out []byte, src []int16, pos int) int {
	i := 0
	for ; i+1 < len(out) && pos < len(src); i += 2 {
		s := src[pos]
		out[i] = byte(s)        // low byte
		out[i+1] = byte(s >> 8) // high byte
		pos++
	}
	for ; i < len(out); i++ {
		out[i] = 0
	}
	return pos
}

// Silent periods handed to the device after the last sample before playback
// counts as finished. The device may still be playing the previous period
// when it asks for the next one.
const tailPeriods = 2

// cursor feeds one clip to the device period by period.
type cursor struct {
	samples []int16
	pos     int
	silent  int
}

// fill writes the next period into out and reports whether the clip has
// been fully played out.
func (c *cursor) fill(out []byte) bool {
	if c.pos >= len(c.samples) {
		c.silent++
	}
	c.pos = fillFrames(out, c.samples, c.pos)
	return c.silent >= tailPeriods
}
