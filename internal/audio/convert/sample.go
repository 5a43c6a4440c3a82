package convert

import "math"

// Bits of the codec sample domain.
const CodecBits = 12

// FullScale returns the magnitude of the most negative sample at bitDepth.
func FullScale(bitDepth int) float64 {
	return float64(int64(1) << (bitDepth - 1))
}

// To12Bit rounds v, clamps it to the signed range of bitDepth and rescales it
// to the codec domain: an arithmetic shift right for deeper sources, a shift
// left for 8-bit ones.
func To12Bit(v float64, bitDepth int) int16 {
	lo := -FullScale(bitDepth)
	hi := FullScale(bitDepth) - 1

	v = math.Round(v)
	if v > hi {
		v = hi
	} else if v < lo {
		v = lo
	}

	s := int64(v)
	if bitDepth >= CodecBits {
		s >>= bitDepth - CodecBits
	} else {
		s <<= CodecBits - bitDepth
	}
	return int16(s)
}

// SamplesTo12Bit converts a mono buffer to codec samples.
func SamplesTo12Bit(src []float64, bitDepth int) []int16 {
	dst := make([]int16, len(src))
	for i, v := range src {
		dst[i] = To12Bit(v, bitDepth)
	}
	return dst
}

// Int12ToInt16 expands codec estimates back to 16-bit PCM.
func Int12ToInt16(src []int16) []int16 {
	dst := make([]int16, len(src))
	for i, v := range src {
		dst[i] = v << (16 - CodecBits)
	}
	return dst
}

// Float32ToScaled maps [-1, 1] float PCM to the 16-bit integer scale.
// NaN maps to 0.
func Float32ToScaled(src []float32) []float64 {
	dst := make([]float64, len(src))
	for i, v := range src {
		if v != v {
			v = 0
		} else if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		dst[i] = float64(v) * 32767
	}
	return dst
}

func Float64ToFloat32(src []float64) []float32 {
	dst := make([]float32, len(src))
	for i, v := range src {
		dst[i] = float32(v)
	}
	return dst
}

func Float32ToFloat64(src []float32) []float64 {
	dst := make([]float64, len(src))
	for i, v := range src {
		dst[i] = float64(v)
	}
	return dst
}

func Int16ToInt(src []int16) []int {
	dst := make([]int, len(src))
	for i, v := range src {
		dst[i] = int(v)
	}
	return dst
}
