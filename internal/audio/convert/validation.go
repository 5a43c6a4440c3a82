package convert

// IsBitDepthSupported reports whether integer PCM of this depth can be scaled
// into the codec domain.
func IsBitDepthSupported(bitDepth int) bool {
	switch bitDepth {
	case 8, 16, 24, 32:
		return true
	}
	return false
}
