// Package errs defines the error kinds a conversion can fail with.
// Producers wrap one of these sentinels so callers can use errors.Is.
package errs

import "errors"

var (
	// ErrDecode means the source audio could not be read or is not supported.
	ErrDecode = errors.New("decode error")

	// ErrPipeline means a DSP stage rejected its input.
	ErrPipeline = errors.New("pipeline error")

	// ErrEncode means a sample reached the encoder outside the 12-bit range.
	ErrEncode = errors.New("encode error")

	// ErrWrite means the output artifact could not be written.
	ErrWrite = errors.New("write error")

	// ErrInvalidConfig means the conversion options contradict each other.
	ErrInvalidConfig = errors.New("invalid configuration")
)
