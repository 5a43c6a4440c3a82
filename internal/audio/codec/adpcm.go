package codec

// Code bits.
const (
	bitQuarter = 0x01
	bitHalf    = 0x02
	bitFull    = 0x04
	bitSign    = 0x08
)

// State is the running (estimate, step index) pair of one encode or decode pass.
// The zero value is the initial state of every conversion.
type State struct {
	Estimate  int
	StepIndex int
}

// DecodeSample reconstructs the next estimate from a 4-bit code.
func DecodeSample(code byte, stepIndex, lastEstimate int) (int, int) {
	code &= 0x0f
	ss := StepSize[stepIndex]

	delta := ss >> 3
	if code&bitQuarter != 0 {
		delta += ss >> 2
	}
	if code&bitHalf != 0 {
		delta += ss >> 1
	}
	if code&bitFull != 0 {
		delta += ss
	}
	if code&bitSign != 0 {
		delta = -delta
	}

	estimate := clamp(lastEstimate+delta, MinEstimate, MaxEstimate)
	stepIndex = clamp(stepIndex+StepAdjust[code], 0, MaxStepIndex)
	return estimate, stepIndex
}

// EncodeSample quantizes the difference between current and lastEstimate into a 4-bit code.
// The returned state is the one a decoder reaches after consuming the code.
func EncodeSample(current, lastEstimate, stepIndex int) (byte, int, int) {
	ss := StepSize[stepIndex]
	delta := current - lastEstimate

	var code byte
	if delta < 0 {
		code = bitSign
		delta = -delta
	}
	if delta >= ss {
		code |= bitFull
		delta -= ss
	}
	if delta >= ss>>1 {
		code |= bitHalf
		delta -= ss >> 1
	}
	if delta >= ss>>2 {
		code |= bitQuarter
	}

	estimate, stepIndex := DecodeSample(code, stepIndex, lastEstimate)
	return code, estimate, stepIndex
}

// Encode encodes one 12-bit sample and advances the state.
func (s *State) Encode(sample int16) byte {
	var code byte
	code, s.Estimate, s.StepIndex = EncodeSample(int(sample), s.Estimate, s.StepIndex)
	return code
}

// Decode consumes one code and returns the new 12-bit estimate.
func (s *State) Decode(code byte) int16 {
	s.Estimate, s.StepIndex = DecodeSample(code, s.StepIndex, s.Estimate)
	return int16(s.Estimate)
}

func clamp(x, min, max int) int {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
