package codec

// Dialogic (OKI) ADPCM tables. The 49 step sizes cover the 12-bit sample range.
const (
	MinEstimate  = -2048
	MaxEstimate  = 2047
	MaxStepIndex = len(StepSize) - 1
)

var StepSize = [49]int{
	16, 17, 19, 21, 23, 25, 28, 31, 34, 37, 41, 45, 50, 55, 60, 66,
	73, 80, 88, 97, 107, 118, 130, 143, 157, 173, 190, 209, 230, 253, 279, 307,
	337, 371, 408, 449, 494, 544, 598, 658, 724, 796, 876, 963, 1060, 1166, 1282, 1411,
	1552,
}

// StepAdjust is indexed by the full 4-bit code; the sign bit does not change the adjustment.
var StepAdjust = [16]int{
	-1, -1, -1, -1, 2, 4, 6, 8, // +0 - +7
	-1, -1, -1, -1, 2, 4, 6, 8, // -0 - -7
}
