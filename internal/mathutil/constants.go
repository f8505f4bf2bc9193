package mathutil

// Decibel conversion constants (power convention)
const (
	decibelScale = 10.0 // 10*log10 for power ratios
	decibelBase  = 10.0
)

// Phase conversion constants
const (
	degreesPerCycle = 360.0
)
