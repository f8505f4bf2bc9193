package phasediff

// Noise generation constants
const (
	// pcgStream is the second PCG state word used by NewSeededNoiseGenerator.
	pcgStream = 0x9e3779b97f4a7c15
)

// Multi-signal estimation constants
const (
	minParallelSignals = 2 // Below this, PhaseDiffMulti runs sequentially
)
