package pulseox

import "time"

// Physical intensity ranges per channel as measured on the reference
// discrete LED front end. Raw readings outside these bounds are clamped,
// not rejected.
const (
	RedMin = 700
	RedMax = 14000
	IRMin  = 500
	IRMax  = 1300
)

const (
	// rawDepth is the number of samples kept per channel for threshold
	// and peak analysis.
	rawDepth = 100

	// thresholdEvery is the cycle count the cadence counter has to
	// exceed before the threshold is recomputed. The comparison is
	// strict, so a recompute lands on every 51st cycle.
	thresholdEvery = 50

	// Plausible heart-rate band, exclusive on both ends.
	minBPM = 40
	maxBPM = 160

	defaultWidth  = 128
	defaultHeight = 64

	defaultTail = 50 * time.Millisecond
)
