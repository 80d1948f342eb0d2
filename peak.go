package pulseox

import "time"

type peakState int

const (
	peakIdle peakState = iota
	peakRising
)

// peakDetector is a two-state hysteresis machine over the raw red stream.
// A pulse is timed from the sample that crosses above the upper band edge
// to the sample that falls below the lower one, so at most one interval is
// ever open. When the series max equals the threshold the band collapses
// to zero width and the machine may chatter on samples straddling the
// boundary; that matches the measured device and is left alone.
type peakDetector struct {
	state peakState
	start time.Time
}

// update feeds the newest sample through the machine. It returns the
// completed pulse interval and true when the sample closes an open peak.
func (p *peakDetector) update(sample, upper, lower int, now time.Time) (time.Duration, bool) {
	switch p.state {
	case peakIdle:
		if sample > upper {
			p.state = peakRising
			p.start = now
		}
	case peakRising:
		if sample < lower {
			p.state = peakIdle
			return now.Sub(p.start), true
		}
	}

	return 0, false
}
