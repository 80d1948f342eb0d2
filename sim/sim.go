// Package sim synthesizes a photoplethysmography source so the pipeline
// can run and be exercised without optical hardware.
package sim

import (
	"fmt"
	"math"

	"github.com/tsellek/pulseox"
)

// Source generates a deliberately simple pulse waveform per channel: a
// baseline, a systolic peak with a dicrotic bump, and deterministic noise.
// It implements pulseox.Source. The waveform is a function of an internal
// phase that advances once per cycle, keyed off the red strobe, so the two
// reads of one cycle describe the same instant.
type Source struct {
	rate  float64
	bpm   float64
	noise float64
	phase float64
}

// New returns a synthetic source. rate is the cadence the pipeline is
// expected to run at in cycles per second (the reference device manages
// roughly 15-20), bpm the simulated heart rate, and noise the noise
// amplitude as a fraction of the pulse amplitude.
func New(rate, bpm, noise float64) *Source {
	return &Source{
		rate:  rate,
		bpm:   bpm,
		noise: noise,
	}
}

// StrobeAndRead returns the next synthetic intensity for ch.
func (s *Source) StrobeAndRead(ch pulseox.Channel) (uint16, error) {
	if ch == pulseox.Red {
		s.phase += s.bpm / 60 / s.rate
		if s.phase >= 1 {
			s.phase -= 1
		}
	}

	pulse := gauss(s.phase, 0.30, 0.06) + 0.4*gauss(s.phase, 0.48, 0.09)
	pulse += s.noise * (2*fract(math.Sin(s.phase*12345.678)*9876.543) - 1)

	switch ch {
	case pulseox.Red:
		return level(2000, 9000, pulse), nil
	case pulseox.IR:
		return level(600, 550, pulse), nil
	}

	return 0, fmt.Errorf("sim: unknown channel %v", ch)
}

// level scales a unitless waveform value onto base plus amplitude counts,
// clamped to the unsigned sample range.
func level(base, amplitude, v float64) uint16 {
	out := base + amplitude*v
	if out < 0 {
		return 0
	}
	if out > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(out)
}

func gauss(x, mu, sigma float64) float64 {
	z := (x - mu) / sigma
	return math.Exp(-0.5 * z * z)
}

func fract(x float64) float64 {
	return x - math.Floor(x)
}
