// Package pulseox implements a reflective photoplethysmography pipeline.
// It strobes a red and an infrared emitter around a shared photodetector,
// derives a heart-rate and a blood-oxygen-saturation estimate from the
// reflected intensity, and renders both with scrolling waveform plots to a
// small monochrome display.
package pulseox

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoSource is thrown when a Device is created without an optical
	// front end to sample from.
	ErrNoSource = errors.New("no sample source")
	// ErrNoDisplay is thrown when a Device is created without a frame
	// sink to render to.
	ErrNoDisplay = errors.New("no display")
)

// Channel selects one of the two emitter wavelengths.
type Channel int

// The two channels sampled on every cycle.
const (
	Red Channel = iota
	IR
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case IR:
		return "IR"
	}
	return "unknown"
}

// Source is the optical front end. StrobeAndRead lights the emitter of the
// requested channel, blocks for the settling delay, reads the shared
// photodetector and switches the emitter back off. Implementations must
// never light both emitters at once.
type Source interface {
	StrobeAndRead(ch Channel) (uint16, error)
}

// Display is the frame sink consumed by the renderer. Coordinates are in
// pixels with the origin at the top left. Drawing calls accumulate a frame;
// Flush transfers it out.
type Display interface {
	Clear()
	DrawText(s string, x, y int)
	DrawPixel(x, y int, on bool)
	Flush() error
}

// Device owns the whole pipeline state: the four rolling series, the sticky
// threshold and its cadence counter, the peak machine, the sticky BPM and
// the per-cycle SpO2. It is created once and lives for the whole run;
// nothing in it is safe for concurrent use, and nothing needs to be, since
// the pipeline is a single synchronous loop.
type Device struct {
	source  Source
	display Display

	rawRed   *series
	rawIR    *series
	graphRed *series
	graphIR  *series

	threshold threshold
	peak      peakDetector

	bpm  int
	spo2 float64

	width  int
	height int
	plotH  int

	redMin, redMax int
	irMin, irMax   int

	tail time.Duration
	now  func() time.Time
	wait func(time.Duration)
}

// New returns a new pipeline over the given front end and frame sink.
func New(source Source, display Display, options ...Option) (*Device, error) {
	if source == nil {
		return nil, fmt.Errorf("pulseox: %w", ErrNoSource)
	}
	if display == nil {
		return nil, fmt.Errorf("pulseox: %w", ErrNoDisplay)
	}

	d := &Device{
		source:  source,
		display: display,
		width:   defaultWidth,
		height:  defaultHeight,
		redMin:  RedMin,
		redMax:  RedMax,
		irMin:   IRMin,
		irMax:   IRMax,
		tail:    defaultTail,
		now:     time.Now,
		wait:    time.Sleep,
	}
	d.threshold.every = thresholdEvery

	for _, opt := range options {
		opt(d)
	}

	if d.width <= plotGutter || d.height <= 2*lineHeight+4 {
		return nil, fmt.Errorf("pulseox: frame %dx%d is too small to plot", d.width, d.height)
	}
	if d.redMin >= d.redMax || d.irMin >= d.irMax {
		return nil, fmt.Errorf("pulseox: invalid channel ranges red [%d,%d] ir [%d,%d]",
			d.redMin, d.redMax, d.irMin, d.irMax)
	}

	d.plotH = (d.height - 2*lineHeight - 4) / 2
	d.rawRed = newSeries(rawDepth)
	d.rawIR = newSeries(rawDepth)
	d.graphRed = newSeries(d.width - plotGutter)
	d.graphIR = newSeries(d.width - plotGutter)

	return d, nil
}

// Run executes the pipeline until ctx is done or a peripheral fails. Cycle
// cadence is paced only by the front end's settle delays and the tail wait;
// render and compute time are not compensated for, so the actual rate
// jitters around 15-20 cycles per second.
func (d *Device) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := d.step(); err != nil {
			return err
		}
		d.wait(d.tail)
	}
}

// step performs one full pipeline cycle: sample both channels, update every
// series exactly once, advance the threshold cadence, feed the peak
// machine, recompute SpO2 and redraw the frame.
func (d *Device) step() error {
	red, err := d.source.StrobeAndRead(Red)
	if err != nil {
		return fmt.Errorf("pulseox: could not read red channel: %w", err)
	}
	ir, err := d.source.StrobeAndRead(IR)
	if err != nil {
		return fmt.Errorf("pulseox: could not read IR channel: %w", err)
	}

	redClipped := clip(int(red), d.redMin, d.redMax)
	irClipped := clip(int(ir), d.irMin, d.irMax)

	// Peak timing works on raw values, the graphs on normalized clipped
	// ones.
	d.rawRed.Push(int(red))
	d.rawIR.Push(int(ir))
	d.graphRed.Push(normalize(redClipped, d.redMin, d.redMax, d.plotH))
	d.graphIR.Push(normalize(irClipped, d.irMin, d.irMax, d.plotH))

	d.threshold.tick(d.rawRed)

	// The band tracks the live series maximum, so it is recomputed every
	// cycle even while the threshold itself is held.
	band := (d.rawRed.Max() - d.threshold.value) / 3
	upper := d.threshold.value + band
	lower := d.threshold.value - band
	if span, ok := d.peak.update(d.rawRed.Last(), upper, lower, d.now()); ok {
		d.acceptBPM(span)
	}

	d.spo2 = saturation(redClipped, irClipped, d.redMax, d.irMax)

	if err := d.render(); err != nil {
		return fmt.Errorf("pulseox: could not render frame: %w", err)
	}

	return nil
}

// acceptBPM folds a completed pulse interval into the sticky heart-rate
// estimate. Implausible candidates leave the previous estimate untouched.
func (d *Device) acceptBPM(span time.Duration) {
	ms := span.Milliseconds()
	if ms <= 0 {
		return
	}
	candidate := int(60000 / ms)
	if candidate > minBPM && candidate < maxBPM {
		d.bpm = candidate
	}
}

// BPM returns the last accepted heart-rate estimate in beats per minute.
// It is 0 until a plausible pulse interval has been timed.
func (d *Device) BPM() int { return d.bpm }

// SpO2 returns the oxygen-saturation estimate of the latest cycle, in
// percent. The value is recomputed from scratch every cycle and is not
// bounds-checked.
func (d *Device) SpO2() float64 { return d.spo2 }
