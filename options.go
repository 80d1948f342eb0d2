package pulseox

import "time"

// An Option configures a device.
type Option func(d *Device) Option

// WithSize sets the frame dimensions of the display sink. By default the
// frame is 128x64 pixels. The plots take the full width minus the gutter,
// so the graph series capacity follows from the width.
func WithSize(width, height int) Option {
	return func(d *Device) Option {
		ow, oh := d.width, d.height
		d.width = width
		d.height = height
		return WithSize(ow, oh)
	}
}

// WithRedRange sets the physical intensity range of the red channel.
func WithRedRange(min, max int) Option {
	return func(d *Device) Option {
		omin, omax := d.redMin, d.redMax
		d.redMin = min
		d.redMax = max
		return WithRedRange(omin, omax)
	}
}

// WithIRRange sets the physical intensity range of the IR channel.
func WithIRRange(min, max int) Option {
	return func(d *Device) Option {
		omin, omax := d.irMin, d.irMax
		d.irMin = min
		d.irMax = max
		return WithIRRange(omin, omax)
	}
}

// WithTailDelay sets the fixed wait at the end of every cycle. By default
// it is 50ms, for a nominal cadence of 15-20 cycles per second once the
// settle delays are added.
func WithTailDelay(tail time.Duration) Option {
	return func(d *Device) Option {
		old := d.tail
		d.tail = tail
		return WithTailDelay(old)
	}
}

// WithClock sets the time source used for pulse timing. By default it is
// time.Now. Intended for tests running against a simulated clock.
func WithClock(now func() time.Time) Option {
	return func(d *Device) Option {
		old := d.now
		d.now = now
		return WithClock(old)
	}
}

// WithWait sets the blocking wait used to pace the loop. By default it is
// time.Sleep. Intended for tests running against a simulated clock.
func WithWait(wait func(time.Duration)) Option {
	return func(d *Device) Option {
		old := d.wait
		d.wait = wait
		return WithWait(old)
	}
}
