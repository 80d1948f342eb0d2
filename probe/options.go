package probe

import "time"

// An Option configures the front end.
type Option func(d *Device) Option

// WithSettle sets the emitter settling delay. By default it is 5ms.
func WithSettle(settle time.Duration) Option {
	return func(d *Device) Option {
		old := d.settle
		d.settle = settle
		return WithSettle(old)
	}
}

// WithWait sets the blocking wait used for the settling delay. By default
// it is time.Sleep. Intended for tests running against a simulated clock.
func WithWait(wait func(time.Duration)) Option {
	return func(d *Device) Option {
		old := d.wait
		d.wait = wait
		return WithWait(old)
	}
}
