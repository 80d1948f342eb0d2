// Package probe drives a discrete photoplethysmography front end: two LED
// emitters on GPIO pins and a shared phototransistor read through an ADC.
package probe

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/conn/physic"
	"periph.io/x/periph/experimental/conn/analog"
	"periph.io/x/periph/experimental/devices/ads1x15"
	"periph.io/x/periph/host"

	"github.com/tsellek/pulseox"
)

var (
	// ErrUnknownChannel is thrown when a read is requested for a channel
	// the front end has no emitter for.
	ErrUnknownChannel = errors.New("unknown channel")

	errNoPin = errors.New("no emitter pin")
	errNoADC = errors.New("no photodetector")
)

// defaultSettle is how long the phototransistor is given to stabilize
// after an emitter switches on, before its reading counts as valid.
const defaultSettle = 5 * time.Millisecond

// Device is the optical front end. It implements pulseox.Source. Only one
// emitter is ever lit at a time, and each read happens strictly after its
// own settling delay while its own emitter is on.
type Device struct {
	red gpio.PinOut
	ir  gpio.PinOut
	adc analog.PinADC

	settle time.Duration
	wait   func(time.Duration)
}

// New wires an already opened pair of emitter pins and a photodetector
// pin. Both emitters are switched off before the first strobe.
func New(red, ir gpio.PinOut, adc analog.PinADC, options ...Option) (*Device, error) {
	if red == nil || ir == nil {
		return nil, fmt.Errorf("probe: %w", errNoPin)
	}
	if adc == nil {
		return nil, fmt.Errorf("probe: %w", errNoADC)
	}

	d := &Device{
		red:    red,
		ir:     ir,
		adc:    adc,
		settle: defaultSettle,
		wait:   time.Sleep,
	}
	for _, opt := range options {
		opt(d)
	}

	if err := d.red.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("probe: could not douse red emitter: %w", err)
	}
	if err := d.ir.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("probe: could not douse IR emitter: %w", err)
	}

	return d, nil
}

// Open initializes the host, looks the emitter pins up by name and attaches
// the photodetector through an ADS1115 on the named I2C bus ("" picks the
// first available bus).
func Open(redPin, irPin, busName string, ch ads1x15.Channel, options ...Option) (*Device, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("probe: could not initialize host: %w", err)
	}

	red := gpioreg.ByName(redPin)
	if red == nil {
		return nil, fmt.Errorf("probe: could not find emitter pin %q", redPin)
	}
	ir := gpioreg.ByName(irPin)
	if ir == nil {
		return nil, fmt.Errorf("probe: could not find emitter pin %q", irPin)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("probe: could not open I2C bus: %w", err)
	}

	adc, err := ads1x15.NewADS1115(bus, &ads1x15.DefaultOpts)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("probe: could not configure ADS1115: %w", err)
	}

	pin, err := adc.PinForChannel(ch, 3300*physic.MilliVolt, 860*physic.Hertz, ads1x15.SaveEnergy)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("probe: could not configure photodetector channel: %w", err)
	}

	return New(red, ir, pin, options...)
}

// StrobeAndRead lights the channel's emitter, waits out the settling delay,
// reads the photodetector and switches the emitter back off. There are no
// retries; a read failure surfaces as is.
func (d *Device) StrobeAndRead(ch pulseox.Channel) (uint16, error) {
	var led gpio.PinOut
	switch ch {
	case pulseox.Red:
		led = d.red
	case pulseox.IR:
		led = d.ir
	default:
		return 0, fmt.Errorf("probe: %w: %v", ErrUnknownChannel, ch)
	}

	if err := led.Out(gpio.High); err != nil {
		return 0, fmt.Errorf("probe: could not light %v emitter: %w", ch, err)
	}
	d.wait(d.settle)

	sample, rerr := d.adc.Read()
	if err := led.Out(gpio.Low); err != nil {
		return 0, fmt.Errorf("probe: could not douse %v emitter: %w", ch, err)
	}
	if rerr != nil {
		return 0, fmt.Errorf("probe: could not read photodetector: %w", rerr)
	}

	return intensity(sample.Raw), nil
}

// Halt releases the photodetector pin and leaves both emitters dark.
func (d *Device) Halt() error {
	if err := d.red.Out(gpio.Low); err != nil {
		return fmt.Errorf("probe: could not douse red emitter: %w", err)
	}
	if err := d.ir.Out(gpio.Low); err != nil {
		return fmt.Errorf("probe: could not douse IR emitter: %w", err)
	}
	if err := d.adc.Halt(); err != nil {
		return fmt.Errorf("probe: could not halt photodetector: %w", err)
	}
	return nil
}

// intensity folds a raw ADC count into the unsigned intensity the pipeline
// works with. The ADS1115 can report small negative counts around ground;
// those clamp to 0.
func intensity(raw int32) uint16 {
	if raw < 0 {
		return 0
	}
	if raw > 0xFFFF {
		return 0xFFFF
	}
	return uint16(raw)
}
