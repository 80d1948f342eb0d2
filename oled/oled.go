// Package oled renders pipeline frames to an SSD1306 OLED over I2C.
package oled

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/periph/conn/i2c"
	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/devices/ssd1306"
	"periph.io/x/periph/devices/ssd1306/image1bit"
	"periph.io/x/periph/host"
)

// Device is a frame sink backed by an SSD1306 panel. Drawing happens on an
// in-memory 1-bit framebuffer; Flush transfers the complete frame over the
// bus. It implements pulseox.Display.
type Device struct {
	dev *ssd1306.Dev
	bus i2c.BusCloser
	img *image1bit.VerticalLSB
}

// New opens the I2C bus by name ("" picks the first available bus) and
// configures a width x height SSD1306 behind it.
func New(busName string, width, height int) (*Device, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("oled: could not initialize host: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("oled: could not open I2C bus: %w", err)
	}

	opts := ssd1306.DefaultOpts
	opts.W = width
	opts.H = height
	dev, err := ssd1306.NewI2C(bus, &opts)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("oled: could not configure SSD1306: %w", err)
	}

	return &Device{
		dev: dev,
		bus: bus,
		img: image1bit.NewVerticalLSB(image.Rect(0, 0, width, height)),
	}, nil
}

// Close blanks the panel and releases the bus.
func (d *Device) Close() error {
	if err := d.dev.Halt(); err != nil {
		return fmt.Errorf("oled: could not halt display: %w", err)
	}
	if err := d.bus.Close(); err != nil {
		return fmt.Errorf("oled: could not close bus: %w", err)
	}
	return nil
}

// Clear blanks the framebuffer. The panel itself is untouched until Flush.
func (d *Device) Clear() {
	draw.Draw(d.img, d.img.Bounds(), &image.Uniform{image1bit.Off}, image.Point{}, draw.Src)
}

// DrawText draws s with its top-left corner at (x, y).
func (d *Device) DrawText(s string, x, y int) {
	drawer := font.Drawer{
		Dst:  d.img,
		Src:  &image.Uniform{image1bit.On},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y+basicfont.Face7x13.Ascent),
	}
	drawer.DrawString(s)
}

// DrawPixel sets or clears a single pixel in the framebuffer.
func (d *Device) DrawPixel(x, y int, on bool) {
	d.img.SetBit(x, y, image1bit.Bit(on))
}

// Flush pushes the complete frame to the panel.
func (d *Device) Flush() error {
	if err := d.dev.Draw(d.img.Bounds(), d.img, image.Point{}); err != nil {
		return fmt.Errorf("oled: could not flush frame: %w", err)
	}
	return nil
}
