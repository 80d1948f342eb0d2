package pulseox

import "fmt"

const (
	// plotGutter is the left margin reserved for the channel tags; the
	// plots start right after it.
	plotGutter = 20
	// lineHeight is the text row height of the sink's font.
	lineHeight = 13
)

// render redraws the whole frame: both readouts, the channel tags, the two
// scrolling plots, then a single flush. There is no partial update; the
// sink gets a complete frame every cycle. Plots are inverted so a larger
// intensity draws higher on the screen.
func (d *Device) render() error {
	d.display.Clear()

	d.display.DrawText(fmt.Sprintf("Pulse: %d bpm", d.bpm), 0, 0)
	d.display.DrawText(fmt.Sprintf("SpO2: %.1f%%", d.spo2), 0, lineHeight)

	plotTop := 2*lineHeight + 2

	d.display.DrawText("RD", 0, plotTop+d.plotH-lineHeight)
	for x := 0; x < d.graphRed.Len(); x++ {
		d.display.DrawPixel(plotGutter+x, plotTop+d.plotH-d.graphRed.At(x), true)
	}

	d.display.DrawText("IR", 0, d.height-lineHeight)
	for x := 0; x < d.graphIR.Len(); x++ {
		d.display.DrawPixel(plotGutter+x, d.height-1-d.graphIR.At(x), true)
	}

	return d.display.Flush()
}
