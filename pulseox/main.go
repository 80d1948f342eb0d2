package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"periph.io/x/periph/experimental/devices/ads1x15"

	"github.com/tsellek/pulseox"
	"github.com/tsellek/pulseox/oled"
	"github.com/tsellek/pulseox/probe"
	"github.com/tsellek/pulseox/sim"
)

func main() {
	var (
		bus      = flag.String("bus", "", "I2C bus name (empty picks the first available)")
		redPin   = flag.String("red", "GPIO21", "red emitter pin")
		irPin    = flag.String("ir", "GPIO20", "IR emitter pin")
		simulate = flag.Bool("sim", false, "run against a synthetic waveform instead of the probe")
	)
	flag.Parse()

	var source pulseox.Source
	if *simulate {
		source = sim.New(18, 72, 0.05)
	} else {
		front, err := probe.Open(*redPin, *irPin, *bus, ads1x15.Channel0)
		if err != nil {
			log.Fatal(err)
		}
		defer front.Halt()
		source = front
	}

	display, err := oled.New(*bus, 128, 64)
	if err != nil {
		log.Fatal(err)
	}
	defer display.Close()

	device, err := pulseox.New(source, display)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := device.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
