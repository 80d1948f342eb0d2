package pulseox

// saturation estimates SpO2 in percent from one clipped red/IR pair, using
// the empirical ratio-of-ratios formula calibrated for the reference LEDs.
// The zero-IR guard returns 0 instead of dividing; a strictly positive
// configured IR minimum means it should never fire, but it is kept
// regardless. The output is not smoothed or clamped, so values outside a
// physically sane range are possible.
func saturation(red, ir, redMax, irMax int) float64 {
	if ir == 0 {
		return 0
	}

	ratio := (float64(red) / float64(redMax)) / (float64(ir) / float64(irMax))

	return 110 - 25*ratio
}
