package pulseox

// clip clamps v into [min, max].
func clip(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// normalize maps a clipped value in [min, max] onto [0, scale], flooring.
// It is only used to prepare values for the plots, never for threshold or
// peak logic.
func normalize(v, min, max, scale int) int {
	return (v - min) * scale / (max - min)
}
