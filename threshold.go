package pulseox

// threshold is the sticky midpoint threshold the peak detector hangs its
// hysteresis band off. It starts at 0 and holds its value between
// recomputes.
type threshold struct {
	value   int
	counter int
	every   int
}

// tick advances the cadence counter and, when it runs over, recomputes the
// threshold from the raw red series and resets the counter. The strict
// comparison makes the recompute land on every 51st cycle, not every 50th;
// that cadence is part of the measured behavior and is kept as is.
func (t *threshold) tick(s *series) {
	t.counter++
	if t.counter > t.every {
		t.value = (s.Max() + s.Min()) / 2
		t.counter = 0
	}
}
