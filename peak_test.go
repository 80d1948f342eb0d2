package pulseox

import (
	"testing"
	"time"
)

func TestPeakTransitions(t *testing.T) {
	base := time.Unix(0, 0)
	var p peakDetector

	// Below the upper edge nothing happens.
	if _, ok := p.update(6000, 6333, 3667, base); ok || p.state != peakIdle {
		t.Fatalf("sample at 6000 with upper 6333 should stay idle, state = %v", p.state)
	}

	// Crossing the upper edge opens an interval and records the start.
	if _, ok := p.update(6334, 6333, 3667, base); ok || p.state != peakRising {
		t.Fatalf("sample at 6334 should transition to rising, state = %v", p.state)
	}
	if !p.start.Equal(base) {
		t.Fatalf("start = %v, want %v", p.start, base)
	}

	// Inside the band nothing happens while rising.
	if _, ok := p.update(5000, 6333, 3667, base.Add(300*time.Millisecond)); ok || p.state != peakRising {
		t.Fatalf("sample at 5000 should stay rising, state = %v", p.state)
	}

	// Falling below the lower edge closes the interval.
	span, ok := p.update(3000, 6333, 3667, base.Add(750*time.Millisecond))
	if !ok || p.state != peakIdle {
		t.Fatalf("sample at 3000 should complete the peak, state = %v", p.state)
	}
	if span != 750*time.Millisecond {
		t.Fatalf("span = %v, want 750ms", span)
	}
}

// TestPeakSpikeBand checks the band arithmetic on the documented example: a
// window of 5000s with a final 9000 spike and a sticky threshold of 5000
// yields band 1333, upper 6333, lower 3667, and the spike opens a peak.
func TestPeakSpikeBand(t *testing.T) {
	s := newSeries(100)
	for i := 0; i < 100; i++ {
		s.Push(5000)
	}
	s.Push(9000)

	const threshold = 5000
	band := (s.Max() - threshold) / 3
	upper := threshold + band
	lower := threshold - band
	if band != 1333 || upper != 6333 || lower != 3667 {
		t.Fatalf("band/upper/lower = %d/%d/%d, want 1333/6333/3667", band, upper, lower)
	}

	now := time.Unix(42, 0)
	var p peakDetector
	if _, ok := p.update(s.Last(), upper, lower, now); ok || p.state != peakRising {
		t.Fatalf("spike should open a peak, state = %v", p.state)
	}
	if !p.start.Equal(now) {
		t.Fatalf("start = %v, want %v", p.start, now)
	}
}

// TestPeakZeroBand pins the band collapse: when the window max equals the
// threshold both edges coincide and the machine toggles on every sample
// straddling the boundary. Samples exactly at the boundary trigger nothing
// in either state.
func TestPeakZeroBand(t *testing.T) {
	const edge = 5000
	base := time.Unix(0, 0)
	var p peakDetector

	if _, ok := p.update(edge, edge, edge, base); ok || p.state != peakIdle {
		t.Fatalf("boundary-equal sample should not open a peak, state = %v", p.state)
	}

	completed := 0
	for i := 0; i < 6; i++ {
		sample := edge + 1
		if i%2 == 1 {
			sample = edge - 1
		}
		if _, ok := p.update(sample, edge, edge, base.Add(time.Duration(i)*time.Millisecond)); ok {
			completed++
		}
	}
	if completed != 3 {
		t.Fatalf("completed %d intervals over 6 alternating samples, want 3", completed)
	}
}
