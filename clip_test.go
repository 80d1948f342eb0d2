package pulseox

import "testing"

func TestClip(t *testing.T) {
	tests := []struct {
		name     string
		v        int
		min, max int
		want     int
	}{
		{"inside", 5000, 700, 14000, 5000},
		{"below", 100, 700, 14000, 700},
		{"above", 60000, 700, 14000, 14000},
		{"at min", 700, 700, 14000, 700},
		{"at max", 14000, 700, 14000, 14000},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := clip(tc.v, tc.min, tc.max); got != tc.want {
				t.Errorf("clip(%d, %d, %d) = %d, want %d", tc.v, tc.min, tc.max, got, tc.want)
			}
		})
	}
}

func TestNormalizeEndpoints(t *testing.T) {
	ranges := []struct {
		min, max, scale int
	}{
		{700, 14000, 17},
		{500, 1300, 17},
		{0, 1, 22},
		{700, 14000, 0},
	}
	for _, r := range ranges {
		if got := normalize(r.min, r.min, r.max, r.scale); got != 0 {
			t.Errorf("normalize(min=%d, max=%d, scale=%d) = %d, want 0", r.min, r.max, r.scale, got)
		}
		if got := normalize(r.max, r.min, r.max, r.scale); got != r.scale {
			t.Errorf("normalize(max=%d, min=%d, scale=%d) = %d, want %d", r.max, r.min, r.scale, got, r.scale)
		}
	}
}

func TestNormalizeFloors(t *testing.T) {
	// 3/4 of the way through [0, 8] at scale 10 is 7.5, which floors to 7.
	if got := normalize(6, 0, 8, 10); got != 7 {
		t.Errorf("normalize(6, 0, 8, 10) = %d, want 7", got)
	}
}
