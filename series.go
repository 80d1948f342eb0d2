package pulseox

// series is a fixed-capacity FIFO of intensity samples. Every Push evicts
// the oldest element and appends exactly one new one, so the length never
// changes after construction. Max and min are maintained incrementally;
// the window is rescanned only when the evicted value was an extremum.
type series struct {
	buffer []int
	idx    int

	max int
	min int
}

func newSeries(size int) *series {
	return &series{
		buffer: make([]int, size),
	}
}

// Push evicts the oldest sample and appends v.
func (s *series) Push(v int) {
	s.idx++
	s.idx %= len(s.buffer)

	old := s.buffer[s.idx]
	s.buffer[s.idx] = v

	if old == s.max || old == s.min {
		s.max = v
		s.min = v
		for _, b := range s.buffer {
			s.minmax(b)
		}
	} else {
		s.minmax(v)
	}
}

func (s *series) minmax(v int) {
	if v > s.max {
		s.max = v
	}
	if v < s.min {
		s.min = v
	}
}

// Last returns the newest sample.
func (s *series) Last() int {
	return s.buffer[s.idx]
}

// Max returns the largest sample in the window.
func (s *series) Max() int {
	return s.max
}

// Min returns the smallest sample in the window.
func (s *series) Min() int {
	return s.min
}

// At returns the i-th sample in time order, index 0 being the oldest.
func (s *series) At(i int) int {
	return s.buffer[(s.idx+1+i)%len(s.buffer)]
}

// Len returns the fixed window capacity.
func (s *series) Len() int {
	return len(s.buffer)
}
