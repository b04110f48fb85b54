package oscillator

// Sample is one recorded point of the velocity trace.
type Sample struct {
	Time     float64
	Velocity float64
}

// History is a bounded, insertion-ordered buffer of velocity samples backed
// by a fixed ring. When full, the oldest sample is evicted on append. Samples
// with a time past the recording horizon are silently ignored.
type History struct {
	samples []Sample
	head    int
	length  int

	maxPoints int
	maxTime   float64
}

func NewHistory(maxPoints int, maxTime float64) *History {
	if maxPoints <= 0 {
		maxPoints = DefaultMaxPoints
	}
	return &History{
		samples:   make([]Sample, maxPoints),
		maxPoints: maxPoints,
		maxTime:   maxTime,
	}
}

// Append records a sample, evicting the oldest entry when the buffer is full.
// It returns false without recording if t lies beyond the horizon.
func (h *History) Append(t, velocity float64) bool {
	if t > h.maxTime {
		return false
	}
	idx := (h.head + h.length) % h.maxPoints
	h.samples[idx] = Sample{Time: t, Velocity: velocity}
	if h.length < h.maxPoints {
		h.length++
	} else {
		h.head = (h.head + 1) % h.maxPoints
	}
	return true
}

// Clear empties the buffer. The backing ring is reused.
func (h *History) Clear() {
	h.head = 0
	h.length = 0
}

func (h *History) Len() int { return h.length }

func (h *History) MaxPoints() int { return h.maxPoints }

func (h *History) MaxTime() float64 { return h.maxTime }

// Samples returns the recorded samples in insertion order.
func (h *History) Samples() []Sample {
	return h.CopyTo(nil)
}

// CopyTo appends the recorded samples in insertion order to dst[:0] and
// returns the result, reusing dst's capacity when possible.
func (h *History) CopyTo(dst []Sample) []Sample {
	dst = dst[:0]
	for i := 0; i < h.length; i++ {
		dst = append(dst, h.samples[(h.head+i)%h.maxPoints])
	}
	return dst
}
