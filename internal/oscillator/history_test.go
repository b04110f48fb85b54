package oscillator

import "testing"

func TestHistoryAppendOrder(t *testing.T) {
	h := NewHistory(10, 10.0)

	for i := 0; i < 5; i++ {
		if !h.Append(float64(i), float64(i)*2) {
			t.Fatalf("append %d rejected", i)
		}
	}

	samples := h.Samples()
	if len(samples) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(samples))
	}
	for i, s := range samples {
		if s.Time != float64(i) {
			t.Errorf("sample %d: expected time %d, got %f", i, i, s.Time)
		}
	}
}

func TestHistoryEviction(t *testing.T) {
	h := NewHistory(10, 100.0)

	for i := 0; i < 15; i++ {
		h.Append(float64(i), 0)
	}

	if h.Len() != 10 {
		t.Fatalf("expected length 10, got %d", h.Len())
	}

	samples := h.Samples()
	if samples[0].Time != 5 {
		t.Errorf("expected oldest sample at t=5, got %f", samples[0].Time)
	}
	if samples[len(samples)-1].Time != 14 {
		t.Errorf("expected newest sample at t=14, got %f", samples[len(samples)-1].Time)
	}
}

func TestHistoryHorizon(t *testing.T) {
	h := NewHistory(10, 1.0)

	if !h.Append(0.5, 1.0) {
		t.Error("sample inside horizon rejected")
	}
	if !h.Append(1.0, 2.0) {
		t.Error("sample at horizon rejected")
	}
	if h.Append(1.5, 3.0) {
		t.Error("sample past horizon accepted")
	}
	if h.Len() != 2 {
		t.Errorf("expected 2 samples, got %d", h.Len())
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(10, 10.0)
	h.Append(1, 1)
	h.Append(2, 2)

	h.Clear()

	if h.Len() != 0 {
		t.Errorf("expected empty buffer after clear, got %d", h.Len())
	}
	if len(h.Samples()) != 0 {
		t.Error("expected no samples after clear")
	}

	// Reusable after clear.
	h.Append(3, 3)
	if h.Len() != 1 {
		t.Errorf("expected 1 sample after re-append, got %d", h.Len())
	}
}

func TestHistoryCopyToReuse(t *testing.T) {
	h := NewHistory(4, 10.0)
	for i := 0; i < 4; i++ {
		h.Append(float64(i), 0)
	}

	buf := make([]Sample, 0, 4)
	out := h.CopyTo(buf)
	if len(out) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(out))
	}
	if cap(out) != 4 {
		t.Errorf("expected buffer reuse, got cap %d", cap(out))
	}
}
