package oscillator

import "math"

// Nearest returns the sample closest in time to queryTime. Ties are broken by
// the earliest sample; ok is false when samples is empty. A linear scan is
// deliberate: the buffer holds at most a few hundred entries and the scan
// keeps the tie-break deterministic.
func Nearest(samples []Sample, queryTime float64) (Sample, bool) {
	if len(samples) == 0 {
		return Sample{}, false
	}
	best := samples[0]
	bestDist := math.Abs(samples[0].Time - queryTime)
	for _, s := range samples[1:] {
		d := math.Abs(s.Time - queryTime)
		if d < bestDist {
			best = s
			bestDist = d
		}
	}
	return best, true
}
