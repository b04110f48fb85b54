// Package analysis provides frequency analysis of recorded velocity traces.
package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/san-kum/springlab/internal/oscillator"
)

// PowerSpectrum returns the magnitude spectrum of data, zero-padded to the
// next power of two. Only the positive-frequency half is returned.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)

	spectrum := fft.FFTReal(padded)

	half := make([]float64, n/2)
	for i := range half {
		half[i] = cmplx.Abs(spectrum[i])
	}
	return half
}

// DominantFrequency returns the strongest non-DC frequency in Hz.
// sampleInterval is the spacing between trace points in seconds.
func DominantFrequency(ps []float64, sampleInterval float64) float64 {
	if len(ps) < 2 || sampleInterval <= 0 {
		return 0
	}
	maxIdx := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[maxIdx] {
			maxIdx = i
		}
	}
	n := 2 * len(ps) // padded FFT length
	return float64(maxIdx) / (float64(n) * sampleInterval)
}

// TraceSpectrum computes the power spectrum of a velocity trace and the
// sampling interval inferred from its timestamps.
func TraceSpectrum(trace []oscillator.Sample) ([]float64, float64) {
	if len(trace) < 2 {
		return nil, 0
	}
	data := make([]float64, len(trace))
	for i, s := range trace {
		data[i] = s.Velocity
	}
	interval := (trace[len(trace)-1].Time - trace[0].Time) / float64(len(trace)-1)
	return PowerSpectrum(data), interval
}
