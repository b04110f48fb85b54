package oscillator

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Coil shape constants matching the rendered spring.
const (
	coilRadius     = 0.2
	numCoils       = 6
	geometryPoints = 100
)

// SpringGeometry returns the parametric coil curve between the anchor at x=0
// and the mass at x=position: x(t)=t*position, y(t)=r*sin(2*pi*n*t) for t
// uniform in [0,1]. Pure function of position.
func SpringGeometry(position float64) (xs, ys []float64) {
	ts := make([]float64, geometryPoints)
	floats.Span(ts, 0, 1)

	xs = make([]float64, geometryPoints)
	ys = make([]float64, geometryPoints)
	for i, t := range ts {
		xs[i] = t * position
		ys[i] = coilRadius * math.Sin(2*math.Pi*numCoils*t)
	}
	return xs, ys
}
