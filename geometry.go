package solarsys

import "math"

// CircleSegments is the number of segments used to approximate a circle.
const CircleSegments = 64

// BuildCircle returns the flattened (x, y) vertices of a circle of the given radius.
//
// A filled circle starts with its center followed by CircleSegments+1 perimeter
// points, suitable for a triangle fan. An open circle only has the perimeter
// points, suitable for a line loop. The first and last perimeter points coincide.
func BuildCircle(radius float64, filled bool) []float32 {
	n := CircleSegments + 1
	if filled {
		n++
	}
	v := make([]float32, 0, 2*n)
	if filled {
		v = append(v, 0, 0)
	}
	for i := 0; i <= CircleSegments; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / CircleSegments)
		v = append(v, float32(radius*cos), float32(radius*sin))
	}
	return v
}
