package solarsys

import (
	"github.com/go-gl/mathgl/mgl32"
)

// A Mode is the primitive used to draw a unit circle.
type Mode int

const (
	Fan  Mode = iota // filled disk drawn as a triangle fan
	Loop             // outline drawn as a line loop
)

// A Draw is a single draw call of a unit circle.
type Draw struct {
	Mode  Mode
	Model mgl32.Mat4 // maps the unit circle to world space
	Color Color
}

// Projection returns the orthographic projection showing zoom units
// above and below the origin. The horizontal extent follows the aspect ratio.
func Projection(zoom, aspect float64) mgl32.Mat4 {
	z, a := float32(zoom), float32(aspect)
	return mgl32.Ortho(-z*a, z*a, -z, z, -1, 1)
}

// Aspect returns width/height, or 1 for a degenerate framebuffer
// such as the one of a minimized window.
func Aspect(width, height int) float64 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float64(width) / float64(height)
}

// Scene returns the draw calls of the current frame in painter order:
// orbits, then the star, then the planets.
func (s *Simulation) Scene() []Draw {
	d := make([]Draw, 0, 2*len(s.Bodies)+1)
	for _, b := range s.Bodies {
		r := float32(b.OrbitRadius)
		d = append(d, Draw{Mode: Loop, Model: mgl32.Scale3D(r, r, r), Color: OrbitColor})
	}
	d = append(d, Draw{Mode: Fan, Model: mgl32.Scale3D(StarRadius, StarRadius, StarRadius), Color: StarColor})
	for i := range s.Bodies {
		b := &s.Bodies[i]
		p, r := b.Position(), float32(b.BodyRadius)
		m := mgl32.Translate3D(float32(p.X), float32(p.Y), 0).Mul4(mgl32.Scale3D(r, r, r))
		d = append(d, Draw{Mode: Fan, Model: m, Color: b.Color})
	}
	return d
}
