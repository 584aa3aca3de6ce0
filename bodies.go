package solarsys

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// NumBodies is the number of planets orbiting the star.
const NumBodies = 7

// A Color is an RGB triple with components in [0, 1].
type Color [3]float32

// Display properties of the bodies that are not planets.
var (
	StarColor       = Color{1, 1, 0}
	OrbitColor      = Color{0.3, 0.3, 0.3}
	BackgroundColor = [4]float32{0, 0, 0.03, 1}
)

// StarRadius is the render radius of the central star.
const StarRadius = 0.08

// Orbit contains the immutable parameters of a body.
type Orbit struct {
	OrbitRadius  float64 // distance to the star in viewport units
	BodyRadius   float64 // render radius in viewport units
	AngularSpeed float64 // radians per unit of simulated time
}

// A Body is a planet travelling along a circular orbit.
type Body struct {
	Orbit
	Color Color

	// Phase is the angular position along the orbit, in [0, 2π).
	Phase float64
}

// Position returns the position of the body in viewport units.
func (b *Body) Position() r2.Vec {
	sin, cos := math.Sincos(b.Phase)
	return r2.Vec{X: b.OrbitRadius * cos, Y: b.OrbitRadius * sin}
}

// Advance moves the body by dθ radians and keeps the phase in [0, 2π).
func (b *Body) Advance(dθ float64) {
	b.Phase = normalizeAngle(b.Phase + dθ)
}

// normalizeAngle reduces an angle into [0, 2π).
func normalizeAngle(θ float64) float64 {
	if θ >= 0 && θ < 2*math.Pi {
		return θ
	}
	if math.IsNaN(θ) || math.IsInf(θ, 0) {
		return 0
	}
	θ = math.Mod(θ, 2*math.Pi)
	if θ < 0 {
		θ += 2 * math.Pi
	}
	// math.Mod of a tiny negative angle can round up to exactly 2π
	if θ >= 2*math.Pi {
		θ = 0
	}
	return θ
}

// DefaultBodies returns the seven planets in order of increasing orbit radius,
// all starting at phase 0.
func DefaultBodies() []Body {
	return []Body{
		{Orbit: Orbit{0.15, 0.020, 0.80}, Color: Color{0.5, 0.5, 0.5}},
		{Orbit: Orbit{0.25, 0.030, 0.60}, Color: Color{1.0, 0.5, 0.1}},
		{Orbit: Orbit{0.35, 0.035, 0.40}, Color: Color{0.1, 0.6, 1.0}},
		{Orbit: Orbit{0.45, 0.025, 0.30}, Color: Color{1.0, 0.2, 0.2}},
		{Orbit: Orbit{0.60, 0.040, 0.20}, Color: Color{0.9, 0.5, 0.1}},
		{Orbit: Orbit{0.75, 0.035, 0.15}, Color: Color{0.9, 0.9, 0.6}},
		{Orbit: Orbit{0.90, 0.030, 0.10}, Color: Color{0.5, 0.9, 1.0}},
	}
}
