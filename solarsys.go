// Package solarsys runs an interactive simulation of a stylized solar system.
//
// A star sits at the origin and planets travel along concentric circular
// orbits at constant angular speed. There is no gravity: each planet only
// carries a phase that grows with simulated time.
// Simulated time flows at a user-controlled rate and can be paused or reset.
package solarsys

import "math"

// Bounds and increments of the user controls.
const (
	DefaultTimeSpeed = 0.005
	MinTimeSpeed     = 0.001
	MaxTimeSpeed     = 1.0
	TimeSpeedStep    = 0.001

	DefaultZoom = 1.0
	MinZoom     = 0.1
	MaxZoom     = 5.0
	ZoomStep    = 0.05
)

// Controls contains the global parameters modified by the user.
type Controls struct {
	Paused    bool
	TimeSpeed float64 // simulated time per real second, in [MinTimeSpeed, MaxTimeSpeed]
	Zoom      float64 // half height of the view, in [MinZoom, MaxZoom]

	// LastFrameTime is the monotonic time of the previous frame in seconds.
	LastFrameTime float64

	// Elapsed is the simulated time since the start or the last reset.
	Elapsed float64
}

// DefaultControls returns the controls at program start.
func DefaultControls() Controls {
	return Controls{
		TimeSpeed: DefaultTimeSpeed,
		Zoom:      DefaultZoom,
	}
}

// TogglePause switches between running and paused.
func (c *Controls) TogglePause() {
	c.Paused = !c.Paused
}

// SpeedUp increases the time speed by one step.
func (c *Controls) SpeedUp() {
	c.TimeSpeed = math.Min(MaxTimeSpeed, c.TimeSpeed+TimeSpeedStep)
}

// SlowDown decreases the time speed by one step.
func (c *Controls) SlowDown() {
	c.TimeSpeed = math.Max(MinTimeSpeed, c.TimeSpeed-TimeSpeedStep)
}

// A Simulation contains all the state of the solar system.
type Simulation struct {
	Bodies   []Body
	Controls Controls

	// Quit is set when the user asks to leave. The current frame completes.
	Quit bool
}

// New returns a simulation of the given bodies with default controls.
// The bodies are copied.
func New(bodies []Body) *Simulation {
	s := &Simulation{
		Bodies:   make([]Body, len(bodies)),
		Controls: DefaultControls(),
	}
	copy(s.Bodies, bodies)
	return s
}

// Start records the time of the frame preceding the first one.
func (s *Simulation) Start(now float64) {
	s.Controls.LastFrameTime = now
}

// Tick returns the real time elapsed since the previous frame
// and records now as the time of the current frame.
// A clock going backwards yields a zero delta.
func (s *Simulation) Tick(now float64) float64 {
	dt := now - s.Controls.LastFrameTime
	s.Controls.LastFrameTime = now
	if dt < 0 || math.IsNaN(dt) {
		return 0
	}
	return dt
}

// Step advances all bodies by dt seconds of real time, unless paused.
func (s *Simulation) Step(dt float64) {
	if s.Controls.Paused || dt <= 0 {
		return
	}
	t := dt * s.Controls.TimeSpeed
	for i := range s.Bodies {
		s.Bodies[i].Advance(t * s.Bodies[i].AngularSpeed)
	}
	s.Controls.Elapsed += t
}

// Reset brings every body back to phase 0 and clears the elapsed time.
func (s *Simulation) Reset() {
	for i := range s.Bodies {
		s.Bodies[i].Phase = 0
	}
	s.Controls.Elapsed = 0
}

// Scroll applies a scroll wheel delta to the zoom.
// Scrolling up (dy > 0) zooms in.
func (s *Simulation) Scroll(dy float64) {
	z := s.Controls.Zoom - dy*ZoomStep
	if math.IsNaN(z) {
		return
	}
	s.Controls.Zoom = math.Max(MinZoom, math.Min(MaxZoom, z))
}
