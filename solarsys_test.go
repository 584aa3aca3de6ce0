package solarsys

import (
	"math"
	"testing"
)

const tol = 1e-9

// run steps s for n frames of dt seconds each.
func run(s *Simulation, n int, dt float64) {
	now := s.Controls.LastFrameTime
	for i := 0; i < n; i++ {
		now += dt
		s.Step(s.Tick(now))
	}
}

func checkPhases(t *testing.T, s *Simulation) {
	t.Helper()
	for i, b := range s.Bodies {
		if !(b.Phase >= 0 && b.Phase < 2*math.Pi) {
			t.Errorf("body %d: phase %v out of [0, 2π)", i, b.Phase)
		}
	}
}

func TestNewCopiesBodies(t *testing.T) {
	bodies := DefaultBodies()
	s := New(bodies)
	s.Bodies[0].Phase = 1
	if bodies[0].Phase != 0 {
		t.Errorf("New shares the bodies slice with its caller")
	}
	if s.Controls != DefaultControls() {
		t.Errorf("controls = %+v, want %+v", s.Controls, DefaultControls())
	}
}

func TestTick(t *testing.T) {
	s := New(DefaultBodies())
	s.Start(10)
	if dt := s.Tick(10.5); dt != 0.5 {
		t.Errorf("dt = %v, want 0.5", dt)
	}
	// clock going backwards
	if dt := s.Tick(10.25); dt != 0 {
		t.Errorf("dt = %v, want 0", dt)
	}
	if s.Controls.LastFrameTime != 10.25 {
		t.Errorf("last frame time = %v, want 10.25", s.Controls.LastFrameTime)
	}
	if dt := s.Tick(11.25); dt != 1 {
		t.Errorf("dt = %v, want 1", dt)
	}
}

func TestStepRange(t *testing.T) {
	s := New(DefaultBodies())
	s.Controls.TimeSpeed = MaxTimeSpeed
	for _, dt := range []float64{0.016, 0.5, 3, 100, 12345.678} {
		s.Step(dt)
		checkPhases(t, s)
	}
}

func TestPhaseLinearity(t *testing.T) {
	s := New(DefaultBodies())
	s.Controls.TimeSpeed = 0.3
	var total float64
	dts := []float64{0.016, 0.017, 0.5, 0.033, 2, 0.001}
	for k := 0; k < 200; k++ {
		dt := dts[k%len(dts)]
		s.Step(dt)
		total += dt
	}
	checkPhases(t, s)
	for i, b := range s.Bodies {
		want := math.Mod(total*0.3*b.AngularSpeed, 2*math.Pi)
		if d := angleDist(b.Phase, want); d > 1e-9 {
			t.Errorf("body %d: phase %v, want %v", i, b.Phase, want)
		}
	}
	if math.Abs(s.Controls.Elapsed-total*0.3) > tol {
		t.Errorf("elapsed = %v, want %v", s.Controls.Elapsed, total*0.3)
	}
}

// angleDist returns the distance between two angles on the circle.
func angleDist(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 2*math.Pi)
	return math.Min(d, 2*math.Pi-d)
}

func TestMercuryCompletesOrbit(t *testing.T) {
	s := New(DefaultBodies())
	s.Controls.TimeSpeed = 1
	s.Start(0)
	period := 2 * math.Pi / s.Bodies[0].AngularSpeed
	n := 1000
	run(s, n, period/float64(n))
	if d := angleDist(s.Bodies[0].Phase, 0); d > 1e-3 {
		t.Errorf("mercury phase = %v after one period", s.Bodies[0].Phase)
	}
}

func TestPauseHoldsState(t *testing.T) {
	s := New(DefaultBodies())
	s.Start(0)
	run(s, 50, 0.1)
	want := make([]float64, len(s.Bodies))
	for i, b := range s.Bodies {
		want[i] = b.Phase
	}
	s.Controls.TogglePause()
	run(s, 1000, 0.25)
	for i, b := range s.Bodies {
		if b.Phase != want[i] {
			t.Errorf("body %d moved while paused: %v -> %v", i, want[i], b.Phase)
		}
	}
}

func TestPauseCommutes(t *testing.T) {
	a, b := New(DefaultBodies()), New(DefaultBodies())
	a.Controls.TimeSpeed, b.Controls.TimeSpeed = 0.2, 0.2

	for i := 0; i < 10; i++ {
		a.Step(0.1)
		b.Step(0.1)
	}
	b.Controls.TogglePause()
	for i := 0; i < 30; i++ {
		b.Step(0.1)
	}
	b.Controls.TogglePause()
	for i := 0; i < 10; i++ {
		a.Step(0.1)
		b.Step(0.1)
	}
	for i := range a.Bodies {
		if d := angleDist(a.Bodies[i].Phase, b.Bodies[i].Phase); d > tol {
			t.Errorf("body %d: %v != %v", i, a.Bodies[i].Phase, b.Bodies[i].Phase)
		}
	}
}

func TestReset(t *testing.T) {
	s := New(DefaultBodies())
	s.Controls.TimeSpeed = 0.7
	s.Start(0)
	run(s, 100, 0.05)
	s.Reset()
	for i, b := range s.Bodies {
		if b.Phase != 0 {
			t.Errorf("body %d: phase %v after reset", i, b.Phase)
		}
	}
	if s.Controls.Elapsed != 0 {
		t.Errorf("elapsed = %v after reset", s.Controls.Elapsed)
	}

	// reset while paused, twice
	run(s, 10, 0.05)
	s.Controls.Paused = true
	s.Reset()
	s.Reset()
	run(s, 10, 0.05)
	for i, b := range s.Bodies {
		if b.Phase != 0 {
			t.Errorf("body %d: phase %v after paused resets", i, b.Phase)
		}
	}
}

func TestSpeedClamp(t *testing.T) {
	c := DefaultControls()
	for i := 0; i < 600; i++ {
		c.SlowDown()
		if c.TimeSpeed < MinTimeSpeed {
			t.Fatalf("time speed %v below minimum", c.TimeSpeed)
		}
	}
	if c.TimeSpeed != MinTimeSpeed {
		t.Errorf("time speed = %v, want %v", c.TimeSpeed, MinTimeSpeed)
	}
	for i := 0; i < 2000; i++ {
		c.SpeedUp()
		if c.TimeSpeed > MaxTimeSpeed {
			t.Fatalf("time speed %v above maximum", c.TimeSpeed)
		}
	}
	if c.TimeSpeed != MaxTimeSpeed {
		t.Errorf("time speed = %v, want %v", c.TimeSpeed, MaxTimeSpeed)
	}
}

func TestZoomClamp(t *testing.T) {
	s := New(DefaultBodies())
	for i := 0; i < 1000; i++ {
		s.Scroll(1)
	}
	if s.Controls.Zoom != MinZoom {
		t.Errorf("zoom = %v, want %v", s.Controls.Zoom, MinZoom)
	}
	for i := 0; i < 1000; i++ {
		s.Scroll(-1)
	}
	if s.Controls.Zoom != MaxZoom {
		t.Errorf("zoom = %v, want %v", s.Controls.Zoom, MaxZoom)
	}
	s.Scroll(math.NaN())
	if s.Controls.Zoom != MaxZoom {
		t.Errorf("zoom = %v after NaN scroll", s.Controls.Zoom)
	}

	s.Controls.Zoom = 1
	s.Scroll(2)
	if math.Abs(s.Controls.Zoom-0.9) > tol {
		t.Errorf("zoom = %v, want 0.9", s.Controls.Zoom)
	}
}

func TestStepNonFinite(t *testing.T) {
	b := DefaultBodies()
	b[0].AngularSpeed = math.Inf(1)
	b[1].AngularSpeed = math.NaN()
	s := New(b)
	s.Step(0.016)
	checkPhases(t, s)
	s.Step(math.Inf(1))
	checkPhases(t, s)
}
