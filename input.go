package solarsys

// A Key is a user command bound to a physical key by the window driver.
type Key int

// Commands understood by the simulation.
const (
	KeyQuit     Key = iota // leave the program
	KeyPause               // toggle pause (on press)
	KeySpeedUp             // accelerate time (while held)
	KeySlowDown            // decelerate time (while held)
	KeyReset               // reset phases (on press)
	numKeys
)

// A Keyboard reports which commands are currently held down.
type Keyboard interface {
	Pressed(k Key) bool
}

// Input maps keyboard state to changes of the simulation.
// It remembers the previous state of each key so that toggles
// fire once per press rather than once per frame.
type Input struct {
	down [numKeys]bool
}

// Process polls the keyboard and applies the commands to s.
func (in *Input) Process(kb Keyboard, s *Simulation) {
	if kb.Pressed(KeyQuit) {
		s.Quit = true
	}
	if in.edge(kb, KeyPause) {
		s.Controls.TogglePause()
	}
	if kb.Pressed(KeySpeedUp) {
		s.Controls.SpeedUp()
	}
	if kb.Pressed(KeySlowDown) {
		s.Controls.SlowDown()
	}
	if in.edge(kb, KeyReset) {
		s.Reset()
	}
}

// edge reports whether k went from released to pressed since the last call.
func (in *Input) edge(kb Keyboard, k Key) bool {
	p := kb.Pressed(k)
	fire := p && !in.down[k]
	in.down[k] = p
	return fire
}
