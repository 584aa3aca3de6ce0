//go:build nogl
// +build nogl

package opengl

import (
	"fmt"
	"os"

	"github.com/PrincetonUniversity/solarsys"
)

// Config holds the parameters of the OpenGL driver.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// DefaultConfig is an 800x800 window with vsync.
var DefaultConfig = Config{
	Title:  "Solar System Simulation",
	Width:  800,
	Height: 800,
	VSync:  true,
}

// Run returns an error explaining that OpenGL support is disabled.
func Run(s *solarsys.Simulation, conf *Config) error {
	return fmt.Errorf("%s was built without OpenGL support\n"+
		"You must specify an output file ('Output' key in the config file).", os.Args[0])
}
