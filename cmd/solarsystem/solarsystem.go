// Command solarsystem shows planets orbiting a star.
//
// # Usage
//
// The solarsystem command takes one optional argument:
//
//	solarsystem [config_file]
//
// It is the path to a TOML config file.
// If no config file is specified, an interactive simulation
// with default parameters will run in an OpenGL window.
//
// # Interactive mode
//
// Space pauses and resumes the simulation. Holding = or - speeds
// simulated time up or down. R brings every planet back to its
// starting point. The scroll wheel zooms. Esc or closing the window quits.
//
// # Recording mode
//
// If the config file sets Output, no window is opened. Steps frames
// of Dt seconds each are simulated and the phases and positions
// of the planets are written to the HDF5 file at Output.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/PrincetonUniversity/solarsys"
	"github.com/PrincetonUniversity/solarsys/hdf5"
	"github.com/PrincetonUniversity/solarsys/opengl"
	"gonum.org/v1/gonum/spatial/r2"
)

const usage = `Usage: solarsystem [config_file]

The first argument is optional and is the path to a TOML config file.
If no config file is specified, an interactive simulation
with default parameters will run in an OpenGL window.
`

func init() {
	// Most OpenGL functions have to run from the main thread.
	// This is needed to arrange that main() runs on main thread.
	// See https://github.com/golang/go/wiki/LockOSThread for more info.
	runtime.LockOSThread()
}

func main() {
	var conf *Config
	var err error
	switch len(os.Args) {
	case 1:
		conf = DefaultConf
	case 2:
		conf, err = ParseConfig(os.Args[1])
	default:
		err = fmt.Errorf("%d arguments provided (0 required, 1 optional)\n\n%s", len(os.Args)-1, usage)
	}
	if err != nil {
		Fatal(err)
	}

	// setup simulation
	s, err := setup(conf)
	if err != nil {
		Fatal(err)
	}

	// run interactively or not depending on config
	if conf.Output == "" {
		win := opengl.DefaultConfig
		win.VSync = conf.VSync
		err = opengl.Run(s, &win)
	} else {
		err = hdf5.Run(s, &hdf5.Config{
			Output: conf.Output,
			Steps:  conf.Steps,
			Step:   func() { s.Step(conf.Dt) },
			Attrs:  conf,
			Datasets: []*hdf5.Dataset{
				{
					Name: "phases",
					Val:  0.0,
					Dims: []int{len(s.Bodies)},
					Data: getPhases,
				},
				{
					Name: "positions",
					Val:  r2.Vec{},
					Dims: []int{len(s.Bodies)},
					Data: getPositions,
				},
				{
					Name: "elapsed",
					Val:  0.0,
					Data: func(s *solarsys.Simulation) interface{} {
						t := s.Controls.Elapsed
						return &t
					},
				},
			},
		})
	}
	if err != nil {
		Fatal(err)
	}
}

// Fatal prints an error on the standard error and exits with a non-zero status.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

// setup initializes the bodies and controls from the config.
func setup(conf *Config) (*solarsys.Simulation, error) {
	bodies, err := conf.bodies()
	if err != nil {
		return nil, err
	}
	s := solarsys.New(bodies)
	s.Controls.TimeSpeed = conf.TimeSpeed
	s.Controls.Zoom = conf.Zoom
	return s, nil
}

func getPhases(s *solarsys.Simulation) interface{} {
	p := make([]float64, len(s.Bodies))
	for i := range s.Bodies {
		p[i] = s.Bodies[i].Phase
	}
	return &p
}

func getPositions(s *solarsys.Simulation) interface{} {
	p := make([]r2.Vec, len(s.Bodies))
	for i := range s.Bodies {
		p[i] = s.Bodies[i].Position()
	}
	return &p
}
