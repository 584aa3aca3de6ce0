package main

import (
	"fmt"
	"log"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/PrincetonUniversity/solarsys"
	"github.com/lucasb-eyer/go-colorful"
)

// Config holds the various parameters required for running a simulation.
type Config struct {
	// Output is either a filename (path) for the HDF5 output file,
	// or the empty string for an interactive OpenGL simulation.
	Output string

	Steps int     // number of recorded frames (hdf5 only)
	Dt    float64 // duration of a recorded frame in seconds (hdf5 only)

	// Initial controls
	TimeSpeed float64 // unit: simulated time per second
	Zoom      float64 // unit: half view height

	VSync bool // interactive only

	// Bodies replaces the default planets when present.
	Bodies []BodyConfig
}

// BodyConfig describes a planet in the config file.
type BodyConfig struct {
	OrbitRadius  float64 // unit: viewport
	BodyRadius   float64 // unit: viewport
	AngularSpeed float64 // unit: rad/simulated time
	Color        string  // #rrggbb
}

// DefaultConf are the default parameters.
var DefaultConf = &Config{
	Output:    "",
	Steps:     3600,
	Dt:        1.0 / 60,
	TimeSpeed: solarsys.DefaultTimeSpeed,
	Zoom:      solarsys.DefaultZoom,
	VSync:     true,
}

// ParseConfig parses the TOML config file whose path is provided.
func ParseConfig(path string) (*Config, error) {
	// config file overwrites default parameters
	conf := *DefaultConf
	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return nil, err
	}
	for _, k := range md.Undecoded() {
		log.Printf("Warning: unrecognised key %q in %s", k.String(), path)
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &conf, nil
}

// Validate checks that the parameters are within their bounds.
func (c *Config) Validate() error {
	if c.Output != "" {
		if c.Steps <= 0 {
			return fmt.Errorf("Steps must be positive, got %d", c.Steps)
		}
		if !(c.Dt > 0) || math.IsInf(c.Dt, 1) {
			return fmt.Errorf("Dt must be a positive number, got %v", c.Dt)
		}
	}
	if !(c.TimeSpeed >= solarsys.MinTimeSpeed && c.TimeSpeed <= solarsys.MaxTimeSpeed) {
		return fmt.Errorf("TimeSpeed must be in [%v, %v], got %v",
			solarsys.MinTimeSpeed, solarsys.MaxTimeSpeed, c.TimeSpeed)
	}
	if !(c.Zoom >= solarsys.MinZoom && c.Zoom <= solarsys.MaxZoom) {
		return fmt.Errorf("Zoom must be in [%v, %v], got %v", solarsys.MinZoom, solarsys.MaxZoom, c.Zoom)
	}
	if len(c.Bodies) != 0 && len(c.Bodies) != solarsys.NumBodies {
		return fmt.Errorf("%d bodies given, need exactly %d", len(c.Bodies), solarsys.NumBodies)
	}
	_, err := c.bodies()
	return err
}

// bodies returns the planets described by the config.
func (c *Config) bodies() ([]solarsys.Body, error) {
	if len(c.Bodies) == 0 {
		return solarsys.DefaultBodies(), nil
	}
	b := make([]solarsys.Body, len(c.Bodies))
	for i, v := range c.Bodies {
		if !(finite(v.OrbitRadius) && finite(v.BodyRadius) && finite(v.AngularSpeed)) {
			return nil, fmt.Errorf("body %d: radii and angular speed must be positive numbers", i+1)
		}
		col, err := colorful.Hex(v.Color)
		if err != nil {
			return nil, fmt.Errorf("body %d: bad color %q", i+1, v.Color)
		}
		b[i] = solarsys.Body{
			Orbit: solarsys.Orbit{
				OrbitRadius:  v.OrbitRadius,
				BodyRadius:   v.BodyRadius,
				AngularSpeed: v.AngularSpeed,
			},
			Color: solarsys.Color{float32(col.R), float32(col.G), float32(col.B)},
		}
	}
	return b, nil
}

// finite reports whether x is a positive finite number.
func finite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
