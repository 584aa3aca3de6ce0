//go:build !nogl
// +build !nogl

package opengl

import (
	"fmt"
	"log"
	"os"

	"github.com/PrincetonUniversity/solarsys"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Config holds the parameters of the OpenGL driver.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool // wait for vertical blank on swap
}

// DefaultConfig is an 800x800 window with vsync.
var DefaultConfig = Config{
	Title:  "Solar System Simulation",
	Width:  800,
	Height: 800,
	VSync:  true,
}

// Run runs an interactive simulation in an OpenGL window.
// It returns when the user quits or the window is closed.
func Run(s *solarsys.Simulation, conf *Config) error {
	// init GLFW and OpenGL
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("opengl: initializing GLFW: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	w, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("opengl: creating window: %w", err)
	}
	defer w.Destroy()
	w.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("opengl: loading OpenGL functions: %w", err)
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	if conf.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	// initialize OpenGL objects
	d, err := newDisplay()
	if err != nil {
		return err
	}
	defer d.delete()

	// the framebuffer may differ from the window size on high DPI screens
	fw, fh := w.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fw), int32(fh))
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	// handle scrolling zoom
	w.SetScrollCallback(func(_ *glfw.Window, _, yo float64) {
		s.Scroll(yo)
	})

	var in solarsys.Input
	kb := keyboard{w}

	s.Start(glfw.GetTime())
	for !(s.Quit || w.ShouldClose()) {
		dt := s.Tick(glfw.GetTime())
		in.Process(kb, s)
		s.Step(dt)
		d.draw(s, solarsys.Aspect(w.GetFramebufferSize()))
		w.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// bindings maps simulation commands to physical keys.
var bindings = map[solarsys.Key][]glfw.Key{
	solarsys.KeyQuit:     {glfw.KeyEscape},
	solarsys.KeyPause:    {glfw.KeySpace},
	solarsys.KeySpeedUp:  {glfw.KeyEqual, glfw.KeyKPAdd},
	solarsys.KeySlowDown: {glfw.KeyMinus, glfw.KeyKPSubtract},
	solarsys.KeyReset:    {glfw.KeyR},
}

// keyboard polls key states from a GLFW window.
type keyboard struct {
	w *glfw.Window
}

// Pressed implements solarsys.Keyboard.
func (kb keyboard) Pressed(k solarsys.Key) bool {
	for _, key := range bindings[k] {
		if kb.w.GetKey(key) == glfw.Press {
			return true
		}
	}
	return false
}

// display contains all the OpenGL objects required to display the simulation.
type display struct {
	prog uint32
	uni  struct {
		projection int32
		model      int32
		color      int32
	}
	disk circle // filled unit circle
	ring circle // unit circle outline
}

// newDisplay compiles shaders and uploads the circle geometries.
func newDisplay() (*display, error) {
	d := new(display)

	var err error
	d.prog, err = makeProg([]shader{
		{"Vertex", "circle.vert", gl.CreateShader(gl.VERTEX_SHADER)},
		{"Fragment", "circle.frag", gl.CreateShader(gl.FRAGMENT_SHADER)},
	})
	if err != nil {
		return nil, err
	}

	d.uni.projection = gl.GetUniformLocation(d.prog, gl.Str("projection\x00"))
	d.uni.model = gl.GetUniformLocation(d.prog, gl.Str("model\x00"))
	d.uni.color = gl.GetUniformLocation(d.prog, gl.Str("color\x00"))

	d.disk = upload(solarsys.BuildCircle(1, true))
	d.ring = upload(solarsys.BuildCircle(1, false))

	bg := solarsys.BackgroundColor
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])

	return d, nil
}

// draw clears the framebuffer and draws the scene.
func (d *display) draw(s *solarsys.Simulation, aspect float64) {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(d.prog)
	p := solarsys.Projection(s.Controls.Zoom, aspect)
	gl.UniformMatrix4fv(d.uni.projection, 1, false, &p[0])

	for _, c := range s.Scene() {
		gl.UniformMatrix4fv(d.uni.model, 1, false, &c.Model[0])
		gl.Uniform3f(d.uni.color, c.Color[0], c.Color[1], c.Color[2])
		switch c.Mode {
		case solarsys.Fan:
			d.disk.drawFan()
		case solarsys.Loop:
			d.ring.drawLoop()
		}
	}
	gl.BindVertexArray(0)
}

// delete releases the OpenGL objects.
func (d *display) delete() {
	d.ring.destroy()
	d.disk.destroy()
	gl.DeleteProgram(d.prog)
}

// A shader wraps an OpenGL shader.
type shader struct {
	name   string
	path   string
	shader uint32
}

// makeProg builds OpenGL programs.
func makeProg(shaders []shader) (uint32, error) {
	var fail bool
	for _, s := range shaders {
		src := sources[s.path] + "\x00"
		str, free := gl.Strs(src)
		gl.ShaderSource(s.shader, 1, str, nil)
		free()
		gl.CompileShader(s.shader)
		var status int32
		gl.GetShaderiv(s.shader, gl.COMPILE_STATUS, &status)
		if status != gl.TRUE {
			var n int32
			gl.GetShaderiv(s.shader, gl.INFO_LOG_LENGTH, &n)
			msg := make([]uint8, n+1)
			gl.GetShaderInfoLog(s.shader, n, &n, &msg[0])
			fmt.Fprintf(os.Stderr, "### %s shader compilation error: %s ###\n\n%s\n\n", s.name, s.path, gl.GoStr(&msg[0]))
			fail = true
		}
	}
	if fail {
		for _, s := range shaders {
			gl.DeleteShader(s.shader)
		}
		return 0, fmt.Errorf("opengl: GLSL errors")
	}

	prog := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(prog, s.shader)
	}
	gl.LinkProgram(prog)
	for _, s := range shaders {
		gl.DetachShader(prog, s.shader)
		gl.DeleteShader(s.shader)
	}

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status != gl.TRUE {
		var n int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &n)
		msg := make([]uint8, n+1)
		gl.GetProgramInfoLog(prog, n, &n, &msg[0])
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("opengl: linking program: %s", gl.GoStr(&msg[0]))
	}

	return prog, nil
}
