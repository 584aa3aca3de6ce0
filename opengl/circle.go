//go:build !nogl
// +build !nogl

package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// A circle is a unit circle geometry stored on the GPU.
type circle struct {
	vao   uint32 // vertex array object
	vbo   uint32 // vertex buffer
	count int32  // number of vertices
}

// upload copies flattened (x, y) vertices once into a static buffer
// bound to attribute 0.
func upload(vertices []float32) circle {
	var c circle
	c.count = int32(len(vertices) / 2)

	gl.GenVertexArrays(1, &c.vao)
	gl.GenBuffers(1, &c.vbo)

	gl.BindVertexArray(c.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, nil)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return c
}

// drawFan draws a filled disk.
func (c circle) drawFan() {
	gl.BindVertexArray(c.vao)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, c.count)
}

// drawLoop draws a closed outline.
func (c circle) drawLoop() {
	gl.BindVertexArray(c.vao)
	gl.DrawArrays(gl.LINE_LOOP, 0, c.count)
}

// destroy releases the buffer and the vertex array object.
func (c *circle) destroy() {
	gl.DeleteBuffers(1, &c.vbo)
	gl.DeleteVertexArrays(1, &c.vao)
	*c = circle{}
}
