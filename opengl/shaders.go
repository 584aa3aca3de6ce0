package opengl

// sources maps shader names to their GLSL source.
var sources = map[string]string{
	"circle.vert": `#version 330 core

layout(location = 0) in vec2 pos;

uniform mat4 projection;
uniform mat4 model;

void main() {
	gl_Position = projection * model * vec4(pos, 0.0, 1.0);
}
`,
	"circle.frag": `#version 330 core

uniform vec3 color;

out vec4 frag;

void main() {
	frag = vec4(color, 1.0);
}
`,
}
