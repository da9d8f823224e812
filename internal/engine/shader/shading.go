package shader

// Uniform names shared between the render manager and the shading program.
const (
	UniformMVP        = "MVP"
	UniformColor      = "color"
	UniformCamera     = "cameraloc"
	UniformLightDir   = "lightdir"
	UniformLightCoeff = "lightcoeff"
)

// Vertex attribute locations.
const (
	AttribPosition = 0
	AttribNormal   = 1

	attribPositionName = "vertex_position"
	attribNormalName   = "vertex_normal"
)

// Uniforms lists every uniform the shading program must expose.
var Uniforms = []string{UniformMVP, UniformColor, UniformCamera, UniformLightDir, UniformLightCoeff}

// ShadingVertex projects by MVP and computes a per-vertex ambient + diffuse +
// specular scalar. lightcoeff is (Ka, Kd, Ks, shininess).
const ShadingVertex = `#version 410 core

layout (location = 0) in vec3 vertex_position;
layout (location = 1) in vec3 vertex_normal;

uniform mat4 MVP;
uniform vec3 cameraloc;
uniform vec3 lightdir;
uniform vec4 lightcoeff;

out float shading_amount;

void main() {
	gl_Position = MVP * vec4(vertex_position, 1.0);

	vec3 viewdir = normalize(cameraloc - vertex_position);

	float diffuse = max(0.0, dot(lightdir, vertex_normal));

	vec3 r = normalize((2.0 * diffuse) * vertex_normal - lightdir);
	float specular = pow(max(0.0, dot(r, viewdir)), lightcoeff[3]);

	shading_amount = lightcoeff[0] + lightcoeff[1] * diffuse + lightcoeff[2] * specular;
}
`

// ShadingFragment scales the object color by the interpolated shading and
// clamps each channel to 1.
const ShadingFragment = `#version 410 core

uniform vec3 color;

in float shading_amount;
out vec4 frag_color;

void main() {
	frag_color = vec4(min(vec3(1.0), color * shading_amount), 1.0);
}
`
