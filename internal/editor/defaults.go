package editor

import "github.com/mkram/shaderstudio/internal/engine/driver"

// The default sources form a working program out of the box: a lit,
// time-animated cube. They also document the conventions the preview
// renderer expects, the fixed attribute slots 0-2 and the uModelView /
// uProjection matrices.
const defaultVertexSource = `#version 330

layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec2 aTexCoord;

uniform mat4 uModelView;
uniform mat4 uProjection;

out VS_OUT {
    vec3 normal;
    vec2 texCoord;
} vs_out;

void main()
{
    vs_out.normal = mat3(uModelView) * aNormal;
    vs_out.texCoord = aTexCoord;
    gl_Position = uProjection * uModelView * vec4(aPosition, 1.0);
}
`

// The default geometry shader is a plain passthrough. It uses the same
// interface block as the vertex shader, so the fragment shader works
// with or without it.
const defaultGeometrySource = `#version 330

layout(triangles) in;
layout(triangle_strip, max_vertices = 3) out;

in VS_OUT {
    vec3 normal;
    vec2 texCoord;
} gs_in[];

out VS_OUT {
    vec3 normal;
    vec2 texCoord;
} gs_out;

void main()
{
    for (int i = 0; i < 3; ++i) {
        gl_Position = gl_in[i].gl_Position;
        gs_out.normal = gs_in[i].normal;
        gs_out.texCoord = gs_in[i].texCoord;
        EmitVertex();
    }
    EndPrimitive();
}
`

const defaultFragmentSource = `#version 330

uniform float time;
uniform vec3 baseColor;

in VS_OUT {
    vec3 normal;
    vec2 texCoord;
} fs_in;

out vec4 fragColor;

void main()
{
    vec3 n = normalize(fs_in.normal);
    float diffuse = max(dot(n, normalize(vec3(0.4, 0.7, 0.6))), 0.0);
    float pulse = 0.5 + 0.5 * sin(time);
    vec3 color = baseColor * (0.2 + 0.8 * diffuse) * (0.6 + 0.4 * pulse);
    fragColor = vec4(color, 1.0);
}
`

// DefaultSource returns the built-in source text for a stage.
func DefaultSource(kind driver.StageKind) string {
	switch kind {
	case driver.StageVertex:
		return defaultVertexSource
	case driver.StageGeometry:
		return defaultGeometrySource
	case driver.StageFragment:
		return defaultFragmentSource
	}
	return ""
}
