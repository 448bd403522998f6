// Package scene renders the fixed test mesh the shader under edit is
// previewed on.
package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/mkram/shaderstudio/internal/engine/shader"
)

// Vertex attribute locations 0-2 are fixed by convention; shaders are
// expected to declare position, normal and texcoord at these slots.
// Tangent and bitangent locations are assigned by the linker and change
// per program, so they are set up on every draw.
const (
	attribPosition = 0
	attribNormal   = 1
	attribTexCoord = 2
)

type meshVertex struct {
	Position  [3]float32
	Normal    [3]float32
	TexCoord  [2]float32
	Tangent   [3]float32
	Bitangent [3]float32
}

// Mesh is a static indexed triangle mesh with full tangent-space
// attribute streams.
type Mesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// NewCubeMesh uploads a 2-unit cube centered at the origin. Each face
// carries its own normal, tangent and bitangent so normal mapping
// shaders behave correctly on every side.
func NewCubeMesh() *Mesh {
	vertices, indices := buildCube()

	m := &Mesh{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(unsafe.Sizeof(meshVertex{})), unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	stride := int32(unsafe.Sizeof(meshVertex{}))

	gl.VertexAttribPointerWithOffset(attribPosition, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(attribPosition)

	gl.VertexAttribPointerWithOffset(attribNormal, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(attribNormal)

	gl.VertexAttribPointerWithOffset(attribTexCoord, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(attribTexCoord)

	gl.BindVertexArray(0)

	return m
}

// Draw renders the mesh. Tangent and bitangent streams are only fed
// when the current program declares the matching attributes.
func (m *Mesh) Draw(attribs shader.AttribLocations) {
	gl.BindVertexArray(m.vao)

	stride := int32(unsafe.Sizeof(meshVertex{}))

	if attribs.Tangent >= 0 {
		gl.VertexAttribPointerWithOffset(uint32(attribs.Tangent), 3, gl.FLOAT, false, stride, 8*4)
		gl.EnableVertexAttribArray(uint32(attribs.Tangent))
	}
	if attribs.Bitangent >= 0 {
		gl.VertexAttribPointerWithOffset(uint32(attribs.Bitangent), 3, gl.FLOAT, false, stride, 11*4)
		gl.EnableVertexAttribArray(uint32(attribs.Bitangent))
	}

	gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)

	if attribs.Tangent >= 0 {
		gl.DisableVertexAttribArray(uint32(attribs.Tangent))
	}
	if attribs.Bitangent >= 0 {
		gl.DisableVertexAttribArray(uint32(attribs.Bitangent))
	}

	gl.BindVertexArray(0)
}

// Destroy releases all OpenGL resources.
func (m *Mesh) Destroy() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}

type cubeFace struct {
	normal    [3]float32
	tangent   [3]float32
	bitangent [3]float32
}

// buildCube derives the 24 vertices of the cube from its six face
// frames: each corner sits at normal + u*tangent + v*bitangent with
// u,v in {-1,1}, and the texcoords follow u and v.
func buildCube() ([]meshVertex, []uint32) {
	faces := []cubeFace{
		{normal: [3]float32{0, 0, 1}, tangent: [3]float32{1, 0, 0}, bitangent: [3]float32{0, 1, 0}},
		{normal: [3]float32{0, 0, -1}, tangent: [3]float32{-1, 0, 0}, bitangent: [3]float32{0, 1, 0}},
		{normal: [3]float32{1, 0, 0}, tangent: [3]float32{0, 0, -1}, bitangent: [3]float32{0, 1, 0}},
		{normal: [3]float32{-1, 0, 0}, tangent: [3]float32{0, 0, 1}, bitangent: [3]float32{0, 1, 0}},
		{normal: [3]float32{0, 1, 0}, tangent: [3]float32{1, 0, 0}, bitangent: [3]float32{0, 0, -1}},
		{normal: [3]float32{0, -1, 0}, tangent: [3]float32{1, 0, 0}, bitangent: [3]float32{0, 0, 1}},
	}

	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	vertices := make([]meshVertex, 0, len(faces)*4)
	indices := make([]uint32, 0, len(faces)*6)

	for f, face := range faces {
		for _, c := range corners {
			u, v := c[0], c[1]
			var pos [3]float32
			for i := 0; i < 3; i++ {
				pos[i] = face.normal[i] + u*face.tangent[i] + v*face.bitangent[i]
			}
			vertices = append(vertices, meshVertex{
				Position:  pos,
				Normal:    face.normal,
				TexCoord:  [2]float32{(u + 1) / 2, (v + 1) / 2},
				Tangent:   face.tangent,
				Bitangent: face.bitangent,
			})
		}
		base := uint32(f * 4)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return vertices, indices
}
