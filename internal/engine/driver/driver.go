// Package driver defines the capability boundary between the shader core and
// the graphics API. The core talks to a Driver only; the OpenGL binding lives
// in the gl41 subpackage so that the core and its tests stay free of cgo.
package driver

import "strconv"

// StageKind identifies one shader compilation unit.
// The values are array indices, not GL enums.
type StageKind int

const (
	StageVertex StageKind = iota
	StageGeometry
	StageFragment

	StageCount
)

// String returns a human readable stage name, suitable for build logs.
func (k StageKind) String() string {
	switch k {
	case StageVertex:
		return "Vertex Shader"
	case StageGeometry:
		return "Geometry Shader"
	case StageFragment:
		return "Fragment Shader"
	}
	return "<bad shader type>"
}

// GLType is the type of a uniform variable as reported by the driver.
// The constants carry the numeric values of the corresponding GL enums so a
// GL-backed Driver can pass them through unchanged.
type GLType uint32

const (
	TypeFloat     GLType = 0x1406
	TypeFloatVec2 GLType = 0x8B50
	TypeFloatVec3 GLType = 0x8B51
	TypeFloatVec4 GLType = 0x8B52

	TypeInt     GLType = 0x1404
	TypeIntVec2 GLType = 0x8B53
	TypeIntVec3 GLType = 0x8B54
	TypeIntVec4 GLType = 0x8B55

	TypeBool     GLType = 0x8B56
	TypeBoolVec2 GLType = 0x8B57
	TypeBoolVec3 GLType = 0x8B58
	TypeBoolVec4 GLType = 0x8B59

	TypeFloatMat2 GLType = 0x8B5A
	TypeFloatMat3 GLType = 0x8B5B
	TypeFloatMat4 GLType = 0x8B5C

	TypeSampler1D       GLType = 0x8B5D
	TypeSampler2D       GLType = 0x8B5E
	TypeSampler3D       GLType = 0x8B5F
	TypeSamplerCube     GLType = 0x8B60
	TypeSampler1DShadow GLType = 0x8B61
	TypeSampler2DShadow GLType = 0x8B62
)

// String returns the GL symbol name for the type, or a placeholder with the
// raw value for types the editor does not know about.
func (t GLType) String() string {
	switch t {
	case TypeFloat:
		return "GL_FLOAT"
	case TypeFloatVec2:
		return "GL_FLOAT_VEC2"
	case TypeFloatVec3:
		return "GL_FLOAT_VEC3"
	case TypeFloatVec4:
		return "GL_FLOAT_VEC4"
	case TypeInt:
		return "GL_INT"
	case TypeIntVec2:
		return "GL_INT_VEC2"
	case TypeIntVec3:
		return "GL_INT_VEC3"
	case TypeIntVec4:
		return "GL_INT_VEC4"
	case TypeBool:
		return "GL_BOOL"
	case TypeBoolVec2:
		return "GL_BOOL_VEC2"
	case TypeBoolVec3:
		return "GL_BOOL_VEC3"
	case TypeBoolVec4:
		return "GL_BOOL_VEC4"
	case TypeFloatMat2:
		return "GL_FLOAT_MAT2"
	case TypeFloatMat3:
		return "GL_FLOAT_MAT3"
	case TypeFloatMat4:
		return "GL_FLOAT_MAT4"
	case TypeSampler1D:
		return "GL_SAMPLER_1D"
	case TypeSampler2D:
		return "GL_SAMPLER_2D"
	case TypeSampler3D:
		return "GL_SAMPLER_3D"
	case TypeSamplerCube:
		return "GL_SAMPLER_CUBE"
	case TypeSampler1DShadow:
		return "GL_SAMPLER_1D_SHADOW"
	case TypeSampler2DShadow:
		return "GL_SAMPLER_2D_SHADOW"
	}
	return "<unknown type " + strconv.FormatUint(uint64(t), 10) + ">"
}

// Primitive is a GL primitive topology used for geometry stage link
// parameters. Values are the GL enum values.
type Primitive uint32

const (
	Points             Primitive = 0x0000
	Lines              Primitive = 0x0001
	LineStrip          Primitive = 0x0003
	Triangles          Primitive = 0x0004
	TriangleStrip      Primitive = 0x0005
	LinesAdjacency     Primitive = 0x000A
	LineStripAdjacency Primitive = 0x000B
	TrianglesAdjacency Primitive = 0x000C
)

// String returns the GL symbol name of the primitive.
func (p Primitive) String() string {
	switch p {
	case Points:
		return "GL_POINTS"
	case Lines:
		return "GL_LINES"
	case LineStrip:
		return "GL_LINE_STRIP"
	case Triangles:
		return "GL_TRIANGLES"
	case TriangleStrip:
		return "GL_TRIANGLE_STRIP"
	case LinesAdjacency:
		return "GL_LINES_ADJACENCY"
	case LineStripAdjacency:
		return "GL_LINE_STRIP_ADJACENCY"
	case TrianglesAdjacency:
		return "GL_TRIANGLES_ADJACENCY"
	}
	return "<unknown primitive " + strconv.FormatUint(uint64(p), 10) + ">"
}

// ActiveUniform describes one uniform the driver reports as referenced by a
// linked program.
type ActiveUniform struct {
	Name     string
	Type     GLType
	Size     int32 // array size; 1 for non-arrays
	Location int32 // -1 when the uniform cannot be set
}

// Driver is the capability set the shader core consumes. All calls are
// synchronous and must be made from the thread owning the graphics context.
// Implementations are allowed to panic on fatal driver faults; the core
// converts such panics into build-log diagnostics.
type Driver interface {
	// GeometryStageSupported reports whether the host can link geometry
	// stages. Queried once at program creation and treated as fixed.
	GeometryStageSupported() bool

	// CompileStage compiles source for one stage. It returns the stage
	// handle (0 on creation failure), the compile info log and the compile
	// status. A failed compile still returns its log.
	CompileStage(kind StageKind, source string) (handle uint32, log string, ok bool)

	// DeleteStage releases a stage handle. Zero handles are ignored.
	DeleteStage(handle uint32)

	// CreateProgram creates an empty program object, 0 on failure.
	CreateProgram() uint32

	// AttachStage attaches a compiled stage to a program.
	AttachStage(program, stage uint32)

	// SetGeometryParams applies geometry stage link parameters. Must be
	// called before LinkProgram to take effect; a no-op on hosts without
	// geometry stage support.
	SetGeometryParams(program uint32, input, output Primitive, maxVertices int32)

	// LinkProgram links the attached stages, returning the link info log
	// and link status.
	LinkProgram(program uint32) (log string, ok bool)

	// ValidateProgram validates a linked program. Validation failure is
	// diagnostic only and does not make the program unusable.
	ValidateProgram(program uint32) (log string, ok bool)

	// DeleteProgram releases a program handle. Zero handles are ignored.
	DeleteProgram(program uint32)

	// UseProgram activates a program for rendering; 0 deactivates any
	// program.
	UseProgram(program uint32)

	// ActiveUniforms returns the active uniforms of a linked program in
	// driver index order.
	ActiveUniforms(program uint32) []ActiveUniform

	// AttribLocation returns the location of a named vertex attribute, or
	// -1 if the attribute is not active in the program.
	AttribLocation(program uint32, name string) int32

	// ApplyUniform uploads one uniform value to the bound program. The
	// payload interpretation follows typ: float types read floats, int,
	// bool and sampler types read ints. Locations of -1 must be ignored.
	ApplyUniform(location int32, typ GLType, floats *[16]float32, ints *[4]int32)
}
