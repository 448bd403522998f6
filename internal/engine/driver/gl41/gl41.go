// Package gl41 implements the driver capability boundary on top of an
// OpenGL 4.1 core context. A valid context must be current on the calling
// thread before New is called; gl.Init is the application's job.
package gl41

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/mkram/shaderstudio/internal/engine/driver"
)

// EXT_geometry_shader4 program parameter names. Core contexts moved these
// into shader layout qualifiers, so they are only issued when the extension
// is advertised.
const (
	glGeometryVerticesOut uint32 = 0x8DDA
	glGeometryInputType   uint32 = 0x8DDB
	glGeometryOutputType  uint32 = 0x8DDC
)

// Driver talks to the real GL context.
type Driver struct {
	geometrySupported bool
	extGeometryParams bool
}

// New creates a driver bound to the current GL context and probes the
// geometry stage capability once.
func New() *Driver {
	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)

	d := &Driver{
		// geometry stages are core since GL 3.2
		geometrySupported: major > 3 || (major == 3 && minor >= 2),
		extGeometryParams: hasExtension("GL_EXT_geometry_shader4") ||
			hasExtension("GL_ARB_geometry_shader4"),
	}
	return d
}

func hasExtension(name string) bool {
	var n int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &n)
	for i := int32(0); i < n; i++ {
		if gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i))) == name {
			return true
		}
	}
	return false
}

// GeometryStageSupported reports whether geometry shaders can be linked.
func (d *Driver) GeometryStageSupported() bool {
	return d.geometrySupported
}

func glStageType(kind driver.StageKind) uint32 {
	switch kind {
	case driver.StageVertex:
		return gl.VERTEX_SHADER
	case driver.StageGeometry:
		return gl.GEOMETRY_SHADER
	case driver.StageFragment:
		return gl.FRAGMENT_SHADER
	}
	return 0
}

// CompileStage compiles one stage and returns the handle, info log and
// compile status. The caller owns the handle even on compile failure so a
// full teardown stays in one place.
func (d *Driver) CompileStage(kind driver.StageKind, source string) (uint32, string, bool) {
	handle := gl.CreateShader(glStageType(kind))
	if handle == 0 {
		return 0, "", false
	}

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	return handle, shaderInfoLog(handle), status != gl.FALSE
}

// DeleteStage releases a shader object.
func (d *Driver) DeleteStage(handle uint32) {
	if handle != 0 {
		gl.DeleteShader(handle)
	}
}

// CreateProgram creates an empty program object.
func (d *Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

// AttachStage attaches a compiled shader to a program.
func (d *Driver) AttachStage(program, stage uint32) {
	gl.AttachShader(program, stage)
}

// SetGeometryParams applies the EXT-style geometry link parameters when the
// host advertises them; on pure core contexts the topology comes from the
// shader's own layout qualifiers and this is a no-op.
func (d *Driver) SetGeometryParams(program uint32, input, output driver.Primitive, maxVertices int32) {
	if !d.extGeometryParams {
		return
	}
	gl.ProgramParameteri(program, glGeometryVerticesOut, maxVertices)
	gl.ProgramParameteri(program, glGeometryInputType, int32(input))
	gl.ProgramParameteri(program, glGeometryOutputType, int32(output))
}

// LinkProgram links the attached stages.
func (d *Driver) LinkProgram(program uint32) (string, bool) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return programInfoLog(program), status != gl.FALSE
}

// ValidateProgram validates a linked program against the current GL state.
func (d *Driver) ValidateProgram(program uint32) (string, bool) {
	gl.ValidateProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.VALIDATE_STATUS, &status)
	return programInfoLog(program), status != gl.FALSE
}

// DeleteProgram releases a program object.
func (d *Driver) DeleteProgram(program uint32) {
	if program != 0 {
		gl.DeleteProgram(program)
	}
}

// UseProgram activates a program; 0 restores the default pipeline.
func (d *Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// ActiveUniforms queries the active uniforms of a linked program in driver
// index order.
func (d *Driver) ActiveUniforms(program uint32) []driver.ActiveUniform {
	var count int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORMS, &count)

	out := make([]driver.ActiveUniform, 0, count)
	for i := int32(0); i < count; i++ {
		var buf [256]byte
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(program, uint32(i), int32(len(buf)-1), &length, &size, &xtype, &buf[0])

		name := string(buf[:length])
		location := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
		out = append(out, driver.ActiveUniform{
			Name:     name,
			Type:     driver.GLType(xtype),
			Size:     size,
			Location: location,
		})
	}
	return out
}

// AttribLocation returns the location of a named vertex attribute, -1 when
// the attribute is not active.
func (d *Driver) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

// ApplyUniform uploads one uniform value using the typed upload call for its
// GL type. Unknown types and unset locations are ignored.
func (d *Driver) ApplyUniform(location int32, typ driver.GLType, floats *[16]float32, ints *[4]int32) {
	if location == -1 {
		return
	}

	switch typ {
	case driver.TypeFloat:
		gl.Uniform1fv(location, 1, &floats[0])
	case driver.TypeFloatVec2:
		gl.Uniform2fv(location, 1, &floats[0])
	case driver.TypeFloatVec3:
		gl.Uniform3fv(location, 1, &floats[0])
	case driver.TypeFloatVec4:
		gl.Uniform4fv(location, 1, &floats[0])

	case driver.TypeFloatMat2:
		gl.UniformMatrix2fv(location, 1, false, &floats[0])
	case driver.TypeFloatMat3:
		gl.UniformMatrix3fv(location, 1, false, &floats[0])
	case driver.TypeFloatMat4:
		gl.UniformMatrix4fv(location, 1, false, &floats[0])

	case driver.TypeInt, driver.TypeBool,
		driver.TypeSampler1D, driver.TypeSampler2D, driver.TypeSampler3D,
		driver.TypeSamplerCube, driver.TypeSampler1DShadow, driver.TypeSampler2DShadow:
		gl.Uniform1iv(location, 1, &ints[0])
	case driver.TypeIntVec2, driver.TypeBoolVec2:
		gl.Uniform2iv(location, 1, &ints[0])
	case driver.TypeIntVec3, driver.TypeBoolVec3:
		gl.Uniform3iv(location, 1, &ints[0])
	case driver.TypeIntVec4, driver.TypeBoolVec4:
		gl.Uniform4iv(location, 1, &ints[0])
	}
}

func shaderInfoLog(handle uint32) string {
	var logLength int32
	gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}
