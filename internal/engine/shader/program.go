package shader

import (
	"fmt"
	"strings"
	"time"

	"github.com/mkram/shaderstudio/internal/engine/driver"
)

// AttribLocations carries the driver-assigned slots of the named vertex
// attributes the test scene can feed. A location of -1 means the attribute
// is not active in the current program.
type AttribLocations struct {
	Tangent   int32
	Bitangent int32
}

func unboundAttribs() AttribLocations {
	return AttribLocations{Tangent: -1, Bitangent: -1}
}

// driverCrashLog is appended when a driver call panics during a build. The
// GL context may be poisoned at that point, so the user is told to restart.
const driverCrashLog = `*** CRITICAL ERROR ***

  The graphics driver failed while building the program!
  You should immediately restart the editor!

Check your sources for things like unresolved symbols.
Missing varying variables can cause trouble too.

Example:

varying vec3 notDefinedInVertexShader;
float foo(); // nowhere implemented

vec3 bar()
{
    return notDefinedInVertexShader * foo();
}

`

// Program owns the GLSL program lifecycle. It is a two-state machine,
// unlinked or linked; CompileAndLink is the only transition trigger. All
// methods must be called from the thread owning the graphics context; there
// is no internal locking by design.
type Program struct {
	drv driver.Driver

	// vertex and fragment stages are always available; the geometry stage
	// depends on host capability, queried once at construction.
	geometryAvailable bool

	sources [driver.StageCount]string
	stages  [driver.StageCount]uint32
	program uint32
	linked  bool

	log strings.Builder

	geometry GeometryParams
	uniforms Registry
	attribs  AttribLocations

	// zero point for the "time" uniform, reset on every successful link
	linkTime time.Time
}

// NewProgram creates an empty, unlinked program bound to a driver.
func NewProgram(d driver.Driver) *Program {
	return &Program{
		drv:               d,
		geometryAvailable: d.GeometryStageSupported(),
		geometry:          defaultGeometryParams(),
		attribs:           unboundAttribs(),
	}
}

// IsStageAvailable reports whether a stage kind can be attached on this host.
func (p *Program) IsStageAvailable(kind driver.StageKind) bool {
	switch kind {
	case driver.StageVertex, driver.StageFragment:
		return true
	case driver.StageGeometry:
		return p.geometryAvailable
	}
	return false
}

// SetSource replaces the source text of one stage. The running program is
// untouched; the text is observed by the next CompileAndLink. An empty
// string means the stage is not attached at the next link attempt.
func (p *Program) SetSource(kind driver.StageKind, source string) {
	if kind >= 0 && kind < driver.StageCount {
		p.sources[kind] = source
	}
}

// Source returns the stored source text of one stage.
func (p *Program) Source(kind driver.StageKind) string {
	if kind >= 0 && kind < driver.StageCount {
		return p.sources[kind]
	}
	return ""
}

// IsLinked reports whether a usable program exists.
func (p *Program) IsLinked() bool { return p.linked }

// BuildLog returns the aggregated log of the most recent build attempt,
// formatted for display.
func (p *Program) BuildLog() string { return p.log.String() }

// Geometry returns the current geometry stage link parameters.
func (p *Program) Geometry() GeometryParams { return p.geometry }

// SetGeometryInputType sets the geometry input topology for the next link.
func (p *Program) SetGeometryInputType(prim driver.Primitive) {
	p.geometry.SetInputType(prim)
}

// SetGeometryOutputType sets the geometry output topology for the next link.
func (p *Program) SetGeometryOutputType(prim driver.Primitive) {
	p.geometry.SetOutputType(prim)
}

// SetGeometryMaxOutputVertices sets the emitted vertex limit for the next link.
func (p *Program) SetGeometryMaxOutputVertices(n int32) {
	p.geometry.SetMaxOutputVertices(n)
}

// CompileAndLink tears down any previous build and compiles, links and
// validates the current sources. On success the active uniform set is
// rebuilt and reconciled with the previous one and the time clock restarts.
// On failure the program stays unlinked, the previous uniform values are
// retained, and the log describes every attempted stage. A panicking driver
// is absorbed into the log; the process never dies here.
func (p *Program) CompileAndLink() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Reset()
			p.log.WriteString(driverCrashLog)
			p.log.WriteString(fmt.Sprintf("driver fault: %v\n", r))
			ok = false
		}
	}()
	return p.compileAndLink()
}

func (p *Program) compileAndLink() bool {
	// no partial state survives from the previous build
	p.DeactivateProgram()
	p.log.Reset()

	p.program = p.drv.CreateProgram()
	if p.program == 0 {
		p.log.WriteString("ERROR: failed to create a program object\n")
		return false
	}

	// fixed stage order keeps build logs reproducible; a failing stage does
	// not stop the others from being attempted, so the log is complete
	total := true
	for kind := driver.StageKind(0); kind < driver.StageCount; kind++ {
		total = p.compileAndAttach(kind) && total
	}

	if total {
		total = p.linkAndValidate()
	}

	if total {
		fresh := buildRegistry(p.drv, p.program)
		fresh.reconcile(p.uniforms)
		p.uniforms = fresh
		p.linkTime = time.Now()
	}

	return total
}

// compileAndAttach compiles one stage and attaches it on success. Stages
// that are unavailable on this host or have no source are skipped and do
// not fail the build.
func (p *Program) compileAndAttach(kind driver.StageKind) bool {
	if !p.IsStageAvailable(kind) {
		return true
	}
	if p.sources[kind] == "" {
		return true
	}

	fmt.Fprintf(&p.log, "Compiling %s\n", kind)

	handle, compileLog, ok := p.drv.CompileStage(kind, p.sources[kind])
	p.stages[kind] = handle
	if handle == 0 {
		fmt.Fprintf(&p.log, "ERROR: failed to create a shader object for %s\n", kind)
		return false
	}

	p.log.WriteString(compileLog)
	p.log.WriteString("\n")

	if !ok {
		return false
	}
	p.drv.AttachStage(p.program, handle)
	return true
}

func (p *Program) linkAndValidate() bool {
	p.log.WriteString("Linking...\n")

	// geometry link parameters must be in place before the link
	if p.geometryAvailable {
		p.drv.SetGeometryParams(p.program,
			p.geometry.InputType(), p.geometry.OutputType(), p.geometry.MaxOutputVertices())
	}

	linkLog, linked := p.drv.LinkProgram(p.program)
	p.log.WriteString(linkLog)
	p.log.WriteString("\n\n")
	p.linked = linked

	// validation outcome is diagnostic only and never blocks a link
	validateLog, valid := p.drv.ValidateProgram(p.program)
	if valid {
		p.log.WriteString("Validation: succeeded\n")
	} else {
		p.log.WriteString("Validation: failed\n")
	}
	p.log.WriteString(validateLog)
	p.log.WriteString("\n")

	if !p.linked {
		return false
	}

	// attribute locations move only at link time, query them once
	p.attribs = AttribLocations{
		Tangent:   p.drv.AttribLocation(p.program, "attrTangent"),
		Bitangent: p.drv.AttribLocation(p.program, "attrBitangent"),
	}

	p.logActiveUniforms()
	p.logAttribLocations()

	return true
}

// DeactivateProgram destroys the compiled and linked driver objects and
// resets the attribute locations, forcing the unlinked state. Stored source
// text is kept. Safe to call repeatedly and from any state.
func (p *Program) DeactivateProgram() {
	p.linked = false
	p.attribs = unboundAttribs()

	p.drv.UseProgram(0)

	if p.program != 0 {
		p.drv.DeleteProgram(p.program)
		p.program = 0
	}
	for i := range p.stages {
		if p.stages[i] != 0 {
			p.drv.DeleteStage(p.stages[i])
			p.stages[i] = 0
		}
	}
}

// BindState activates the program and pushes the full uniform state,
// updating the time variable first. It returns the attribute locations
// cached at link time. When no linked program exists the driver falls back
// to its fixed pipeline and every attribute location reads -1.
func (p *Program) BindState() (AttribLocations, bool) {
	if p.program != 0 && p.linked {
		p.drv.UseProgram(p.program)
		p.uniforms.setTime(float32(time.Since(p.linkTime).Seconds()))
		p.uniforms.applyAll(p.drv)
		return p.attribs, true
	}

	p.drv.UseProgram(0)
	return unboundAttribs(), false
}

// ActiveUniformCount returns the number of active uniforms, 0 while unlinked.
func (p *Program) ActiveUniformCount() int {
	if !p.linked {
		return 0
	}
	return p.uniforms.Len()
}

// Uniform returns the active uniform at index. Unlinked programs and
// out-of-range indices yield an invalid uniform.
func (p *Program) Uniform(index int) Uniform {
	if !p.linked {
		return invalidUniform()
	}
	return p.uniforms.At(index)
}

// SetUniform updates the data of the active uniform at index. Identity
// mismatches and out-of-range indices are silently ignored.
func (p *Program) SetUniform(index int, u Uniform) {
	if !p.linked {
		return
	}
	p.uniforms.Set(index, u)
}

// UniformIndex returns the registry index of a named uniform, or -1 when no
// such uniform is active.
func (p *Program) UniformIndex(name string) int {
	if !p.linked {
		return -1
	}
	for i := 0; i < p.uniforms.Len(); i++ {
		if p.uniforms.At(i).Name() == name {
			return i
		}
	}
	return -1
}

// EditableUniforms returns the registry indices the uniform editor should
// show, excluding the clock-driven time variable.
func (p *Program) EditableUniforms() []int {
	if !p.linked {
		return nil
	}
	return p.uniforms.Editable()
}

func (p *Program) logActiveUniforms() {
	p.log.WriteString("\n-----\n\n")
	p.log.WriteString("Active Uniforms:  <index:  name @ location,  type>\n\n")

	for i, a := range p.drv.ActiveUniforms(p.program) {
		fmt.Fprintf(&p.log, "%d:  %s @ %d,  %s", i, a.Name, a.Location, a.Type)
		if a.Size > 1 {
			fmt.Fprintf(&p.log, " [ %d ]", a.Size)
		}
		p.log.WriteString("\n")
	}
	p.log.WriteString("\n")
}

func (p *Program) logAttribLocations() {
	p.log.WriteString("\n-----\n\n")
	p.log.WriteString("Custom Attributes:  <name @ location>\n\n")
	fmt.Fprintf(&p.log, "attrTangent @ %d\n", p.attribs.Tangent)
	fmt.Fprintf(&p.log, "attrBitangent @ %d\n", p.attribs.Bitangent)
	p.log.WriteString("\n")
}
