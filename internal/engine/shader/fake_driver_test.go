package shader

import (
	"fmt"

	"github.com/mkram/shaderstudio/internal/engine/driver"
)

// fakeDriver is an in-memory driver for exercising the program state machine
// without a GL context. Failure behavior is scripted per test.
type fakeDriver struct {
	geometrySupported bool

	failCompile   map[driver.StageKind]bool
	failLink      bool
	failValidate  bool
	panicMessage  string // CompileStage panics with this when non-empty
	activeUniform []driver.ActiveUniform
	attribs       map[string]int32

	nextHandle   uint32
	compiled     []driver.StageKind
	attached     []uint32
	deleted      []uint32
	boundProgram uint32
	boundSet     bool
	applied      []appliedValue
	geomParams   []geomParams
}

type appliedValue struct {
	location int32
	typ      driver.GLType
	floats   [16]float32
	ints     [4]int32
}

type geomParams struct {
	input       driver.Primitive
	output      driver.Primitive
	maxVertices int32
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		geometrySupported: true,
		failCompile:       make(map[driver.StageKind]bool),
		attribs:           make(map[string]int32),
	}
}

func (d *fakeDriver) GeometryStageSupported() bool { return d.geometrySupported }

func (d *fakeDriver) CompileStage(kind driver.StageKind, source string) (uint32, string, bool) {
	if d.panicMessage != "" {
		panic(d.panicMessage)
	}
	d.compiled = append(d.compiled, kind)
	d.nextHandle++
	if d.failCompile[kind] {
		return d.nextHandle, fmt.Sprintf("0:1(1): syntax error in %s", kind), false
	}
	return d.nextHandle, "", true
}

func (d *fakeDriver) DeleteStage(handle uint32) {
	d.deleted = append(d.deleted, handle)
}

func (d *fakeDriver) CreateProgram() uint32 {
	d.nextHandle++
	return d.nextHandle
}

func (d *fakeDriver) AttachStage(program, stage uint32) {
	d.attached = append(d.attached, stage)
}

func (d *fakeDriver) SetGeometryParams(program uint32, input, output driver.Primitive, maxVertices int32) {
	d.geomParams = append(d.geomParams, geomParams{input, output, maxVertices})
}

func (d *fakeDriver) LinkProgram(program uint32) (string, bool) {
	if d.failLink {
		return "error: link failed", false
	}
	return "", true
}

func (d *fakeDriver) ValidateProgram(program uint32) (string, bool) {
	return "", !d.failValidate
}

func (d *fakeDriver) DeleteProgram(program uint32) {
	d.deleted = append(d.deleted, program)
}

func (d *fakeDriver) UseProgram(program uint32) {
	d.boundProgram = program
	d.boundSet = true
}

func (d *fakeDriver) ActiveUniforms(program uint32) []driver.ActiveUniform {
	return d.activeUniform
}

func (d *fakeDriver) AttribLocation(program uint32, name string) int32 {
	if loc, ok := d.attribs[name]; ok {
		return loc
	}
	return -1
}

func (d *fakeDriver) ApplyUniform(location int32, typ driver.GLType, floats *[16]float32, ints *[4]int32) {
	d.applied = append(d.applied, appliedValue{
		location: location,
		typ:      typ,
		floats:   *floats,
		ints:     *ints,
	})
}

// lastApplied returns the most recent upload for a location.
func (d *fakeDriver) lastApplied(location int32) (appliedValue, bool) {
	for i := len(d.applied) - 1; i >= 0; i-- {
		if d.applied[i].location == location {
			return d.applied[i], true
		}
	}
	return appliedValue{}, false
}
