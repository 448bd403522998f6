// Package shader implements the GLSL program lifecycle: per-stage source
// management, compile/link/validate with an aggregated build log, and the
// active-uniform state that survives recompiles.
package shader

import (
	"strconv"
	"strings"

	"github.com/mkram/shaderstudio/internal/engine/driver"
)

// Uniform holds one active uniform variable of a linked program together with
// its current value. The payload is sized for the largest supported type, a
// 4x4 float matrix stored in column-major order; smaller types use a prefix
// of it. Interpretation of the payload follows the GL type: accessing it
// through an accessor of the wrong base type is a caller contract violation.
type Uniform struct {
	name     string
	typ      driver.GLType
	location int32

	floats [16]float32
	ints   [4]int32
}

// NewUniform creates a uniform with default data for its type: zero for bool
// and int types, identity for matrices, and the fixed 0.1/0.2/0.3/0.4 default
// for float scalars and vectors so fresh float uniforms are visibly nonzero.
func NewUniform(name string, typ driver.GLType, location int32) Uniform {
	u := Uniform{name: name, typ: typ, location: location}

	switch typ {
	case driver.TypeFloat, driver.TypeFloatVec2, driver.TypeFloatVec3, driver.TypeFloatVec4:
		u.floats[0] = 0.1
		u.floats[1] = 0.2
		u.floats[2] = 0.3
		u.floats[3] = 0.4
	case driver.TypeFloatMat2:
		u.floats[0], u.floats[3] = 1, 1
	case driver.TypeFloatMat3:
		u.floats[0], u.floats[4], u.floats[8] = 1, 1, 1
	case driver.TypeFloatMat4:
		u.floats[0], u.floats[5], u.floats[10], u.floats[15] = 1, 1, 1, 1
	}

	return u
}

// invalidUniform is the defensive return value for out-of-range lookups. Its
// location of -1 makes any apply a no-op.
func invalidUniform() Uniform {
	return Uniform{location: -1}
}

// withLocation copies the uniform with a new driver-assigned location. Used
// by reconciliation to carry user data onto a freshly linked program.
func (u Uniform) withLocation(location int32) Uniform {
	u.location = location
	return u
}

// Name returns the uniform's name as reported by the driver.
func (u Uniform) Name() string { return u.name }

// Type returns the uniform's GL type.
func (u Uniform) Type() driver.GLType { return u.typ }

// Location returns the driver binding slot, -1 when the uniform cannot be set.
func (u Uniform) Location() int32 { return u.location }

// BaseType is the scalar type underlying a uniform.
type BaseType int

const (
	BaseBad BaseType = iota
	BaseBool
	BaseInt
	BaseFloat
)

// Base extracts the scalar base type out of the uniform's GL type. Sampler
// and unknown types report BaseBad.
func (u Uniform) Base() BaseType {
	switch u.typ {
	case driver.TypeBool, driver.TypeBoolVec2, driver.TypeBoolVec3, driver.TypeBoolVec4:
		return BaseBool
	case driver.TypeInt, driver.TypeIntVec2, driver.TypeIntVec3, driver.TypeIntVec4:
		return BaseInt
	case driver.TypeFloat, driver.TypeFloatVec2, driver.TypeFloatVec3, driver.TypeFloatVec4,
		driver.TypeFloatMat2, driver.TypeFloatMat3, driver.TypeFloatMat4:
		return BaseFloat
	}
	return BaseBad
}

// Bool returns a component as a boolean. The uniform is treated as a vector
// of up to four components; the component index must be in [0,3].
func (u Uniform) Bool(component int) bool {
	return u.ints[component] != 0
}

// SetBool stores a boolean into a component.
func (u *Uniform) SetBool(component int, value bool) {
	if value {
		u.ints[component] = 1
	} else {
		u.ints[component] = 0
	}
}

// Int returns a component as an integer.
func (u Uniform) Int(component int) int32 {
	return u.ints[component]
}

// SetInt stores an integer into a component.
func (u *Uniform) SetInt(component int, value int32) {
	u.ints[component] = value
}

// Float returns a component as a float.
func (u Uniform) Float(component int) float32 {
	return u.floats[component]
}

// SetFloat stores a float into a component.
func (u *Uniform) SetFloat(component int, value float32) {
	u.floats[component] = value
}

// IsMatrix reports whether the uniform is of a matrix type.
func (u Uniform) IsMatrix() bool {
	switch u.typ {
	case driver.TypeFloatMat2, driver.TypeFloatMat3, driver.TypeFloatMat4:
		return true
	}
	return false
}

// ColumnCount returns the number of matrix columns, 1 for non-matrix types.
func (u Uniform) ColumnCount() int {
	switch u.typ {
	case driver.TypeFloatMat2:
		return 2
	case driver.TypeFloatMat3:
		return 3
	case driver.TypeFloatMat4:
		return 4
	}
	return 1
}

// ComponentCount returns the vector component count of the uniform; matrices
// report the component count of one column. Unknown types report 0.
func (u Uniform) ComponentCount() int {
	switch u.typ {
	case driver.TypeBool, driver.TypeInt, driver.TypeFloat:
		return 1
	case driver.TypeBoolVec2, driver.TypeIntVec2, driver.TypeFloatVec2, driver.TypeFloatMat2:
		return 2
	case driver.TypeBoolVec3, driver.TypeIntVec3, driver.TypeFloatVec3, driver.TypeFloatMat3:
		return 3
	case driver.TypeBoolVec4, driver.TypeIntVec4, driver.TypeFloatVec4, driver.TypeFloatMat4:
		return 4
	case driver.TypeSampler1D, driver.TypeSampler2D, driver.TypeSampler3D,
		driver.TypeSamplerCube, driver.TypeSampler1DShadow, driver.TypeSampler2DShadow:
		return 1
	}
	return 0
}

// Column extracts one matrix column as a float vector uniform of matching
// dimensionality. The result of a non-matrix receiver or an out-of-range
// column is an invalid uniform.
func (u Uniform) Column(column int) Uniform {
	var vecType driver.GLType
	var components int

	switch u.typ {
	case driver.TypeFloatMat2:
		vecType, components = driver.TypeFloatVec2, 2
	case driver.TypeFloatMat3:
		vecType, components = driver.TypeFloatVec3, 3
	case driver.TypeFloatMat4:
		vecType, components = driver.TypeFloatVec4, 4
	default:
		return invalidUniform()
	}
	if column < 0 || column >= components {
		return invalidUniform()
	}

	col := NewUniform(u.name+"["+strconv.Itoa(column)+"]", vecType, -1)
	for i := 0; i < components; i++ {
		col.floats[i] = u.floats[components*column+i]
	}
	return col
}

// SetColumn replaces one matrix column with the given vector's data. The
// source must share the receiver's base type; out-of-range columns and
// non-matrix receivers are ignored.
func (u *Uniform) SetColumn(column int, v Uniform) {
	if !u.IsMatrix() || v.Base() != u.Base() {
		return
	}
	components := u.ComponentCount()
	if column < 0 || column >= components {
		return
	}
	for i := 0; i < components; i++ {
		u.floats[components*column+i] = v.floats[i]
	}
}

// IsTimeVariable reports whether this is the clock-driven uniform: a float
// scalar whose name equals "time" ignoring case. It is updated by the
// program on every bind and excluded from the editable uniform view.
func (u Uniform) IsTimeVariable() bool {
	return u.typ == driver.TypeFloat && strings.EqualFold(u.name, "time")
}

// apply uploads the current data through the driver. A no-op for uniforms
// the driver reported as not settable.
func (u *Uniform) apply(d driver.Driver) {
	if u.location == -1 {
		return
	}
	d.ApplyUniform(u.location, u.typ, &u.floats, &u.ints)
}
