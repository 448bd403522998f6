package shader

import (
	"testing"

	"github.com/mkram/shaderstudio/internal/engine/driver"
)

func TestNewUniformFloatDefaults(t *testing.T) {
	types := []driver.GLType{
		driver.TypeFloat, driver.TypeFloatVec2, driver.TypeFloatVec3, driver.TypeFloatVec4,
	}
	want := []float32{0.1, 0.2, 0.3, 0.4}

	for _, typ := range types {
		u := NewUniform("u", typ, 0)
		for i, w := range want {
			if got := u.Float(i); got != w {
				t.Errorf("%s component %d: expected %f, got %f", typ, i, w, got)
			}
		}
	}
}

func TestNewUniformIntBoolDefaults(t *testing.T) {
	for _, typ := range []driver.GLType{
		driver.TypeInt, driver.TypeIntVec4, driver.TypeBool, driver.TypeBoolVec4,
		driver.TypeSampler2D,
	} {
		u := NewUniform("u", typ, 0)
		for i := 0; i < 4; i++ {
			if u.Int(i) != 0 {
				t.Errorf("%s component %d: expected 0, got %d", typ, i, u.Int(i))
			}
		}
	}
}

func TestNewUniformMatrixIdentity(t *testing.T) {
	tests := []struct {
		typ  driver.GLType
		cols int
	}{
		{driver.TypeFloatMat2, 2},
		{driver.TypeFloatMat3, 3},
		{driver.TypeFloatMat4, 4},
	}

	for _, tt := range tests {
		u := NewUniform("m", tt.typ, 0)
		for col := 0; col < tt.cols; col++ {
			for row := 0; row < tt.cols; row++ {
				got := u.Float(tt.cols*col + row)
				want := float32(0)
				if row == col {
					want = 1
				}
				if got != want {
					t.Errorf("%s [%d][%d]: expected %f, got %f", tt.typ, col, row, want, got)
				}
			}
		}
	}
}

func TestUniformAccessors(t *testing.T) {
	u := NewUniform("v", driver.TypeFloatVec4, 3)
	u.SetFloat(2, 7.5)
	if u.Float(2) != 7.5 {
		t.Errorf("expected 7.5, got %f", u.Float(2))
	}

	iu := NewUniform("iv", driver.TypeIntVec2, 1)
	iu.SetInt(1, -4)
	if iu.Int(1) != -4 {
		t.Errorf("expected -4, got %d", iu.Int(1))
	}

	bu := NewUniform("b", driver.TypeBoolVec2, 2)
	bu.SetBool(0, true)
	if !bu.Bool(0) {
		t.Error("expected true after SetBool")
	}
	if bu.Int(0) != 1 {
		t.Errorf("bool stores as int 1, got %d", bu.Int(0))
	}
	bu.SetBool(0, false)
	if bu.Bool(0) {
		t.Error("expected false after SetBool")
	}
}

func TestComponentCount(t *testing.T) {
	tests := []struct {
		typ  driver.GLType
		want int
	}{
		{driver.TypeFloat, 1},
		{driver.TypeFloatVec3, 3},
		{driver.TypeIntVec2, 2},
		{driver.TypeBoolVec4, 4},
		{driver.TypeFloatMat2, 2},
		{driver.TypeFloatMat4, 4},
		{driver.TypeSamplerCube, 1},
		{driver.GLType(0xDEAD), 0},
	}

	for _, tt := range tests {
		u := NewUniform("u", tt.typ, 0)
		if got := u.ComponentCount(); got != tt.want {
			t.Errorf("%s: expected %d components, got %d", tt.typ, tt.want, got)
		}
	}
}

func TestBaseType(t *testing.T) {
	tests := []struct {
		typ  driver.GLType
		want BaseType
	}{
		{driver.TypeBoolVec3, BaseBool},
		{driver.TypeIntVec4, BaseInt},
		{driver.TypeFloatMat3, BaseFloat},
		{driver.TypeSampler2D, BaseBad},
	}
	for _, tt := range tests {
		u := NewUniform("u", tt.typ, 0)
		if got := u.Base(); got != tt.want {
			t.Errorf("%s: expected base %d, got %d", tt.typ, tt.want, got)
		}
	}
}

func TestMatrixColumns(t *testing.T) {
	m := NewUniform("m", driver.TypeFloatMat3, 5)
	if !m.IsMatrix() {
		t.Fatal("mat3 should report IsMatrix")
	}
	if m.ColumnCount() != 3 {
		t.Fatalf("expected 3 columns, got %d", m.ColumnCount())
	}

	// column-major: elements 3..5 form column 1
	m.SetFloat(3, 10)
	m.SetFloat(4, 11)
	m.SetFloat(5, 12)

	col := m.Column(1)
	if col.Type() != driver.TypeFloatVec3 {
		t.Errorf("expected vec3 column, got %s", col.Type())
	}
	if col.Name() != "m[1]" {
		t.Errorf("expected column name m[1], got %q", col.Name())
	}
	for i, want := range []float32{10, 11, 12} {
		if col.Float(i) != want {
			t.Errorf("column component %d: expected %f, got %f", i, want, col.Float(i))
		}
	}

	// write the column back shifted
	col.SetFloat(0, 20)
	m.SetColumn(1, col)
	if m.Float(3) != 20 {
		t.Errorf("expected 20 after SetColumn, got %f", m.Float(3))
	}

	// invalid requests collapse to an unusable uniform
	if bad := m.Column(3); bad.Location() != -1 {
		t.Error("out-of-range column should be invalid")
	}
	v := NewUniform("v", driver.TypeFloatVec3, 0)
	if bad := v.Column(0); bad.Location() != -1 {
		t.Error("column of a non-matrix should be invalid")
	}

	// base type mismatch is ignored
	iv := NewUniform("iv", driver.TypeIntVec3, 0)
	before := m.Float(0)
	m.SetColumn(0, iv)
	if m.Float(0) != before {
		t.Error("SetColumn with mismatched base type should be a no-op")
	}
}

func TestIsTimeVariable(t *testing.T) {
	tests := []struct {
		name string
		typ  driver.GLType
		want bool
	}{
		{"time", driver.TypeFloat, true},
		{"TIME", driver.TypeFloat, true},
		{"Time", driver.TypeFloat, true},
		{"time", driver.TypeFloatVec2, false},
		{"times", driver.TypeFloat, false},
		{"time", driver.TypeInt, false},
	}
	for _, tt := range tests {
		u := NewUniform(tt.name, tt.typ, 0)
		if got := u.IsTimeVariable(); got != tt.want {
			t.Errorf("%s %s: expected %v, got %v", tt.name, tt.typ, tt.want, got)
		}
	}
}

func TestApplySkipsUnsetLocation(t *testing.T) {
	d := newFakeDriver()
	u := NewUniform("u", driver.TypeFloat, -1)
	u.apply(d)
	if len(d.applied) != 0 {
		t.Error("location -1 must not reach the driver")
	}
}
