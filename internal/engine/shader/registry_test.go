package shader

import (
	"testing"

	"github.com/mkram/shaderstudio/internal/engine/driver"
)

func registryOf(entries ...Uniform) Registry {
	return Registry{entries: entries}
}

func TestReconcileCarriesValues(t *testing.T) {
	old := NewUniform("color", driver.TypeFloatVec4, 2)
	old.SetFloat(0, 0.2)
	old.SetFloat(1, 0.4)
	old.SetFloat(2, 0.6)
	old.SetFloat(3, 1.0)
	prev := registryOf(old)

	// same uniform, new driver-assigned location
	fresh := registryOf(NewUniform("color", driver.TypeFloatVec4, 7))
	fresh.reconcile(prev)

	got := fresh.At(0)
	for i, want := range []float32{0.2, 0.4, 0.6, 1.0} {
		if got.Float(i) != want {
			t.Errorf("component %d: expected %f, got %f", i, want, got.Float(i))
		}
	}
	if got.Location() != 7 {
		t.Errorf("reconcile must keep the new location, got %d", got.Location())
	}
}

func TestReconcileTypeChangeResetsToDefaults(t *testing.T) {
	old := NewUniform("color", driver.TypeFloatVec4, 2)
	old.SetFloat(0, 0.9)
	prev := registryOf(old)

	fresh := registryOf(NewUniform("color", driver.TypeFloatVec3, 2))
	fresh.reconcile(prev)

	got := fresh.At(0)
	if got.Float(0) != 0.1 {
		t.Errorf("type change must keep fresh defaults, got %f", got.Float(0))
	}
}

func TestReconcileNameIsCaseSensitive(t *testing.T) {
	old := NewUniform("Color", driver.TypeFloatVec4, 2)
	old.SetFloat(0, 0.9)
	prev := registryOf(old)

	fresh := registryOf(NewUniform("color", driver.TypeFloatVec4, 2))
	fresh.reconcile(prev)

	if fresh.At(0).Float(0) != 0.1 {
		t.Error("names differing in case must not reconcile")
	}
}

func TestAtOutOfRange(t *testing.T) {
	r := registryOf(NewUniform("u", driver.TypeFloat, 0))

	for _, idx := range []int{-1, 1, 99} {
		got := r.At(idx)
		if got.Location() != -1 {
			t.Errorf("index %d: expected invalid uniform, got location %d", idx, got.Location())
		}
	}
}

func TestSetRejectsIdentityChanges(t *testing.T) {
	entry := NewUniform("u", driver.TypeFloatVec2, 3)
	r := registryOf(entry)

	tests := []struct {
		name  string
		value Uniform
	}{
		{"renamed", NewUniform("v", driver.TypeFloatVec2, 3)},
		{"retyped", NewUniform("u", driver.TypeFloatVec3, 3)},
		{"relocated", NewUniform("u", driver.TypeFloatVec2, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.value
			v.SetFloat(0, 42)
			r.Set(0, v)
			if r.At(0).Float(0) == 42 {
				t.Error("identity mismatch must leave the entry unchanged")
			}
		})
	}

	// out of range is also a no-op
	v := entry
	v.SetFloat(0, 42)
	r.Set(5, v)
	if r.At(0).Float(0) == 42 {
		t.Error("out-of-range set must be a no-op")
	}

	// a matching identity updates data
	r.Set(0, v)
	if r.At(0).Float(0) != 42 {
		t.Errorf("matching set must store data, got %f", r.At(0).Float(0))
	}
}

func TestEditableExcludesTime(t *testing.T) {
	r := registryOf(
		NewUniform("color", driver.TypeFloatVec4, 0),
		NewUniform("Time", driver.TypeFloat, 1),
		NewUniform("scale", driver.TypeFloat, 2),
	)

	idx := r.Editable()
	if len(idx) != 2 {
		t.Fatalf("expected 2 editable entries, got %d", len(idx))
	}
	if idx[0] != 0 || idx[1] != 2 {
		t.Errorf("expected indices [0 2], got %v", idx)
	}
}

func TestApplyAllUploadsEverySettableEntry(t *testing.T) {
	d := newFakeDriver()
	r := registryOf(
		NewUniform("a", driver.TypeFloat, 0),
		NewUniform("b", driver.TypeIntVec2, 1),
		NewUniform("c", driver.TypeFloatMat4, -1), // optimized out
	)

	r.applyAll(d)
	if len(d.applied) != 2 {
		t.Fatalf("expected 2 uploads, got %d", len(d.applied))
	}
	if d.applied[0].location != 0 || d.applied[1].location != 1 {
		t.Errorf("unexpected upload order: %+v", d.applied)
	}
}

func TestSetTime(t *testing.T) {
	r := registryOf(
		NewUniform("time", driver.TypeFloat, 0),
		NewUniform("other", driver.TypeFloat, 1),
	)
	r.setTime(4.5)

	if r.At(0).Float(0) != 4.5 {
		t.Errorf("time entry not updated, got %f", r.At(0).Float(0))
	}
	if r.At(1).Float(0) != 0.1 {
		t.Errorf("non-time entry must keep its value, got %f", r.At(1).Float(0))
	}
}
