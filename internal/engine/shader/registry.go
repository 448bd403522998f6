package shader

import "github.com/mkram/shaderstudio/internal/engine/driver"

// Registry is the ordered set of active uniforms of one linked program. The
// order is the driver's active-uniform index order and is stable only for
// the lifetime of that program; the index is the handle UI code holds on to
// between rebuilds.
type Registry struct {
	entries []Uniform
}

// buildRegistry queries the driver for the program's active uniforms and
// creates default-valued entries for them. This is the only way entries come
// into existence.
func buildRegistry(d driver.Driver, program uint32) Registry {
	active := d.ActiveUniforms(program)
	entries := make([]Uniform, 0, len(active))
	for _, a := range active {
		entries = append(entries, NewUniform(a.Name, a.Type, a.Location))
	}
	return Registry{entries: entries}
}

// reconcile migrates values from a previous registry into this one. Every
// previous entry with an identical name (case-sensitive) and identical type
// in the new set has its data carried over while the new driver-assigned
// location is kept. This preserves the user's tuned values across
// edit-recompile cycles. Two uniforms swapping names and types in one edit
// defeat the heuristic and end up with each other's values; known
// limitation, inherited deliberately.
func (r *Registry) reconcile(prev Registry) {
	for _, old := range prev.entries {
		for j := range r.entries {
			if r.entries[j].name != old.name {
				continue
			}
			if r.entries[j].typ != old.typ {
				continue
			}
			r.entries[j] = old.withLocation(r.entries[j].location)
		}
	}
}

// Len returns the number of entries.
func (r Registry) Len() int { return len(r.entries) }

// At returns the entry at index. Out-of-range indices return an invalid
// uniform instead of panicking: UI code may hold stale indices transiently
// while a rebuild is in flight.
func (r Registry) At(index int) Uniform {
	if index < 0 || index >= len(r.entries) {
		return invalidUniform()
	}
	return r.entries[index]
}

// Set replaces the data of the entry at index. The call is silently ignored
// when the index is out of range or when the value's name, type or location
// differ from the stored entry: callers may update data, never a uniform's
// identity. Identity mismatches indicate stale editor state, not an error
// worth surfacing.
func (r *Registry) Set(index int, u Uniform) {
	if index < 0 || index >= len(r.entries) {
		return
	}
	cur := &r.entries[index]
	if cur.name != u.name || cur.typ != u.typ || cur.location != u.location {
		return
	}
	*cur = u
}

// Editable returns the indices of user-editable entries, excluding the
// clock-driven time variable.
func (r Registry) Editable() []int {
	idx := make([]int, 0, len(r.entries))
	for i := range r.entries {
		if r.entries[i].IsTimeVariable() {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

// applyAll uploads every entry through the driver. Called once per frame
// while the program is bound.
func (r *Registry) applyAll(d driver.Driver) {
	for i := range r.entries {
		r.entries[i].apply(d)
	}
}

// setTime overwrites the value of every time variable with the elapsed
// seconds since the last successful link.
func (r *Registry) setTime(seconds float32) {
	for i := range r.entries {
		if r.entries[i].IsTimeVariable() {
			r.entries[i].SetFloat(0, seconds)
		}
	}
}
