// Package editor manages the per-stage shader source documents: text,
// backing files, modified flags and the geometry stage attach toggle.
package editor

import (
	"errors"
	"os"

	"github.com/mkram/shaderstudio/internal/engine/driver"
)

// ErrNoPath is returned by Save when a document has never been saved
// or loaded and therefore has no backing file.
var ErrNoPath = errors.New("document has no file path")

type document struct {
	source   string
	path     string
	modified bool
}

// Editor holds one source document per shader stage.
type Editor struct {
	docs [driver.StageCount]document

	// the geometry stage participates in the build only when attached
	geometryAttached bool
}

// New creates an editor seeded with the default shader sources. The
// geometry stage starts detached; its default text is present for when
// the user turns it on.
func New() *Editor {
	e := &Editor{}
	for kind := driver.StageKind(0); kind < driver.StageCount; kind++ {
		e.docs[kind].source = DefaultSource(kind)
	}
	return e
}

// Source returns the document text of one stage.
func (e *Editor) Source(kind driver.StageKind) string {
	return e.docs[kind].source
}

// SetSource replaces the document text of one stage and marks it modified.
func (e *Editor) SetSource(kind driver.StageKind, source string) {
	if e.docs[kind].source == source {
		return
	}
	e.docs[kind].source = source
	e.docs[kind].modified = true
}

// EffectiveSource returns the text a build should use: the document
// text, or empty for a detached geometry stage so it is left out of
// the program.
func (e *Editor) EffectiveSource(kind driver.StageKind) string {
	if kind == driver.StageGeometry && !e.geometryAttached {
		return ""
	}
	return e.docs[kind].source
}

// Path returns the backing file of one stage, empty if none.
func (e *Editor) Path(kind driver.StageKind) string {
	return e.docs[kind].path
}

// Modified reports whether a stage has unsaved changes.
func (e *Editor) Modified(kind driver.StageKind) bool {
	return e.docs[kind].modified
}

// AnyModified reports whether any stage has unsaved changes.
func (e *Editor) AnyModified() bool {
	for _, d := range e.docs {
		if d.modified {
			return true
		}
	}
	return false
}

// GeometryAttached reports whether the geometry stage participates in builds.
func (e *Editor) GeometryAttached() bool { return e.geometryAttached }

// SetGeometryAttached toggles geometry stage participation.
func (e *Editor) SetGeometryAttached(attached bool) {
	e.geometryAttached = attached
}

// LoadFile replaces a stage document with the contents of a file.
// Loading into the geometry stage attaches it.
func (e *Editor) LoadFile(kind driver.StageKind, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	e.docs[kind] = document{
		source: string(data),
		path:   path,
	}
	if kind == driver.StageGeometry {
		e.geometryAttached = true
	}
	return nil
}

// SaveFile writes a stage document to a file and makes that file the
// document's backing path.
func (e *Editor) SaveFile(kind driver.StageKind, path string) error {
	if err := os.WriteFile(path, []byte(e.docs[kind].source), 0644); err != nil {
		return err
	}
	e.docs[kind].path = path
	e.docs[kind].modified = false
	return nil
}

// Save writes a stage document to its backing file. Documents without
// one return ErrNoPath; the caller should fall back to a save-as flow.
func (e *Editor) Save(kind driver.StageKind) error {
	if e.docs[kind].path == "" {
		return ErrNoPath
	}
	return e.SaveFile(kind, e.docs[kind].path)
}

// ResetToDefault restores a stage document to its built-in source and
// detaches it from any backing file.
func (e *Editor) ResetToDefault(kind driver.StageKind) {
	e.docs[kind] = document{source: DefaultSource(kind)}
}

// FileExtensions returns the dialog filter extensions for a stage.
func FileExtensions(kind driver.StageKind) []string {
	switch kind {
	case driver.StageVertex:
		return []string{"vert", "vs", "glsl"}
	case driver.StageGeometry:
		return []string{"geom", "gs", "glsl"}
	case driver.StageFragment:
		return []string{"frag", "fs", "glsl"}
	}
	return []string{"glsl"}
}
