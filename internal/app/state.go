package app

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/mkram/shaderstudio/internal/engine/driver"
	"github.com/mkram/shaderstudio/internal/engine/shader"
)

var geometryInputOptions = []driver.Primitive{
	driver.Points,
	driver.Lines,
	driver.LinesAdjacency,
	driver.Triangles,
	driver.TrianglesAdjacency,
}

var geometryOutputOptions = []driver.Primitive{
	driver.Points,
	driver.LineStrip,
	driver.TriangleStrip,
}

// renderProgramState draws the geometry link parameters and the
// editable uniforms of the linked program.
func (app *App) renderProgramState() {
	if app.prog.IsStageAvailable(driver.StageGeometry) {
		app.renderGeometryParams()
		imgui.Separator()
	}

	imgui.Text("Uniforms")

	if !app.prog.IsLinked() {
		imgui.TextDisabled("No linked program")
		return
	}

	editable := app.prog.EditableUniforms()
	if len(editable) == 0 {
		imgui.TextDisabled("The program has no editable uniforms")
		return
	}

	for _, idx := range editable {
		app.renderUniform(idx)
	}
}

// renderGeometryParams edits the parameters used at the next link;
// changing them has no effect on the running program.
func (app *App) renderGeometryParams() {
	imgui.Text("Geometry Stage (next link)")

	params := app.prog.Geometry()

	if imgui.BeginCombo("Input", params.InputType().String()) {
		for _, prim := range geometryInputOptions {
			if imgui.SelectableBoolV(prim.String(), prim == params.InputType(), 0, imgui.NewVec2(0, 0)) {
				app.prog.SetGeometryInputType(prim)
			}
		}
		imgui.EndCombo()
	}

	if imgui.BeginCombo("Output", params.OutputType().String()) {
		for _, prim := range geometryOutputOptions {
			if imgui.SelectableBoolV(prim.String(), prim == params.OutputType(), 0, imgui.NewVec2(0, 0)) {
				app.prog.SetGeometryOutputType(prim)
			}
		}
		imgui.EndCombo()
	}

	maxVertices := params.MaxOutputVertices()
	if imgui.DragIntV("Max vertices", &maxVertices, 1, 1, 1024, "%d", 0) {
		app.prog.SetGeometryMaxOutputVertices(maxVertices)
	}
}

// renderUniform draws the value editor matching one uniform's type.
func (app *App) renderUniform(idx int) {
	u := app.prog.Uniform(idx)

	imgui.PushIDStr(u.Name())
	defer imgui.PopID()

	label := fmt.Sprintf("%s  %s", u.Name(), u.Type())

	switch {
	case u.IsMatrix():
		app.renderMatrixUniform(idx, u, label)
	case u.Base() == shader.BaseFloat:
		app.renderFloatUniform(idx, u, label)
	case u.Base() == shader.BaseBool:
		app.renderBoolUniform(idx, u, label)
	default:
		// int vectors and samplers both edit as integers
		app.renderIntUniform(idx, u, label)
	}
}

func (app *App) renderMatrixUniform(idx int, u shader.Uniform, label string) {
	imgui.Text(label)

	for col := 0; col < u.ColumnCount(); col++ {
		colU := u.Column(col)
		n := colU.ComponentCount()

		var vals [4]float32
		for i := 0; i < n; i++ {
			vals[i] = colU.Float(i)
		}

		changed := false
		colLabel := fmt.Sprintf("##col%d", col)
		switch n {
		case 2:
			v := [2]float32{vals[0], vals[1]}
			if imgui.DragFloat2V(colLabel, &v, 0.01, 0, 0, "%.3f", 0) {
				vals[0], vals[1] = v[0], v[1]
				changed = true
			}
		case 3:
			v := [3]float32{vals[0], vals[1], vals[2]}
			if imgui.DragFloat3V(colLabel, &v, 0.01, 0, 0, "%.3f", 0) {
				vals[0], vals[1], vals[2] = v[0], v[1], v[2]
				changed = true
			}
		case 4:
			if imgui.DragFloat4V(colLabel, &vals, 0.01, 0, 0, "%.3f", 0) {
				changed = true
			}
		}

		if changed {
			for i := 0; i < n; i++ {
				colU.SetFloat(i, vals[i])
			}
			u.SetColumn(col, colU)
			app.prog.SetUniform(idx, u)
		}
	}
}

func (app *App) renderFloatUniform(idx int, u shader.Uniform, label string) {
	n := u.ComponentCount()

	// color-named vectors get a color picker instead of drag fields
	isColor := strings.Contains(strings.ToLower(u.Name()), "color")

	changed := false
	switch {
	case n == 3 && isColor:
		v := [3]float32{u.Float(0), u.Float(1), u.Float(2)}
		if imgui.ColorEdit3(label, &v) {
			u.SetFloat(0, v[0])
			u.SetFloat(1, v[1])
			u.SetFloat(2, v[2])
			changed = true
		}
	case n == 4 && isColor:
		v := [4]float32{u.Float(0), u.Float(1), u.Float(2), u.Float(3)}
		if imgui.ColorEdit4(label, &v) {
			for i := 0; i < 4; i++ {
				u.SetFloat(i, v[i])
			}
			changed = true
		}
	case n == 1:
		v := u.Float(0)
		if imgui.DragFloatV(label, &v, 0.01, 0, 0, "%.3f", 0) {
			u.SetFloat(0, v)
			changed = true
		}
	case n == 2:
		v := [2]float32{u.Float(0), u.Float(1)}
		if imgui.DragFloat2V(label, &v, 0.01, 0, 0, "%.3f", 0) {
			u.SetFloat(0, v[0])
			u.SetFloat(1, v[1])
			changed = true
		}
	case n == 3:
		v := [3]float32{u.Float(0), u.Float(1), u.Float(2)}
		if imgui.DragFloat3V(label, &v, 0.01, 0, 0, "%.3f", 0) {
			for i := 0; i < 3; i++ {
				u.SetFloat(i, v[i])
			}
			changed = true
		}
	case n == 4:
		v := [4]float32{u.Float(0), u.Float(1), u.Float(2), u.Float(3)}
		if imgui.DragFloat4V(label, &v, 0.01, 0, 0, "%.3f", 0) {
			for i := 0; i < 4; i++ {
				u.SetFloat(i, v[i])
			}
			changed = true
		}
	}

	if changed {
		app.prog.SetUniform(idx, u)
	}
}

func (app *App) renderBoolUniform(idx int, u shader.Uniform, label string) {
	imgui.Text(label)

	changed := false
	for i := 0; i < u.ComponentCount(); i++ {
		if i > 0 {
			imgui.SameLine()
		}
		v := u.Bool(i)
		if imgui.Checkbox(fmt.Sprintf("##b%d", i), &v) {
			u.SetBool(i, v)
			changed = true
		}
	}

	if changed {
		app.prog.SetUniform(idx, u)
	}
}

func (app *App) renderIntUniform(idx int, u shader.Uniform, label string) {
	n := u.ComponentCount()
	if n == 0 {
		imgui.TextDisabled(label)
		return
	}

	changed := false
	switch n {
	case 1:
		v := u.Int(0)
		if imgui.DragIntV(label, &v, 1, 0, 0, "%d", 0) {
			u.SetInt(0, v)
			changed = true
		}
	case 2:
		v := [2]int32{u.Int(0), u.Int(1)}
		if imgui.DragInt2V(label, &v, 1, 0, 0, "%d", 0) {
			u.SetInt(0, v[0])
			u.SetInt(1, v[1])
			changed = true
		}
	case 3:
		v := [3]int32{u.Int(0), u.Int(1), u.Int(2)}
		if imgui.DragInt3V(label, &v, 1, 0, 0, "%d", 0) {
			for i := 0; i < 3; i++ {
				u.SetInt(i, v[i])
			}
			changed = true
		}
	case 4:
		v := [4]int32{u.Int(0), u.Int(1), u.Int(2), u.Int(3)}
		if imgui.DragInt4V(label, &v, 1, 0, 0, "%d", 0) {
			for i := 0; i < 4; i++ {
				u.SetInt(i, v[i])
			}
			changed = true
		}
	}

	if changed {
		app.prog.SetUniform(idx, u)
	}
}
