package app

import (
	"fmt"
	"path/filepath"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/mkram/shaderstudio/internal/engine/driver"
)

// renderSources draws one tab per shader stage with the source text,
// file controls and, for the geometry stage, the attach toggle.
func (app *App) renderSources() {
	if !imgui.BeginTabBar("StageTabs") {
		return
	}

	for kind := driver.StageKind(0); kind < driver.StageCount; kind++ {
		label := kind.String()
		if app.ed.Modified(kind) {
			label += " *"
		}
		// stable tab identity independent of the modified marker
		label += "###stage" + fmt.Sprint(int(kind))

		if imgui.BeginTabItem(label) {
			app.renderStageTab(kind)
			imgui.EndTabItem()
		}
	}

	imgui.EndTabBar()
}

func (app *App) renderStageTab(kind driver.StageKind) {
	if kind == driver.StageGeometry {
		if !app.prog.IsStageAvailable(kind) {
			imgui.TextDisabled("Geometry shaders are not supported on this system")
			return
		}

		attached := app.ed.GeometryAttached()
		if imgui.Checkbox("Attach geometry stage", &attached) {
			app.ed.SetGeometryAttached(attached)
		}
		imgui.Separator()
	}

	if imgui.Button("Open...") {
		app.openFileDialog(kind)
	}
	imgui.SameLine()
	if imgui.Button("Save") {
		app.saveStage(kind)
	}
	imgui.SameLine()
	if imgui.Button("Save As...") {
		app.saveFileDialog(kind)
	}
	imgui.SameLine()
	if imgui.Button("Reset") {
		app.ed.ResetToDefault(kind)
	}

	if path := app.ed.Path(kind); path != "" {
		imgui.TextDisabled(filepath.Base(path))
	} else {
		imgui.TextDisabled("(unsaved)")
	}

	source := app.ed.Source(kind)
	avail := imgui.ContentRegionAvail()
	if imgui.InputTextMultilineV("##source"+fmt.Sprint(int(kind)), &source,
		imgui.NewVec2(avail.X, avail.Y), imgui.InputTextFlagsAllowTabInput, nil) {
		app.ed.SetSource(kind, source)
	}
}
