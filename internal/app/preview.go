package app

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// renderPreview draws the preview image and handles camera input.
// The scene is rendered to the offscreen target first, then shown as
// a texture; the deferred screenshot is captured right after the
// render so it holds exactly what is on screen.
func (app *App) renderPreview() {
	avail := imgui.ContentRegionAvail()
	controlsHeight := float32(30)
	displayW := avail.X
	displayH := avail.Y - controlsHeight
	if displayW < 1 {
		displayW = 1
	}
	if displayH < 1 {
		displayH = 1
	}

	app.preview.Resize(int32(displayW), int32(displayH))
	app.preview.Render(app.prog)

	if app.screenshotRequested {
		app.screenshotRequested = false
		app.captureScreenshot()
	}

	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(app.preview.ColorTexture()))
	imgui.ImageWithBgV(
		*texRef,
		imgui.NewVec2(displayW, displayH),
		imgui.NewVec2(0, 1), // UV flipped
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0.15, 0.15, 0.15, 1.0),
		imgui.NewVec4(1, 1, 1, 1),
	)

	// Camera input when hovering the image
	if imgui.IsItemHovered() {
		mousePos := imgui.MousePos()
		if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
			deltaX := mousePos.X - app.lastMousePos.X
			deltaY := mousePos.Y - app.lastMousePos.Y
			app.preview.Camera().HandleDrag(deltaX, deltaY)
		}
		app.lastMousePos = mousePos

		wheel := imgui.CurrentIO().MouseWheel()
		if wheel != 0 {
			app.preview.Camera().HandleZoom(wheel)
		}
	}

	if imgui.Button("Compile and Link") {
		app.compile()
	}
	imgui.SameLine()
	if imgui.Button("Screenshot") {
		app.screenshotRequested = true
	}
	imgui.SameLine()
	imgui.TextDisabled("(Drag to rotate, scroll to zoom)")
}
