// Package app is the shader editor application shell: window, UI
// layout and the glue between the editor documents, the program under
// edit and the preview renderer.
package app

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/mkram/shaderstudio/internal/config"
	"github.com/mkram/shaderstudio/internal/editor"
	"github.com/mkram/shaderstudio/internal/engine/driver"
	"github.com/mkram/shaderstudio/internal/engine/driver/gl41"
	"github.com/mkram/shaderstudio/internal/engine/scene"
	"github.com/mkram/shaderstudio/internal/engine/shader"
	"github.com/mkram/shaderstudio/internal/logger"
)

// pendingFile is a file dialog result waiting to be applied. Dialogs
// run in goroutines, but SDL window operations must stay on the main
// thread, so results are queued and processed in render().
type pendingFile struct {
	kind driver.StageKind
	path string
	save bool
}

// App holds the full editor state.
type App struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	cfg     *config.Config

	drv     *gl41.Driver
	prog    *shader.Program
	ed      *editor.Editor
	preview *scene.Preview

	pendingFiles chan pendingFile

	// status bar message, cleared after a few seconds
	statusMsg  string
	statusTime time.Time

	screenshotRequested bool

	lastMousePos imgui.Vec2
}

// New creates the application window and GL state.
func New(cfg *config.Config) (*App, error) {
	app := &App{
		cfg:          cfg,
		ed:           editor.New(),
		pendingFiles: make(chan pendingFile, 4),
	}

	var err error
	app.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("creating backend: %w", err)
	}

	app.backend.SetAfterCreateContextHook(func() {
		if cfg.Editor.FontSize > 0 {
			imgui.CurrentIO().SetFontGlobalScale(cfg.Editor.FontSize / 15)
		}
	})

	app.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	app.backend.CreateWindow("Shader Studio", cfg.Window.Width, cfg.Window.Height)

	swapInterval := 0
	if cfg.Window.VSync {
		swapInterval = 1
	}
	if err := app.backend.SetSwapInterval(swapInterval); err != nil {
		logger.Warn("setting swap interval failed", zap.Error(err))
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	app.drv = gl41.New()
	app.prog = shader.NewProgram(app.drv)

	app.preview, err = scene.NewPreview(
		int32(cfg.Preview.Width), int32(cfg.Preview.Height),
		cfg.Preview.ClearColor, cfg.Preview.FOVDegrees)
	if err != nil {
		return nil, fmt.Errorf("creating preview: %w", err)
	}

	logger.Info("editor ready",
		zap.Bool("geometry_stage", app.drv.GeometryStageSupported()))

	// the default sources give a working program right away
	app.compile()

	return app, nil
}

// OpenStartupShader loads a shader file given on the command line into
// the stage matching its extension and rebuilds.
func (app *App) OpenStartupShader(path string) {
	kind := stageForPath(path)
	if err := app.ed.LoadFile(kind, path); err != nil {
		logger.Error("failed to open startup shader", zap.String("path", path), zap.Error(err))
		return
	}
	app.compile()
}

// Run starts the main application loop.
func (app *App) Run() {
	app.backend.Run(app.render)
}

// Close cleans up GL resources.
func (app *App) Close() {
	if app.preview != nil {
		app.preview.Destroy()
		app.preview = nil
	}
	if app.prog != nil {
		app.prog.DeactivateProgram()
		app.prog = nil
	}
}

// compile pushes the editor documents into the program and rebuilds.
func (app *App) compile() {
	for kind := driver.StageKind(0); kind < driver.StageCount; kind++ {
		app.prog.SetSource(kind, app.ed.EffectiveSource(kind))
	}

	if app.prog.CompileAndLink() {
		logger.Info("build succeeded", zap.Int("uniforms", app.prog.ActiveUniformCount()))
		app.setStatus("Build succeeded")
	} else {
		logger.Warn("build failed")
		app.setStatus("Build failed, see log")
	}
}

func (app *App) setStatus(msg string) {
	app.statusMsg = msg
	app.statusTime = time.Now()
}

// render is called each frame to draw the UI.
func (app *App) render() {
	app.processPendingFiles()

	// F5 rebuilds, F12 captures the preview
	if imgui.IsKeyChordPressed(imgui.KeyChord(imgui.KeyF5)) {
		app.compile()
	}
	if imgui.IsKeyChordPressed(imgui.KeyChord(imgui.KeyF12)) {
		app.screenshotRequested = true
	}

	app.renderMenuBar()

	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()

	sourceWidth := workSize.X * 0.42
	stateWidth := float32(320)
	logHeight := float32(180)
	statusBarHeight := float32(30)
	contentHeight := workSize.Y - statusBarHeight

	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	// Left panel - shader sources
	imgui.SetNextWindowPos(workPos)
	imgui.SetNextWindowSize(imgui.NewVec2(sourceWidth, contentHeight))
	if imgui.BeginV("Sources", nil, flags) {
		app.renderSources()
	}
	imgui.End()

	previewWidth := workSize.X - sourceWidth - stateWidth

	// Center panel - preview on top, build log below
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+sourceWidth, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(previewWidth, contentHeight-logHeight))
	if imgui.BeginV("Preview", nil, flags) {
		app.renderPreview()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+sourceWidth, workPos.Y+contentHeight-logHeight))
	imgui.SetNextWindowSize(imgui.NewVec2(previewWidth, logHeight))
	if imgui.BeginV("Build Log", nil, flags) {
		app.renderBuildLog()
	}
	imgui.End()

	// Right panel - uniforms and geometry parameters
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+sourceWidth+previewWidth, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(stateWidth, contentHeight))
	if imgui.BeginV("Program State", nil, flags) {
		app.renderProgramState()
	}
	imgui.End()

	// Status bar at bottom
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X, workPos.Y+contentHeight))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X, statusBarHeight))
	statusFlags := flags | imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoScrollbar
	if imgui.BeginV("##StatusBar", nil, statusFlags) {
		app.renderStatusBar()
	}
	imgui.End()
}

func (app *App) renderMenuBar() {
	if !imgui.BeginMainMenuBar() {
		return
	}

	if imgui.BeginMenu("File") {
		for kind := driver.StageKind(0); kind < driver.StageCount; kind++ {
			if imgui.MenuItemBool(fmt.Sprintf("Open %s...", kind)) {
				app.openFileDialog(kind)
			}
		}
		imgui.Separator()
		for kind := driver.StageKind(0); kind < driver.StageCount; kind++ {
			if imgui.MenuItemBool(fmt.Sprintf("Save %s", kind)) {
				app.saveStage(kind)
			}
		}
		imgui.Separator()
		if imgui.MenuItemBool("Exit") {
			app.backend.SetShouldClose(true)
		}
		imgui.EndMenu()
	}

	if imgui.BeginMenu("Build") {
		if imgui.MenuItemBoolV("Compile and Link", "F5", false, true) {
			app.compile()
		}
		if imgui.MenuItemBool("Deactivate Program") {
			app.prog.DeactivateProgram()
			app.setStatus("Program deactivated")
		}
		imgui.EndMenu()
	}

	imgui.EndMainMenuBar()
}

func (app *App) renderBuildLog() {
	if imgui.BeginChildStrV("##buildlog", imgui.NewVec2(0, 0), imgui.ChildFlagsBorders, imgui.WindowFlagsHorizontalScrollbar) {
		imgui.Text(app.prog.BuildLog())
	}
	imgui.EndChild()
}

func (app *App) renderStatusBar() {
	if app.prog.IsLinked() {
		imgui.TextColored(imgui.NewVec4(0.4, 0.8, 0.4, 1), "LINKED")
	} else {
		imgui.TextColored(imgui.NewVec4(0.9, 0.4, 0.4, 1), "UNLINKED")
	}

	imgui.SameLine()
	if app.ed.AnyModified() {
		imgui.TextDisabled("| unsaved changes")
		imgui.SameLine()
	}

	if app.statusMsg != "" && time.Since(app.statusTime) < 4*time.Second {
		imgui.TextDisabled("| " + app.statusMsg)
	}
}
