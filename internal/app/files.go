package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"image/png"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/mkram/shaderstudio/internal/config"
	"github.com/mkram/shaderstudio/internal/editor"
	"github.com/mkram/shaderstudio/internal/engine/driver"
	"github.com/mkram/shaderstudio/internal/logger"
)

// stageForPath guesses the stage a shader file belongs to from its
// extension, defaulting to the fragment stage.
func stageForPath(path string) driver.StageKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vert", ".vs":
		return driver.StageVertex
	case ".geom", ".gs":
		return driver.StageGeometry
	default:
		return driver.StageFragment
	}
}

// openFileDialog shows a native open dialog for one stage. The dialog
// runs in a goroutine so the UI keeps drawing; the result is queued
// for the main thread.
func (app *App) openFileDialog(kind driver.StageKind) {
	startDir := app.cfg.Editor.ShaderDir

	go func() {
		d := dialog.File().
			Filter(fmt.Sprintf("%s source", kind), editor.FileExtensions(kind)...).
			Filter("All Files", "*").
			Title(fmt.Sprintf("Open %s", kind))
		if startDir != "" {
			d = d.SetStartDir(startDir)
		}

		path, err := d.Load()
		if err != nil {
			if err != dialog.ErrCancelled {
				logger.Error("open dialog failed", zap.Error(err))
			}
			return
		}
		app.pendingFiles <- pendingFile{kind: kind, path: path}
	}()
}

// saveFileDialog shows a native save dialog for one stage.
func (app *App) saveFileDialog(kind driver.StageKind) {
	startDir := app.cfg.Editor.ShaderDir

	go func() {
		d := dialog.File().
			Filter(fmt.Sprintf("%s source", kind), editor.FileExtensions(kind)...).
			Title(fmt.Sprintf("Save %s", kind))
		if startDir != "" {
			d = d.SetStartDir(startDir)
		}

		path, err := d.Save()
		if err != nil {
			if err != dialog.ErrCancelled {
				logger.Error("save dialog failed", zap.Error(err))
			}
			return
		}
		app.pendingFiles <- pendingFile{kind: kind, path: path, save: true}
	}()
}

// saveStage saves to the document's backing file, falling back to a
// save dialog for documents that have none.
func (app *App) saveStage(kind driver.StageKind) {
	err := app.ed.Save(kind)
	switch err {
	case nil:
		app.setStatus(fmt.Sprintf("Saved %s", filepath.Base(app.ed.Path(kind))))
	case editor.ErrNoPath:
		app.saveFileDialog(kind)
	default:
		logger.Error("save failed", zap.Error(err))
		app.setStatus("Save failed: " + err.Error())
	}
}

// processPendingFiles applies queued dialog results on the main thread.
// Loading a source file invalidates the running program; the user
// rebuilds explicitly.
func (app *App) processPendingFiles() {
	for {
		select {
		case pf := <-app.pendingFiles:
			if pf.save {
				if err := app.ed.SaveFile(pf.kind, pf.path); err != nil {
					logger.Error("save failed", zap.String("path", pf.path), zap.Error(err))
					app.setStatus("Save failed: " + err.Error())
				} else {
					app.setStatus(fmt.Sprintf("Saved %s", filepath.Base(pf.path)))
				}
				continue
			}

			if err := app.ed.LoadFile(pf.kind, pf.path); err != nil {
				logger.Error("open failed", zap.String("path", pf.path), zap.Error(err))
				app.setStatus("Open failed: " + err.Error())
				continue
			}
			app.prog.DeactivateProgram()
			app.setStatus(fmt.Sprintf("Opened %s", filepath.Base(pf.path)))
		default:
			return
		}
	}
}

// captureScreenshot writes the current preview frame as a PNG into the
// screenshots directory under the user config dir.
func (app *App) captureScreenshot() {
	dir := filepath.Join(config.ConfigDir(), "screenshots")
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Error("creating screenshot dir failed", zap.Error(err))
		return
	}

	path := filepath.Join(dir, "shot-"+time.Now().Format("20060102-150405")+".png")

	f, err := os.Create(path)
	if err != nil {
		logger.Error("creating screenshot failed", zap.Error(err))
		return
	}
	defer f.Close()

	if err := png.Encode(f, app.preview.Screenshot()); err != nil {
		logger.Error("encoding screenshot failed", zap.Error(err))
		return
	}

	logger.Info("screenshot saved", zap.String("path", path))
	app.setStatus("Screenshot saved: " + filepath.Base(path))
}
