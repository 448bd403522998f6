// Package main is the entry point for the Shader Studio editor.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/mkram/shaderstudio/internal/app"
	"github.com/mkram/shaderstudio/internal/config"
	"github.com/mkram/shaderstudio/internal/logger"
)

func main() {
	// SDL and GL require the main OS thread
	runtime.LockOSThread()

	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Shader Studio ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Create and run the editor
	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create application", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if path := config.StartupShader(); path != "" {
		a.OpenStartupShader(path)
	}

	a.Run()

	logger.Info("editor closed normally")
}
