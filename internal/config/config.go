// Package config handles editor configuration loading and management.
package config

// Config holds all editor settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Preview PreviewConfig `yaml:"preview"`
	Editor  EditorConfig  `yaml:"editor"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// PreviewConfig holds settings of the render preview panel.
type PreviewConfig struct {
	ClearColor [4]float32 `yaml:"clear_color"`
	FOVDegrees float32    `yaml:"fov_degrees"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
}

// EditorConfig holds source editor settings.
type EditorConfig struct {
	FontSize  float32 `yaml:"font_size"`
	ShaderDir string  `yaml:"shader_dir"` // initial directory for open/save dialogs
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1440,
			Height: 900,
			VSync:  true,
		},
		Preview: PreviewConfig{
			ClearColor: [4]float32{0.1, 0.1, 0.15, 1.0},
			FOVDegrees: 45,
			Width:      640,
			Height:     480,
		},
		Editor: EditorConfig{
			FontSize: 15,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
