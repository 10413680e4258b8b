// Package config handles application configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Assets   AssetsConfig   `yaml:"assets"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
	ShowFPS    bool `yaml:"show_fps"`
}

// AssetsConfig holds asset file locations.
type AssetsConfig struct {
	Dir           string `yaml:"dir"`            // Root directory for textures
	ScreenshotDir string `yaml:"screenshot_dir"` // Where F12 captures are written
}

// CameraConfig holds the orbit camera settings.
type CameraConfig struct {
	FOVDegrees  float32 `yaml:"fov_degrees"`
	Distance    float32 `yaml:"distance"`
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			ShowFPS:    false,
		},
		Assets: AssetsConfig{
			Dir:           "assets",
			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			FOVDegrees:  45,
			Distance:    40,
			MinDistance: 5,
			MaxDistance: 120,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
