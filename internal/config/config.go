// Package config holds the settings shared by the window and triangle
// commands.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LibraryEnv names the environment variable overriding the GLFW library path.
const LibraryEnv = "DLWIN_GLFW_LIBRARY"

// Config describes the window to open and where to find GLFW.
type Config struct {
	// Library is an explicit GLFW library path searched before the defaults.
	Library string `yaml:"library"`

	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`

	// Frames stops the event loop after that many iterations; zero runs
	// until the window is closed.
	Frames int `yaml:"frames"`
	VSync  int `yaml:"vsync"`

	GL GLConfig `yaml:"gl"`
}

// GLConfig requests an OpenGL context version. A zero Major leaves the
// windowing library's defaults.
type GLConfig struct {
	Major int  `yaml:"major"`
	Minor int  `yaml:"minor"`
	Core  bool `yaml:"core"`
}

// Default returns an 800x600 window titled title.
func Default(title string) *Config {
	return &Config{
		Width:  800,
		Height: 600,
		Title:  title,
	}
}

// Load reads the YAML file at path over cfg. An empty path or a missing file
// leaves cfg unchanged.
func Load(path string, cfg *Config) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

// ApplyEnv overrides cfg with environment variables that are set.
func (c *Config) ApplyEnv() {
	if lib := os.Getenv(LibraryEnv); lib != "" {
		c.Library = lib
	}
}

// Validate reports settings no window could be created with.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.Frames < 0 {
		return fmt.Errorf("invalid frame limit %d", c.Frames)
	}
	return nil
}
