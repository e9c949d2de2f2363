// Command triangle opens a window and draws an orange triangle with OpenGL
// 3.3 core until the window is closed.
package main

import (
	"runtime"

	"dasa.cc/dlwin/internal/app"
	"dasa.cc/dlwin/internal/config"
	"dasa.cc/dlwin/nui"
	"dasa.cc/dlwin/triangle"
)

func defaults() *config.Config {
	cfg := config.Default("OpenGL Triangle")
	cfg.VSync = 1
	cfg.GL = config.GLConfig{Major: 3, Minor: 3, Core: true}
	return cfg
}

func init() {
	// GLFW must only be used from the main thread.
	runtime.LockOSThread()
}

func main() {
	app.Main(app.Command(app.Program{
		Use:      "triangle",
		Short:    "Draw a triangle in a native window",
		Defaults: defaults,
		Scene:    func() nui.Scene { return new(triangle.Scene) },
	}))
}
