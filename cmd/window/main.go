// Command window opens a native window with GLFW and keeps it open until it
// is closed.
package main

import (
	"runtime"

	"dasa.cc/dlwin/internal/app"
	"dasa.cc/dlwin/internal/config"
)

func init() {
	// GLFW must only be used from the main thread.
	runtime.LockOSThread()
}

func main() {
	app.Main(app.Command(app.Program{
		Use:      "window",
		Short:    "Open a native window",
		Defaults: func() *config.Config { return config.Default("Native Window") },
	}))
}
