package nui

import (
	"dasa.cc/dlwin/glfw"
	"dasa.cc/dlwin/glproc"
	"dasa.cc/dlwin/glw"
)

type libglfw struct{ lib *glfw.Lib }

// GLFW returns the Windowing of a dynamically loaded GLFW library.
func GLFW(lib *glfw.Lib) Windowing { return libglfw{lib} }

func (a libglfw) Init() error        { return a.lib.Init() }
func (a libglfw) PollEvents()        { a.lib.PollEvents() }
func (a libglfw) SwapInterval(n int) { a.lib.SwapInterval(n) }
func (a libglfw) Terminate()         { a.lib.Terminate() }

func (a libglfw) ContextHints(major, minor int, core bool) {
	a.lib.Hint(glfw.ContextVersionMajor, major)
	a.lib.Hint(glfw.ContextVersionMinor, minor)
	if core {
		a.lib.Hint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		a.lib.Hint(glfw.OpenGLForwardCompat, glfw.True)
	}
}

func (a libglfw) CreateWindow(width, height int, title string) (Window, error) {
	window, err := a.lib.CreateWindow(width, height, title)
	if err != nil {
		return nil, err
	}
	return window, nil
}

func (a libglfw) LoadGL() (glw.Context, error) {
	procs, err := glproc.Load(a.lib.ProcAddress)
	if err != nil {
		return nil, err
	}
	return procs, nil
}
