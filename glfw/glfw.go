// Package glfw declares the GLFW 3 entry points used to open a window and
// binds them against a dynamically loaded library.
//
// All functions must be called from the main thread.
package glfw

import (
	"errors"
	"fmt"

	"dasa.cc/dlwin/dl"
	"github.com/ebitengine/purego"
)

// Base is the library base name passed to dl.Name.
const Base = "glfw3"

const (
	True  = 1
	False = 0

	ContextVersionMajor = 0x00022002
	ContextVersionMinor = 0x00022003
	OpenGLForwardCompat = 0x00022006
	OpenGLProfile       = 0x00022008
	OpenGLCoreProfile   = 0x00032001
)

var (
	ErrInit         = errors.New("glfw: initialization failed")
	ErrCreateWindow = errors.New("glfw: failed to create window")
)

// Lib holds the GLFW function table.
type Lib struct {
	lib dl.Library

	init                 func() int32
	terminate            func()
	windowHint           func(hint, value int32)
	createWindow         func(width, height int32, title string, monitor, share uintptr) uintptr
	destroyWindow        func(window uintptr)
	makeContextCurrent   func(window uintptr)
	windowShouldClose    func(window uintptr) int32
	setWindowShouldClose func(window uintptr, value int32)
	pollEvents           func()
	swapBuffers          func(window uintptr)
	swapInterval         func(interval int32)
	setWindowTitle       func(window uintptr, title string)
	getProcAddress       func(name string) uintptr
	getFramebufferSize   func(window uintptr, width, height *int32)
	getVersionString     func() *byte
	setErrorCallback     func(callback uintptr) uintptr
}

// Load resolves every entry point in lib, failing on the first one missing.
func Load(lib dl.Library) (*Lib, error) {
	l := &Lib{lib: lib}
	for _, fn := range []struct {
		name string
		fptr interface{}
	}{
		{"glfwInit", &l.init},
		{"glfwTerminate", &l.terminate},
		{"glfwWindowHint", &l.windowHint},
		{"glfwCreateWindow", &l.createWindow},
		{"glfwDestroyWindow", &l.destroyWindow},
		{"glfwMakeContextCurrent", &l.makeContextCurrent},
		{"glfwWindowShouldClose", &l.windowShouldClose},
		{"glfwSetWindowShouldClose", &l.setWindowShouldClose},
		{"glfwPollEvents", &l.pollEvents},
		{"glfwSwapBuffers", &l.swapBuffers},
		{"glfwSwapInterval", &l.swapInterval},
		{"glfwSetWindowTitle", &l.setWindowTitle},
		{"glfwGetProcAddress", &l.getProcAddress},
		{"glfwGetFramebufferSize", &l.getFramebufferSize},
		{"glfwGetVersionString", &l.getVersionString},
		{"glfwSetErrorCallback", &l.setErrorCallback},
	} {
		addr, err := lib.Sym(fn.name)
		if err != nil {
			return nil, fmt.Errorf("glfw: %w", err)
		}
		purego.RegisterFunc(fn.fptr, addr)
	}
	return l, nil
}

// Init initializes GLFW.
func (l *Lib) Init() error {
	if l.init() != True {
		return ErrInit
	}
	return nil
}

// Terminate destroys remaining windows and frees GLFW resources.
func (l *Lib) Terminate() { l.terminate() }

// Hint sets a window creation hint for the next CreateWindow.
func (l *Lib) Hint(hint, value int) { l.windowHint(int32(hint), int32(value)) }

// CreateWindow creates a windowed mode window and its context.
func (l *Lib) CreateWindow(width, height int, title string) (*Window, error) {
	handle := l.createWindow(int32(width), int32(height), title, 0, 0)
	if handle == 0 {
		return nil, ErrCreateWindow
	}
	return &Window{lib: l, handle: handle}, nil
}

// PollEvents processes pending events and returns.
func (l *Lib) PollEvents() { l.pollEvents() }

// SwapInterval sets the number of screen updates to wait for before swapping
// buffers of the current context.
func (l *Lib) SwapInterval(n int) { l.swapInterval(int32(n)) }

// ProcAddress returns the address of the named client API function for the
// current context, or zero.
func (l *Lib) ProcAddress(name string) uintptr { return l.getProcAddress(name) }

// Version returns the compile-time version string of the library.
func (l *Lib) Version() string { return gostring(l.getVersionString()) }

// errorHandler is kept for the lifetime of the process; purego callbacks
// are never released.
var (
	errorHandler  func(code int, desc string)
	errorCallback uintptr
)

// OnError installs fn as the GLFW error callback.
func (l *Lib) OnError(fn func(code int, desc string)) {
	errorHandler = fn
	if errorCallback == 0 {
		errorCallback = purego.NewCallback(func(code int32, desc *byte) uintptr {
			if errorHandler != nil {
				errorHandler(int(code), gostring(desc))
			}
			return 0
		})
	}
	l.setErrorCallback(errorCallback)
}

// Window is a GLFW window handle.
type Window struct {
	lib    *Lib
	handle uintptr
}

func (w *Window) MakeContextCurrent()   { w.lib.makeContextCurrent(w.handle) }
func (w *Window) ShouldClose() bool     { return w.lib.windowShouldClose(w.handle) != False }
func (w *Window) SwapBuffers()          { w.lib.swapBuffers(w.handle) }
func (w *Window) SetTitle(title string) { w.lib.setWindowTitle(w.handle, title) }
func (w *Window) Destroy()              { w.lib.destroyWindow(w.handle) }

func (w *Window) SetShouldClose(value bool) {
	v := int32(False)
	if value {
		v = True
	}
	w.lib.setWindowShouldClose(w.handle, v)
}

// FramebufferSize returns the size in pixels of the framebuffer.
func (w *Window) FramebufferSize() (width, height int) {
	var cw, ch int32
	w.lib.getFramebufferSize(w.handle, &cw, &ch)
	return int(cw), int(ch)
}
