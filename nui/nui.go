// Package nui aims to be unremarkable in aiding windowing.
//
// A surface is opened in the order the windowing library documents: init,
// create window, make the context current, create the scene, then loop on
// the close flag before tearing everything down in reverse.
package nui

import (
	"fmt"
	"runtime"

	"dasa.cc/dlwin/glw"
	"go.uber.org/zap"
)

// Window is a native window with a client API context.
type Window interface {
	MakeContextCurrent()
	ShouldClose() bool
	SwapBuffers()
	SetTitle(title string)
	FramebufferSize() (width, height int)
	Destroy()
}

// Windowing is the windowing library as used by Run.
type Windowing interface {
	Init() error
	// ContextHints requests an OpenGL context version for the next window.
	ContextHints(major, minor int, core bool)
	CreateWindow(width, height int, title string) (Window, error)
	PollEvents()
	SwapInterval(n int)
	// LoadGL resolves the OpenGL functions of the current context.
	LoadGL() (glw.Context, error)
	Terminate()
}

// Scene is drawn once per iteration of the event loop.
type Scene interface {
	// Create is called once the window's context is current.
	Create(win Window, load func() (glw.Context, error)) error
	Draw()
	Delete()
}

// Options configure Run. A zero Major leaves context hints unset.
type Options struct {
	Width, Height int
	Title         string

	Major, Minor int
	Core         bool

	SwapInterval int

	// FrameLimit stops the loop after that many iterations if non-zero.
	FrameLimit int

	Logger *zap.Logger
}

// Run opens a window with w and polls events until the window is asked to
// close. With a nil scene the window is only kept alive; otherwise the scene
// is drawn and buffers swapped each iteration.
//
// Run must be called from the main thread.
func Run(w Windowing, opts Options, scene Scene) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := w.Init(); err != nil {
		return fmt.Errorf("nui: %w", err)
	}
	logger.Debug("initialized")

	if opts.Major != 0 {
		w.ContextHints(opts.Major, opts.Minor, opts.Core)
	}

	window, err := w.CreateWindow(opts.Width, opts.Height, opts.Title)
	if err != nil {
		w.Terminate()
		return fmt.Errorf("nui: %w", err)
	}
	logger.Debug("window created",
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height),
		zap.String("title", opts.Title))

	window.MakeContextCurrent()
	if scene == nil {
		window.SetTitle(opts.Title)
	}
	if opts.SwapInterval != 0 {
		w.SwapInterval(opts.SwapInterval)
	}

	if scene != nil {
		if err := scene.Create(window, w.LoadGL); err != nil {
			window.Destroy()
			w.Terminate()
			return fmt.Errorf("nui: %w", err)
		}
	}

	frames := 0
	for !window.ShouldClose() {
		if scene != nil {
			scene.Draw()
			window.SwapBuffers()
		}
		w.PollEvents()

		if frames++; opts.FrameLimit != 0 && frames >= opts.FrameLimit {
			break
		}
	}
	logger.Debug("closing", zap.Int("frames", frames))

	if scene != nil {
		scene.Delete()
	}
	window.Destroy()
	w.Terminate()
	return nil
}
