//go:build gogl

// Package gogl provides nui.Windowing with the cgo go-gl bindings, linking
// GLFW and OpenGL at build time instead of loading them at run time.
package gogl

import (
	"fmt"
	"strings"

	dlglfw "dasa.cc/dlwin/glfw"
	"dasa.cc/dlwin/glw"
	"dasa.cc/dlwin/nui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Version reports the GLFW version the binary was linked against.
func Version() string { return glfw.GetVersionString() }

// wrap reports go-gl's err under the same sentinel the purego backend uses.
func wrap(sentinel, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", sentinel, err)
}

type windowing struct{}

// New returns the cgo Windowing.
func New() nui.Windowing { return windowing{} }

func (windowing) Init() error        { return wrap(dlglfw.ErrInit, glfw.Init()) }
func (windowing) PollEvents()        { glfw.PollEvents() }
func (windowing) SwapInterval(n int) { glfw.SwapInterval(n) }
func (windowing) Terminate()         { glfw.Terminate() }

func (windowing) ContextHints(major, minor int, core bool) {
	glfw.WindowHint(glfw.ContextVersionMajor, major)
	glfw.WindowHint(glfw.ContextVersionMinor, minor)
	if core {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompat, glfw.True)
	}
}

func (windowing) CreateWindow(width, height int, title string) (nui.Window, error) {
	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, wrap(dlglfw.ErrCreateWindow, err)
	}
	return window{w}, nil
}

func (windowing) LoadGL() (glw.Context, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	return glctx{}, nil
}

type window struct{ *glfw.Window }

func (w window) FramebufferSize() (width, height int) { return w.GetFramebufferSize() }

// glctx is glw.Context over the package level go-gl functions.
type glctx struct{}

func (glctx) ClearColor(r, g, b, a float32)        { gl.ClearColor(r, g, b, a) }
func (glctx) Clear(mask uint32)                    { gl.Clear(mask) }
func (glctx) Viewport(x, y, width, height int32)   { gl.Viewport(x, y, width, height) }
func (glctx) BindVertexArray(array uint32)         { gl.BindVertexArray(array) }
func (glctx) DeleteVertexArray(array uint32)       { gl.DeleteVertexArrays(1, &array) }
func (glctx) BindBuffer(target, buffer uint32)     { gl.BindBuffer(target, buffer) }
func (glctx) DeleteBuffer(buffer uint32)           { gl.DeleteBuffers(1, &buffer) }
func (glctx) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }
func (glctx) CreateShader(xtype uint32) uint32     { return gl.CreateShader(xtype) }
func (glctx) CompileShader(shader uint32)          { gl.CompileShader(shader) }
func (glctx) DeleteShader(shader uint32)           { gl.DeleteShader(shader) }
func (glctx) CreateProgram() uint32                { return gl.CreateProgram() }
func (glctx) AttachShader(program, shader uint32)  { gl.AttachShader(program, shader) }
func (glctx) LinkProgram(program uint32)           { gl.LinkProgram(program) }
func (glctx) UseProgram(program uint32)            { gl.UseProgram(program) }
func (glctx) DeleteProgram(program uint32)         { gl.DeleteProgram(program) }

func (glctx) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }

func (glctx) GenVertexArray() (array uint32) {
	gl.GenVertexArrays(1, &array)
	return array
}

func (glctx) GenBuffer() (buffer uint32) {
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (glctx) BufferData(target uint32, data []byte, usage uint32) {
	gl.BufferData(target, len(data), gl.Ptr(data), usage)
}

func (glctx) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(int(offset)))
}

func (glctx) ShaderSource(shader uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
}

func (glctx) GetShaderi(shader, pname uint32) (v int32) {
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (c glctx) GetShaderInfoLog(shader uint32) string {
	n := c.GetShaderi(shader, gl.INFO_LOG_LENGTH)
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(shader, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (glctx) GetProgrami(program, pname uint32) (v int32) {
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (c glctx) GetProgramInfoLog(program uint32) string {
	n := c.GetProgrami(program, gl.INFO_LOG_LENGTH)
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(program, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}
