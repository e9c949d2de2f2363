// Package glw wraps the handful of OpenGL objects needed to put geometry on
// screen: shaders, programs, buffers and vertex arrays.
package glw

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/image/math/f32"
)

// OpenGL enums used by this package and its callers.
const (
	FALSE            = 0
	TRUE             = 1
	TRIANGLES        = 0x0004
	FLOAT            = 0x1406
	COLOR_BUFFER_BIT = 0x4000
	ARRAY_BUFFER     = 0x8892
	STATIC_DRAW      = 0x88E4
	FRAGMENT_SHADER  = 0x8B30
	VERTEX_SHADER    = 0x8B31
	COMPILE_STATUS   = 0x8B81
	LINK_STATUS      = 0x8B82
	INFO_LOG_LENGTH  = 0x8B84
)

// Context is the subset of OpenGL 3.3 core this package drives.
// Names are plain uint32 handles as returned by the driver.
type Context interface {
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Viewport(x, y, width, height int32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)

	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, data []byte, usage uint32)
	DeleteBuffer(buffer uint32)

	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)

	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderi(shader, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgrami(program, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	DrawArrays(mode uint32, first, count int32)
}

var ctx Context

// TODO allow package to be used by multiple contexts in parallel.
func With(glctx Context) Context { ctx = glctx; return glctx }

// Vec2s flattens vs into consecutive x, y components.
func Vec2s(vs ...f32.Vec2) []float32 {
	data := make([]float32, 0, 2*len(vs))
	for _, v := range vs {
		data = append(data, v[0], v[1])
	}
	return data
}

const pkgPath = "dasa.cc/dlwin/glw"

// stage names shader type typ in error messages.
func stage(typ uint32) string {
	switch typ {
	case VERTEX_SHADER:
		return "VertexShader"
	case FRAGMENT_SHADER:
		return "FragmentShader"
	}
	return fmt.Sprintf("Shader(%#x)", typ)
}

// location returns file:line of the first frame outside of this package on
// the calling goroutine's stack.
func location() string {
	pc := make([]uintptr, 16)
	frames := runtime.CallersFrames(pc[:runtime.Callers(2, pc)])
	for {
		frame, more := frames.Next()
		if !more || !strings.HasPrefix(frame.Function, pkgPath+".") {
			return fmt.Sprintf("%s:%d", frame.File, frame.Line)
		}
	}
}
