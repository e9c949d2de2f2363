// Package glproc declares the OpenGL 3.3 core entry points needed to draw a
// triangle and binds them to addresses from a context's proc loader.
package glproc

import (
	"fmt"
	"runtime"
	"strings"
	"unsafe"

	"dasa.cc/dlwin/glw"
	"github.com/ebitengine/purego"
)

var _ glw.Context = (*Procs)(nil)

// Procs is the OpenGL function table of one context.
type Procs struct {
	clearColor              func(r, g, b, a float32)
	clear                   func(mask uint32)
	viewport                func(x, y, width, height int32)
	genVertexArrays         func(n int32, arrays *uint32)
	bindVertexArray         func(array uint32)
	deleteVertexArrays      func(n int32, arrays *uint32)
	genBuffers              func(n int32, buffers *uint32)
	bindBuffer              func(target, buffer uint32)
	bufferData              func(target uint32, size int, data unsafe.Pointer, usage uint32)
	deleteBuffers           func(n int32, buffers *uint32)
	enableVertexAttribArray func(index uint32)
	vertexAttribPointer     func(index uint32, size int32, xtype uint32, normalized uint8, stride int32, offset uintptr)
	createShader            func(xtype uint32) uint32
	deleteShader            func(shader uint32)
	shaderSource            func(shader uint32, count int32, strs **byte, lengths *int32)
	compileShader           func(shader uint32)
	getShaderiv             func(shader, pname uint32, params *int32)
	getShaderInfoLog        func(shader uint32, bufSize int32, length *int32, infoLog *byte)
	createProgram           func() uint32
	attachShader            func(program, shader uint32)
	linkProgram             func(program uint32)
	getProgramiv            func(program, pname uint32, params *int32)
	getProgramInfoLog       func(program uint32, bufSize int32, length *int32, infoLog *byte)
	useProgram              func(program uint32)
	deleteProgram           func(program uint32)
	drawArrays              func(mode uint32, first, count int32)
}

// Load resolves every entry point with proc, which must be called with the
// target context current. A zero address is an error.
func Load(proc func(name string) uintptr) (*Procs, error) {
	p := new(Procs)
	for _, fn := range []struct {
		name string
		fptr interface{}
	}{
		{"glClearColor", &p.clearColor},
		{"glClear", &p.clear},
		{"glViewport", &p.viewport},
		{"glGenVertexArrays", &p.genVertexArrays},
		{"glBindVertexArray", &p.bindVertexArray},
		{"glDeleteVertexArrays", &p.deleteVertexArrays},
		{"glGenBuffers", &p.genBuffers},
		{"glBindBuffer", &p.bindBuffer},
		{"glBufferData", &p.bufferData},
		{"glDeleteBuffers", &p.deleteBuffers},
		{"glEnableVertexAttribArray", &p.enableVertexAttribArray},
		{"glVertexAttribPointer", &p.vertexAttribPointer},
		{"glCreateShader", &p.createShader},
		{"glDeleteShader", &p.deleteShader},
		{"glShaderSource", &p.shaderSource},
		{"glCompileShader", &p.compileShader},
		{"glGetShaderiv", &p.getShaderiv},
		{"glGetShaderInfoLog", &p.getShaderInfoLog},
		{"glCreateProgram", &p.createProgram},
		{"glAttachShader", &p.attachShader},
		{"glLinkProgram", &p.linkProgram},
		{"glGetProgramiv", &p.getProgramiv},
		{"glGetProgramInfoLog", &p.getProgramInfoLog},
		{"glUseProgram", &p.useProgram},
		{"glDeleteProgram", &p.deleteProgram},
		{"glDrawArrays", &p.drawArrays},
	} {
		addr := proc(fn.name)
		if addr == 0 {
			return nil, fmt.Errorf("failed to load OpenGL function: %s", fn.name)
		}
		purego.RegisterFunc(fn.fptr, addr)
	}
	return p, nil
}

func (p *Procs) ClearColor(r, g, b, a float32)        { p.clearColor(r, g, b, a) }
func (p *Procs) Clear(mask uint32)                    { p.clear(mask) }
func (p *Procs) Viewport(x, y, width, height int32)   { p.viewport(x, y, width, height) }
func (p *Procs) BindVertexArray(array uint32)         { p.bindVertexArray(array) }
func (p *Procs) DeleteVertexArray(array uint32)       { p.deleteVertexArrays(1, &array) }
func (p *Procs) BindBuffer(target, buffer uint32)     { p.bindBuffer(target, buffer) }
func (p *Procs) DeleteBuffer(buffer uint32)           { p.deleteBuffers(1, &buffer) }
func (p *Procs) EnableVertexAttribArray(index uint32) { p.enableVertexAttribArray(index) }
func (p *Procs) CreateShader(xtype uint32) uint32     { return p.createShader(xtype) }
func (p *Procs) CompileShader(shader uint32)          { p.compileShader(shader) }
func (p *Procs) DeleteShader(shader uint32)           { p.deleteShader(shader) }
func (p *Procs) CreateProgram() uint32                { return p.createProgram() }
func (p *Procs) AttachShader(program, shader uint32)  { p.attachShader(program, shader) }
func (p *Procs) LinkProgram(program uint32)           { p.linkProgram(program) }
func (p *Procs) UseProgram(program uint32)            { p.useProgram(program) }
func (p *Procs) DeleteProgram(program uint32)         { p.deleteProgram(program) }

func (p *Procs) DrawArrays(mode uint32, first, count int32) { p.drawArrays(mode, first, count) }

func (p *Procs) GenVertexArray() (array uint32) {
	p.genVertexArrays(1, &array)
	return array
}

func (p *Procs) GenBuffer() (buffer uint32) {
	p.genBuffers(1, &buffer)
	return buffer
}

func (p *Procs) BufferData(target uint32, data []byte, usage uint32) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = unsafe.Pointer(&data[0])
	}
	p.bufferData(target, len(data), ptr, usage)
	runtime.KeepAlive(data)
}

func (p *Procs) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	var norm uint8
	if normalized {
		norm = 1
	}
	p.vertexAttribPointer(index, size, xtype, norm, stride, offset)
}

// ShaderSource sets src as the only source string of shader.
func (p *Procs) ShaderSource(shader uint32, src string) {
	b := append([]byte(src), 0)
	var pin runtime.Pinner
	pin.Pin(&b[0])
	defer pin.Unpin()

	strs := [1]*byte{&b[0]}
	n := int32(len(src))
	p.shaderSource(shader, 1, &strs[0], &n)
}

func (p *Procs) GetShaderi(shader, pname uint32) (v int32) {
	p.getShaderiv(shader, pname, &v)
	return v
}

func (p *Procs) GetShaderInfoLog(shader uint32) string {
	return infoLog(p.GetShaderi(shader, glw.INFO_LOG_LENGTH), func(n int32, buf *byte) {
		p.getShaderInfoLog(shader, n, nil, buf)
	})
}

func (p *Procs) GetProgrami(program, pname uint32) (v int32) {
	p.getProgramiv(program, pname, &v)
	return v
}

func (p *Procs) GetProgramInfoLog(program uint32) string {
	return infoLog(p.GetProgrami(program, glw.INFO_LOG_LENGTH), func(n int32, buf *byte) {
		p.getProgramInfoLog(program, n, nil, buf)
	})
}

// infoLog reads a log of n bytes, including its terminator, with read.
func infoLog(n int32, read func(n int32, buf *byte)) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	read(n, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}
