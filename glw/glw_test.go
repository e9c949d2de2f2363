package glw

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
)

// recorder is a Context that logs each call and hands out sequential names.
type recorder struct {
	calls []string
	next  uint32
	data  []byte

	failCompile uint32 // shader type that fails to compile
	failLink    bool
	failCreate  bool
}

func (r *recorder) log(format string, args ...interface{}) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) name() uint32 { r.next++; return r.next }

func (r *recorder) ClearColor(red, green, blue, alpha float32) {
	r.log("ClearColor(%v, %v, %v, %v)", red, green, blue, alpha)
}
func (r *recorder) Clear(mask uint32)                  { r.log("Clear(%#x)", mask) }
func (r *recorder) Viewport(x, y, width, height int32) { r.log("Viewport(%v, %v, %v, %v)", x, y, width, height) }
func (r *recorder) GenVertexArray() uint32 {
	n := r.name()
	r.log("GenVertexArray() %v", n)
	return n
}
func (r *recorder) BindVertexArray(array uint32)   { r.log("BindVertexArray(%v)", array) }
func (r *recorder) DeleteVertexArray(array uint32) { r.log("DeleteVertexArray(%v)", array) }
func (r *recorder) GenBuffer() uint32 {
	n := r.name()
	r.log("GenBuffer() %v", n)
	return n
}
func (r *recorder) BindBuffer(target, buffer uint32) { r.log("BindBuffer(%#x, %v)", target, buffer) }
func (r *recorder) BufferData(target uint32, data []byte, usage uint32) {
	r.data = append([]byte(nil), data...)
	r.log("BufferData(%#x, %v, %#x)", target, len(data), usage)
}
func (r *recorder) DeleteBuffer(buffer uint32)           { r.log("DeleteBuffer(%v)", buffer) }
func (r *recorder) EnableVertexAttribArray(index uint32) { r.log("EnableVertexAttribArray(%v)", index) }
func (r *recorder) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	r.log("VertexAttribPointer(%v, %v, %#x, %v, %v, %v)", index, size, xtype, normalized, stride, offset)
}
func (r *recorder) CreateShader(xtype uint32) uint32 {
	if r.failCreate {
		r.log("CreateShader(%#x) 0", xtype)
		return 0
	}
	n := r.name() | xtype<<16
	r.log("CreateShader(%#x) %v", xtype, n)
	return n
}
func (r *recorder) ShaderSource(shader uint32, src string) { r.log("ShaderSource(%v)", shader) }
func (r *recorder) CompileShader(shader uint32)            { r.log("CompileShader(%v)", shader) }
func (r *recorder) GetShaderi(shader, pname uint32) int32 {
	if pname == COMPILE_STATUS && shader>>16 == r.failCompile {
		return FALSE
	}
	return TRUE
}
func (r *recorder) GetShaderInfoLog(shader uint32) string { return "0:1(1): error: syntax error" }
func (r *recorder) DeleteShader(shader uint32)            { r.log("DeleteShader(%v)", shader) }
func (r *recorder) CreateProgram() uint32 {
	n := r.name()
	r.log("CreateProgram() %v", n)
	return n
}
func (r *recorder) AttachShader(program, shader uint32) { r.log("AttachShader(%v, %v)", program, shader) }
func (r *recorder) LinkProgram(program uint32)          { r.log("LinkProgram(%v)", program) }
func (r *recorder) GetProgrami(program, pname uint32) int32 {
	if pname == LINK_STATUS && r.failLink {
		return FALSE
	}
	return TRUE
}
func (r *recorder) GetProgramInfoLog(program uint32) string { return "error: unresolved varying" }
func (r *recorder) UseProgram(program uint32)               { r.log("UseProgram(%v)", program) }
func (r *recorder) DeleteProgram(program uint32)            { r.log("DeleteProgram(%v)", program) }
func (r *recorder) DrawArrays(mode uint32, first, count int32) {
	r.log("DrawArrays(%#x, %v, %v)", mode, first, count)
}

func (r *recorder) count(prefix string) (n int) {
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

const (
	vs = VertSrc("#version 330 core\nvoid main() {}")
	fs = FragSrc("#version 330 core\nvoid main() {}")
)

func TestProgramBuild(t *testing.T) {
	r := &recorder{}
	With(r)

	var prg Program
	require.NoError(t, prg.Build(vs, fs))
	assert.NotZero(t, prg.Program)
	assert.Equal(t, 2, r.count("AttachShader"))
	assert.Equal(t, 2, r.count("DeleteShader"), "shaders are released once linked")
	assert.Zero(t, r.count("DeleteProgram"))

	prg.Use()
	prg.Delete()
	assert.Equal(t, fmt.Sprintf("DeleteProgram(%v)", prg.Program), r.calls[len(r.calls)-1])
}

func TestCompileFailure(t *testing.T) {
	r := &recorder{failCompile: FRAGMENT_SHADER}
	With(r)

	var prg Program
	err := prg.Build(vs, fs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCompile))
	assert.Contains(t, err.Error(), "FragmentShader")
	assert.Contains(t, err.Error(), "syntax error")

	// both the failed fragment shader and the compiled vertex shader are gone
	assert.Equal(t, 2, r.count("DeleteShader"))
	assert.Zero(t, r.count("CreateProgram"))
}

func TestCreateShaderFailure(t *testing.T) {
	With(&recorder{failCreate: true})
	_, err := vs.Compile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create shader")
	assert.Contains(t, err.Error(), "VertexShader ")
}

func TestStage(t *testing.T) {
	for _, tc := range []struct {
		typ  uint32
		want string
	}{
		{VERTEX_SHADER, "VertexShader"},
		{FRAGMENT_SHADER, "FragmentShader"},
		{0x8DD9, "Shader(0x8dd9)"},
	} {
		if have := stage(tc.typ); have != tc.want {
			t.Errorf("stage(%#x): have %q, want %q", tc.typ, have, tc.want)
		}
	}
}

func TestLinkFailure(t *testing.T) {
	r := &recorder{failLink: true}
	With(r)

	var prg Program
	err := prg.Build(vs, fs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLink)
	assert.Contains(t, err.Error(), "unresolved varying")
	assert.Zero(t, prg.Program)
	assert.Equal(t, 1, r.count("DeleteProgram"))
	assert.Equal(t, 2, r.count("DeleteShader"))
}

func TestVertexArray(t *testing.T) {
	r := &recorder{}
	With(r)

	data := Vec2s(f32.Vec2{0, 0.5}, f32.Vec2{-0.5, -0.5}, f32.Vec2{0.5, -0.5})
	require.Equal(t, []float32{0, 0.5, -0.5, -0.5, 0.5, -0.5}, data)

	var va VertexArray
	va.Create(STATIC_DRAW, data)
	assert.Equal(t, []string{
		"GenVertexArray() 1",
		"BindVertexArray(1)",
		"GenBuffer() 2",
		"BindBuffer(0x8892, 2)",
		"BufferData(0x8892, 24, 0x88e4)",
		"EnableVertexAttribArray(0)",
		"VertexAttribPointer(0, 2, 0x1406, false, 0, 0)",
	}, r.calls)

	for i, want := range data {
		have := math.Float32frombits(binary.LittleEndian.Uint32(r.data[4*i:]))
		if have != want {
			t.Fatalf("uploaded float %v; have %v, want %v", i, have, want)
		}
	}

	r.calls = nil
	va.Draw(TRIANGLES)
	va.Delete()
	assert.Equal(t, []string{"DrawArrays(0x4, 0, 3)", "DeleteVertexArray(1)", "DeleteBuffer(2)"}, r.calls)
}
