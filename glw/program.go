package glw

import (
	"errors"
	"fmt"
)

var (
	ErrCompile = errors.New("shader compilation error")
	ErrLink    = errors.New("shader program linking error")
)

func compile(typ uint32, src string) (uint32, error) {
	shd := ctx.CreateShader(typ)
	if shd == 0 {
		return 0, fmt.Errorf("%s %s: failed to create shader", stage(typ), location())
	}
	ctx.ShaderSource(shd, src)
	ctx.CompileShader(shd)
	if ctx.GetShaderi(shd, COMPILE_STATUS) == FALSE {
		msg := ctx.GetShaderInfoLog(shd)
		ctx.DeleteShader(shd)
		return 0, fmt.Errorf("%w: %s %s\n%s", ErrCompile, stage(typ), location(), msg)
	}
	return shd, nil
}

// VertSrc is vertex shader source code.
type VertSrc string

// Compile returns the compiled shader of src and error if any.
func (src VertSrc) Compile() (uint32, error) { return compile(VERTEX_SHADER, string(src)) }

// FragSrc is fragment shader source code.
type FragSrc string

// Compile returns the compiled shader of src and error if any.
func (src FragSrc) Compile() (uint32, error) { return compile(FRAGMENT_SHADER, string(src)) }

// Program identifies a linked shader program; zero is invalid.
type Program struct{ Program uint32 }

// Use installs program as part of current rendering state.
func (prg Program) Use() { ctx.UseProgram(prg.Program) }

// Delete frees the memory and invalidates the name associated with the program.
func (prg Program) Delete() { ctx.DeleteProgram(prg.Program) }

// Build compiles shaders and links program. Shaders are deleted once linked;
// nothing is left allocated on error.
func (prg *Program) Build(vsrc VertSrc, fsrc FragSrc) error {
	vshd, err := vsrc.Compile()
	if err != nil {
		return err
	}
	defer ctx.DeleteShader(vshd)

	fshd, err := fsrc.Compile()
	if err != nil {
		return err
	}
	defer ctx.DeleteShader(fshd)

	prg.Program = ctx.CreateProgram()
	if prg.Program == 0 {
		return fmt.Errorf("CreateProgram %s: failed to create shader program", location())
	}
	ctx.AttachShader(prg.Program, vshd)
	ctx.AttachShader(prg.Program, fshd)
	ctx.LinkProgram(prg.Program)

	if ctx.GetProgrami(prg.Program, LINK_STATUS) == FALSE {
		msg := ctx.GetProgramInfoLog(prg.Program)
		ctx.DeleteProgram(prg.Program)
		prg.Program = 0
		return fmt.Errorf("%w: LinkProgram %s\n%s", ErrLink, location(), msg)
	}

	return nil
}
