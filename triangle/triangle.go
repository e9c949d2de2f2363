// Package triangle draws a single orange triangle.
package triangle

import (
	"dasa.cc/dlwin/glw"
	"dasa.cc/dlwin/nui"
	"golang.org/x/image/math/f32"
)

const VertexShader glw.VertSrc = `#version 330 core
layout (location = 0) in vec2 aPos;

void main()
{
    gl_Position = vec4(aPos.x, aPos.y, 0.0, 1.0);
}
`

const FragmentShader glw.FragSrc = `#version 330 core
out vec4 FragColor;

void main()
{
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`

// Vertices in normalized device coordinates.
var Vertices = []f32.Vec2{
	{+0.0, +0.5},
	{-0.5, -0.5},
	{+0.5, -0.5},
}

var ClearColor = f32.Vec4{0.2, 0.3, 0.3, 1.0}

// Scene is a nui.Scene holding the triangle's GL objects.
type Scene struct {
	ctx  glw.Context
	prg  glw.Program
	vert glw.VertexArray
}

var _ nui.Scene = (*Scene)(nil)

func (s *Scene) Create(win nui.Window, load func() (glw.Context, error)) error {
	ctx, err := load()
	if err != nil {
		return err
	}
	s.ctx = glw.With(ctx)

	width, height := win.FramebufferSize()
	s.ctx.Viewport(0, 0, int32(width), int32(height))

	s.vert.Create(glw.STATIC_DRAW, glw.Vec2s(Vertices...))
	if err := s.prg.Build(VertexShader, FragmentShader); err != nil {
		s.vert.Delete()
		return err
	}
	return nil
}

func (s *Scene) Draw() {
	c := ClearColor
	s.ctx.ClearColor(c[0], c[1], c[2], c[3])
	s.ctx.Clear(glw.COLOR_BUFFER_BIT)
	s.prg.Use()
	s.vert.Bind()
	s.vert.Draw(glw.TRIANGLES)
}

func (s *Scene) Delete() {
	s.prg.Delete()
	s.vert.Delete()
}
