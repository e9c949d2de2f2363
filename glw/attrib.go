package glw

// A2fv is the location of a vec2 vertex attribute.
type A2fv uint32

func (a A2fv) Enable() { ctx.EnableVertexAttribArray(uint32(a)) }
func (a A2fv) Pointer() {
	a.Enable()
	ctx.VertexAttribPointer(uint32(a), 2, FLOAT, false, 0, 0)
}

// VertexArray binds a FloatBuffer of vec2 positions to attribute Vert.
type VertexArray struct {
	Array  uint32
	Vert   A2fv
	Floats FloatBuffer
}

// Create generates the vertex array, uploads data and records the attribute
// layout into the array.
func (va *VertexArray) Create(usage uint32, data []float32) {
	va.Array = ctx.GenVertexArray()
	va.Bind()
	va.Floats.Create(usage, data)
	va.Vert.Pointer()
}

func (va VertexArray) Bind() { ctx.BindVertexArray(va.Array) }

// Draw renders all vertices of the array with mode.
func (va VertexArray) Draw(mode uint32) { ctx.DrawArrays(mode, 0, int32(va.Floats.Count()/2)) }

// Delete frees the vertex array then its buffer.
func (va VertexArray) Delete() {
	ctx.DeleteVertexArray(va.Array)
	va.Floats.Delete()
}
