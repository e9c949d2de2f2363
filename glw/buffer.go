package glw

import "math"

type FloatBuffer struct {
	Buffer uint32
	bin    []byte
	count  int
	usage  uint32
}

func (buf *FloatBuffer) Create(usage uint32, data []float32) {
	buf.usage = usage
	buf.Buffer = ctx.GenBuffer()
	buf.Bind()
	buf.Update(data)
}

func (buf FloatBuffer) Delete()    { ctx.DeleteBuffer(buf.Buffer) }
func (buf *FloatBuffer) Bind()     { ctx.BindBuffer(ARRAY_BUFFER, buf.Buffer) }
func (buf FloatBuffer) Count() int { return buf.count }

// Update uploads data to the bound buffer as little-endian float32s.
func (buf *FloatBuffer) Update(data []float32) {
	buf.count = len(data)
	if len(buf.bin) != len(data)*4 {
		buf.bin = make([]byte, len(data)*4)
	}
	for i, x := range data {
		u := math.Float32bits(x)
		buf.bin[4*i+0] = byte(u >> 0)
		buf.bin[4*i+1] = byte(u >> 8)
		buf.bin[4*i+2] = byte(u >> 16)
		buf.bin[4*i+3] = byte(u >> 24)
	}
	ctx.BufferData(ARRAY_BUFFER, buf.bin, buf.usage)
}
