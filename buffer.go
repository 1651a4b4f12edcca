package ren

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/ren/driver"
)

// BufferUsage hints how the contents of a buffer will be written and read.
// It is a pure performance hint; no behavior depends on it.
type BufferUsage int

const (
	// StreamDraw marks contents written once and read a few times.
	StreamDraw BufferUsage = iota
	// StaticDraw marks contents written once and read many times.
	StaticDraw
	// DynamicDraw marks contents written and read many times.
	DynamicDraw
)

func (u BufferUsage) String() string {
	switch u {
	case StreamDraw:
		return "stream draw"
	case StaticDraw:
		return "static draw"
	case DynamicDraw:
		return "dynamic draw"
	}
	return "unknown"
}

func (u BufferUsage) value() uint32 {
	switch u {
	case StreamDraw:
		return driver.StreamDraw
	case StaticDraw:
		return driver.StaticDraw
	case DynamicDraw:
		return driver.DynamicDraw
	}
	panic(fmt.Sprintf("ren: unknown buffer usage %d", int(u)))
}

// Buffer owns one device buffer object and records the byte size of its
// current contents. The zero size before the first Write makes every read
// out of range until data exists.
type Buffer struct {
	ctx       *Context // nil for unchecked buffers
	api       driver.API
	id        uint32
	size      int
	destroyed bool
}

// NewBuffer creates an empty buffer owned by the context.
func (c *Context) NewBuffer() *Buffer {
	c.assertLive("buffer create")
	b := newBuffer(c, c.api)
	c.track(b)
	return b
}

// NewBufferUnchecked creates a buffer bound to no context. The caller
// asserts that a native context is current on this thread and outlives the
// handle, and must call Destroy itself.
func NewBufferUnchecked(api driver.API) *Buffer {
	return newBuffer(nil, api)
}

func newBuffer(ctx *Context, api driver.API) *Buffer {
	id := api.CreateBuffer()
	if id == 0 {
		panic("ren: buffer create returned id 0")
	}
	return &Buffer{ctx: ctx, api: api, id: id}
}

// guard panics when the buffer can no longer issue device calls.
func (b *Buffer) guard(op string) {
	if b.destroyed {
		panic("ren: " + op + " on destroyed buffer")
	}
	if b.ctx != nil {
		b.ctx.assertLive(op)
	}
}

// ID returns the raw device id, for correlation with device debug output or
// use alongside Context.Driver.
func (b *Buffer) ID() uint32 {
	b.guard("buffer id")
	return b.id
}

// Write replaces the entire contents of the buffer with data and records
// len(data) as the new size.
func (b *Buffer) Write(usage BufferUsage, data []byte) {
	b.guard("buffer write")
	b.api.BufferData(b.id, data, usage.value())
	b.size = len(data)
}

// Read copies len(out) bytes starting at offset into out. The whole range
// must lie inside the recorded size; a violation panics rather than return a
// truncated read.
func (b *Buffer) Read(offset int, out []byte) {
	b.guard("buffer read")
	if offset < 0 {
		panic(fmt.Sprintf("ren: buffer read at negative offset %d", offset))
	}
	if end := offset + len(out); end > b.size {
		panic(fmt.Sprintf("ren: buffer read out of range [%d:%d] with size %d", offset, end, b.size))
	}
	if len(out) == 0 {
		return
	}
	b.api.ReadBufferData(b.id, offset, out)
}

// Size returns the byte size recorded by the last Write.
func (b *Buffer) Size() int {
	b.guard("buffer size")
	return b.size
}

// Destroy releases the device buffer. It releases exactly once; later calls
// are no-ops. Buffers owned by a context are destroyed by its Close.
func (b *Buffer) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.api.DeleteBuffer(b.id)
}

// Float32Bytes packs values into their native in-memory byte layout, the
// form buffer uploads and attribute formats expect.
func Float32Bytes(values ...float32) []byte {
	out := make([]byte, 4*len(values))
	for i, v := range values {
		binary.NativeEndian.PutUint32(out[4*i:], math.Float32bits(v))
	}
	return out
}
