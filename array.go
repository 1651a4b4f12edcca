package ren

import (
	"fmt"

	"github.com/gogpu/ren/driver"
)

// VertexArrayDesc accumulates everything a vertex array needs before it is
// materialized: participating buffers, their bind points, attribute-to-binding
// routes, and attribute formats, each kept in append order. Buffers pair
// with bind points by position; the i-th buffer is attached through the
// i-th bind point.
//
// BuildVertexArray starts an empty descriptor; the methods return the
// descriptor for chaining.
type VertexArrayDesc struct {
	buffers    []*Buffer
	bindPoints []BindPoint
	bindings   []AttribBinding
	attribs    []AttribFormat
}

// BuildVertexArray starts a new, empty descriptor.
func BuildVertexArray() *VertexArrayDesc {
	return &VertexArrayDesc{}
}

// Buffer appends a participating buffer.
func (d *VertexArrayDesc) Buffer(b *Buffer) *VertexArrayDesc {
	d.buffers = append(d.buffers, b)
	return d
}

// BindPoint appends the attachment description for the positionally
// matching buffer.
func (d *VertexArrayDesc) BindPoint(p BindPoint) *VertexArrayDesc {
	d.bindPoints = append(d.bindPoints, p)
	return d
}

// Binding appends an attribute-to-bind-point route.
func (d *VertexArrayDesc) Binding(b AttribBinding) *VertexArrayDesc {
	d.bindings = append(d.bindings, b)
	return d
}

// Attrib appends an attribute format.
func (d *VertexArrayDesc) Attrib(f AttribFormat) *VertexArrayDesc {
	d.attribs = append(d.attribs, f)
	return d
}

// VertexArray owns one device vertex array object.
type VertexArray struct {
	ctx       *Context // nil for unchecked vertex arrays
	api       driver.API
	id        uint32
	destroyed bool
}

// NewVertexArray materializes desc. The descriptor is applied in the only
// order the device defines behavior for: buffers are attached to their bind
// points first, attributes are routed to bindings second, and only then is
// each attribute enabled and formatted. Enabling an attribute that lacks a
// valid binding is undefined on the device.
func (c *Context) NewVertexArray(desc *VertexArrayDesc) *VertexArray {
	c.assertLive("vertex array create")
	va := newVertexArray(c, c.api, desc)
	c.track(va)
	return va
}

// NewVertexArrayUnchecked materializes desc bound to no context. The caller
// asserts that a native context is current and outlives the handle, and must
// call Destroy itself.
func NewVertexArrayUnchecked(api driver.API, desc *VertexArrayDesc) *VertexArray {
	return newVertexArray(nil, api, desc)
}

func newVertexArray(ctx *Context, api driver.API, desc *VertexArrayDesc) *VertexArray {
	if len(desc.buffers) != len(desc.bindPoints) {
		panic(fmt.Sprintf("ren: vertex array descriptor pairs %d buffers with %d bind points",
			len(desc.buffers), len(desc.bindPoints)))
	}
	// Check the buffers before the array object exists so a dead buffer
	// cannot leak it.
	for _, buf := range desc.buffers {
		buf.guard("vertex array buffer attach")
	}
	id := api.CreateVertexArray()
	if id == 0 {
		panic("ren: vertex array create returned id 0")
	}
	va := &VertexArray{ctx: ctx, api: api, id: id}
	for i, bp := range desc.bindPoints {
		api.VertexArrayVertexBuffer(id, bp.Binding, desc.buffers[i].id, bp.Offset, bp.Stride)
	}
	for _, b := range desc.bindings {
		api.VertexArrayAttribBinding(id, b.Attrib, b.Binding)
	}
	for _, f := range desc.attribs {
		api.EnableVertexArrayAttrib(id, f.Index)
		api.VertexArrayAttribFormat(id, f.Index, f.Kind.Components(), driver.Float, false, f.RelOffset)
	}
	return va
}

func (va *VertexArray) guard(op string) {
	if va.destroyed {
		panic("ren: " + op + " on destroyed vertex array")
	}
	if va.ctx != nil {
		va.ctx.assertLive(op)
	}
}

// ID returns the raw device id.
func (va *VertexArray) ID() uint32 {
	va.guard("vertex array id")
	return va.id
}

// Bind makes the vertex array the current vertex input state.
func (va *VertexArray) Bind() {
	va.guard("vertex array bind")
	va.api.BindVertexArray(va.id)
}

// DrawTriangles draws count triangles starting at the first-th triangle.
// Units are triangles, not vertices. The vertex array must currently be
// bound.
func (va *VertexArray) DrawTriangles(first, count int) {
	va.guard("draw triangles")
	va.api.DrawArrays(driver.Triangles, int32(first)*3, int32(count)*3)
}

// DrawPoints draws count points starting at the first-th vertex. The vertex
// array must currently be bound.
func (va *VertexArray) DrawPoints(first, count int) {
	va.guard("draw points")
	va.api.DrawArrays(driver.Points, int32(first), int32(count))
}

// Destroy releases the vertex array object. It releases exactly once; later
// calls are no-ops. Vertex arrays owned by a context are destroyed by its
// Close. The buffers it references are independent handles with their own
// lifetime.
func (va *VertexArray) Destroy() {
	if va.destroyed {
		return
	}
	va.destroyed = true
	va.api.DeleteVertexArray(va.id)
}
