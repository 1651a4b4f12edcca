package ren

import "fmt"

// AttribKind is the component layout of one vertex attribute. All kinds are
// 32-bit float components; the device reads them unnormalized.
type AttribKind int

const (
	Float AttribKind = iota
	Float2
	Float3
	Float4
)

// Components returns the per-vertex component count.
func (k AttribKind) Components() int32 {
	switch k {
	case Float:
		return 1
	case Float2:
		return 2
	case Float3:
		return 3
	case Float4:
		return 4
	}
	panic(fmt.Sprintf("ren: unknown attrib kind %d", int(k)))
}

// ByteSize returns the per-vertex byte size.
func (k AttribKind) ByteSize() int {
	return int(k.Components()) * 4
}

func (k AttribKind) String() string {
	switch k {
	case Float:
		return "float"
	case Float2:
		return "float2"
	case Float3:
		return "float3"
	case Float4:
		return "float4"
	}
	return "unknown"
}

// AttribFormat describes one attribute's layout inside the buffer it is
// routed to: the attribute index the shader declares, the component kind,
// and the byte offset relative to each element's start.
type AttribFormat struct {
	Index     uint32
	Kind      AttribKind
	RelOffset uint32
}

// AttribBinding routes an attribute index to a buffer bind point.
type AttribBinding struct {
	Attrib  uint32
	Binding uint32
}

// BindPoint describes how a buffer is attached to a vertex array: the
// binding index attributes route to, the byte offset of the first element,
// and the byte stride between consecutive elements.
type BindPoint struct {
	Binding uint32
	Offset  int
	Stride  int32
}

// StrideOf returns the packed byte stride of one element holding the given
// attribute kinds in order.
func StrideOf(kinds ...AttribKind) int32 {
	var n int32
	for _, k := range kinds {
		n += int32(k.ByteSize())
	}
	return n
}
