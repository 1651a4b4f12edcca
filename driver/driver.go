// Package driver defines the device contract the ren packages render through.
//
// API is the complete set of native entry points ren needs from a graphics
// device: resource create/delete, buffer upload/readback, shader
// compile/link/validate with log retrieval, texture storage/upload, uniform
// lookup and value sets, and diagnostic hooks. The gl45 subpackage implements
// it over OpenGL 4.5 core; drivertest implements it in memory for tests.
//
// Object ids are uint32 values assigned by the device. Zero is never a valid
// id for a successfully created object; callers treat it as the always-invalid
// sentinel.
package driver

import "fmt"

// API is the device seam. Implementations are not safe for concurrent use;
// every call must happen on the thread that owns the current native context.
type API interface {
	// Buffers.

	// CreateBuffer allocates one buffer object and returns its id.
	CreateBuffer() uint32
	// DeleteBuffer releases a buffer id. Deleting id 0 is a no-op.
	DeleteBuffer(buf uint32)
	// BufferData replaces the entire data store of buf. The usage constant
	// (StreamDraw, StaticDraw, DynamicDraw) is a performance hint only.
	BufferData(buf uint32, data []byte, usage uint32)
	// ReadBufferData copies len(out) bytes starting at offset from the data
	// store of buf into out. The range must lie inside the store.
	ReadBufferData(buf uint32, offset int, out []byte)

	// Vertex arrays.

	CreateVertexArray() uint32
	DeleteVertexArray(va uint32)
	BindVertexArray(va uint32)
	// VertexArrayVertexBuffer attaches buf to a binding index of va at a byte
	// offset with a byte stride between consecutive elements.
	VertexArrayVertexBuffer(va, binding, buf uint32, offset int, stride int32)
	// VertexArrayAttribBinding routes an attribute index of va to one of its
	// buffer binding indices.
	VertexArrayAttribBinding(va, attrib, binding uint32)
	// VertexArrayAttribFormat describes the layout of one attribute: component
	// count, component type (Float), and byte offset relative to its binding.
	VertexArrayAttribFormat(va, attrib uint32, size int32, xtype uint32, normalized bool, relOffset uint32)
	EnableVertexArrayAttrib(va, attrib uint32)
	DisableVertexArrayAttrib(va, attrib uint32)

	// Shader stages.

	// CreateShader allocates a stage object of the given type (VertexShader,
	// FragmentShader, GeometryShader, ComputeShader).
	CreateShader(xtype uint32) uint32
	DeleteShader(shader uint32)
	// ShaderSource replaces the source text of shader.
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	// CompileStatus reports whether the last compile of shader succeeded.
	CompileStatus(shader uint32) bool
	// ShaderInfoLog returns the compiler diagnostic text for shader, empty if
	// the device produced none.
	ShaderInfoLog(shader uint32) string

	// Programs.

	CreateProgram() uint32
	DeleteProgram(program uint32)
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	LinkStatus(program uint32) bool
	ValidateProgram(program uint32)
	ValidateStatus(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	// UniformLocation resolves a uniform name in a linked program. A negative
	// location means the name is not active in the program.
	UniformLocation(program uint32, name string) int32

	// Program-scoped uniform stores.

	Uniform1f(program uint32, location int32, v float32)
	Uniform2f(program uint32, location int32, v0, v1 float32)
	Uniform3f(program uint32, location int32, v0, v1, v2 float32)
	Uniform4f(program uint32, location int32, v0, v1, v2, v3 float32)
	Uniform1i(program uint32, location int32, v int32)
	// UniformMatrix4 stores a column-major 4x4 float matrix.
	UniformMatrix4(program uint32, location int32, m *[16]float32)

	// Textures.

	// CreateTexture allocates a texture object for a target (Texture2D).
	CreateTexture(target uint32) uint32
	DeleteTexture(tex uint32)
	// TextureStorage2D allocates immutable storage: mip level count, internal
	// format (R8, RG8, RGB8, RGBA8) and pixel dimensions are fixed for the
	// lifetime of tex.
	TextureStorage2D(tex uint32, levels int32, internalFormat uint32, w, h int32)
	// TextureSubImage2D uploads unsigned-byte pixels into a sub-rectangle of
	// one mip level. format describes the component layout of pixels.
	TextureSubImage2D(tex uint32, level, x, y, w, h int32, format uint32, pixels []byte)
	TextureParameter(tex uint32, pname uint32, param int32)
	// BindTextureUnit makes tex current on a sampler unit.
	BindTextureUnit(unit, tex uint32)

	// Frame state.

	Viewport(x, y, w, h int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	DrawArrays(mode uint32, first, count int32)

	// Diagnostics.

	// PollError pops one pending error code, or NoError when none remain.
	PollError() uint32
	GetInteger(pname uint32) int32
	GetString(name uint32) string
	// DebugOutputSupported reports whether the device can deliver debug
	// messages through a callback (4.3 and newer).
	DebugOutputSupported() bool
	// EnableDebugOutput turns on synchronous debug output and routes every
	// message to fn. Only effective when DebugOutputSupported reports true.
	EnableDebugOutput(fn func(DebugMessage))
}

// DebugMessage is one device diagnostic in readable form. Implementations
// resolve the numeric source/type/severity enums to short lower-case names so
// consumers can log them directly.
type DebugMessage struct {
	Source   string
	Kind     string
	Severity string
	ID       uint32
	Message  string
}

// ErrorName returns the conventional name of a device error code, or a hex
// rendering for codes it does not know.
func ErrorName(code uint32) string {
	switch code {
	case NoError:
		return "no error"
	case InvalidEnum:
		return "invalid enum"
	case InvalidValue:
		return "invalid value"
	case InvalidOperation:
		return "invalid operation"
	case StackOverflow:
		return "stack overflow"
	case StackUnderflow:
		return "stack underflow"
	case OutOfMemory:
		return "out of memory"
	case InvalidFramebufferOperation:
		return "invalid framebuffer operation"
	case ContextLost:
		return "context lost"
	}
	return fmt.Sprintf("0x%04x", code)
}
