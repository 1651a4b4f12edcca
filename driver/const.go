package driver

// Numeric values follow the OpenGL 4.5 core registry so gl45 can pass them
// through unchanged; other implementations only need to treat them as opaque.

// Buffer usage hints.
const (
	StreamDraw  uint32 = 0x88E0
	StaticDraw  uint32 = 0x88E4
	DynamicDraw uint32 = 0x88E8
)

// Shader stage types.
const (
	FragmentShader uint32 = 0x8B30
	VertexShader   uint32 = 0x8B31
	GeometryShader uint32 = 0x8DD9
	ComputeShader  uint32 = 0x91B9
)

// Texture targets.
const (
	Texture2D uint32 = 0x0DE1
)

// Sized internal formats for texture storage.
const (
	R8    uint32 = 0x8229
	RG8   uint32 = 0x822B
	RGB8  uint32 = 0x8051
	RGBA8 uint32 = 0x8058
)

// Pixel transfer formats.
const (
	Red  uint32 = 0x1903
	RG   uint32 = 0x8227
	RGB  uint32 = 0x1907
	RGBA uint32 = 0x1908
)

// Component types.
const (
	UnsignedByte uint32 = 0x1401
	Float        uint32 = 0x1406
)

// Texture parameter names.
const (
	TextureMagFilter uint32 = 0x2800
	TextureMinFilter uint32 = 0x2801
	TextureWrapS     uint32 = 0x2802
	TextureWrapT     uint32 = 0x2803
	TextureBaseLevel uint32 = 0x813C
	TextureMaxLevel  uint32 = 0x813D
)

// Texture wrap modes.
const (
	Repeat         uint32 = 0x2901
	ClampToBorder  uint32 = 0x812D
	ClampToEdge    uint32 = 0x812F
	MirroredRepeat uint32 = 0x8370
)

// Texture filters.
const (
	Nearest uint32 = 0x2600
	Linear  uint32 = 0x2601
)

// Clear mask bits.
const (
	DepthBufferBit   uint32 = 0x0100
	StencilBufferBit uint32 = 0x0400
	ColorBufferBit   uint32 = 0x4000
)

// Draw modes.
const (
	Points    uint32 = 0x0000
	Triangles uint32 = 0x0004
)

// Error codes returned by PollError.
const (
	NoError                     uint32 = 0
	InvalidEnum                 uint32 = 0x0500
	InvalidValue                uint32 = 0x0501
	InvalidOperation            uint32 = 0x0502
	StackOverflow               uint32 = 0x0503
	StackUnderflow              uint32 = 0x0504
	OutOfMemory                 uint32 = 0x0505
	InvalidFramebufferOperation uint32 = 0x0506
	ContextLost                 uint32 = 0x0507
)

// String names for GetString.
const (
	Vendor                 uint32 = 0x1F00
	Renderer               uint32 = 0x1F01
	Version                uint32 = 0x1F02
	ShadingLanguageVersion uint32 = 0x8B8C
)

// Integer names for GetInteger.
const (
	MaxTextureSize   uint32 = 0x0D33
	MajorVersion     uint32 = 0x821B
	MinorVersion     uint32 = 0x821C
	MaxVertexAttribs uint32 = 0x8869
)
