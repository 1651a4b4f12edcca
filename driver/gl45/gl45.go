// Package gl45 implements driver.API over OpenGL 4.5 core.
//
// Every resource call uses direct state access, so nothing here disturbs
// binding points user code may hold through Context.Driver. The package
// issues no calls before Open, which must run with the window's context
// current on the calling thread.
package gl45

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"

	"github.com/gogpu/ren/driver"
)

// Open loads the device's function pointers against the context current on
// this thread and returns the driver. Pixel rows are set to tight packing;
// the safe layer's uploads assume no row padding.
func Open() (driver.API, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl45: loading device functions: %w", err)
	}
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	return api{}, nil
}

// api is stateless; all state lives on the device.
type api struct{}

// Buffers.

func (api) CreateBuffer() uint32 {
	var id uint32
	gl.CreateBuffers(1, &id)
	return id
}

func (api) DeleteBuffer(buf uint32) {
	gl.DeleteBuffers(1, &buf)
}

func (api) BufferData(buf uint32, data []byte, usage uint32) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.NamedBufferData(buf, len(data), ptr, usage)
}

func (api) ReadBufferData(buf uint32, offset int, out []byte) {
	if len(out) == 0 {
		return
	}
	gl.GetNamedBufferSubData(buf, offset, len(out), gl.Ptr(out))
}

// Vertex arrays.

func (api) CreateVertexArray() uint32 {
	var id uint32
	gl.CreateVertexArrays(1, &id)
	return id
}

func (api) DeleteVertexArray(va uint32) {
	gl.DeleteVertexArrays(1, &va)
}

func (api) BindVertexArray(va uint32) {
	gl.BindVertexArray(va)
}

func (api) VertexArrayVertexBuffer(va, binding, buf uint32, offset int, stride int32) {
	gl.VertexArrayVertexBuffer(va, binding, buf, offset, stride)
}

func (api) VertexArrayAttribBinding(va, attrib, binding uint32) {
	gl.VertexArrayAttribBinding(va, attrib, binding)
}

func (api) VertexArrayAttribFormat(va, attrib uint32, size int32, xtype uint32, normalized bool, relOffset uint32) {
	gl.VertexArrayAttribFormat(va, attrib, size, xtype, normalized, relOffset)
}

func (api) EnableVertexArrayAttrib(va, attrib uint32) {
	gl.EnableVertexArrayAttrib(va, attrib)
}

func (api) DisableVertexArrayAttrib(va, attrib uint32) {
	gl.DisableVertexArrayAttrib(va, attrib)
}

// Shader stages.

func (api) CreateShader(xtype uint32) uint32 {
	return gl.CreateShader(xtype)
}

func (api) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (api) ShaderSource(shader uint32, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (api) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (api) CompileStatus(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (api) ShaderInfoLog(shader uint32) string {
	var n int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
	if n <= 1 {
		// One byte is just the terminator.
		return ""
	}
	buf := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(shader, n, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

// Programs.

func (api) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (api) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (api) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (api) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (api) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (api) LinkStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (api) ValidateProgram(program uint32) {
	gl.ValidateProgram(program)
}

func (api) ValidateStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.VALIDATE_STATUS, &status)
	return status == gl.TRUE
}

func (api) ProgramInfoLog(program uint32) string {
	var n int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
	if n <= 1 {
		return ""
	}
	buf := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(program, n, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

func (api) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (api) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// Uniform stores.

func (api) Uniform1f(program uint32, location int32, v float32) {
	gl.ProgramUniform1f(program, location, v)
}

func (api) Uniform2f(program uint32, location int32, v0, v1 float32) {
	gl.ProgramUniform2f(program, location, v0, v1)
}

func (api) Uniform3f(program uint32, location int32, v0, v1, v2 float32) {
	gl.ProgramUniform3f(program, location, v0, v1, v2)
}

func (api) Uniform4f(program uint32, location int32, v0, v1, v2, v3 float32) {
	gl.ProgramUniform4f(program, location, v0, v1, v2, v3)
}

func (api) Uniform1i(program uint32, location int32, v int32) {
	gl.ProgramUniform1i(program, location, v)
}

func (api) UniformMatrix4(program uint32, location int32, m *[16]float32) {
	gl.ProgramUniformMatrix4fv(program, location, 1, false, &m[0])
}

// Textures.

func (api) CreateTexture(target uint32) uint32 {
	var id uint32
	gl.CreateTextures(target, 1, &id)
	return id
}

func (api) DeleteTexture(tex uint32) {
	gl.DeleteTextures(1, &tex)
}

func (api) TextureStorage2D(tex uint32, levels int32, internalFormat uint32, w, h int32) {
	gl.TextureStorage2D(tex, levels, internalFormat, w, h)
}

func (api) TextureSubImage2D(tex uint32, level, x, y, w, h int32, format uint32, pixels []byte) {
	gl.TextureSubImage2D(tex, level, x, y, w, h, format, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

func (api) TextureParameter(tex uint32, pname uint32, param int32) {
	gl.TextureParameteri(tex, pname, param)
}

func (api) BindTextureUnit(unit, tex uint32) {
	gl.BindTextureUnit(unit, tex)
}

// Frame state.

func (api) Viewport(x, y, w, h int32) {
	gl.Viewport(x, y, w, h)
}

func (api) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (api) Clear(mask uint32) {
	gl.Clear(mask)
}

func (api) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}

// Diagnostics.

func (api) PollError() uint32 {
	return gl.GetError()
}

func (api) GetInteger(pname uint32) int32 {
	var v int32
	gl.GetIntegerv(pname, &v)
	return v
}

func (api) GetString(name uint32) string {
	ptr := gl.GetString(name)
	if ptr == nil {
		return ""
	}
	return gl.GoStr(ptr)
}
