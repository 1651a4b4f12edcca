// Package drivertest provides an in-memory driver.API for tests.
//
// The fake hands out sequential ids per object class, stores buffer contents
// so reads observe writes, and records every call in Ops so tests can assert
// on call order. Scripting knobs (FailCompile, FailLink, FailValidate,
// Uniforms, Errors) shape the outcomes the real device would produce. The
// fake panics on calls the safe layer must never issue (double deletes,
// reads past a stored size) so a broken guard fails tests loudly.
package drivertest

import (
	"fmt"

	"github.com/gogpu/ren/driver"
)

// API implements driver.API in memory. The zero value is not ready; use New.
type API struct {
	// Ops is the readable call trace, one entry per driver call, in order.
	Ops []string

	// FailCompile makes every subsequent CompileShader fail with CompileLog.
	FailCompile bool
	CompileLog  string

	// FailLink makes every subsequent LinkProgram fail with LinkLog.
	FailLink bool
	LinkLog  string

	// FailValidate makes every subsequent ValidateProgram fail with
	// ValidateLog.
	FailValidate bool
	ValidateLog  string

	// Uniforms maps program id to uniform name to location. Missing names
	// resolve to -1 like the real device.
	Uniforms map[uint32]map[string]int32

	// Errors queues the codes PollError pops, oldest first.
	Errors []uint32

	// Integers and Strings back GetInteger and GetString.
	Integers map[uint32]int32
	Strings  map[uint32]string

	// DebugSupport is what DebugOutputSupported reports.
	DebugSupport bool

	// LastPixels holds a copy of the bytes passed to the most recent
	// TextureSubImage2D call.
	LastPixels []byte

	debugFn func(driver.DebugMessage)

	nextBuffer  uint32
	nextArray   uint32
	nextShader  uint32
	nextProgram uint32
	nextTexture uint32

	buffers   map[uint32][]byte
	arrays    map[uint32]bool
	shaders   map[uint32]bool
	programs  map[uint32]bool
	textures  map[uint32]bool
	compiled  map[uint32]bool
	linked    map[uint32]bool
	validated map[uint32]bool
}

// New returns an empty, ready fake.
func New() *API {
	return &API{
		Uniforms:  map[uint32]map[string]int32{},
		Integers:  map[uint32]int32{},
		Strings:   map[uint32]string{},
		buffers:   map[uint32][]byte{},
		arrays:    map[uint32]bool{},
		shaders:   map[uint32]bool{},
		programs:  map[uint32]bool{},
		textures:  map[uint32]bool{},
		compiled:  map[uint32]bool{},
		linked:    map[uint32]bool{},
		validated: map[uint32]bool{},
	}
}

func (a *API) op(format string, args ...any) {
	a.Ops = append(a.Ops, fmt.Sprintf(format, args...))
}

// Calls returns the entries of Ops whose method name is name.
func (a *API) Calls(name string) []string {
	var out []string
	for _, o := range a.Ops {
		if n := len(name); len(o) >= n && o[:n] == name && (len(o) == n || o[n] == ' ') {
			out = append(out, o)
		}
	}
	return out
}

// Buffers.

func (a *API) CreateBuffer() uint32 {
	a.nextBuffer++
	id := a.nextBuffer
	a.buffers[id] = nil
	a.op("CreateBuffer %d", id)
	return id
}

func (a *API) DeleteBuffer(buf uint32) {
	if _, ok := a.buffers[buf]; !ok {
		panic(fmt.Sprintf("drivertest: DeleteBuffer %d not alive", buf))
	}
	delete(a.buffers, buf)
	a.op("DeleteBuffer %d", buf)
}

func (a *API) BufferData(buf uint32, data []byte, usage uint32) {
	if _, ok := a.buffers[buf]; !ok {
		panic(fmt.Sprintf("drivertest: BufferData %d not alive", buf))
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	a.buffers[buf] = stored
	a.op("BufferData %d %d %#x", buf, len(data), usage)
}

func (a *API) ReadBufferData(buf uint32, offset int, out []byte) {
	stored, ok := a.buffers[buf]
	if !ok {
		panic(fmt.Sprintf("drivertest: ReadBufferData %d not alive", buf))
	}
	if offset < 0 || offset+len(out) > len(stored) {
		panic(fmt.Sprintf("drivertest: ReadBufferData %d range [%d:%d] outside store of %d",
			buf, offset, offset+len(out), len(stored)))
	}
	copy(out, stored[offset:])
	a.op("ReadBufferData %d %d %d", buf, offset, len(out))
}

// Vertex arrays.

func (a *API) CreateVertexArray() uint32 {
	a.nextArray++
	id := a.nextArray
	a.arrays[id] = true
	a.op("CreateVertexArray %d", id)
	return id
}

func (a *API) DeleteVertexArray(va uint32) {
	if !a.arrays[va] {
		panic(fmt.Sprintf("drivertest: DeleteVertexArray %d not alive", va))
	}
	delete(a.arrays, va)
	a.op("DeleteVertexArray %d", va)
}

func (a *API) BindVertexArray(va uint32) {
	a.op("BindVertexArray %d", va)
}

func (a *API) VertexArrayVertexBuffer(va, binding, buf uint32, offset int, stride int32) {
	a.op("VertexArrayVertexBuffer %d %d %d %d %d", va, binding, buf, offset, stride)
}

func (a *API) VertexArrayAttribBinding(va, attrib, binding uint32) {
	a.op("VertexArrayAttribBinding %d %d %d", va, attrib, binding)
}

func (a *API) VertexArrayAttribFormat(va, attrib uint32, size int32, xtype uint32, normalized bool, relOffset uint32) {
	a.op("VertexArrayAttribFormat %d %d %d %#x %t %d", va, attrib, size, xtype, normalized, relOffset)
}

func (a *API) EnableVertexArrayAttrib(va, attrib uint32) {
	a.op("EnableVertexArrayAttrib %d %d", va, attrib)
}

func (a *API) DisableVertexArrayAttrib(va, attrib uint32) {
	a.op("DisableVertexArrayAttrib %d %d", va, attrib)
}

// Shader stages.

func (a *API) CreateShader(xtype uint32) uint32 {
	a.nextShader++
	id := a.nextShader
	a.shaders[id] = true
	a.op("CreateShader %#x %d", xtype, id)
	return id
}

func (a *API) DeleteShader(shader uint32) {
	if !a.shaders[shader] {
		panic(fmt.Sprintf("drivertest: DeleteShader %d not alive", shader))
	}
	delete(a.shaders, shader)
	a.op("DeleteShader %d", shader)
}

func (a *API) ShaderSource(shader uint32, src string) {
	a.op("ShaderSource %d %d", shader, len(src))
}

func (a *API) CompileShader(shader uint32) {
	a.compiled[shader] = !a.FailCompile
	a.op("CompileShader %d", shader)
}

func (a *API) CompileStatus(shader uint32) bool {
	return a.compiled[shader]
}

func (a *API) ShaderInfoLog(shader uint32) string {
	if !a.compiled[shader] {
		return a.CompileLog
	}
	return ""
}

// Programs.

func (a *API) CreateProgram() uint32 {
	a.nextProgram++
	id := a.nextProgram
	a.programs[id] = true
	a.op("CreateProgram %d", id)
	return id
}

func (a *API) DeleteProgram(program uint32) {
	if !a.programs[program] {
		panic(fmt.Sprintf("drivertest: DeleteProgram %d not alive", program))
	}
	delete(a.programs, program)
	a.op("DeleteProgram %d", program)
}

func (a *API) AttachShader(program, shader uint32) {
	a.op("AttachShader %d %d", program, shader)
}

func (a *API) DetachShader(program, shader uint32) {
	a.op("DetachShader %d %d", program, shader)
}

func (a *API) LinkProgram(program uint32) {
	a.linked[program] = !a.FailLink
	a.op("LinkProgram %d", program)
}

func (a *API) LinkStatus(program uint32) bool {
	return a.linked[program]
}

func (a *API) ValidateProgram(program uint32) {
	a.validated[program] = !a.FailValidate
	a.op("ValidateProgram %d", program)
}

func (a *API) ValidateStatus(program uint32) bool {
	return a.validated[program]
}

func (a *API) ProgramInfoLog(program uint32) string {
	if !a.linked[program] {
		return a.LinkLog
	}
	if !a.validated[program] {
		return a.ValidateLog
	}
	return ""
}

func (a *API) UseProgram(program uint32) {
	a.op("UseProgram %d", program)
}

func (a *API) UniformLocation(program uint32, name string) int32 {
	a.op("UniformLocation %d %s", program, name)
	if locs, ok := a.Uniforms[program]; ok {
		if loc, ok := locs[name]; ok {
			return loc
		}
	}
	return -1
}

// Uniform stores.

func (a *API) Uniform1f(program uint32, location int32, v float32) {
	a.op("Uniform1f %d %d %g", program, location, v)
}

func (a *API) Uniform2f(program uint32, location int32, v0, v1 float32) {
	a.op("Uniform2f %d %d %g %g", program, location, v0, v1)
}

func (a *API) Uniform3f(program uint32, location int32, v0, v1, v2 float32) {
	a.op("Uniform3f %d %d %g %g %g", program, location, v0, v1, v2)
}

func (a *API) Uniform4f(program uint32, location int32, v0, v1, v2, v3 float32) {
	a.op("Uniform4f %d %d %g %g %g %g", program, location, v0, v1, v2, v3)
}

func (a *API) Uniform1i(program uint32, location int32, v int32) {
	a.op("Uniform1i %d %d %d", program, location, v)
}

func (a *API) UniformMatrix4(program uint32, location int32, m *[16]float32) {
	a.op("UniformMatrix4 %d %d %g", program, location, m[0])
}

// Textures.

func (a *API) CreateTexture(target uint32) uint32 {
	a.nextTexture++
	id := a.nextTexture
	a.textures[id] = true
	a.op("CreateTexture %#x %d", target, id)
	return id
}

func (a *API) DeleteTexture(tex uint32) {
	if !a.textures[tex] {
		panic(fmt.Sprintf("drivertest: DeleteTexture %d not alive", tex))
	}
	delete(a.textures, tex)
	a.op("DeleteTexture %d", tex)
}

func (a *API) TextureStorage2D(tex uint32, levels int32, internalFormat uint32, w, h int32) {
	a.op("TextureStorage2D %d %d %#x %d %d", tex, levels, internalFormat, w, h)
}

func (a *API) TextureSubImage2D(tex uint32, level, x, y, w, h int32, format uint32, pixels []byte) {
	a.LastPixels = append(a.LastPixels[:0], pixels...)
	a.op("TextureSubImage2D %d %d %d %d %d %d %#x %d", tex, level, x, y, w, h, format, len(pixels))
}

func (a *API) TextureParameter(tex uint32, pname uint32, param int32) {
	a.op("TextureParameter %d %#x %d", tex, pname, param)
}

func (a *API) BindTextureUnit(unit, tex uint32) {
	a.op("BindTextureUnit %d %d", unit, tex)
}

// Frame state.

func (a *API) Viewport(x, y, w, h int32) {
	a.op("Viewport %d %d %d %d", x, y, w, h)
}

func (a *API) ClearColor(r, g, b, alpha float32) {
	a.op("ClearColor %g %g %g %g", r, g, b, alpha)
}

func (a *API) Clear(mask uint32) {
	a.op("Clear %#x", mask)
}

func (a *API) DrawArrays(mode uint32, first, count int32) {
	a.op("DrawArrays %#x %d %d", mode, first, count)
}

// Diagnostics.

func (a *API) PollError() uint32 {
	if len(a.Errors) == 0 {
		return driver.NoError
	}
	code := a.Errors[0]
	a.Errors = a.Errors[1:]
	a.op("PollError %#x", code)
	return code
}

func (a *API) GetInteger(pname uint32) int32 {
	return a.Integers[pname]
}

func (a *API) GetString(name uint32) string {
	return a.Strings[name]
}

func (a *API) DebugOutputSupported() bool {
	return a.DebugSupport
}

func (a *API) EnableDebugOutput(fn func(driver.DebugMessage)) {
	a.debugFn = fn
	a.op("EnableDebugOutput")
}

// EmitDebug delivers a message to the callback registered with
// EnableDebugOutput. It reports whether a callback was registered.
func (a *API) EmitDebug(m driver.DebugMessage) bool {
	if a.debugFn == nil {
		return false
	}
	a.debugFn(m)
	return true
}

// Alive reports how many objects of each class are still undeleted, for
// leak assertions.
func (a *API) Alive() map[string]int {
	return map[string]int{
		"buffer":  len(a.buffers),
		"array":   len(a.arrays),
		"shader":  len(a.shaders),
		"program": len(a.programs),
		"texture": len(a.textures),
	}
}
