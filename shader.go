package ren

import (
	"fmt"
	"strings"

	"github.com/gogpu/ren/driver"
)

// StageKind selects which pipeline stage a shader source compiles for.
type StageKind int

const (
	VertexStage StageKind = iota
	FragmentStage
	GeometryStage
	ComputeStage
)

func (k StageKind) String() string {
	switch k {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	case GeometryStage:
		return "geometry"
	case ComputeStage:
		return "compute"
	}
	return "unknown"
}

func (k StageKind) value() uint32 {
	switch k {
	case VertexStage:
		return driver.VertexShader
	case FragmentStage:
		return driver.FragmentShader
	case GeometryStage:
		return driver.GeometryShader
	case ComputeStage:
		return driver.ComputeShader
	}
	panic(fmt.Sprintf("ren: unknown stage kind %d", int(k)))
}

// ShaderStage owns one compiled stage object, the input to Shader linking.
type ShaderStage struct {
	ctx       *Context // nil for unchecked stages
	api       driver.API
	id        uint32
	kind      StageKind
	destroyed bool
}

// NewShaderStage compiles src for one pipeline stage. On compile failure the
// stage object is still released (the handle exists before compilation is
// attempted) and the returned *CompileError carries the raw id, the stage
// kind, and the device's full diagnostic text.
func (c *Context) NewShaderStage(kind StageKind, src string) (*ShaderStage, error) {
	c.assertLive("shader stage create")
	st, err := newShaderStage(c, c.api, kind, src)
	if err != nil {
		return nil, err
	}
	c.track(st)
	return st, nil
}

// NewShaderStageUnchecked compiles a stage bound to no context. The caller
// asserts that a native context is current and outlives the handle, and must
// call Destroy itself.
func NewShaderStageUnchecked(api driver.API, kind StageKind, src string) (*ShaderStage, error) {
	return newShaderStage(nil, api, kind, src)
}

func newShaderStage(ctx *Context, api driver.API, kind StageKind, src string) (*ShaderStage, error) {
	id := api.CreateShader(kind.value())
	if id == 0 {
		panic("ren: shader stage create returned id 0")
	}
	// Handle first, compile second: the release path must run even when
	// compilation fails.
	st := &ShaderStage{ctx: ctx, api: api, id: id, kind: kind}
	api.ShaderSource(id, src)
	api.CompileShader(id)
	if !api.CompileStatus(id) {
		log := api.ShaderInfoLog(id)
		st.Destroy()
		return nil, &CompileError{ID: id, Stage: kind, Log: log}
	}
	// Some compilers emit diagnostics even on success; surface them.
	if log := strings.TrimSpace(api.ShaderInfoLog(id)); log != "" {
		Logger().Warn("stage compiled with diagnostics", "stage", kind, "id", id, "log", log)
	}
	return st, nil
}

func (st *ShaderStage) guard(op string) {
	if st.destroyed {
		panic("ren: " + op + " on destroyed shader stage")
	}
	if st.ctx != nil {
		st.ctx.assertLive(op)
	}
}

// ID returns the raw device id.
func (st *ShaderStage) ID() uint32 {
	st.guard("shader stage id")
	return st.id
}

// Kind returns the pipeline stage this stage was compiled for.
func (st *ShaderStage) Kind() StageKind {
	st.guard("shader stage kind")
	return st.kind
}

// Destroy releases the stage object. It releases exactly once; later calls
// are no-ops. Stages owned by a context are destroyed by its Close.
func (st *ShaderStage) Destroy() {
	if st.destroyed {
		return
	}
	st.destroyed = true
	st.api.DeleteShader(st.id)
}

// Shader owns one linked program.
type Shader struct {
	ctx       *Context // nil for unchecked shaders
	api       driver.API
	id        uint32
	destroyed bool
}

// NewShader links previously compiled stages into a program and validates
// it. Stages are attached only for the duration of the link and detached
// again whatever the outcome; they remain usable for further links and still
// need their own Destroy. Link failure returns a *LinkError, a successful
// link that fails validation a *ValidateError, each carrying the raw program
// id and diagnostic text.
func (c *Context) NewShader(stages ...*ShaderStage) (*Shader, error) {
	c.assertLive("shader create")
	sh, err := newShader(c, c.api, stages)
	if err != nil {
		return nil, err
	}
	c.track(sh)
	return sh, nil
}

// NewShaderUnchecked links a program bound to no context. The caller asserts
// that a native context is current and outlives the handle, and must call
// Destroy itself.
func NewShaderUnchecked(api driver.API, stages ...*ShaderStage) (*Shader, error) {
	return newShader(nil, api, stages)
}

func newShader(ctx *Context, api driver.API, stages []*ShaderStage) (*Shader, error) {
	// Check the stages before the program object exists so a dead stage
	// cannot leak it.
	for _, st := range stages {
		st.guard("shader stage attach")
	}
	id := api.CreateProgram()
	if id == 0 {
		panic("ren: shader create returned id 0")
	}
	sh := &Shader{ctx: ctx, api: api, id: id}
	for _, st := range stages {
		api.AttachShader(id, st.id)
	}
	api.LinkProgram(id)
	// Attachment is transient: detach before looking at the outcome.
	for _, st := range stages {
		api.DetachShader(id, st.id)
	}
	if !api.LinkStatus(id) {
		log := api.ProgramInfoLog(id)
		sh.Destroy()
		return nil, &LinkError{ID: id, Log: log}
	}
	api.ValidateProgram(id)
	if !api.ValidateStatus(id) {
		log := api.ProgramInfoLog(id)
		sh.Destroy()
		return nil, &ValidateError{ID: id, Log: log}
	}
	return sh, nil
}

func (sh *Shader) guard(op string) {
	if sh.destroyed {
		panic("ren: " + op + " on destroyed shader")
	}
	if sh.ctx != nil {
		sh.ctx.assertLive(op)
	}
}

// ID returns the raw device id.
func (sh *Shader) ID() uint32 {
	sh.guard("shader id")
	return sh.id
}

// Use makes the program current for subsequent draws.
func (sh *Shader) Use() {
	sh.guard("shader use")
	sh.api.UseProgram(sh.id)
}

// Destroy releases the program. It releases exactly once; later calls are
// no-ops. Shaders owned by a context are destroyed by its Close.
func (sh *Shader) Destroy() {
	if sh.destroyed {
		return
	}
	sh.destroyed = true
	sh.api.DeleteProgram(sh.id)
}
