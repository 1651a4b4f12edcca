// Package ren provides a handle-safe rendering layer over an OpenGL 4.5
// class device for Go.
//
// # Overview
//
// ren wraps raw device objects (buffers, shaders, vertex arrays, textures)
// in typed handles that are created through a Context and released exactly
// once. A handle never outlives its Context: using one after Destroy, or
// after the Context closed, panics with the failing operation in the
// message instead of corrupting device state.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/ren"
//		"github.com/gogpu/ren/app"
//	)
//
//	type triangle struct {
//		sh *ren.Shader
//		va *ren.VertexArray
//	}
//
//	func (t *triangle) Init(ctx *ren.Context) error {
//		vs, err := ctx.NewShaderStage(ren.VertexStage, vertexSrc)
//		if err != nil {
//			return err
//		}
//		fs, err := ctx.NewShaderStage(ren.FragmentStage, fragmentSrc)
//		if err != nil {
//			return err
//		}
//		t.sh, err = ctx.NewShader(vs, fs)
//		if err != nil {
//			return err
//		}
//
//		buf := ctx.NewBuffer()
//		buf.Write(ren.StaticDraw, ren.Float32Bytes(
//			-0.5, -0.5,
//			0.5, -0.5,
//			0.0, 0.5,
//		))
//		t.va = ctx.NewVertexArray(ren.BuildVertexArray().
//			Buffer(buf).
//			BindPoint(ren.BindPoint{Stride: ren.StrideOf(ren.Float2)}).
//			Binding(ren.AttribBinding{}).
//			Attrib(ren.AttribFormat{Kind: ren.Float2}))
//		return nil
//	}
//
//	func (t *triangle) Draw(ctx *ren.Context) {
//		ctx.Clear(ren.ColorBuffer)
//		t.sh.Use()
//		t.va.Bind()
//		t.va.DrawTriangles(0, 1)
//	}
//
//	func main() {
//		if err := app.Run(&triangle{}, app.WithTitle("triangle")); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Resource Lifetime
//
// Every handle created through a Context is tracked by it. Destroy releases
// a handle early; Context.Close releases whatever is still alive, newest
// first, so dependent objects go before the objects they reference. Both
// are safe to call once and only once per handle; the second call panics.
//
// The *Unchecked constructors (NewBufferUnchecked and friends) skip the
// tracking for callers that manage an existing device context themselves.
// They leave the lifetime entirely to the caller.
//
// # Architecture
//
// The module is organized into:
//   - Public API: Context, Buffer, ShaderStage, Shader, VertexArray, Texture
//   - driver: the device call surface, with gl45 (real device) and
//     drivertest (recording fake) implementations
//   - wsi: windowing abstraction, with glfwwin as the desktop backend
//   - app: run loop tying a window, a driver and user callbacks together
//
// Package ren itself never touches a window. It talks to the device only
// through the driver.API it was given, which keeps every type in this
// package testable against drivertest without a display.
//
// # Diagnostics
//
// The package is silent by default. Pass a *slog.Logger to SetLogger to see
// state changes, pending device errors and debug output from the device
// when the debug option is on.
package ren

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
