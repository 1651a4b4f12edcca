package main

import (
	"math"

	"github.com/urfave/cli"

	"github.com/gogpu/ren"
	"github.com/gogpu/ren/app"
)

const triangleVertexSrc = `#version 450 core
layout(location = 0) in vec2 a_pos;
layout(location = 1) in vec3 a_color;

uniform mat4 u_transform;

out vec3 v_color;

void main() {
	v_color = a_color;
	gl_Position = u_transform * vec4(a_pos, 0.0, 1.0);
}
`

const triangleFragmentSrc = `#version 450 core
in vec3 v_color;

out vec4 o_color;

void main() {
	o_color = vec4(v_color, 1.0);
}
`

func runTriangle(cliCtx *cli.Context) error {
	return app.Run(&triangle{},
		app.WithTitle("rendemo triangle"),
		app.WithSize(cliCtx.Int("width"), cliCtx.Int("height")),
		app.WithDebug(cliCtx.GlobalBool("debug")),
	)
}

type triangle struct {
	sh        *ren.Shader
	va        *ren.VertexArray
	transform ren.UniformLocation
	hasLoc    bool
	angle     float32
}

func (t *triangle) Init(ctx *ren.Context) error {
	vs, err := ctx.NewShaderStage(ren.VertexStage, triangleVertexSrc)
	if err != nil {
		return err
	}
	fs, err := ctx.NewShaderStage(ren.FragmentStage, triangleFragmentSrc)
	if err != nil {
		return err
	}
	t.sh, err = ctx.NewShader(vs, fs)
	if err != nil {
		return err
	}
	// The linked program no longer needs the stage objects.
	vs.Destroy()
	fs.Destroy()

	// Interleaved x, y, r, g, b per vertex.
	buf := ctx.NewBuffer()
	buf.Write(ren.StaticDraw, ren.Float32Bytes(
		-0.6, -0.5, 1.0, 0.3, 0.2,
		0.6, -0.5, 0.2, 1.0, 0.3,
		0.0, 0.65, 0.3, 0.2, 1.0,
	))

	t.va = ctx.NewVertexArray(ren.BuildVertexArray().
		Buffer(buf).
		BindPoint(ren.BindPoint{Stride: ren.StrideOf(ren.Float2, ren.Float3)}).
		Binding(ren.AttribBinding{Attrib: 0, Binding: 0}).
		Binding(ren.AttribBinding{Attrib: 1, Binding: 0}).
		Attrib(ren.AttribFormat{Index: 0, Kind: ren.Float2}).
		Attrib(ren.AttribFormat{Index: 1, Kind: ren.Float3, RelOffset: 8}))

	t.transform, t.hasLoc = t.sh.UniformLocation("u_transform")

	ctx.ClearColor(0.08, 0.09, 0.11, 1)
	return nil
}

func (t *triangle) Update() {
	t.angle += 0.015
	if t.angle > 2*math.Pi {
		t.angle -= 2 * math.Pi
	}
}

func (t *triangle) Draw(ctx *ren.Context) {
	ctx.Clear(ren.ColorBuffer)
	t.sh.Use()
	if t.hasLoc {
		m := rotationZ(t.angle)
		t.sh.SetMat4(t.transform, &m)
	}
	t.va.Bind()
	t.va.DrawTriangles(0, 1)
}

// rotationZ returns a column-major rotation about the Z axis.
func rotationZ(angle float32) [16]float32 {
	s := float32(math.Sin(float64(angle)))
	c := float32(math.Cos(float64(angle)))
	return [16]float32{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}
