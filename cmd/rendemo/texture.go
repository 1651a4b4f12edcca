package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/urfave/cli"

	"github.com/gogpu/ren"
	"github.com/gogpu/ren/app"
)

const quadVertexSrc = `#version 450 core
layout(location = 0) in vec2 a_pos;
layout(location = 1) in vec2 a_uv;

out vec2 v_uv;

void main() {
	v_uv = a_uv;
	gl_Position = vec4(a_pos, 0.0, 1.0);
}
`

const quadFragmentSrc = `#version 450 core
in vec2 v_uv;

uniform sampler2D u_tex;

out vec4 o_color;

void main() {
	o_color = texture(u_tex, v_uv);
}
`

func runTexture(cliCtx *cli.Context) error {
	q := &texturedQuad{}
	if path := cliCtx.String("image"); path != "" {
		img, err := loadImage(path)
		if err != nil {
			return err
		}
		q.img = img
		q.smooth = true
	} else {
		q.img = checkerImage(8, 8)
	}

	return app.Run(q,
		app.WithTitle("rendemo texture"),
		app.WithSize(cliCtx.Int("width"), cliCtx.Int("height")),
		app.WithDebug(cliCtx.GlobalBool("debug")),
	)
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// checkerImage builds a cells×cells black and white checkerboard, one pixel
// per cell. Texture filtering blows it up to the quad.
func checkerImage(cellsX, cellsY int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cellsX, cellsY))
	for y := 0; y < cellsY; y++ {
		for x := 0; x < cellsX; x++ {
			c := color.RGBA{30, 30, 34, 255}
			if (x+y)%2 == 0 {
				c = color.RGBA{220, 220, 228, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

type texturedQuad struct {
	img    image.Image
	smooth bool

	sh  *ren.Shader
	va  *ren.VertexArray
	tex *ren.Texture
	loc ren.UniformLocation
}

func (q *texturedQuad) Init(ctx *ren.Context) error {
	vs, err := ctx.NewShaderStage(ren.VertexStage, quadVertexSrc)
	if err != nil {
		return err
	}
	fs, err := ctx.NewShaderStage(ren.FragmentStage, quadFragmentSrc)
	if err != nil {
		return err
	}
	q.sh, err = ctx.NewShader(vs, fs)
	if err != nil {
		return err
	}
	vs.Destroy()
	fs.Destroy()

	// Two triangles, interleaved x, y, u, v. The v coordinate is flipped so
	// image row zero lands at the top of the quad.
	buf := ctx.NewBuffer()
	buf.Write(ren.StaticDraw, ren.Float32Bytes(
		-0.7, -0.7, 0, 1,
		0.7, -0.7, 1, 1,
		0.7, 0.7, 1, 0,
		-0.7, -0.7, 0, 1,
		0.7, 0.7, 1, 0,
		-0.7, 0.7, 0, 0,
	))

	q.va = ctx.NewVertexArray(ren.BuildVertexArray().
		Buffer(buf).
		BindPoint(ren.BindPoint{Stride: ren.StrideOf(ren.Float2, ren.Float2)}).
		Binding(ren.AttribBinding{Attrib: 0, Binding: 0}).
		Binding(ren.AttribBinding{Attrib: 1, Binding: 0}).
		Attrib(ren.AttribFormat{Index: 0, Kind: ren.Float2}).
		Attrib(ren.AttribFormat{Index: 1, Kind: ren.Float2, RelOffset: 8}))

	q.tex = ctx.NewTexture(256, 256, ren.RGBA8)
	q.tex.UploadImage(q.img)
	if q.smooth {
		q.tex.SetFilter(ren.Linear)
	}

	q.loc, _ = q.sh.UniformLocation("u_tex")

	ctx.ClearColor(0.08, 0.09, 0.11, 1)
	return nil
}

func (q *texturedQuad) Draw(ctx *ren.Context) {
	ctx.Clear(ren.ColorBuffer)
	q.sh.Use()
	q.tex.Bind(0)
	q.sh.SetInt(q.loc, 0)
	q.va.Bind()
	q.va.DrawTriangles(0, 2)
}
