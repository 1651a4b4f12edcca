package main

import (
	"bytes"
	"fmt"

	"github.com/urfave/cli"

	"github.com/gogpu/ren"
	"github.com/gogpu/ren/app"
)

// runHeadless exercises buffer upload, readback, and texture storage on a
// hidden context. It reports a mismatch as an error so CI can run it.
func runHeadless(cliCtx *cli.Context) error {
	return app.RunHeadless(func(ctx *ren.Context) error {
		buf := ctx.NewBuffer()
		want := ren.Float32Bytes(0.5, -1.25, 42, 0.001)
		buf.Write(ren.StaticDraw, want)

		got := make([]byte, len(want))
		buf.Read(0, got)
		if !bytes.Equal(got, want) {
			return fmt.Errorf("buffer readback mismatch: got % x, want % x", got, want)
		}
		fmt.Printf("buffer: wrote and read back %d bytes\n", len(want))

		tex := ctx.NewTexture(16, 16, ren.RGBA8)
		pixels := make([]byte, 16*16*4)
		for i := range pixels {
			pixels[i] = byte(i)
		}
		tex.UploadSubImage(0, 0, 16, 16, ren.PixelRGBA, pixels)
		w, h := tex.Size()
		fmt.Printf("texture: uploaded %dx%d RGBA\n", w, h)
		return nil
	}, app.WithDebug(cliCtx.GlobalBool("debug")))
}
