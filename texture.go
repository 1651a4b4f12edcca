package ren

import (
	"fmt"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/ren/driver"
)

// InternalFormat fixes the on-device component layout of texture storage.
type InternalFormat int

const (
	R8 InternalFormat = iota
	RG8
	RGB8
	RGBA8
)

func (f InternalFormat) String() string {
	switch f {
	case R8:
		return "r8"
	case RG8:
		return "rg8"
	case RGB8:
		return "rgb8"
	case RGBA8:
		return "rgba8"
	}
	return "unknown"
}

func (f InternalFormat) value() uint32 {
	switch f {
	case R8:
		return driver.R8
	case RG8:
		return driver.RG8
	case RGB8:
		return driver.RGB8
	case RGBA8:
		return driver.RGBA8
	}
	panic(fmt.Sprintf("ren: unknown internal format %d", int(f)))
}

// PixelFormat describes the component layout of the pixel bytes handed to
// UploadSubImage. Components are unsigned bytes, tightly packed.
type PixelFormat int

const (
	PixelR PixelFormat = iota
	PixelRG
	PixelRGB
	PixelRGBA
)

// Channels returns the byte count of one pixel.
func (f PixelFormat) Channels() int {
	switch f {
	case PixelR:
		return 1
	case PixelRG:
		return 2
	case PixelRGB:
		return 3
	case PixelRGBA:
		return 4
	}
	panic(fmt.Sprintf("ren: unknown pixel format %d", int(f)))
}

func (f PixelFormat) String() string {
	switch f {
	case PixelR:
		return "r"
	case PixelRG:
		return "rg"
	case PixelRGB:
		return "rgb"
	case PixelRGBA:
		return "rgba"
	}
	return "unknown"
}

func (f PixelFormat) value() uint32 {
	switch f {
	case PixelR:
		return driver.Red
	case PixelRG:
		return driver.RG
	case PixelRGB:
		return driver.RGB
	case PixelRGBA:
		return driver.RGBA
	}
	panic(fmt.Sprintf("ren: unknown pixel format %d", int(f)))
}

// TextureWrap is the addressing mode outside the [0,1] coordinate range.
type TextureWrap int

const (
	ClampToEdge TextureWrap = iota
	ClampToBorder
	Repeat
	MirroredRepeat
)

func (w TextureWrap) String() string {
	switch w {
	case ClampToEdge:
		return "clamp to edge"
	case ClampToBorder:
		return "clamp to border"
	case Repeat:
		return "repeat"
	case MirroredRepeat:
		return "mirrored repeat"
	}
	return "unknown"
}

func (w TextureWrap) value() uint32 {
	switch w {
	case ClampToEdge:
		return driver.ClampToEdge
	case ClampToBorder:
		return driver.ClampToBorder
	case Repeat:
		return driver.Repeat
	case MirroredRepeat:
		return driver.MirroredRepeat
	}
	panic(fmt.Sprintf("ren: unknown texture wrap %d", int(w)))
}

// TextureFilter selects how samples between texels are resolved.
type TextureFilter int

const (
	Nearest TextureFilter = iota
	Linear
)

func (f TextureFilter) String() string {
	switch f {
	case Nearest:
		return "nearest"
	case Linear:
		return "linear"
	}
	return "unknown"
}

func (f TextureFilter) value() uint32 {
	switch f {
	case Nearest:
		return driver.Nearest
	case Linear:
		return driver.Linear
	}
	panic(fmt.Sprintf("ren: unknown texture filter %d", int(f)))
}

// Texture owns one device texture with fixed 2D storage: dimensions, format,
// and the single mip level are set at creation and never change. New
// textures clamp sampling to the edge and filter nearest.
type Texture struct {
	ctx           *Context // nil for unchecked textures
	api           driver.API
	id            uint32
	width, height int
	destroyed     bool
}

// NewTexture creates a texture with fixed width×height storage owned by the
// context.
func (c *Context) NewTexture(width, height int, format InternalFormat) *Texture {
	c.assertLive("texture create")
	t := newTexture(c, c.api, width, height, format)
	c.track(t)
	return t
}

// NewTextureUnchecked creates a texture bound to no context. The caller
// asserts that a native context is current and outlives the handle, and must
// call Destroy itself.
func NewTextureUnchecked(api driver.API, width, height int, format InternalFormat) *Texture {
	return newTexture(nil, api, width, height, format)
}

func newTexture(ctx *Context, api driver.API, width, height int, format InternalFormat) *Texture {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("ren: texture size %dx%d must be positive", width, height))
	}
	if width > math.MaxInt32 || height > math.MaxInt32 {
		panic(fmt.Sprintf("ren: texture size %dx%d exceeds the device's 32-bit range", width, height))
	}
	id := api.CreateTexture(driver.Texture2D)
	if id == 0 {
		panic("ren: texture create returned id 0")
	}
	t := &Texture{ctx: ctx, api: api, id: id, width: width, height: height}
	api.TextureStorage2D(id, 1, format.value(), int32(width), int32(height))
	// Storage has a single level; clamp sampling to it.
	api.TextureParameter(id, driver.TextureBaseLevel, 0)
	api.TextureParameter(id, driver.TextureMaxLevel, 0)
	api.TextureParameter(id, driver.TextureWrapS, int32(driver.ClampToEdge))
	api.TextureParameter(id, driver.TextureWrapT, int32(driver.ClampToEdge))
	api.TextureParameter(id, driver.TextureMinFilter, int32(driver.Nearest))
	api.TextureParameter(id, driver.TextureMagFilter, int32(driver.Nearest))
	return t
}

func (t *Texture) guard(op string) {
	if t.destroyed {
		panic("ren: " + op + " on destroyed texture")
	}
	if t.ctx != nil {
		t.ctx.assertLive(op)
	}
}

// ID returns the raw device id.
func (t *Texture) ID() uint32 {
	t.guard("texture id")
	return t.id
}

// Size returns the fixed storage dimensions in pixels.
func (t *Texture) Size() (w, h int) {
	t.guard("texture size")
	return t.width, t.height
}

// UploadSubImage stores pixels into the rectangle at origin (x, y) with
// extent w×h. The rectangle must lie inside the texture and pixels must hold
// at least w*h pixels of the given format; violations panic rather than clip
// or wrap.
func (t *Texture) UploadSubImage(x, y, w, h int, format PixelFormat, pixels []byte) {
	t.guard("texture upload")
	if x < 0 || y < 0 || w < 0 || h < 0 {
		panic(fmt.Sprintf("ren: texture sub-image with negative bounds (%d, %d) %dx%d", x, y, w, h))
	}
	if x > math.MaxInt32 || y > math.MaxInt32 || w > math.MaxInt32 || h > math.MaxInt32 {
		panic(fmt.Sprintf("ren: texture sub-image bounds (%d, %d) %dx%d exceed the device's 32-bit range", x, y, w, h))
	}
	if int64(x)+int64(w) > int64(t.width) || int64(y)+int64(h) > int64(t.height) {
		panic(fmt.Sprintf("ren: texture sub-image out of range (%d+%d, %d+%d) with size %dx%d",
			x, w, y, h, t.width, t.height))
	}
	if need := w * h * format.Channels(); len(pixels) < need {
		panic(fmt.Sprintf("ren: texture sub-image needs %d pixel bytes, got %d", need, len(pixels)))
	}
	t.api.TextureSubImage2D(t.id, 0, int32(x), int32(y), int32(w), int32(h), format.value(), pixels)
}

// UploadImage fills the whole texture with img, converting to RGBA bytes and
// scaling bilinearly when the sizes differ.
func (t *Texture) UploadImage(img image.Image) {
	t.guard("texture upload")
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, t.width, t.height))
	if b.Dx() == t.width && b.Dy() == t.height {
		xdraw.Copy(dst, image.Point{}, img, b, xdraw.Src, nil)
	} else {
		xdraw.BiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	}
	t.UploadSubImage(0, 0, t.width, t.height, PixelRGBA, dst.Pix)
}

// SetWrap sets the addressing mode on both axes.
func (t *Texture) SetWrap(wrap TextureWrap) {
	t.guard("texture wrap")
	t.api.TextureParameter(t.id, driver.TextureWrapS, int32(wrap.value()))
	t.api.TextureParameter(t.id, driver.TextureWrapT, int32(wrap.value()))
}

// SetFilter sets minification and magnification filtering.
func (t *Texture) SetFilter(filter TextureFilter) {
	t.guard("texture filter")
	t.api.TextureParameter(t.id, driver.TextureMinFilter, int32(filter.value()))
	t.api.TextureParameter(t.id, driver.TextureMagFilter, int32(filter.value()))
}

// Bind makes the texture current on a sampler unit.
func (t *Texture) Bind(unit uint32) {
	t.guard("texture bind")
	t.api.BindTextureUnit(unit, t.id)
}

// Destroy releases the texture. It releases exactly once; later calls are
// no-ops. Textures owned by a context are destroyed by its Close.
func (t *Texture) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.api.DeleteTexture(t.id)
}
