package ren

import (
	"github.com/gogpu/ren/driver"
)

// Context proves that the calling thread holds a live device context. It is
// the sole gate through which resources are created: every factory is a
// method on Context, so no handle can exist without a context value in hand.
//
// A Context is minted with NewContext once the native context is current,
// normally by the app package. It must never be copied and must not outlive
// the native context it stands for. Every resource created through it is
// registered with the context and destroyed, in reverse creation order, when
// Close runs, the runtime stand-in for scope-bound ownership.
type Context struct {
	api  driver.API
	live bool

	// resources holds every tracked handle in creation order. Entries are
	// never removed; a handle destroyed early is a no-op at teardown.
	resources []destroyer
}

// destroyer is the teardown half of every resource handle.
type destroyer interface {
	Destroy()
}

// NewContext wraps a live device context. The caller must hold the current
// native context on this thread; api is the driver already bound to it.
func NewContext(api driver.API) *Context {
	if api == nil {
		panic("ren: NewContext with nil driver")
	}
	Logger().Info("context created")
	return &Context{api: api, live: true}
}

// track registers a handle for teardown at Close.
func (c *Context) track(d destroyer) {
	c.resources = append(c.resources, d)
}

// assertLive panics unless the context can still mediate device calls.
func (c *Context) assertLive(op string) {
	if !c.live {
		panic("ren: " + op + " after context close")
	}
}

// Close destroys every resource still alive, newest first, then marks the
// context dead. Any later use of the context or of a handle it minted
// panics. Close is idempotent.
func (c *Context) Close() {
	if !c.live {
		return
	}
	tracked := len(c.resources)
	for i := tracked - 1; i >= 0; i-- {
		c.resources[i].Destroy()
	}
	c.resources = nil
	c.live = false
	Logger().Info("context closed", "tracked", tracked)
}

// Driver exposes the underlying device driver for callers that step outside
// the safe layer: raw run-loop callbacks and the Unchecked factories. The
// returned value is only usable while the context is live.
func (c *Context) Driver() driver.API {
	c.assertLive("driver access")
	return c.api
}

// Viewport sets the pixel rectangle of the window surface that render
// output is mapped onto.
func (c *Context) Viewport(x, y, w, h int) {
	c.assertLive("viewport")
	c.api.Viewport(int32(x), int32(y), int32(w), int32(h))
}

// ClearColor sets the color the color buffer is cleared to.
func (c *Context) ClearColor(r, g, b, a float32) {
	c.assertLive("clear color")
	c.api.ClearColor(r, g, b, a)
}

// Clear clears the buffers selected by mask.
func (c *Context) Clear(mask ClearMask) {
	c.assertLive("clear")
	c.api.Clear(uint32(mask))
}

// ClearMask selects which buffers Clear touches.
type ClearMask uint32

const (
	ColorBuffer   ClearMask = ClearMask(driver.ColorBufferBit)
	DepthBuffer   ClearMask = ClearMask(driver.DepthBufferBit)
	StencilBuffer ClearMask = ClearMask(driver.StencilBufferBit)
)
