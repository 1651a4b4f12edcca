// Package app owns the window, the device context, and the per-frame loop,
// so programs provide only initialization and drawing.
//
// # Modes
//
// Run drives a structured application: an App whose Init runs once against
// the ready context and whose Draw runs every frame. Optional behavior is
// picked up by interface assertion: implement Updater for a per-frame
// update step, EventHandler to observe input.
//
// RunRaw hands the raw building blocks to a single callback each frame: the
// context, the window, and the frame's whole event queue. The callback owns
// event interpretation, including close handling.
//
// RunHeadless runs a function exactly once against a ready context without
// ever showing the window, for offline work such as compute or image
// generation.
//
// All three modes block until teardown and must run on the main goroutine;
// the package locks it to its thread because the native context and window
// only accept calls from the thread that created them.
package app

import (
	"runtime"

	"github.com/gogpu/ren"
	"github.com/gogpu/ren/wsi"
)

func init() {
	// The native context and its window are thread-affine.
	runtime.LockOSThread()
}

// App is a structured application. Init runs once, after the device context
// is ready and before the window becomes visible; returning an error aborts
// the run before anything is shown. Draw runs once per frame with the same
// context.
type App interface {
	Init(ctx *ren.Context) error
	Draw(ctx *ren.Context)
}

// Updater is an optional App extension: Update runs every frame after event
// dispatch and before Draw.
type Updater interface {
	Update()
}

// EventHandler is an optional App extension: HandleEvent observes every
// polled event in arrival order, including events the loop already acted
// on, such as resizes and close requests.
type EventHandler interface {
	HandleEvent(ev wsi.Event)
}
