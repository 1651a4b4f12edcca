package app

import (
	"fmt"

	"github.com/gogpu/ren"
	"github.com/gogpu/ren/wsi"
)

// Run drives a structured application until its window closes.
//
// The window opens hidden, the device context comes up, and a.Init runs
// against it. An Init error tears everything down and is returned wrapped;
// the window was never visible. Otherwise the window is shown and the loop
// runs a.Draw every frame until a close request, the window's close button,
// or, with diagnostics on, the escape key ends the run. Whatever frame
// the close request lands in still completes.
//
// Failures to open the window or the driver are environment-fatal and
// panic. Panics from the application's own callbacks propagate, and the
// window and context are torn down on the way out.
func Run(a App, opts ...Option) error {
	l := newLoop(opts)
	l.open()
	defer l.teardown()

	if err := a.Init(l.ctx); err != nil {
		return fmt.Errorf("app: init: %w", err)
	}
	l.show()

	updater, _ := a.(Updater)
	handler, _ := a.(EventHandler)
	for l.state == Running {
		l.iterate(a, updater, handler)
	}
	return nil
}

// RunRaw drives frame with the raw building blocks each iteration: the
// context, the window, and the frame's whole event queue, oldest first. The
// loop still polls, presents, and drains diagnostics, but interprets no
// events itself; closing is the callback's job, through the window's
// SetShouldClose. The run ends when the window reports it should close.
func RunRaw(frame func(ctx *ren.Context, win wsi.Window, events []wsi.Event), opts ...Option) error {
	l := newLoop(opts)
	l.open()
	defer l.teardown()
	l.show()

	for l.state == Running {
		frame(l.ctx, l.win, l.win.Poll())
		l.win.Swap()
		if l.opts.debug {
			l.drainErrors()
		}
		if l.win.ShouldClose() {
			l.close()
		}
	}
	return nil
}

// RunHeadless brings up the device context without ever showing the window,
// runs fn against it exactly once, and tears everything down again. An
// error from fn is returned wrapped, like an Init failure in Run.
func RunHeadless(fn func(ctx *ren.Context) error, opts ...Option) error {
	l := newLoop(opts)
	l.open()
	defer l.teardown()

	if err := fn(l.ctx); err != nil {
		return fmt.Errorf("app: headless: %w", err)
	}
	return nil
}
