package app

import (
	"fmt"

	"github.com/gogpu/ren"
	"github.com/gogpu/ren/driver"
	"github.com/gogpu/ren/driver/gl45"
	"github.com/gogpu/ren/wsi"
	"github.com/gogpu/ren/wsi/glfwwin"
)

// loop carries one run from window creation to teardown.
type loop struct {
	opts  options
	state State
	win   wsi.Window
	ctx   *ren.Context
}

func newLoop(opts []Option) *loop {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.open == nil {
		o.open = glfwwin.Open
	}
	if o.driver == nil {
		o.driver = gl45.Open
	}
	return &loop{opts: o, state: Uninitialized}
}

// open creates the hidden window and the device context. A failure here
// means the environment cannot run the program at all, so it panics instead
// of returning.
func (l *loop) open() {
	cfg := l.opts.config()
	win, err := l.opts.open(cfg)
	if err != nil {
		panic(fmt.Sprintf("app: opening window: %v", err))
	}
	l.win = win

	api, err := l.opts.driver()
	if err != nil {
		win.Destroy()
		panic(fmt.Sprintf("app: opening driver: %v", err))
	}
	l.ctx = ren.NewContext(api)
	l.state = ContextReady
	ren.Logger().Info("context ready",
		"title", cfg.Title,
		"width", cfg.Width,
		"height", cfg.Height,
		"debug", cfg.Debug,
	)
	if l.opts.debug {
		l.bridgeDebug(api)
	}
}

// show makes the window visible and enters the steady state. The initial
// viewport covers the whole framebuffer, which may differ in pixels from the
// requested window size.
func (l *loop) show() {
	l.win.Show()
	w, h := l.win.Size()
	l.ctx.Viewport(0, 0, w, h)
	l.state = Running
	ren.Logger().Debug("state change", "state", l.state)
}

// iterate runs one full frame: poll and dispatch events, update, draw,
// present, drain diagnostics. A close request observed during dispatch does
// not cut the frame short; the loop exits before the next one.
func (l *loop) iterate(a App, updater Updater, handler EventHandler) {
	for _, ev := range l.win.Poll() {
		l.dispatch(ev)
		if handler != nil {
			handler.HandleEvent(ev)
		}
	}
	if updater != nil {
		updater.Update()
	}
	a.Draw(l.ctx)
	l.win.Swap()
	if l.opts.debug {
		l.drainErrors()
	}
	if l.win.ShouldClose() {
		l.close()
	}
}

// dispatch applies the built-in meaning of an event. The event is forwarded
// to the application afterwards either way.
func (l *loop) dispatch(ev wsi.Event) {
	switch ev := ev.(type) {
	case wsi.ResizeEvent:
		l.ctx.Viewport(0, 0, ev.Width, ev.Height)
	case wsi.CloseEvent:
		l.close()
	case wsi.KeyEvent:
		if l.opts.debug && ev.Key == wsi.KeyEscape && ev.Action == wsi.Press {
			l.close()
		}
	}
}

// close records a close request once.
func (l *loop) close() {
	if l.state != Running {
		return
	}
	l.state = Closing
	l.win.SetShouldClose(true)
	ren.Logger().Debug("state change", "state", l.state)
}

// drainErrors empties the device error queue, one warning per code.
func (l *loop) drainErrors() {
	api := l.ctx.Driver()
	for {
		code := api.PollError()
		if code == driver.NoError {
			return
		}
		ren.Logger().Warn("device error pending", "code", driver.ErrorName(code))
	}
}

// bridgeDebug forwards device debug output to the package logger. Not every
// context can deliver it, even when diagnostics were requested.
func (l *loop) bridgeDebug(api driver.API) {
	if !api.DebugOutputSupported() {
		ren.Logger().Info("device debug output not available")
		return
	}
	api.EnableDebugOutput(func(m driver.DebugMessage) {
		log := ren.Logger()
		if m.Severity == "high" {
			log.Warn("device debug",
				"source", m.Source, "kind", m.Kind, "id", m.ID, "message", m.Message)
			return
		}
		log.Debug("device debug",
			"source", m.Source, "kind", m.Kind, "severity", m.Severity, "id", m.ID, "message", m.Message)
	})
}

// teardown closes the context, destroying every resource it still owns, and
// then the window. Safe to run after a partial setup and idempotent through
// Context.Close.
func (l *loop) teardown() {
	l.ctx.Close()
	l.win.Destroy()
	l.state = Terminated
	ren.Logger().Info("terminated")
}
