package app

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/ren"
	"github.com/gogpu/ren/driver"
	"github.com/gogpu/ren/driver/drivertest"
	"github.com/gogpu/ren/wsi"
)

// fakeWindow scripts one batch of events per Poll call and records what the
// loop did with it. Once the batches run out, Poll returns nothing; a test
// must script a close or request one from a callback, or its loop never
// ends.
type fakeWindow struct {
	batches     [][]wsi.Event
	polls       int
	swaps       int
	shown       bool
	shouldClose bool
	destroyed   bool
	width       int
	height      int
	onDestroy   func()
}

func (w *fakeWindow) Poll() []wsi.Event {
	w.polls++
	if w.polls <= len(w.batches) {
		return w.batches[w.polls-1]
	}
	return nil
}

func (w *fakeWindow) Swap()                 { w.swaps++ }
func (w *fakeWindow) ShouldClose() bool     { return w.shouldClose }
func (w *fakeWindow) SetShouldClose(c bool) { w.shouldClose = c }
func (w *fakeWindow) Show()                 { w.shown = true }
func (w *fakeWindow) Size() (int, int)      { return w.width, w.height }

func (w *fakeWindow) Destroy() {
	w.destroyed = true
	if w.onDestroy != nil {
		w.onDestroy()
	}
}

// testEnv wires a fake window and a fake driver into run options and
// captures the window-creation hints.
type testEnv struct {
	win *fakeWindow
	api *drivertest.API
	cfg wsi.Config
}

func newTestEnv() *testEnv {
	return &testEnv{win: &fakeWindow{}, api: drivertest.New()}
}

func (e *testEnv) options(opts ...Option) []Option {
	base := []Option{
		WithWindowOpener(func(cfg wsi.Config) (wsi.Window, error) {
			e.cfg = cfg
			if e.win.width == 0 && e.win.height == 0 {
				e.win.width = cfg.Width
				e.win.height = cfg.Height
			}
			return e.win, nil
		}),
		WithDriver(func() (driver.API, error) { return e.api, nil }),
	}
	return append(base, opts...)
}

// countApp implements only the required App surface.
type countApp struct {
	onInit func(ctx *ren.Context) error
	onDraw func(ctx *ren.Context)
	inits  int
	draws  int
	ctx    *ren.Context
}

func (a *countApp) Init(ctx *ren.Context) error {
	a.inits++
	a.ctx = ctx
	if a.onInit != nil {
		return a.onInit(ctx)
	}
	return nil
}

func (a *countApp) Draw(ctx *ren.Context) {
	a.draws++
	if a.onDraw != nil {
		a.onDraw(ctx)
	}
}

// fullApp adds the optional hooks and records per-frame call order.
type fullApp struct {
	countApp
	updates int
	events  []wsi.Event
	trace   []string
}

func (a *fullApp) Update() {
	a.updates++
	a.trace = append(a.trace, "update")
}

func (a *fullApp) Draw(ctx *ren.Context) {
	a.trace = append(a.trace, "draw")
	a.countApp.Draw(ctx)
}

func (a *fullApp) HandleEvent(ev wsi.Event) {
	a.events = append(a.events, ev)
}

// wantPanic runs fn and fails unless it panics with a message containing
// want.
func wantPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("no panic, want panic containing %q", want)
			return
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, want) {
			t.Errorf("panic %q does not contain %q", msg, want)
		}
	}()
	fn()
}

func TestRunLifecycle(t *testing.T) {
	env := newTestEnv()
	env.win.batches = [][]wsi.Event{
		nil,
		{wsi.CloseEvent{Time: 2}},
	}
	a := &fullApp{}
	a.onDraw = func(*ren.Context) {
		if !env.win.shown {
			t.Error("drawing before the window was shown")
		}
	}

	if err := Run(a, env.options()...); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if a.inits != 1 {
		t.Errorf("inits = %d, want 1", a.inits)
	}
	if a.draws != 2 || a.updates != 2 || env.win.swaps != 2 {
		t.Errorf("draws, updates, swaps = %d, %d, %d, want 2, 2, 2",
			a.draws, a.updates, env.win.swaps)
	}
	want := []string{"update", "draw", "update", "draw"}
	if diff := cmp.Diff(want, a.trace); diff != "" {
		t.Errorf("frame order mismatch (-want +got):\n%s", diff)
	}
	if !env.win.destroyed {
		t.Error("window not destroyed at teardown")
	}

	// Teardown closed the context: handles minted from it are dead.
	wantPanic(t, "after context close", func() { a.ctx.Viewport(0, 0, 1, 1) })
}

func TestRunTeardownOrder(t *testing.T) {
	env := newTestEnv()
	env.win.batches = [][]wsi.Event{{wsi.CloseEvent{Time: 1}}}
	env.win.onDestroy = func() {
		env.api.Ops = append(env.api.Ops, "WindowDestroy")
	}
	a := &countApp{onInit: func(ctx *ren.Context) error {
		ctx.NewBuffer()
		return nil
	}}

	if err := Run(a, env.options()...); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	// The context releases its resources before the window goes down.
	i := slices.Index(env.api.Ops, "DeleteBuffer 1")
	j := slices.Index(env.api.Ops, "WindowDestroy")
	if i < 0 || j < 0 || i > j {
		t.Errorf("teardown ops = %v, want DeleteBuffer 1 before WindowDestroy", env.api.Ops)
	}
}

func TestRunInitFailure(t *testing.T) {
	env := newTestEnv()
	boom := errors.New("missing asset")
	a := &countApp{onInit: func(*ren.Context) error { return boom }}

	err := Run(a, env.options()...)
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want wrapped %v", err, boom)
	}
	if !strings.Contains(err.Error(), "app: init:") {
		t.Errorf("Run() error = %q, want an app: init: prefix", err)
	}
	if env.win.shown {
		t.Error("window was shown despite the init failure")
	}
	if a.draws != 0 {
		t.Errorf("draws = %d, want 0", a.draws)
	}
	if !env.win.destroyed {
		t.Error("window not destroyed after the init failure")
	}
}

func TestRunCloseFinishesIteration(t *testing.T) {
	env := newTestEnv()
	batch := []wsi.Event{
		wsi.ResizeEvent{Time: 1, Width: 320, Height: 200},
		wsi.CloseEvent{Time: 1},
		wsi.CursorEvent{Time: 1, X: 3, Y: 4},
	}
	env.win.batches = [][]wsi.Event{nil, batch}
	a := &fullApp{}

	if err := Run(a, env.options()...); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	// The frame that saw the close still updated, drew, and presented, and
	// no further frame ran.
	if a.draws != 2 || a.updates != 2 || env.win.swaps != 2 {
		t.Errorf("draws, updates, swaps = %d, %d, %d, want 2, 2, 2",
			a.draws, a.updates, env.win.swaps)
	}
	// Every event was forwarded in arrival order, the handled ones too.
	if diff := cmp.Diff(batch, a.events); diff != "" {
		t.Errorf("forwarded events mismatch (-want +got):\n%s", diff)
	}
}

func TestRunEscapeClosesWithDebug(t *testing.T) {
	env := newTestEnv()
	env.win.batches = [][]wsi.Event{
		{wsi.KeyEvent{Time: 1, Key: wsi.KeyEscape, Action: wsi.Release}},
		{wsi.KeyEvent{Time: 2, Key: wsi.KeyEscape, Action: wsi.Press}},
		{wsi.CloseEvent{Time: 3}},
	}
	a := &countApp{}
	if err := Run(a, env.options(WithDebug(true))...); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	// The release is ignored; the press ends the run before batch three.
	if a.draws != 2 {
		t.Errorf("draws = %d, want 2", a.draws)
	}
	if !env.win.shouldClose {
		t.Error("escape did not request the window close")
	}
}

func TestRunEscapeIgnoredWithoutDebug(t *testing.T) {
	env := newTestEnv()
	env.win.batches = [][]wsi.Event{
		{wsi.KeyEvent{Time: 1, Key: wsi.KeyEscape, Action: wsi.Press}},
		nil,
		{wsi.CloseEvent{Time: 3}},
	}
	a := &countApp{}
	if err := Run(a, env.options()...); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if a.draws != 3 {
		t.Errorf("draws = %d, want 3", a.draws)
	}
}

func TestRunResizeSetsViewportBeforeDraw(t *testing.T) {
	env := newTestEnv()
	env.win.batches = [][]wsi.Event{
		{wsi.ResizeEvent{Time: 1, Width: 640, Height: 360}},
		{wsi.CloseEvent{Time: 2}},
	}
	a := &countApp{onDraw: func(ctx *ren.Context) { ctx.Clear(ren.ColorBuffer) }}

	if err := Run(a, env.options()...); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	// Show sets the initial viewport; the resize lands before the frame's
	// own draw calls.
	want := []string{
		"Viewport 0 0 856 482",
		"Viewport 0 0 640 360",
		"Clear 0x4000",
		"Clear 0x4000",
	}
	if diff := cmp.Diff(want, env.api.Ops); diff != "" {
		t.Errorf("driver ops mismatch (-want +got):\n%s", diff)
	}
}

func TestRunWithoutOptionalHooks(t *testing.T) {
	env := newTestEnv()
	env.win.batches = [][]wsi.Event{{wsi.CloseEvent{Time: 1}}}
	a := &countApp{}
	if err := Run(a, env.options()...); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if a.draws != 1 {
		t.Errorf("draws = %d, want 1", a.draws)
	}
}

func TestRunRaw(t *testing.T) {
	env := newTestEnv()
	env.win.batches = [][]wsi.Event{
		{wsi.ResizeEvent{Time: 1, Width: 100, Height: 50}},
		{wsi.CloseEvent{Time: 2}},
	}

	var frames int
	var got []wsi.Event
	err := RunRaw(func(ctx *ren.Context, win wsi.Window, events []wsi.Event) {
		frames++
		got = append(got, events...)
		for _, ev := range events {
			if _, ok := ev.(wsi.CloseEvent); ok {
				win.SetShouldClose(true)
			}
		}
	}, env.options()...)
	if err != nil {
		t.Fatalf("RunRaw() error: %v", err)
	}
	if frames != 2 || env.win.swaps != 2 {
		t.Errorf("frames, swaps = %d, %d, want 2, 2", frames, env.win.swaps)
	}
	if len(got) != 2 {
		t.Errorf("callback saw %d events, want 2", len(got))
	}
	if !env.win.shown {
		t.Error("raw run did not show the window")
	}
	// The loop interprets nothing in raw mode: the resize produced no
	// viewport call beyond the initial one.
	if calls := env.api.Calls("Viewport"); len(calls) != 1 {
		t.Errorf("Viewport calls = %v, want the initial viewport only", calls)
	}
	if !env.win.destroyed {
		t.Error("window not destroyed at teardown")
	}
}

func TestRunHeadless(t *testing.T) {
	env := newTestEnv()
	var calls int
	err := RunHeadless(func(ctx *ren.Context) error {
		calls++
		buf := ctx.NewBuffer()
		buf.Write(ren.StaticDraw, []byte{1, 2, 3})
		return nil
	}, env.options()...)
	if err != nil {
		t.Fatalf("RunHeadless() error: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if env.win.shown {
		t.Error("headless run showed the window")
	}
	if env.win.swaps != 0 || env.win.polls != 0 {
		t.Errorf("swaps, polls = %d, %d, want 0, 0", env.win.swaps, env.win.polls)
	}
	if got := len(env.api.Calls("DeleteBuffer")); got != 1 {
		t.Errorf("DeleteBuffer called %d times, want 1", got)
	}
	if !env.win.destroyed {
		t.Error("window not destroyed at teardown")
	}
}

func TestRunHeadlessError(t *testing.T) {
	env := newTestEnv()
	boom := errors.New("device too old")
	err := RunHeadless(func(*ren.Context) error { return boom }, env.options()...)
	if !errors.Is(err, boom) {
		t.Fatalf("RunHeadless() error = %v, want wrapped %v", err, boom)
	}
	if !strings.Contains(err.Error(), "app: headless:") {
		t.Errorf("RunHeadless() error = %q, want an app: headless: prefix", err)
	}
	if !env.win.destroyed {
		t.Error("window not destroyed after the error")
	}
}

func TestRunDebugDrainsDeviceErrors(t *testing.T) {
	env := newTestEnv()
	env.win.batches = [][]wsi.Event{{wsi.CloseEvent{Time: 1}}}
	env.api.Errors = []uint32{driver.InvalidOperation, driver.OutOfMemory}

	if err := Run(&countApp{}, env.options(WithDebug(true))...); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(env.api.Errors) != 0 {
		t.Errorf("device error queue not drained: %v", env.api.Errors)
	}
	want := []string{"PollError 0x502", "PollError 0x505"}
	if diff := cmp.Diff(want, env.api.Calls("PollError")); diff != "" {
		t.Errorf("drain ops mismatch (-want +got):\n%s", diff)
	}
}

func TestRunNoDrainWithoutDebug(t *testing.T) {
	env := newTestEnv()
	env.win.batches = [][]wsi.Event{{wsi.CloseEvent{Time: 1}}}
	env.api.Errors = []uint32{driver.InvalidValue}

	if err := Run(&countApp{}, env.options()...); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(env.api.Errors) != 1 {
		t.Errorf("error queue = %v, want untouched", env.api.Errors)
	}
}

func TestRunDebugBridge(t *testing.T) {
	env := newTestEnv()
	env.win.batches = [][]wsi.Event{{wsi.CloseEvent{Time: 1}}}
	env.api.DebugSupport = true

	if err := Run(&countApp{}, env.options(WithDebug(true))...); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := len(env.api.Calls("EnableDebugOutput")); got != 1 {
		t.Errorf("EnableDebugOutput called %d times, want 1", got)
	}
	if !env.api.EmitDebug(driver.DebugMessage{Severity: "high", Message: "shader recompiled"}) {
		t.Error("no debug callback registered")
	}
}

func TestRunDebugBridgeUnsupported(t *testing.T) {
	env := newTestEnv()
	env.win.batches = [][]wsi.Event{{wsi.CloseEvent{Time: 1}}}

	if err := Run(&countApp{}, env.options(WithDebug(true))...); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := len(env.api.Calls("EnableDebugOutput")); got != 0 {
		t.Errorf("EnableDebugOutput called %d times on an unsupported context", got)
	}
}

func TestRunWindowOpenFailure(t *testing.T) {
	opts := []Option{
		WithWindowOpener(func(wsi.Config) (wsi.Window, error) {
			return nil, errors.New("no display")
		}),
	}
	wantPanic(t, "app: opening window", func() { Run(&countApp{}, opts...) })
}

func TestRunDriverOpenFailure(t *testing.T) {
	env := newTestEnv()
	opts := env.options(WithDriver(func() (driver.API, error) {
		return nil, errors.New("loader failed")
	}))
	wantPanic(t, "app: opening driver", func() { Run(&countApp{}, opts...) })
	if !env.win.destroyed {
		t.Error("window not destroyed after the driver failure")
	}
}
