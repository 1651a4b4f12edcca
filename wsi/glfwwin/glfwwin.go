// Package glfwwin implements wsi.Window over GLFW.
//
// Open owns GLFW initialization and Destroy tears it down again, so one
// window exists at a time. All calls, Open and Destroy included, must happen
// on the main thread.
package glfwwin

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/ren/wsi"
)

// Window is a GLFW window with its device context.
type Window struct {
	win    *glfw.Window
	events []wsi.Event
}

// Open creates a hidden window and makes its device context current on the
// calling thread. The window is centered on the primary monitor and swaps
// are synchronized to the display.
func Open(cfg wsi.Config) (wsi.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfwwin: initializing: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.VersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.VersionMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)
	if cfg.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfwwin: creating window: %w", err)
	}
	center(win)
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	w := &Window{win: win}
	w.install()
	return w, nil
}

// center positions the window in the middle of the primary monitor. Not
// every system has one.
func center(win *glfw.Window) {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return
	}
	mode := monitor.GetVideoMode()
	if mode == nil {
		return
	}
	w, h := win.GetSize()
	win.SetPos((mode.Width-w)/2, (mode.Height-h)/2)
}

// install registers the callbacks that translate GLFW notifications into
// queue entries, stamped with the GLFW clock.
func (w *Window) install() {
	w.win.SetCloseCallback(func(*glfw.Window) {
		w.events = append(w.events, wsi.CloseEvent{Time: glfw.GetTime()})
	})
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.events = append(w.events, wsi.ResizeEvent{Time: glfw.GetTime(), Width: width, Height: height})
	})
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		w.events = append(w.events, wsi.KeyEvent{
			Time:     glfw.GetTime(),
			Key:      keyFrom(key),
			Scancode: scancode,
			Action:   actionFrom(action),
			Mods:     modsFrom(mods),
		})
	})
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		b, ok := buttonFrom(button)
		if !ok {
			return
		}
		w.events = append(w.events, wsi.MouseButtonEvent{
			Time:   glfw.GetTime(),
			Button: b,
			Action: actionFrom(action),
			Mods:   modsFrom(mods),
		})
	})
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.events = append(w.events, wsi.CursorEvent{Time: glfw.GetTime(), X: x, Y: y})
	})
	w.win.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		w.events = append(w.events, wsi.ScrollEvent{Time: glfw.GetTime(), DX: dx, DY: dy})
	})
}

// Poll pumps the windowing system and returns the events it produced,
// oldest first.
func (w *Window) Poll() []wsi.Event {
	glfw.PollEvents()
	events := w.events
	w.events = nil
	return events
}

// Swap presents the back buffer.
func (w *Window) Swap() {
	w.win.SwapBuffers()
}

// ShouldClose reports whether a close has been requested.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// SetShouldClose sets the close flag.
func (w *Window) SetShouldClose(close bool) {
	w.win.SetShouldClose(close)
}

// Show makes the window visible.
func (w *Window) Show() {
	w.win.Show()
}

// Size returns the framebuffer size in pixels.
func (w *Window) Size() (int, int) {
	return w.win.GetFramebufferSize()
}

// Destroy closes the window and shuts the windowing system down.
func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}
