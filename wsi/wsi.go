// Package wsi defines the window-system contract the ren run loop drives:
// window creation from hints, a timestamped input-event queue, buffer
// swapping, and the should-close flag. The glfwwin subpackage implements it
// over GLFW; tests implement it in memory.
package wsi

// Config carries the creation hints for a window and its device context.
// Windows are always created hidden; the run loop shows them once user
// initialization has succeeded.
type Config struct {
	Title  string
	Width  int
	Height int

	// VersionMajor and VersionMinor select the device-API context version.
	VersionMajor int
	VersionMinor int

	// Debug requests a debug-capable device context.
	Debug bool
}

// Window is one native window together with its current device context.
// Implementations are not safe for concurrent use; every call must happen on
// the thread the window was created on.
type Window interface {
	// Poll drains and returns the pending events, oldest first. It returns
	// an empty slice when nothing happened since the last call.
	Poll() []Event

	// Swap presents the back buffer.
	Swap()

	// ShouldClose reports whether a close has been requested, either by the
	// user or through SetShouldClose.
	ShouldClose() bool
	SetShouldClose(close bool)

	// Show makes the window visible.
	Show()

	// Size returns the framebuffer size in pixels.
	Size() (w, h int)

	// Destroy closes the window and releases its device context.
	Destroy()
}

// Opener creates a window from hints. It is the injection seam the run loop
// consumes; the default is glfwwin.Open.
type Opener func(Config) (Window, error)
