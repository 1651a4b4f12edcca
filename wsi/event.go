package wsi

// Event is one window or input occurrence. The concrete types below are the
// complete set; each carries Time, the collaborator clock in seconds at the
// moment the event was observed.
type Event interface {
	isEvent()
}

// CloseEvent reports a close request (window button, OS shortcut, or
// SetShouldClose).
type CloseEvent struct {
	Time float64
}

// ResizeEvent reports a new framebuffer size in pixels.
type ResizeEvent struct {
	Time   float64
	Width  int
	Height int
}

// KeyEvent reports a key press, release, or repeat.
type KeyEvent struct {
	Time     float64
	Key      Key
	Scancode int
	Action   Action
	Mods     Modifier
}

// MouseButtonEvent reports a mouse button press or release.
type MouseButtonEvent struct {
	Time   float64
	Button MouseButton
	Action Action
	Mods   Modifier
}

// CursorEvent reports the cursor position in window coordinates.
type CursorEvent struct {
	Time float64
	X, Y float64
}

// ScrollEvent reports scroll wheel or touchpad deltas.
type ScrollEvent struct {
	Time   float64
	DX, DY float64
}

func (CloseEvent) isEvent()       {}
func (ResizeEvent) isEvent()      {}
func (KeyEvent) isEvent()         {}
func (MouseButtonEvent) isEvent() {}
func (CursorEvent) isEvent()      {}
func (ScrollEvent) isEvent()      {}
