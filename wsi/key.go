package wsi

import "strings"

// Key identifies a keyboard key by position, independent of layout-specific
// character translation.
type Key int

// Keys. The set covers the printable and control keys applications commonly
// dispatch on; anything a backend cannot map arrives as KeyUnknown with the
// platform scancode preserved in the event.
const (
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeySpace
	KeyApostrophe
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	KeySemicolon
	KeyEqual
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
	KeyGrave

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyCapsLock

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyLeftShift
	KeyLeftControl
	KeyLeftAlt
	KeyLeftSuper
	KeyRightShift
	KeyRightControl
	KeyRightAlt
	KeyRightSuper
)

var keyNames = map[Key]string{
	KeyUnknown: "unknown",

	KeyA: "a", KeyB: "b", KeyC: "c", KeyD: "d", KeyE: "e", KeyF: "f",
	KeyG: "g", KeyH: "h", KeyI: "i", KeyJ: "j", KeyK: "k", KeyL: "l",
	KeyM: "m", KeyN: "n", KeyO: "o", KeyP: "p", KeyQ: "q", KeyR: "r",
	KeyS: "s", KeyT: "t", KeyU: "u", KeyV: "v", KeyW: "w", KeyX: "x",
	KeyY: "y", KeyZ: "z",

	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",

	KeySpace:        "space",
	KeyApostrophe:   "apostrophe",
	KeyComma:        "comma",
	KeyMinus:        "minus",
	KeyPeriod:       "period",
	KeySlash:        "slash",
	KeySemicolon:    "semicolon",
	KeyEqual:        "equal",
	KeyLeftBracket:  "left bracket",
	KeyBackslash:    "backslash",
	KeyRightBracket: "right bracket",
	KeyGrave:        "grave",

	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyInsert:    "insert",
	KeyDelete:    "delete",
	KeyRight:     "right",
	KeyLeft:      "left",
	KeyDown:      "down",
	KeyUp:        "up",
	KeyPageUp:    "page up",
	KeyPageDown:  "page down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyCapsLock:  "caps lock",

	KeyF1: "f1", KeyF2: "f2", KeyF3: "f3", KeyF4: "f4",
	KeyF5: "f5", KeyF6: "f6", KeyF7: "f7", KeyF8: "f8",
	KeyF9: "f9", KeyF10: "f10", KeyF11: "f11", KeyF12: "f12",

	KeyLeftShift:    "left shift",
	KeyLeftControl:  "left control",
	KeyLeftAlt:      "left alt",
	KeyLeftSuper:    "left super",
	KeyRightShift:   "right shift",
	KeyRightControl: "right control",
	KeyRightAlt:     "right alt",
	KeyRightSuper:   "right super",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "unknown"
}

// Action distinguishes press, release, and key repeat.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

func (a Action) String() string {
	switch a {
	case Release:
		return "release"
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	}
	return "unknown"
}

// Modifier is a bit set of the modifier keys held when an event fired.
type Modifier int

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

func (m Modifier) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	if m&ModShift != 0 {
		parts = append(parts, "shift")
	}
	if m&ModControl != 0 {
		parts = append(parts, "control")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if m&ModSuper != 0 {
		parts = append(parts, "super")
	}
	return strings.Join(parts, "|")
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	}
	return "unknown"
}
