package glfwwin

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/ren/wsi"
)

// keymap translates the GLFW key codes ren dispatches on. Codes outside the
// map arrive as KeyUnknown; the scancode in the event still identifies them.
var keymap = map[glfw.Key]wsi.Key{
	glfw.KeyA: wsi.KeyA,
	glfw.KeyB: wsi.KeyB,
	glfw.KeyC: wsi.KeyC,
	glfw.KeyD: wsi.KeyD,
	glfw.KeyE: wsi.KeyE,
	glfw.KeyF: wsi.KeyF,
	glfw.KeyG: wsi.KeyG,
	glfw.KeyH: wsi.KeyH,
	glfw.KeyI: wsi.KeyI,
	glfw.KeyJ: wsi.KeyJ,
	glfw.KeyK: wsi.KeyK,
	glfw.KeyL: wsi.KeyL,
	glfw.KeyM: wsi.KeyM,
	glfw.KeyN: wsi.KeyN,
	glfw.KeyO: wsi.KeyO,
	glfw.KeyP: wsi.KeyP,
	glfw.KeyQ: wsi.KeyQ,
	glfw.KeyR: wsi.KeyR,
	glfw.KeyS: wsi.KeyS,
	glfw.KeyT: wsi.KeyT,
	glfw.KeyU: wsi.KeyU,
	glfw.KeyV: wsi.KeyV,
	glfw.KeyW: wsi.KeyW,
	glfw.KeyX: wsi.KeyX,
	glfw.KeyY: wsi.KeyY,
	glfw.KeyZ: wsi.KeyZ,

	glfw.Key0: wsi.Key0,
	glfw.Key1: wsi.Key1,
	glfw.Key2: wsi.Key2,
	glfw.Key3: wsi.Key3,
	glfw.Key4: wsi.Key4,
	glfw.Key5: wsi.Key5,
	glfw.Key6: wsi.Key6,
	glfw.Key7: wsi.Key7,
	glfw.Key8: wsi.Key8,
	glfw.Key9: wsi.Key9,

	glfw.KeySpace:        wsi.KeySpace,
	glfw.KeyApostrophe:   wsi.KeyApostrophe,
	glfw.KeyComma:        wsi.KeyComma,
	glfw.KeyMinus:        wsi.KeyMinus,
	glfw.KeyPeriod:       wsi.KeyPeriod,
	glfw.KeySlash:        wsi.KeySlash,
	glfw.KeySemicolon:    wsi.KeySemicolon,
	glfw.KeyEqual:        wsi.KeyEqual,
	glfw.KeyLeftBracket:  wsi.KeyLeftBracket,
	glfw.KeyBackslash:    wsi.KeyBackslash,
	glfw.KeyRightBracket: wsi.KeyRightBracket,
	glfw.KeyGraveAccent:  wsi.KeyGrave,

	glfw.KeyEscape:    wsi.KeyEscape,
	glfw.KeyEnter:     wsi.KeyEnter,
	glfw.KeyTab:       wsi.KeyTab,
	glfw.KeyBackspace: wsi.KeyBackspace,
	glfw.KeyInsert:    wsi.KeyInsert,
	glfw.KeyDelete:    wsi.KeyDelete,
	glfw.KeyRight:     wsi.KeyRight,
	glfw.KeyLeft:      wsi.KeyLeft,
	glfw.KeyDown:      wsi.KeyDown,
	glfw.KeyUp:        wsi.KeyUp,
	glfw.KeyPageUp:    wsi.KeyPageUp,
	glfw.KeyPageDown:  wsi.KeyPageDown,
	glfw.KeyHome:      wsi.KeyHome,
	glfw.KeyEnd:       wsi.KeyEnd,
	glfw.KeyCapsLock:  wsi.KeyCapsLock,

	glfw.KeyF1:  wsi.KeyF1,
	glfw.KeyF2:  wsi.KeyF2,
	glfw.KeyF3:  wsi.KeyF3,
	glfw.KeyF4:  wsi.KeyF4,
	glfw.KeyF5:  wsi.KeyF5,
	glfw.KeyF6:  wsi.KeyF6,
	glfw.KeyF7:  wsi.KeyF7,
	glfw.KeyF8:  wsi.KeyF8,
	glfw.KeyF9:  wsi.KeyF9,
	glfw.KeyF10: wsi.KeyF10,
	glfw.KeyF11: wsi.KeyF11,
	glfw.KeyF12: wsi.KeyF12,

	glfw.KeyLeftShift:    wsi.KeyLeftShift,
	glfw.KeyLeftControl:  wsi.KeyLeftControl,
	glfw.KeyLeftAlt:      wsi.KeyLeftAlt,
	glfw.KeyLeftSuper:    wsi.KeyLeftSuper,
	glfw.KeyRightShift:   wsi.KeyRightShift,
	glfw.KeyRightControl: wsi.KeyRightControl,
	glfw.KeyRightAlt:     wsi.KeyRightAlt,
	glfw.KeyRightSuper:   wsi.KeyRightSuper,
}

func keyFrom(key glfw.Key) wsi.Key {
	if k, ok := keymap[key]; ok {
		return k
	}
	return wsi.KeyUnknown
}

func actionFrom(action glfw.Action) wsi.Action {
	switch action {
	case glfw.Press:
		return wsi.Press
	case glfw.Repeat:
		return wsi.Repeat
	}
	return wsi.Release
}

func modsFrom(mods glfw.ModifierKey) wsi.Modifier {
	var m wsi.Modifier
	if mods&glfw.ModShift != 0 {
		m |= wsi.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= wsi.ModControl
	}
	if mods&glfw.ModAlt != 0 {
		m |= wsi.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= wsi.ModSuper
	}
	return m
}

// buttonFrom maps the buttons ren models. Extra buttons report false and
// produce no event.
func buttonFrom(button glfw.MouseButton) (wsi.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return wsi.MouseLeft, true
	case glfw.MouseButtonRight:
		return wsi.MouseRight, true
	case glfw.MouseButtonMiddle:
		return wsi.MouseMiddle, true
	}
	return 0, false
}
