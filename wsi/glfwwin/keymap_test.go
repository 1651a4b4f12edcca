package glfwwin

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/ren/wsi"
)

func TestKeyFrom(t *testing.T) {
	tests := []struct {
		key  glfw.Key
		want wsi.Key
	}{
		{glfw.KeyA, wsi.KeyA},
		{glfw.KeyZ, wsi.KeyZ},
		{glfw.Key0, wsi.Key0},
		{glfw.KeyEscape, wsi.KeyEscape},
		{glfw.KeyGraveAccent, wsi.KeyGrave},
		{glfw.KeyF12, wsi.KeyF12},
		{glfw.KeyRightSuper, wsi.KeyRightSuper},
		{glfw.KeyKP0, wsi.KeyUnknown},
		{glfw.KeyUnknown, wsi.KeyUnknown},
	}
	for _, tt := range tests {
		if got := keyFrom(tt.key); got != tt.want {
			t.Errorf("keyFrom(%d) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestActionFrom(t *testing.T) {
	tests := []struct {
		action glfw.Action
		want   wsi.Action
	}{
		{glfw.Release, wsi.Release},
		{glfw.Press, wsi.Press},
		{glfw.Repeat, wsi.Repeat},
	}
	for _, tt := range tests {
		if got := actionFrom(tt.action); got != tt.want {
			t.Errorf("actionFrom(%d) = %v, want %v", tt.action, got, tt.want)
		}
	}
}

func TestModsFrom(t *testing.T) {
	tests := []struct {
		mods glfw.ModifierKey
		want wsi.Modifier
	}{
		{0, 0},
		{glfw.ModShift, wsi.ModShift},
		{glfw.ModShift | glfw.ModControl, wsi.ModShift | wsi.ModControl},
		{glfw.ModAlt | glfw.ModSuper, wsi.ModAlt | wsi.ModSuper},
		// Caps-lock state flags from newer backends pass through as none.
		{glfw.ModCapsLock, 0},
	}
	for _, tt := range tests {
		if got := modsFrom(tt.mods); got != tt.want {
			t.Errorf("modsFrom(%#x) = %v, want %v", tt.mods, got, tt.want)
		}
	}
}

func TestButtonFrom(t *testing.T) {
	if b, ok := buttonFrom(glfw.MouseButtonLeft); !ok || b != wsi.MouseLeft {
		t.Errorf("buttonFrom(left) = (%v, %t), want (%v, true)", b, ok, wsi.MouseLeft)
	}
	if b, ok := buttonFrom(glfw.MouseButtonMiddle); !ok || b != wsi.MouseMiddle {
		t.Errorf("buttonFrom(middle) = (%v, %t), want (%v, true)", b, ok, wsi.MouseMiddle)
	}
	if _, ok := buttonFrom(glfw.MouseButton4); ok {
		t.Error("buttonFrom(button4) reported a mapping, want none")
	}
}
