package ren

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gogpu/ren/driver/drivertest"
)

// newTestContext returns a live context over a fresh in-memory driver.
func newTestContext(t *testing.T) (*Context, *drivertest.API) {
	t.Helper()
	api := drivertest.New()
	return NewContext(api), api
}

// newLinkedShader compiles a vertex and a fragment stage and links them.
func newLinkedShader(t *testing.T, ctx *Context) *Shader {
	t.Helper()
	vs, err := ctx.NewShaderStage(VertexStage, testVertexSrc)
	if err != nil {
		t.Fatalf("NewShaderStage(vertex) error: %v", err)
	}
	fs, err := ctx.NewShaderStage(FragmentStage, testFragmentSrc)
	if err != nil {
		t.Fatalf("NewShaderStage(fragment) error: %v", err)
	}
	sh, err := ctx.NewShader(vs, fs)
	if err != nil {
		t.Fatalf("NewShader() error: %v", err)
	}
	return sh
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

const (
	testVertexSrc = `#version 450 core
layout(location = 0) in vec2 a_pos;
void main() {
	gl_Position = vec4(a_pos, 0.0, 1.0);
}
`
	testFragmentSrc = `#version 450 core
out vec4 f_color;
void main() {
	f_color = vec4(1.0);
}
`
)
