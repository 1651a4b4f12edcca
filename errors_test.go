package ren

import (
	"errors"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{
			&CompileError{ID: 7, Stage: FragmentStage, Log: "0(3) : error C1008\n"},
			"ren: compiling fragment stage [7]: 0(3) : error C1008",
		},
		{
			&CompileError{ID: 2, Stage: VertexStage},
			"ren: compiling vertex stage [2]: no diagnostic output",
		},
		{
			&LinkError{ID: 4, Log: "error: no vertex stage"},
			"ren: linking program [4]: error: no vertex stage",
		},
		{
			&ValidateError{ID: 4, Log: "   "},
			"ren: validating program [4]: no diagnostic output",
		},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestErrorUnwrap(t *testing.T) {
	tests := []struct {
		err      error
		sentinel error
	}{
		{&CompileError{}, ErrCompile},
		{&LinkError{}, ErrLink},
		{&ValidateError{}, ErrValidate},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, tt.sentinel) {
			t.Errorf("errors.Is(%T, %v) = false, want true", tt.err, tt.sentinel)
		}
	}
	if errors.Is(&LinkError{}, ErrValidate) {
		t.Error("*LinkError unwraps to ErrValidate, want the classes distinct")
	}
}
