package app

import "testing"

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Uninitialized, "uninitialized"},
		{ContextReady, "context ready"},
		{Running, "running"},
		{Closing, "closing"},
		{Terminated, "terminated"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestStateOrder(t *testing.T) {
	phases := []State{Uninitialized, ContextReady, Running, Closing, Terminated}
	for i := 1; i < len(phases); i++ {
		if phases[i-1] >= phases[i] {
			t.Errorf("%v does not precede %v", phases[i-1], phases[i])
		}
	}
}
