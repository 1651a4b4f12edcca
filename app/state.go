package app

// State is the phase a run loop is in. Phases advance strictly forward;
// there is no way back from Closing to Running or from Terminated anywhere.
type State int

const (
	// Uninitialized is the phase before any window or device context
	// exists.
	Uninitialized State = iota

	// ContextReady means the hidden window and its device context are up
	// and user initialization may run.
	ContextReady

	// Running is the steady state: the window is visible and frames are
	// being produced.
	Running

	// Closing means a close was requested; the in-flight iteration still
	// completes before the loop exits.
	Closing

	// Terminated means the context and window have been torn down.
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case ContextReady:
		return "context ready"
	case Running:
		return "running"
	case Closing:
		return "closing"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}
