package pipeline

// State is the position of a run in its lifecycle.
type State int

const (
	// StateResolved means configuration is built and nothing has run yet.
	StateResolved State = iota
	// StateCaptured means the command ran and its output is known.
	StateCaptured
	// StateLoggedSuccess is terminal: the output was appended.
	StateLoggedSuccess
	// StateLoggedFailure is terminal: capture or append failed.
	StateLoggedFailure
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateResolved:
		return "resolved"
	case StateCaptured:
		return "captured"
	case StateLoggedSuccess:
		return "logged-success"
	case StateLoggedFailure:
		return "logged-failure"
	default:
		return "unknown"
	}
}

// Terminal reports whether s is a final state.
func (s State) Terminal() bool {
	return s == StateLoggedSuccess || s == StateLoggedFailure
}
