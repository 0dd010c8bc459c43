package runner

// State is the lifecycle phase of a runner's current request.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateSucceeded
	StateFailed
	StateAborted
)

func StateFromString(s string) State {
	switch s {
	case StateIdle.String():
		return StateIdle
	case StateRunning.String():
		return StateRunning
	case StateSucceeded.String():
		return StateSucceeded
	case StateFailed.String():
		return StateFailed
	case StateAborted.String():
		return StateAborted
	default:
		return StateIdle
	}
}

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	case StateAborted:
		return "aborted"
	default:
		return "idle"
	}
}
