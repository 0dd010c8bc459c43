package client

type EnvironmentState int

const (
	EnvironmentStateUnknown EnvironmentState = iota
	EnvironmentStateStarting
	EnvironmentStateEnabled
	EnvironmentStateDisabled
)

func EnvironmentStateFromString(s string) EnvironmentState {
	switch s {
	case EnvironmentStateStarting.String():
		return EnvironmentStateStarting
	case EnvironmentStateEnabled.String():
		return EnvironmentStateEnabled
	case EnvironmentStateDisabled.String():
		return EnvironmentStateDisabled
	default:
		return EnvironmentStateUnknown
	}
}

func (s EnvironmentState) String() string {
	switch s {
	case EnvironmentStateStarting:
		return "starting"
	case EnvironmentStateEnabled:
		return "enabled"
	case EnvironmentStateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Environment identifies the regional deployment a client talks to. It is
// passed explicitly to the client; there is no process-global environment.
type Environment struct {
	// Address is the base URL of the regional engine, including scheme,
	// e.g. "https://env.eu-west-1.cloud.quarrydb.com".
	Address string

	// AuthToken is attached as a bearer token when set.
	AuthToken string

	State EnvironmentState
}

// Enabled reports whether the environment accepts queries.
func (e *Environment) Enabled() bool {
	return e != nil && e.State == EnvironmentStateEnabled
}
