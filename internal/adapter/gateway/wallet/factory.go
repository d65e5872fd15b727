package wallet

import "fmt"

// NewAgent creates a wallet agent by kind.
// Supported kinds: local (in-memory keypair, the default), mock
// (scripted, for tests and dry runs).
func NewAgent(kind string) (Agent, error) {
	switch kind {
	case "", "local":
		return NewLocalAgent(), nil
	case "mock":
		return NewMockAgent(), nil
	default:
		return nil, fmt.Errorf("unknown wallet agent kind: %s (supported: local, mock)", kind)
	}
}

// AvailableKinds lists the agent kinds NewAgent accepts.
func AvailableKinds() []string {
	return []string{"local", "mock"}
}
