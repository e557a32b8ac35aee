package core

// Cell is a single binary grid value stored as one byte.
type Cell uint8

const (
	// Dead is the zero cell state.
	Dead Cell = 0
	// Alive is the set cell state.
	Alive Cell = 1
)

// String returns the state name.
func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Size describes the dimensions of a grid.
type Size struct {
	W uint32
	H uint32
}

// Notifier emits best-effort diagnostic text. Failures are not reported back.
type Notifier interface {
	Notify(message string)
}

// Alerter shows a best-effort modal notification to the user.
type Alerter interface {
	AlertUser(message string)
}

// Inserter appends rendered text as a new child of the container named by
// containerID. Implementations report ErrContainerNotFound or
// ErrDocumentUnavailable, usually wrapped in an *AdapterError.
type Inserter interface {
	InsertRenderedOutput(containerID, text string) error
}

// Host bundles the capabilities the grid consumes from its embedding host.
type Host interface {
	Notifier
	Alerter
	Inserter
}

// ParameterDisplay is implemented by hosts that can show a grid's parameter
// snapshot next to its rendered output.
type ParameterDisplay interface {
	ShowParameters(snapshot ParameterSnapshot)
}
