package incident

import "fmt"

// State is what the page renders for a pipeline result.
type State int

const (
	StateLoading State = iota
	StatePopulated
	StateScopedEmpty
	StateEmpty
)

const (
	ScopedEmptyMessage = "The monitor you have selected, has no recorded incidents yet."
	EmptyMessage       = "No incidents, yet."
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StatePopulated:
		return "populated"
	case StateScopedEmpty:
		return "scoped_empty"
	case StateEmpty:
		return "empty"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Message is the notice shown instead of the table, empty when the table
// is rendered.
func (s State) Message() string {
	switch s {
	case StateScopedEmpty:
		return ScopedEmptyMessage
	case StateEmpty:
		return EmptyMessage
	default:
		return ""
	}
}

// ShowControls reports whether the filter buttons are rendered.
func (s State) ShowControls() bool {
	return s == StatePopulated
}

// Classify maps the loading flag and a pipeline result to a render state.
func Classify(loading bool, r Result) State {
	switch {
	case loading:
		return StateLoading
	case !r.HasAny:
		return StateEmpty
	case r.HasScoped:
		return StatePopulated
	default:
		return StateScopedEmpty
	}
}
