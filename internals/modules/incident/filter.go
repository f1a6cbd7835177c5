package incident

import (
	"fmt"
	"strings"

	"incident-board/pkg/apperror"
)

type FilterMode int

const (
	FilterAll FilterMode = iota
	FilterDown
	FilterCannotResolve
)

func (m FilterMode) String() string {
	switch m {
	case FilterAll:
		return "all"
	case FilterDown:
		return "down"
	case FilterCannotResolve:
		return "resolve"
	default:
		return fmt.Sprintf("FilterMode(%d)", int(m))
	}
}

func (m FilterMode) Valid() bool {
	switch m {
	case FilterAll, FilterDown, FilterCannotResolve:
		return true
	}
	return false
}

func (m FilterMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, invalidFilterMode("incident.filter.marshal", m.String())
	}
	return []byte(m.String()), nil
}

func (m *FilterMode) UnmarshalText(b []byte) error {
	parsed, err := ParseFilterMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseFilterMode accepts the values the dashboard buttons send.
func ParseFilterMode(value string) (FilterMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "all":
		return FilterAll, nil
	case "down":
		return FilterDown, nil
	case "resolve", "cannot_resolve", "cannot-resolve":
		return FilterCannotResolve, nil
	default:
		return FilterAll, invalidFilterMode("incident.filter.parse", value)
	}
}

// Matches reports whether inc is kept under mode.
func Matches(inc Incident, mode FilterMode) (bool, error) {
	switch mode {
	case FilterAll:
		return true, nil
	case FilterCannotResolve:
		return inc.StatusCode == CannotResolveStatusCode, nil
	case FilterDown:
		return !inc.Status, nil
	default:
		return false, invalidFilterMode("incident.filter.matches", mode.String())
	}
}

func invalidFilterMode(op, value string) error {
	return &apperror.Error{
		Kind:    apperror.InvalidFilterMode,
		Op:      op,
		Message: fmt.Sprintf("unknown filter %q, expected one of all, down, resolve", value),
	}
}
