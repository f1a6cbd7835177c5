package incident

import (
	"fmt"
	"strings"

	"incident-board/pkg/apperror"
)

// AllScopeValue is how clients spell the "all monitors" scope. The legacy
// page sent "0", which is still accepted.
const AllScopeValue = "all"

// Scope selects which monitors contribute incidents. The zero value is the
// "all monitors" scope.
type Scope struct {
	monitorID string
	specific  bool
}

func AllMonitors() Scope {
	return Scope{}
}

func SpecificMonitor(monitorID string) Scope {
	return Scope{monitorID: monitorID, specific: true}
}

// ParseScope maps a selector value to a Scope. Empty, "all" and "0" select
// every monitor; anything else is taken as a monitor id.
func ParseScope(value string) Scope {
	v := strings.TrimSpace(value)
	if v == "" || v == "0" || strings.EqualFold(v, AllScopeValue) {
		return AllMonitors()
	}
	return SpecificMonitor(v)
}

func (s Scope) IsAll() bool { return !s.specific }

func (s Scope) MonitorID() string { return s.monitorID }

func (s Scope) String() string {
	if !s.specific {
		return AllScopeValue
	}
	return s.monitorID
}

// Resolve returns the candidate incidents for scope and whether the scope
// targets a single monitor. The returned slice is always freshly allocated.
func Resolve(store *Store, scope Scope) ([]Incident, bool, error) {
	const op string = "incident.scope.resolve"

	if !scope.specific {
		var out []Incident
		for _, m := range store.Monitors() {
			out = append(out, m.Checks...)
		}
		if out == nil {
			out = []Incident{}
		}
		return out, false, nil
	}

	m, ok := store.Get(scope.monitorID)
	if !ok {
		return nil, true, &apperror.Error{
			Kind:    apperror.NotFound,
			Op:      op,
			Message: fmt.Sprintf("monitor %q not found", scope.monitorID),
		}
	}

	out := make([]Incident, len(m.Checks))
	copy(out, m.Checks)
	return out, true, nil
}
