package incident

import (
	"fmt"

	"incident-board/pkg/apperror"
)

// Store is an immutable snapshot of a user's monitors. It keeps the order
// the data source returned them in, which is the order checks are
// concatenated for the "all" scope.
type Store struct {
	order []string
	byID  map[string]Monitor
}

// NewStore builds a snapshot. Monitor ids must be unique.
func NewStore(monitors []Monitor) (*Store, error) {
	const op string = "incident.store.new"

	s := &Store{
		order: make([]string, 0, len(monitors)),
		byID:  make(map[string]Monitor, len(monitors)),
	}

	for _, m := range monitors {
		if _, dup := s.byID[m.ID]; dup {
			return nil, &apperror.Error{
				Kind:    apperror.Conflict,
				Op:      op,
				Message: fmt.Sprintf("duplicate monitor id %q", m.ID),
			}
		}
		checks := make([]Incident, len(m.Checks))
		copy(checks, m.Checks)
		m.Checks = checks

		s.order = append(s.order, m.ID)
		s.byID[m.ID] = m
	}

	return s, nil
}

// EmptyStore is the snapshot installed before the first fetch and after a
// failed one.
func EmptyStore() *Store {
	return &Store{byID: map[string]Monitor{}}
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

func (s *Store) Get(id string) (Monitor, bool) {
	if s == nil {
		return Monitor{}, false
	}
	m, ok := s.byID[id]
	return m, ok
}

// Monitors returns the monitors in store order. The slice is a copy; the
// Checks slices are shared and must not be modified.
func (s *Store) Monitors() []Monitor {
	if s == nil {
		return nil
	}
	out := make([]Monitor, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// IncidentCount is the number of checks across every monitor.
func (s *Store) IncidentCount() int {
	n := 0
	for _, m := range s.Monitors() {
		n += len(m.Checks)
	}
	return n
}
