package incident

import (
	"testing"

	"incident-board/pkg/apperror"
)

func TestNewStoreRejectsDuplicateIDs(t *testing.T) {
	_, err := NewStore([]Monitor{{ID: "m1"}, {ID: "m1"}})
	if !apperror.IsKind(err, apperror.Conflict) {
		t.Fatalf("expected Conflict, got %v", err)
	}
}

func TestStoreKeepsSourceOrder(t *testing.T) {
	s := mustStore(t,
		Monitor{ID: "c", Name: "gamma"},
		Monitor{ID: "a", Name: "alpha"},
		Monitor{ID: "b", Name: "beta"},
	)

	got := s.Monitors()
	want := []string{"c", "a", "b"}
	if len(got) != len(want) {
		t.Fatalf("expected %d monitors, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestStoreCopiesChecks(t *testing.T) {
	checks := []Incident{check("m1", 10, false, 500)}
	s := mustStore(t, Monitor{ID: "m1", Checks: checks})

	checks[0].StatusCode = 200

	m, _ := s.Get("m1")
	if m.Checks[0].StatusCode != 500 {
		t.Fatal("store should not alias the caller's checks")
	}
}

func TestEmptyAndNilStore(t *testing.T) {
	var nilStore *Store
	if nilStore.Len() != 0 || nilStore.Monitors() != nil {
		t.Fatal("nil store should behave as empty")
	}
	if _, ok := nilStore.Get("x"); ok {
		t.Fatal("nil store should not find anything")
	}
	if EmptyStore().IncidentCount() != 0 {
		t.Fatal("empty store should have no incidents")
	}
}
