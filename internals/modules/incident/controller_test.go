package incident

import (
	"context"
	"errors"
	"testing"
	"time"

	"incident-board/pkg/apperror"

	"github.com/google/uuid"
)

type fakeFetcher struct {
	monitors []Monitor
	err      error
	calls    int
	gate     chan struct{}
	entered  chan struct{}
}

func (f *fakeFetcher) FetchIncidentsForUser(ctx context.Context, userID uuid.UUID) ([]Monitor, error) {
	f.calls++
	if f.entered != nil {
		close(f.entered)
	}
	if f.gate != nil {
		<-f.gate
	}
	return f.monitors, f.err
}

func TestControllerStartsEmpty(t *testing.T) {
	c := NewController(&fakeFetcher{}, nopLogger())

	v, err := c.View()
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if v.State != StateEmpty || !v.Scope.IsAll() || v.Filter != FilterAll {
		t.Fatalf("unexpected initial view %+v", v)
	}
}

func TestControllerRefreshAndSelect(t *testing.T) {
	f := &fakeFetcher{monitors: []Monitor{
		{ID: "M1", Name: "api", Checks: []Incident{check("M1", 10, false, 5000), check("M1", 20, false, 5001)}},
		{ID: "M2", Name: "web"},
	}}
	c := NewController(f, nopLogger(), WithLocation(time.UTC))

	if err := c.Refresh(context.Background(), uuid.New()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	v, err := c.View()
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if v.State != StatePopulated || len(v.Result.Rows) != 2 || len(v.Monitors) != 2 {
		t.Fatalf("unexpected view %+v", v)
	}

	if err := c.SetFilter(FilterCannotResolve); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}
	v, _ = c.View()
	if len(v.Result.Rows) != 1 || v.Result.Rows[0].StatusCode != 5000 {
		t.Fatalf("filter not applied: %+v", v.Result.Rows)
	}

	if err := c.SetScope(SpecificMonitor("M2")); err != nil {
		t.Fatalf("SetScope: %v", err)
	}
	v, _ = c.View()
	if v.State != StateScopedEmpty || v.Scope.MonitorID() != "M2" {
		t.Fatalf("expected scoped empty for M2, got %+v", v)
	}
}

func TestControllerRejectsUnknownScope(t *testing.T) {
	f := &fakeFetcher{monitors: []Monitor{{ID: "M1"}}}
	c := NewController(f, nopLogger())
	_ = c.Refresh(context.Background(), uuid.New())

	if err := c.SetScope(SpecificMonitor("M1")); err != nil {
		t.Fatalf("SetScope: %v", err)
	}
	err := c.SetScope(SpecificMonitor("nope"))
	if !apperror.IsKind(err, apperror.NotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}

	v, _ := c.View()
	if v.Scope.MonitorID() != "M1" {
		t.Fatalf("previous scope should be kept, got %q", v.Scope)
	}
}

func TestControllerScopeVanishesAfterRefresh(t *testing.T) {
	f := &fakeFetcher{monitors: []Monitor{{ID: "M1"}, {ID: "M2"}}}
	c := NewController(f, nopLogger())
	_ = c.Refresh(context.Background(), uuid.New())
	if err := c.SetScope(SpecificMonitor("M2")); err != nil {
		t.Fatalf("SetScope: %v", err)
	}

	f.monitors = []Monitor{{ID: "M1", Checks: []Incident{check("M1", 1, false, 500)}}}
	_ = c.Refresh(context.Background(), uuid.New())

	_, err := c.View()
	if !apperror.IsKind(err, apperror.NotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}

	c.ResetScope()
	v, err := c.View()
	if err != nil {
		t.Fatalf("View after reset: %v", err)
	}
	if v.State != StatePopulated {
		t.Fatalf("expected populated after reset, got %s", v.State)
	}
}

func TestControllerFetchFailureDegradesToEmpty(t *testing.T) {
	f := &fakeFetcher{monitors: []Monitor{{ID: "M1", Checks: []Incident{check("M1", 1, false, 500)}}}}
	c := NewController(f, nopLogger())
	_ = c.Refresh(context.Background(), uuid.New())

	f.err = errors.New("connection refused")
	if err := c.Refresh(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected the fetch error to be returned")
	}

	v, err := c.View()
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if v.State != StateEmpty || len(v.Monitors) != 0 {
		t.Fatalf("expected empty view after failed fetch, got %+v", v)
	}
}

func TestControllerDuplicateMonitorsDegradeToEmpty(t *testing.T) {
	f := &fakeFetcher{monitors: []Monitor{{ID: "M1"}, {ID: "M1"}}}
	c := NewController(f, nopLogger())

	err := c.Refresh(context.Background(), uuid.New())
	if !apperror.IsKind(err, apperror.Conflict) {
		t.Fatalf("expected Conflict, got %v", err)
	}
	v, _ := c.View()
	if v.State != StateEmpty {
		t.Fatalf("expected empty state, got %s", v.State)
	}
}

func TestControllerLoadingState(t *testing.T) {
	f := &fakeFetcher{
		monitors: []Monitor{{ID: "M1", Checks: []Incident{check("M1", 1, false, 500)}}},
		gate:     make(chan struct{}),
		entered:  make(chan struct{}),
	}
	c := NewController(f, nopLogger())

	done := make(chan error, 1)
	go func() { done <- c.Refresh(context.Background(), uuid.New()) }()

	<-f.entered
	v, err := c.View()
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if v.State != StateLoading || len(v.Result.Rows) != 0 {
		t.Fatalf("expected loading view, got %+v", v)
	}

	close(f.gate)
	if err := <-done; err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	v, _ = c.View()
	if v.State != StatePopulated {
		t.Fatalf("expected populated once loaded, got %s", v.State)
	}
}

func TestControllerSetFilterRejectsUnknown(t *testing.T) {
	c := NewController(&fakeFetcher{}, nopLogger())
	if err := c.SetFilter(FilterMode(99)); !apperror.IsKind(err, apperror.InvalidFilterMode) {
		t.Fatalf("expected InvalidFilterMode, got %v", err)
	}
}
