package incident

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Fetcher loads every monitor of a user together with its incidents.
type Fetcher interface {
	FetchIncidentsForUser(ctx context.Context, userID uuid.UUID) ([]Monitor, error)
}

// View is everything the page needs for one render.
type View struct {
	Scope    Scope
	Filter   FilterMode
	State    State
	Result   Result
	Monitors []Monitor
}

// Controller owns the current snapshot and the two selectors. The
// aggregation itself stays a pure function of those three values.
type Controller struct {
	fetcher Fetcher
	logger  *zerolog.Logger
	opts    []Option

	mu      sync.RWMutex
	store   *Store
	scope   Scope
	filter  FilterMode
	loading bool
}

func NewController(fetcher Fetcher, logger *zerolog.Logger, opts ...Option) *Controller {
	return &Controller{
		fetcher: fetcher,
		logger:  logger,
		opts:    opts,
		store:   EmptyStore(),
	}
}

// Refresh replaces the snapshot with a fresh fetch. On failure the store is
// emptied, so the page degrades to the empty state, and the error is
// returned for the caller to surface.
func (c *Controller) Refresh(ctx context.Context, userID uuid.UUID) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	monitors, err := c.fetcher.FetchIncidentsForUser(ctx, userID)

	store := EmptyStore()
	if err == nil {
		var s *Store
		s, err = NewStore(monitors)
		if err == nil {
			store = s
		}
	}

	c.mu.Lock()
	c.store = store
	c.loading = false
	c.mu.Unlock()

	if err != nil {
		c.logger.Error().
			Err(err).
			Str("user_id", userID.String()).
			Msg("failed to fetch incidents, showing empty history")
		return err
	}

	c.logger.Debug().
		Str("user_id", userID.String()).
		Int("monitors", store.Len()).
		Int("incidents", store.IncidentCount()).
		Msg("incident snapshot refreshed")
	return nil
}

// SetScope selects a scope. A monitor id that is not in the current
// snapshot is rejected with NotFound and the previous scope is kept.
func (c *Controller) SetScope(scope Scope) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !scope.IsAll() {
		if _, _, err := Resolve(c.store, scope); err != nil {
			return err
		}
	}
	c.scope = scope
	return nil
}

// ResetScope goes back to every monitor.
func (c *Controller) ResetScope() {
	c.mu.Lock()
	c.scope = AllMonitors()
	c.mu.Unlock()
}

func (c *Controller) SetFilter(mode FilterMode) error {
	if !mode.Valid() {
		return invalidFilterMode("incident.controller.set_filter", mode.String())
	}
	c.mu.Lock()
	c.filter = mode
	c.mu.Unlock()
	return nil
}

// View runs the pipeline over the current snapshot. While a fetch is in
// flight it returns the loading state without aggregating.
func (c *Controller) View() (View, error) {
	c.mu.RLock()
	store, scope, filter, loading := c.store, c.scope, c.filter, c.loading
	c.mu.RUnlock()

	v := View{
		Scope:    scope,
		Filter:   filter,
		Monitors: store.Monitors(),
	}
	if loading {
		v.State = StateLoading
		return v, nil
	}

	res, err := Aggregate(store, scope, filter, c.opts...)
	if err != nil {
		return v, err
	}

	for _, d := range res.Diagnostics {
		c.logger.Warn().
			Str("kind", d.Kind).
			Str("monitor_id", d.MonitorID).
			Time("created_at", d.CreatedAt).
			Msg(d.Message)
	}

	v.Result = res
	v.State = Classify(false, res)
	return v, nil
}
