package incident

import (
	"fmt"
	"slices"
	"time"

	"incident-board/pkg/apperror"
)

// DefaultTimeFormat renders timestamps the way en-US browsers print
// Date.toLocaleString().
const DefaultTimeFormat = "1/2/2006, 3:04:05 PM"

type options struct {
	timeFormat    string
	location      *time.Location
	unifiedHasAny bool
}

type Option func(*options)

func WithTimeFormat(layout string) Option {
	return func(o *options) {
		if layout != "" {
			o.timeFormat = layout
		}
	}
}

func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.location = loc
		}
	}
}

// WithUnifiedHasAny makes HasAny depend on the scoped candidates for both
// scopes. By default a specific scope always reports HasAny.
func WithUnifiedHasAny(unified bool) Option {
	return func(o *options) {
		o.unifiedHasAny = unified
	}
}

func buildOptions(opts []Option) options {
	o := options{
		timeFormat: DefaultTimeFormat,
		location:   time.Local,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Aggregate turns a snapshot into ordered display rows for scope and mode.
// It does not modify store and returns the same output for the same input.
func Aggregate(store *Store, scope Scope, mode FilterMode, opts ...Option) (Result, error) {
	o := buildOptions(opts)

	if !mode.Valid() {
		return Result{}, invalidFilterMode("incident.pipeline.aggregate", mode.String())
	}

	candidates, scopedToOne, err := Resolve(store, scope)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Rows:      make([]DisplayRow, 0, len(candidates)),
		HasScoped: len(candidates) > 0,
	}
	if scopedToOne && !o.unifiedHasAny {
		res.HasAny = true
	} else {
		res.HasAny = len(candidates) > 0
	}

	// most recent first, equal timestamps keep their relative order
	slices.SortStableFunc(candidates, func(a, b Incident) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	for _, inc := range candidates {
		ok, err := Matches(inc, mode)
		if err != nil {
			return Result{}, err
		}
		if !ok {
			continue
		}

		m, found := store.Get(inc.MonitorID)
		if !found {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Kind:      string(apperror.DanglingMonitorReference),
				MonitorID: inc.MonitorID,
				CreatedAt: inc.CreatedAt,
				Message:   fmt.Sprintf("incident references unknown monitor %q", inc.MonitorID),
			})
			continue
		}

		res.Rows = append(res.Rows, DisplayRow{
			Index:       len(res.Rows),
			Label:       DownLabel,
			Status:      inc.Status,
			Timestamp:   inc.CreatedAt.In(o.location).Format(o.timeFormat),
			CreatedAt:   inc.CreatedAt,
			MonitorID:   inc.MonitorID,
			MonitorName: m.Name,
			StatusCode:  inc.StatusCode,
		})
	}

	return res, nil
}
