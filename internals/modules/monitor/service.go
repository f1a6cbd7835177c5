package monitor

import (
	"context"
	"encoding/json"
	"time"

	"incident-board/internals/modules/incident"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type MonitorRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]MonitorRecord, error)
	ListDownChecks(ctx context.Context, monitorIDs []uuid.UUID) ([]CheckRecord, error)
}

type Service struct {
	monitorRepo MonitorRepository
	cache       Cache
	snapshotTTL time.Duration
	logger      *zerolog.Logger
}

func NewService(monitorRepo MonitorRepository, cache Cache, snapshotTTL time.Duration, logger *zerolog.Logger) *Service {
	return &Service{
		monitorRepo: monitorRepo,
		cache:       cache,
		snapshotTTL: snapshotTTL,
		logger:      logger,
	}
}

// FetchIncidentsForUser returns every monitor of the user with its down
// checks, in monitor creation order. Cache failures are logged and
// otherwise ignored; database failures are returned.
func (s *Service) FetchIncidentsForUser(ctx context.Context, userID uuid.UUID) ([]incident.Monitor, error) {
	if monitors, ok := s.cachedSnapshot(ctx, userID); ok {
		return monitors, nil
	}

	records, err := s.monitorRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}

	checks, err := s.monitorRepo.ListDownChecks(ctx, ids)
	if err != nil {
		return nil, err
	}

	monitors := buildSnapshot(records, checks)
	s.storeSnapshot(ctx, userID, monitors)

	return monitors, nil
}

// ListMonitors feeds the scope selector.
func (s *Service) ListMonitors(ctx context.Context, userID uuid.UUID) ([]Summary, error) {
	monitors, err := s.FetchIncidentsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(monitors))
	for _, m := range monitors {
		out = append(out, Summary{
			ID:            m.ID,
			Name:          m.Name,
			IncidentCount: len(m.Checks),
		})
	}
	return out, nil
}

// InvalidateUser drops the cached snapshot so the next fetch hits the
// database.
func (s *Service) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.DelSnapshot(ctx, userID); err != nil {
		return err
	}
	s.logger.Debug().Str("user_id", userID.String()).Msg("incident snapshot invalidated")
	return nil
}

func (s *Service) cachedSnapshot(ctx context.Context, userID uuid.UUID) ([]incident.Monitor, bool) {
	if s.cache == nil {
		return nil, false
	}

	data, ok, err := s.cache.GetSnapshot(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID.String()).Msg("snapshot cache read failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var monitors []incident.Monitor
	if err := json.Unmarshal(data, &monitors); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID.String()).Msg("discarding undecodable snapshot")
		return nil, false
	}
	return monitors, true
}

func (s *Service) storeSnapshot(ctx context.Context, userID uuid.UUID, monitors []incident.Monitor) {
	if s.cache == nil || s.snapshotTTL <= 0 {
		return
	}

	data, err := json.Marshal(monitors)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to encode snapshot")
		return
	}
	if err := s.cache.SetSnapshot(ctx, userID, data, s.snapshotTTL); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID.String()).Msg("snapshot cache write failed")
	}
}

// buildSnapshot groups checks under their monitor. Checks whose monitor is
// not in records are attached to nothing and dropped here; the store only
// ever sees monitors the user owns.
func buildSnapshot(records []MonitorRecord, checks []CheckRecord) []incident.Monitor {
	monitors := make([]incident.Monitor, 0, len(records))
	index := make(map[uuid.UUID]int, len(records))

	for _, r := range records {
		index[r.ID] = len(monitors)
		monitors = append(monitors, incident.Monitor{
			ID:     r.ID.String(),
			Name:   r.Name,
			Checks: []incident.Incident{},
		})
	}

	for _, c := range checks {
		i, ok := index[c.MonitorID]
		if !ok {
			continue
		}
		monitors[i].Checks = append(monitors[i].Checks, incident.Incident{
			MonitorID:  c.MonitorID.String(),
			CreatedAt:  c.CreatedAt,
			Status:     c.Status,
			StatusCode: c.StatusCode,
		})
	}

	return monitors
}
