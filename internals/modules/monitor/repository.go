package monitor

import (
	"context"

	"incident-board/pkg/db"
	"incident-board/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"
)

const listMonitorsByUser = `
SELECT id, user_id, name
FROM monitors
WHERE user_id = $1
ORDER BY created_at, id`

// Only down checks are incidents.
const listDownChecks = `
SELECT monitor_id, status, status_code, created_at
FROM monitor_checks
WHERE monitor_id = ANY($1) AND status = false
ORDER BY created_at, id`

type Repository struct {
	dbExecutor db.DBTX
	logger     *zerolog.Logger
}

func NewRepository(dbExecutor db.DBTX, logger *zerolog.Logger) *Repository {
	return &Repository{
		dbExecutor: dbExecutor,
		logger:     logger,
	}
}

func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]MonitorRecord, error) {
	const op string = "repo.monitor.list_by_user"

	rows, err := r.dbExecutor.Query(ctx, listMonitorsByUser, utils.ToPgUUID(userID))
	if err != nil {
		return nil, utils.WrapRepoError(op, err, false, r.logger)
	}
	defer rows.Close()

	var monitors []MonitorRecord
	for rows.Next() {
		var (
			id, owner pgtype.UUID
			name      string
		)
		if err := rows.Scan(&id, &owner, &name); err != nil {
			return nil, utils.WrapRepoError(op, err, false, r.logger)
		}
		monitors = append(monitors, MonitorRecord{
			ID:     utils.FromPgUUID(id),
			UserID: utils.FromPgUUID(owner),
			Name:   name,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, utils.WrapRepoError(op, err, false, r.logger)
	}

	return monitors, nil
}

func (r *Repository) ListDownChecks(ctx context.Context, monitorIDs []uuid.UUID) ([]CheckRecord, error) {
	const op string = "repo.monitor.list_down_checks"

	if len(monitorIDs) == 0 {
		return nil, nil
	}

	rows, err := r.dbExecutor.Query(ctx, listDownChecks, utils.ToPgUUIDArray(monitorIDs))
	if err != nil {
		return nil, utils.WrapRepoError(op, err, false, r.logger)
	}
	defer rows.Close()

	var checks []CheckRecord
	for rows.Next() {
		var (
			monitorID  pgtype.UUID
			status     bool
			statusCode int32
			createdAt  pgtype.Timestamptz
		)
		if err := rows.Scan(&monitorID, &status, &statusCode, &createdAt); err != nil {
			return nil, utils.WrapRepoError(op, err, false, r.logger)
		}
		checks = append(checks, CheckRecord{
			MonitorID:  utils.FromPgUUID(monitorID),
			Status:     status,
			StatusCode: int(statusCode),
			CreatedAt:  utils.FromPgTimestamptz(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, utils.WrapRepoError(op, err, false, r.logger)
	}

	return checks, nil
}
