package db

import "context"

// Schema is the subset of the monitoring database this service reads.
// The checker service owns these tables; EnsureSchema exists for local
// development and integration tests.
const Schema = `
CREATE TABLE IF NOT EXISTS monitors (
	id          uuid PRIMARY KEY,
	user_id     uuid NOT NULL,
	name        text NOT NULL,
	url         text NOT NULL,
	created_at  timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS monitor_checks (
	id          uuid PRIMARY KEY,
	monitor_id  uuid NOT NULL REFERENCES monitors(id) ON DELETE CASCADE,
	status      boolean NOT NULL,
	status_code integer NOT NULL,
	created_at  timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS monitor_checks_monitor_created_idx
	ON monitor_checks (monitor_id, created_at);
`

func EnsureSchema(ctx context.Context, dbExecutor DBTX) error {
	_, err := dbExecutor.Exec(ctx, Schema)
	return err
}
