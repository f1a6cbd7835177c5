package monitor

import (
	"time"

	"github.com/google/uuid"
)

type MonitorRecord struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string
}

type CheckRecord struct {
	MonitorID  uuid.UUID
	Status     bool
	StatusCode int
	CreatedAt  time.Time
}

// Summary is what the scope selector lists.
type Summary struct {
	ID            string
	Name          string
	IncidentCount int
}
