package rabbitmq

import (
	"encoding/json"

	"github.com/google/uuid"
)

// CheckRecordedEvent is published by the checker whenever a check result
// is persisted.
const CheckRecordedEvent = "check.recorded"

type EventPayload struct {
	ID      uuid.UUID       `json:"id"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type CheckRecorded struct {
	UserID    uuid.UUID `json:"user_id"`
	MonitorID uuid.UUID `json:"monitor_id"`
}
