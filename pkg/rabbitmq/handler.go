package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// SnapshotInvalidator drops whatever is cached for a user.
type SnapshotInvalidator interface {
	InvalidateUser(ctx context.Context, userID uuid.UUID) error
}

type EventHandler struct {
	invalidator SnapshotInvalidator
	logger      *zerolog.Logger
}

func NewEventHandler(invalidator SnapshotInvalidator, logger *zerolog.Logger) *EventHandler {
	return &EventHandler{
		invalidator: invalidator,
		logger:      logger,
	}
}

func (h *EventHandler) Handle(ctx context.Context, msg amqp091.Delivery) error {
	return h.HandleBody(ctx, msg.Body)
}

// HandleBody processes one raw event. Unknown event types are ignored.
func (h *EventHandler) HandleBody(ctx context.Context, body []byte) error {
	var event EventPayload
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("decode event: %w", err)
	}

	if event.Type != CheckRecordedEvent {
		h.logger.Debug().Str("type", event.Type).Msg("ignoring event")
		return nil
	}

	var payload CheckRecorded
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return fmt.Errorf("decode %s payload: %w", event.Type, err)
	}
	if payload.UserID == uuid.Nil {
		return fmt.Errorf("%s event %v has no user_id", event.Type, event.ID)
	}

	return h.invalidator.InvalidateUser(ctx, payload.UserID)
}
