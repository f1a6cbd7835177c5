package rabbitmq

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

func newTestConsumer(cancel func() error) *Consumer {
	log := zerolog.Nop()
	return &Consumer{
		workers:     2,
		sem:         make(chan struct{}, 2),
		consumerTag: "test",
		logger:      &log,
		cancel:      cancel,
	}
}

func TestDispatchReturnsWhenDeliveriesClose(t *testing.T) {
	var cancels atomic.Int32
	c := newTestConsumer(func() error {
		cancels.Add(1)
		return nil
	})

	inv := &recordingInvalidator{}
	log := zerolog.Nop()
	userID := uuid.New()

	msgs := make(chan amqp091.Delivery, 1)
	msgs <- amqp091.Delivery{Body: event(t, CheckRecordedEvent, CheckRecorded{UserID: userID, MonitorID: uuid.New()})}
	close(msgs)

	ctx, cancel := context.WithCancel(context.Background())
	if err := c.dispatch(ctx, msgs, NewEventHandler(inv, &log)); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if len(inv.users) != 1 || inv.users[0] != userID {
		t.Fatalf("expected invalidation for %v, got %v", userID, inv.users)
	}

	// the watcher has already exited, a late cancel must not reach the broker
	cancel()
	time.Sleep(20 * time.Millisecond)
	if n := cancels.Load(); n != 0 {
		t.Fatalf("subscription cancelled %d times after dispatch returned", n)
	}
}

func TestDispatchCancelsOnceOnContextDone(t *testing.T) {
	msgs := make(chan amqp091.Delivery)

	var cancels atomic.Int32
	c := newTestConsumer(func() error {
		if cancels.Add(1) == 1 {
			close(msgs) // the broker closes deliveries after a cancel
		}
		return nil
	})

	log := zerolog.Nop()
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- c.dispatch(ctx, msgs, NewEventHandler(&recordingInvalidator{}, &log))
	}()

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("dispatch: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("dispatch did not return after cancellation")
	}

	c.stopDeliveries()
	if n := cancels.Load(); n != 1 {
		t.Fatalf("expected one cancel, got %d", n)
	}
}
