package rabbitmq

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

type Consumer struct {
	ch          *amqp091.Channel
	queueName   string
	workers     int
	sem         chan struct{}
	wg          sync.WaitGroup
	consumerTag string
	logger      *zerolog.Logger

	cancel     func() error
	cancelOnce sync.Once
}

func NewConsumer(conn *amqp091.Connection, queueName string, workers int, logger *zerolog.Logger) (*Consumer, error) {
	if conn == nil {
		return nil, errors.New("AMQP connection is nil")
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	// Backpressure
	if err := ch.Qos(workers, 0, false); err != nil {
		_ = ch.Close()
		return nil, err
	}

	c := &Consumer{
		ch:          ch,
		queueName:   queueName,
		workers:     workers,
		sem:         make(chan struct{}, workers),
		consumerTag: "incident-board-" + uuid.NewString(),
		logger:      logger,
	}
	c.cancel = func() error { return c.ch.Cancel(c.consumerTag, false) }
	return c, nil
}

// Consume blocks until ctx is cancelled or the delivery channel closes,
// then waits for in-flight handlers.
func (c *Consumer) Consume(ctx context.Context, handler *EventHandler) error {
	msgs, err := c.ch.Consume(
		c.queueName,
		c.consumerTag,
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	return c.dispatch(ctx, msgs, handler)
}

// dispatch fans deliveries out to at most workers goroutines until msgs
// closes.
func (c *Consumer) dispatch(ctx context.Context, msgs <-chan amqp091.Delivery, handler *EventHandler) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			c.stopDeliveries()
		case <-done:
		}
	}()

	for msg := range msgs {
		c.sem <- struct{}{}
		c.wg.Add(1)

		go func(m amqp091.Delivery) {
			defer c.wg.Done()
			defer func() { <-c.sem }()

			msgCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			if err := handler.Handle(msgCtx, m); err != nil {
				c.logger.Error().
					Err(err).
					Str("message_id", m.MessageId).
					Msg("event handling failed")
				_ = m.Nack(false, false)
				return
			}

			_ = m.Ack(false)
		}(msg)
	}

	c.wg.Wait()
	return nil
}

// stopDeliveries cancels the broker subscription once.
func (c *Consumer) stopDeliveries() {
	c.cancelOnce.Do(func() {
		if err := c.cancel(); err != nil {
			c.logger.Warn().Err(err).Str("consumer_tag", c.consumerTag).Msg("consumer cancel failed")
		}
	})
}

func (c *Consumer) Shutdown(ctx context.Context) error {
	c.stopDeliveries()

	done := make(chan struct{})

	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return c.ch.Close()
	case <-ctx.Done():
		return ctx.Err()
	}
}
