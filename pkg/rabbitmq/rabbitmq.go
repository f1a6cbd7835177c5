package rabbitmq

import (
	"context"
	"fmt"
	"time"

	"incident-board/config"

	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const dialAttempts = 5

func NewConnection(ctx context.Context, rmqCfg *config.RabbitMQConfig, log *zerolog.Logger) (*amqp091.Connection, error) {

	var conn *amqp091.Connection
	var err error
	for i := range dialAttempts {
		conn, err = amqp091.Dial(rmqCfg.BrokerLink)
		if err == nil {
			return conn, nil
		}
		log.Warn().Err(err).Int("attempt", i+1).Msg("rabbitmq connection attempt failed")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}
	return nil, fmt.Errorf("connect to rabbitmq after %d attempts: %w", dialAttempts, err)
}

func SetupTopology(conn *amqp091.Connection, rmqCfg *config.RabbitMQConfig) error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		rmqCfg.ExchangeName,
		rmqCfg.ExchangeType,
		true, false, false, false, nil,
	); err != nil {
		return err
	}

	if _, err := ch.QueueDeclare(
		rmqCfg.QueueName,
		true, false, false, false, nil,
	); err != nil {
		return err
	}

	if err = ch.QueueBind(
		rmqCfg.QueueName,
		rmqCfg.RoutingKey,
		rmqCfg.ExchangeName,
		false, nil,
	); err != nil {
		return err
	}

	return nil
}
