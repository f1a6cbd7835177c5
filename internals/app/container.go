package app

import (
	"context"
	"errors"

	"incident-board/config"
	middle "incident-board/internals/middleware"
	"incident-board/internals/modules/incident"
	"incident-board/internals/modules/monitor"
	"incident-board/internals/security"
	"incident-board/pkg/rabbitmq"
	"incident-board/pkg/redisstore"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

type Container struct {
	DB              *pgxpool.Pool
	RedisClient     *redisstore.Client
	AMQPConn        *amqp091.Connection
	Consumer        *rabbitmq.Consumer
	Logger          *zerolog.Logger
	monitorSvc      *monitor.Service
	monitorHandler  *monitor.Handler
	incidentHandler *incident.Handler
	authMW          *middle.AuthMiddleware
	health          pinger
}

type pinger interface {
	Ping(ctx context.Context) error
}

func NewContainer(ctx context.Context, db *pgxpool.Pool, cfg *config.Config, logger *zerolog.Logger) (*Container, error) {

	redisClient, err := redisstore.New(ctx, &cfg.Redis)
	if err != nil {
		return nil, err
	}

	validator := validator.New()

	monitorRepo := monitor.NewRepository(db, logger)
	monitorSvc := monitor.NewService(monitorRepo, redisClient, cfg.Cache.SnapshotTTL, logger)

	incidentHandler := incident.NewHandler(monitorSvc, validator, logger, cfg.Dashboard.RowsPerPage,
		incident.WithTimeFormat(cfg.Dashboard.TimeFormat),
		incident.WithLocation(cfg.Dashboard.Location()),
		incident.WithUnifiedHasAny(cfg.Dashboard.UnifiedHasAny),
	)
	monitorHandler := monitor.NewHandler(monitorSvc)

	tokenSvc := security.NewTokenService(&cfg.Auth)
	authMW := middle.NewAuthMiddleware(tokenSvc)

	c := &Container{
		DB:              db,
		RedisClient:     redisClient,
		Logger:          logger,
		monitorSvc:      monitorSvc,
		monitorHandler:  monitorHandler,
		incidentHandler: incidentHandler,
		authMW:          authMW,
	}
	if db != nil {
		c.health = db
	}

	if cfg.RabbitMQ.BrokerLink == "" {
		logger.Info().Msg("rabbitmq disabled, snapshots expire by ttl only")
		return c, nil
	}

	conn, err := rabbitmq.NewConnection(ctx, &cfg.RabbitMQ, logger)
	if err != nil {
		_ = redisClient.Close()
		return nil, err
	}
	if err := rabbitmq.SetupTopology(conn, &cfg.RabbitMQ); err != nil {
		_ = conn.Close()
		_ = redisClient.Close()
		return nil, err
	}
	consumer, err := rabbitmq.NewConsumer(conn, cfg.RabbitMQ.QueueName, cfg.RabbitMQ.WorkerCount, logger)
	if err != nil {
		_ = conn.Close()
		_ = redisClient.Close()
		return nil, err
	}

	c.AMQPConn = conn
	c.Consumer = consumer
	return c, nil
}

// Shutdown releases infra in reverse order of construction.
func (c *Container) Shutdown(ctx context.Context) error {
	var errs []error

	// 1. Drain the consumer
	if c.Consumer != nil {
		if err := c.Consumer.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if c.AMQPConn != nil {
		if err := c.AMQPConn.Close(); err != nil && !errors.Is(err, amqp091.ErrClosed) {
			errs = append(errs, err)
		}
	}

	// 2. Close redis
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	// 3. Close DB pool
	if c.DB != nil {
		c.DB.Close()
	}

	return errors.Join(errs...)
}
