package config

import "time"

type AuthConfig struct {
	Secret    string `mapstructure:"secret" validate:"required"`
	ExpiryMin int    `mapstructure:"expiry_min" validate:"gte=0"`
}

type DBConfig struct {
	URL             string        `mapstructure:"url" validate:"required"`
	MaxOpenConns    int32         `mapstructure:"max_open_conns" validate:"gte=1"`
	MinIdleConns    int32         `mapstructure:"min_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	HealthTimeout   time.Duration `mapstructure:"health_timeout"`
}

type RedisConfig struct {
	URL             string        `mapstructure:"url" validate:"required"`
	DialTimeout     time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	PoolSize        int           `mapstructure:"pool_size" validate:"gte=1"`
	MinIdleConns    int           `mapstructure:"min_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// RabbitMQConfig is optional, an empty BrokerLink disables the consumer.
type RabbitMQConfig struct {
	BrokerLink   string `mapstructure:"broker_link"`
	ExchangeName string `mapstructure:"exchange_name" validate:"required_with=BrokerLink"`
	ExchangeType string `mapstructure:"exchange_type" validate:"omitempty,oneof=direct topic fanout"`
	QueueName    string `mapstructure:"queue_name" validate:"required_with=BrokerLink"`
	RoutingKey   string `mapstructure:"routing_key"`
	WorkerCount  int    `mapstructure:"worker_count" validate:"gte=1"`
}

type CacheConfig struct {
	SnapshotTTL time.Duration `mapstructure:"snapshot_ttl" validate:"gte=0"`
}

type DashboardConfig struct {
	TimeFormat    string `mapstructure:"time_format" validate:"required"`
	Timezone      string `mapstructure:"timezone" validate:"required"`
	RowsPerPage   int    `mapstructure:"rows_per_page" validate:"gte=1,lte=500"`
	UnifiedHasAny bool   `mapstructure:"unified_has_any"`
}

type Config struct {
	Port        int             `mapstructure:"port" validate:"required,gte=1,lte=65535"`
	Env         string          `mapstructure:"env" validate:"required"`
	ServiceName string          `mapstructure:"service_name" validate:"required"`
	DB          DBConfig        `mapstructure:"db"`
	Redis       RedisConfig     `mapstructure:"redis"`
	Auth        AuthConfig      `mapstructure:"auth"`
	RabbitMQ    RabbitMQConfig  `mapstructure:"rabbitmq"`
	Cache       CacheConfig     `mapstructure:"cache"`
	Dashboard   DashboardConfig `mapstructure:"dashboard"`
}
