package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// default first
	setDefaults(v)

	// File Config
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Env Config
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read File
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Validate
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("service_name", "incident-board")
	v.SetDefault("port", 8080)

	// secrets usually come from env, keys must be known to viper for that
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.expiry_min", 30)

	v.SetDefault("db.url", "")
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.min_idle_conns", 2)
	v.SetDefault("db.conn_max_lifetime", "1h")
	v.SetDefault("db.conn_max_idle_time", "30m")
	v.SetDefault("db.health_timeout", "5s")

	v.SetDefault("redis.url", "redis://localhost:6379/0")
	v.SetDefault("redis.dial_timeout", "5s")
	v.SetDefault("redis.read_timeout", "3s")
	v.SetDefault("redis.write_timeout", "3s")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)
	v.SetDefault("redis.conn_max_lifetime", "2m")
	v.SetDefault("redis.conn_max_idle_time", "30s")

	v.SetDefault("rabbitmq.broker_link", "")
	v.SetDefault("rabbitmq.exchange_name", "monitor.events")
	v.SetDefault("rabbitmq.exchange_type", "topic")
	v.SetDefault("rabbitmq.queue_name", "incident-board.checks")
	v.SetDefault("rabbitmq.routing_key", "check.recorded")
	v.SetDefault("rabbitmq.worker_count", 10)

	v.SetDefault("cache.snapshot_ttl", "1m")

	v.SetDefault("dashboard.time_format", "1/2/2006, 3:04:05 PM")
	v.SetDefault("dashboard.timezone", "Local")
	v.SetDefault("dashboard.rows_per_page", 12)
	v.SetDefault("dashboard.unified_has_any", false)
}

func validateConfig(cfg *Config) error {

	validate := validator.New()

	if err := validate.Struct(cfg); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return formatValidationErrors(ve)
		}
		return err
	}

	if _, err := time.LoadLocation(cfg.Dashboard.Timezone); err != nil {
		return fmt.Errorf("config validation failed:\n- field 'Config.Dashboard.Timezone': %w", err)
	}
	return nil
}

func formatValidationErrors(ve validator.ValidationErrors) error {
	var sb strings.Builder
	sb.WriteString("config validation failed:\n")

	for _, fe := range ve {
		fmt.Fprintf(&sb, "- field '%s' failed on '%s'\n", fe.Namespace(), fe.Tag())
	}
	return errors.New(sb.String())
}

// Location returns the time zone rows are rendered in.
func (d DashboardConfig) Location() *time.Location {
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
