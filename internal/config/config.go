package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

type Config struct {
	Server       ServerConfig       `yaml:"server"       validate:"required"`
	Logger       LoggerConfig       `yaml:"logger"       validate:"required"`
	Gin          GinConfig          `yaml:"gin"          validate:"required"`
	Postgres     PostgresConfig     `yaml:"postgres"     validate:"required"`
	Redis        RedisConfig        `yaml:"redis"        validate:"required"`
	Sync         SyncConfig         `yaml:"sync"         validate:"required"`
	Confirmation ConfirmationConfig `yaml:"confirmation" validate:"required"`
	RateLimit    RateLimitConfig    `yaml:"ratelimit"    validate:"required"`
	Telegram     TelegramConfig     `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

// LogLevel maps the configured level onto wbf's logger.Level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"mixer"     validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

// DSN is in key/value form, accepted by both database/sql and pq.Listener.
func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379" validate:"required"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"              validate:"min=0"`
}

// SyncConfig drives the change feed and the synchronization adapters.
type SyncConfig struct {
	ResyncInterval time.Duration `yaml:"resync_interval" env:"SYNC_RESYNC_INTERVAL" env-default:"30s"   validate:"required,gt=0"`
	MinReconnect   time.Duration `yaml:"min_reconnect"   env:"SYNC_MIN_RECONNECT"   env-default:"1s"    validate:"required,gt=0"`
	MaxReconnect   time.Duration `yaml:"max_reconnect"   env:"SYNC_MAX_RECONNECT"   env-default:"1m"    validate:"required,gtfield=MinReconnect"`
	Attempts       int           `yaml:"attempts"        env:"SYNC_ATTEMPTS"        env-default:"3"     validate:"min=1"`
	Delay          time.Duration `yaml:"delay"           env:"SYNC_DELAY"           env-default:"500ms" validate:"gt=0"`
	Backoff        float64       `yaml:"backoff"         env:"SYNC_BACKOFF"         env-default:"2"     validate:"gte=1"`
}

// Strategy is the backoff adapters use when a snapshot load fails.
func (c SyncConfig) Strategy() retry.Strategy {
	return retry.Strategy{
		Attempts: c.Attempts,
		Delay:    c.Delay,
		Backoff:  c.Backoff,
	}
}

type ConfirmationConfig struct {
	TTL time.Duration `yaml:"ttl" env:"CONFIRMATION_TTL" env-default:"2m" validate:"required,gt=0"`
}

type RateLimitConfig struct {
	ScanPerSecond float64 `yaml:"scan_per_second" env:"RATELIMIT_SCAN_PER_SECOND" env-default:"5"  validate:"gt=0"`
	ScanBurst     int     `yaml:"scan_burst"      env:"RATELIMIT_SCAN_BURST"      env-default:"10" validate:"min=1"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
