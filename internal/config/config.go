package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Alerts   AlertsConfig   `yaml:"alerts"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	NATS     NATSConfig     `yaml:"nats"`
	Redis    RedisConfig    `yaml:"redis"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// LoginRateLimit is the per-IP request budget per minute for login and register.
	LoginRateLimit int `yaml:"login_rate_limit" env:"SERVER_LOGIN_RATE_LIMIT" env-default:"10"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"false"`
}

// AuthConfig holds access token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"shelfwatch"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"12h"`
	PasswordCost   int           `yaml:"password_cost"    env:"AUTH_PASSWORD_COST"    env-default:"10"`
}

// AlertsConfig holds alert listing settings.
// MaxPageSize bounds an explicit limit; a list without one returns every match.
type AlertsConfig struct {
	MaxPageSize int `yaml:"max_page_size" env:"ALERTS_MAX_PAGE_SIZE" env-default:"200"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// NATSConfig holds the detection ingestion subscriber settings.
// An empty URL disables ingestion over NATS.
type NATSConfig struct {
	URL                 string        `yaml:"url"                   env:"NATS_URL"`
	ClientName          string        `yaml:"client_name"           env:"NATS_CLIENT_NAME"           env-default:"shelfwatch-core"`
	DetectionsSubject   string        `yaml:"detections_subject"    env:"NATS_DETECTIONS_SUBJECT"    env-default:"shelfwatch.detections"`
	CameraStatusSubject string        `yaml:"camera_status_subject" env:"NATS_CAMERA_STATUS_SUBJECT" env-default:"shelfwatch.cameras.status"`
	QueueGroup          string        `yaml:"queue_group"           env:"NATS_QUEUE_GROUP"           env-default:"shelfwatch-core"`
	ConnectTimeout      time.Duration `yaml:"connect_timeout"       env:"NATS_CONNECT_TIMEOUT"       env-default:"5s"`
	ReconnectWait       time.Duration `yaml:"reconnect_wait"        env:"NATS_RECONNECT_WAIT"        env-default:"2s"`
	MaxReconnects       int           `yaml:"max_reconnects"        env:"NATS_MAX_RECONNECTS"        env-default:"60"`
	HandlerTimeout      time.Duration `yaml:"handler_timeout"       env:"NATS_HANDLER_TIMEOUT"       env-default:"10s"`
}

// Enabled reports whether a NATS server is configured.
func (c NATSConfig) Enabled() bool {
	return strings.TrimSpace(c.URL) != ""
}

// RedisConfig holds the alert event stream settings.
// An empty Addr disables event publishing.
type RedisConfig struct {
	Addr         string `yaml:"addr"          env:"REDIS_ADDR"`
	Password     string `yaml:"password"      env:"REDIS_PASSWORD"`
	DB           int    `yaml:"db"            env:"REDIS_DB"            env-default:"0"`
	AlertsStream string `yaml:"alerts_stream" env:"REDIS_ALERTS_STREAM" env-default:"shelfwatch:alerts"`
	StreamMaxLen int64  `yaml:"stream_max_len" env:"REDIS_STREAM_MAX_LEN" env-default:"10000"`
}

// Enabled reports whether a Redis server is configured.
func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}
