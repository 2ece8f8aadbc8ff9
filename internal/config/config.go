package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Gifts     GiftsConfig     `yaml:"gifts"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS"`
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
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"`
	TxAttempts      int           `yaml:"tx_attempts"        env:"DATABASE_TX_ATTEMPTS"        env-default:"3"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"petmemorial"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"24h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// GiftsConfig holds gift placement and catalog settings.
type GiftsConfig struct {
	MaxMonths        int           `yaml:"max_months"         env:"GIFTS_MAX_MONTHS"         env-default:"12"`
	DefaultMonths    int           `yaml:"default_months"     env:"GIFTS_DEFAULT_MONTHS"     env-default:"1"`
	CatalogCacheTTL  time.Duration `yaml:"catalog_cache_ttl"  env:"GIFTS_CATALOG_CACHE_TTL"  env-default:"30s"`
	OwnerEmailDomain string        `yaml:"owner_email_domain" env:"GIFTS_OWNER_EMAIL_DOMAIN" env-default:"owners.petmemorial.local"`
	MaxPhotosPerPet  int           `yaml:"max_photos_per_pet" env:"GIFTS_MAX_PHOTOS_PER_PET" env-default:"50"`
	MaxTopUp         int64         `yaml:"max_top_up"         env:"GIFTS_MAX_TOP_UP"         env-default:"1000000"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// RateLimitConfig holds per-client request limits for the write endpoints.
type RateLimitConfig struct {
	Enabled       bool          `yaml:"enabled"        env:"RATE_LIMIT_ENABLED"`
	Requests      int           `yaml:"requests"       env:"RATE_LIMIT_REQUESTS"       env-default:"30"`
	Window        time.Duration `yaml:"window"         env:"RATE_LIMIT_WINDOW"         env-default:"1m"`
	CleanupPeriod time.Duration `yaml:"cleanup_period" env:"RATE_LIMIT_CLEANUP_PERIOD" env-default:"5m"`
}

// applyBoolDefaults presets the switches that default to true. cleanenv
// treats a false bool as unset and would apply an env-default over an
// explicit "false" in YAML, so these carry no env-default tag.
func (c *Config) applyBoolDefaults() {
	c.Database.AutoMigrate = true
	c.CORS.AllowCredentials = true
	c.Metrics.Enabled = true
	c.RateLimit.Enabled = true
}

// AllowedOriginList splits AllowedOrigins into trimmed, non-empty entries.
func (c CORSConfig) AllowedOriginList() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
