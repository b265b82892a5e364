package config

import (
	"time"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Cache     CacheConfig     `yaml:"cache"`
	Redis     RedisConfig     `yaml:"redis"`
	Origin    OriginConfig    `yaml:"origin"`
	Assembly  AssemblyConfig  `yaml:"assembly"`
	Quota     QuotaConfig     `yaml:"quota"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// Cache drivers.
const (
	CacheDriverPostgres = "postgres"
	CacheDriverRedis    = "redis"
)

// CacheConfig selects the cache store and tunes the serving path.
type CacheConfig struct {
	Driver      string        `yaml:"driver"       env:"CACHE_DRIVER"       env-default:"postgres"`
	MaxAge      time.Duration `yaml:"max_age"      env:"CACHE_MAX_AGE"      env-default:"1h"`
	LoaderWait  time.Duration `yaml:"loader_wait"  env:"CACHE_LOADER_WAIT"  env-default:"2ms"`
	LoaderBatch int           `yaml:"loader_batch" env:"CACHE_LOADER_BATCH" env-default:"100"`
	ReadTimeout time.Duration `yaml:"read_timeout" env:"CACHE_READ_TIMEOUT" env-default:"5s"`
}

// RedisConfig holds Redis connection settings for the redis cache driver.
type RedisConfig struct {
	Addr        string        `yaml:"addr"         env:"REDIS_ADDR"         env-default:"localhost:6379"`
	Password    string        `yaml:"password"     env:"REDIS_PASSWORD"`
	DB          int           `yaml:"db"           env:"REDIS_DB"           env-default:"0"`
	Prefix      string        `yaml:"prefix"       env:"REDIS_PREFIX"       env-default:"llmstxt:cache"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
}

// OriginConfig holds Shopify Admin API client settings.
type OriginConfig struct {
	EndpointTemplate string        `yaml:"endpoint_template" env:"ORIGIN_ENDPOINT_TEMPLATE" env-default:"https://{shop}/admin/api/{version}/graphql.json"`
	APIVersion       string        `yaml:"api_version"       env:"ORIGIN_API_VERSION"       env-default:"2025-01"`
	Timeout          time.Duration `yaml:"timeout"           env:"ORIGIN_TIMEOUT"           env-default:"15s"`
	MaxRetries       int           `yaml:"max_retries"       env:"ORIGIN_MAX_RETRIES"       env-default:"2"`
	RetryDelay       time.Duration `yaml:"retry_delay"       env:"ORIGIN_RETRY_DELAY"       env-default:"500ms"`
	BatchSize        int           `yaml:"batch_size"        env:"ORIGIN_BATCH_SIZE"        env-default:"50"`
	RateRPS          float64       `yaml:"rate_rps"          env:"ORIGIN_RATE_RPS"          env-default:"2"`
	RateBurst        int           `yaml:"rate_burst"        env:"ORIGIN_RATE_BURST"        env-default:"4"`
}

// AssemblyConfig controls artifact generation.
type AssemblyConfig struct {
	Parallel        bool          `yaml:"parallel"      env:"ASSEMBLY_PARALLEL"      env-default:"false"`
	SectionOrderRaw string        `yaml:"section_order" env:"ASSEMBLY_SECTION_ORDER" env-default:"products,collections,articles,pages"`
	Timeout         time.Duration `yaml:"timeout"       env:"ASSEMBLY_TIMEOUT"       env-default:"10m"`

	// SectionOrder is parsed from SectionOrderRaw during validation.
	SectionOrder []domain.ResourceType `yaml:"-" env:"-"`
}

// QuotaConfig holds per-tier limits as "products=100,collections=5,..." lists.
// A negative value means unlimited; an omitted resource type is skipped.
type QuotaConfig struct {
	FreeRaw  string `yaml:"free"  env:"QUOTA_FREE"  env-default:"products=100,collections=5,articles=5,pages=10"`
	BasicRaw string `yaml:"basic" env:"QUOTA_BASIC" env-default:"products=500,collections=50,articles=100,pages=100"`
	ProRaw   string `yaml:"pro"   env:"QUOTA_PRO"   env-default:"products=-1,collections=-1,articles=-1,pages=-1"`

	// Table is parsed from the raw values during validation.
	Table map[domain.Tier]domain.QuotaLimits `yaml:"-" env:"-"`
}

// AuthConfig holds the app credentials shared with Shopify.
type AuthConfig struct {
	APIKey        string        `yaml:"api_key"        env:"SHOPIFY_API_KEY"`
	APISecret     string        `yaml:"api_secret"     env:"SHOPIFY_API_SECRET"     env-required:"true"`
	SessionLeeway time.Duration `yaml:"session_leeway" env:"AUTH_SESSION_LEEWAY"    env-default:"5s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds inbound per-IP limits for the public proxy.
type RateLimitConfig struct {
	ProxyRPS        float64       `yaml:"proxy_rps"        env:"RATELIMIT_PROXY_RPS"        env-default:"5"`
	ProxyBurst      int           `yaml:"proxy_burst"      env:"RATELIMIT_PROXY_BURST"      env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATELIMIT_CLEANUP_INTERVAL" env-default:"1m"`
}
