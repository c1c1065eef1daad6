package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
)

// Store drivers
const (
	DriverMemory   = "memory"
	DriverSqlite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// Auth backends
const (
	BackendStub = "stub"
	BackendHTTP = "http"
)

type AuthCfg struct {
	Backend     string        `env:"AUTH_BACKEND" envDefault:"stub" validate:"oneof=stub http"`
	StubDelay   time.Duration `env:"AUTH_STUB_DELAY" envDefault:"2s"`
	HTTPURL     string        `env:"AUTH_HTTP_URL" envDefault:"http://localhost:3000" validate:"required,url"`
	HTTPTimeout time.Duration `env:"AUTH_HTTP_TIMEOUT" envDefault:"10s"`
}

type StoreCfg struct {
	Driver     string `env:"STORE_DRIVER" envDefault:"sqlite" validate:"oneof=memory sqlite postgres mongo"`
	Profile    string `env:"STORE_PROFILE" envDefault:"default" validate:"required"`
	SqlitePath string `env:"SQLITE_PATH" envDefault:"authflow.db"`
}

type PostgresCfg struct {
	User        string `env:"POSTGRES_USER" envDefault:"authflow"`
	Password    string `env:"POSTGRES_PASSWORD" envDefault:""`
	Host        string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	Database    string `env:"POSTGRES_DB" envDefault:"authflow"`
	SslMode     string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	PoolMaxConn int    `env:"POSTGRES_POOL_MAX_CONN" envDefault:"10"`
}

type MongoCfg struct {
	User        string `env:"MONGO_USER" envDefault:""`
	Password    string `env:"MONGO_PASSWORD" envDefault:""`
	Host        string `env:"MONGO_HOST" envDefault:"localhost"`
	Port        int    `env:"MONGO_PORT" envDefault:"27017"`
	MaxPoolSize int    `env:"MONGO_MAX_POOL_SIZE" envDefault:"10"`
}

type RedisCfg struct {
	CacheEnabled bool          `env:"REDIS_CACHE_ENABLED" envDefault:"false"`
	Addr         string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password     string        `env:"REDIS_PASSWORD" envDefault:""`
	DB           int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL     time.Duration `env:"REDIS_CACHE_TTL" envDefault:"10m"`
}

type SocialCfg struct {
	GoogleClientID string        `env:"GOOGLE_CLIENT_ID" envDefault:"authflow-google"`
	FacebookAppID  string        `env:"FACEBOOK_APP_ID" envDefault:"authflow-facebook"`
	Outcome        string        `env:"SOCIAL_OUTCOME" envDefault:"success" validate:"oneof=success cancel dismiss error"`
	Delay          time.Duration `env:"SOCIAL_DELAY" envDefault:"1s"`
}

type ServerCfg struct {
	Port            int           `env:"SERVER_PORT" envDefault:"3000" validate:"gt=0,lte=65535"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type LogCfg struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	File   string `env:"LOG_FILE" envDefault:"authflow.log"`
}

type Config struct {
	AuthCfg     AuthCfg
	StoreCfg    StoreCfg
	PostgresCfg PostgresCfg
	MongoCfg    MongoCfg
	RedisCfg    RedisCfg
	SocialCfg   SocialCfg
	ServerCfg   ServerCfg
	LogCfg      LogCfg
}

func Build() (Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid configuration - %w", err)
	}
	return cfg, nil
}
