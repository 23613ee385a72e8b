// Package config loads service settings from the environment. A .env file in the
// working directory is read first when present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const envFile = ".env"

// PostgresEndpoint is one side of the read/write split.
type PostgresEndpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"     default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

type RedisEndpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"     default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB"`
}

type CORS struct {
	Enable           bool     `envconfig:"ENABLE"`
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
	MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
}

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT" default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"10"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"tavola"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     CORS   `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary RedisEndpoint `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret string `envconfig:"ACCESS_SECRET"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			Read           PostgresEndpoint `envconfig:"READ"`
			Write          PostgresEndpoint `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Booking struct {
		SessionTTLSeconds int `envconfig:"SESSION_TTL_SECONDS" default:"1800"`
		MaxPartySize      int `envconfig:"MAX_PARTY_SIZE"      default:"20"`
		Discount          struct {
			StandardRate  string `envconfig:"STANDARD_RATE"  default:"0.10"`
			PremiumRate   string `envconfig:"PREMIUM_RATE"   default:"0.15"`
			HighThreshold string `envconfig:"HIGH_THRESHOLD" default:"3000"`
		} `envconfig:"DISCOUNT"`
	} `envconfig:"BOOKING"`

	Payment struct {
		Enabled bool `envconfig:"ENABLED" default:"true"`
	} `envconfig:"PAYMENT"`

	Loyalty struct {
		BasePoints  int    `envconfig:"BASE_POINTS"  default:"10"`
		BonusPoints int    `envconfig:"BONUS_POINTS" default:"5"`
		Topic       string `envconfig:"TOPIC"        default:"loyalty.points.awarded"`
	} `envconfig:"LOYALTY"`

	Kafka struct {
		Brokers []string `envconfig:"BROKERS"`
		SASL    struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			ReceiptDir      string `envconfig:"RECEIPT_DIR" default:"receipts"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf    Config
	loadErr error
	once    sync.Once
)

// Load reads the environment once. Later calls return the result of the first.
func Load() (*Config, error) {
	once.Do(func() {
		switch err := godotenv.Load(envFile); {
		case err == nil:
			log.Debug().Str("file", envFile).Msg("environment file loaded")
		case errors.Is(err, fs.ErrNotExist):
			// environment only
		default:
			log.Warn().Err(err).Str("file", envFile).Msg("environment file ignored")
		}

		if err := envconfig.Process("", &conf); err != nil {
			loadErr = fmt.Errorf("failed to process environment: %w", err)
		}
	})

	if loadErr != nil {
		return nil, loadErr
	}

	return &conf, nil
}

// Get is Load for callers that cannot run without configuration.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration unavailable")
	}

	return cfg
}
