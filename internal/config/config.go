package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/vytor/dsaportal/internal/logger"
)

const DefaultAPIBaseURL = "http://localhost:5000/api"

type Config struct {
	Addr            string
	APIBaseURL      string
	DBPath          string
	LogLevel        string
	RequestTimeout  time.Duration
	RateLimitRPS    float64
	RateLimitBurst  int
	SyncWorkerCount int
	SyncQueueSize   int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing or unparsable.
func Load() Config {
	// .env is optional; production relies on the real environment.
	_ = godotenv.Load()

	return Config{
		Addr:            envOr("ADDR", ":8080"),
		APIBaseURL:      strings.TrimRight(envOr("API_BASE_URL", DefaultAPIBaseURL), "/"),
		DBPath:          envOr("DB_PATH", "file:dsaportal.db"),
		LogLevel:        envOr("LOG_LEVEL", "INFO"),
		RequestTimeout:  envDurationOr("REQUEST_TIMEOUT", 0),
		RateLimitRPS:    envFloatOr("RATE_LIMIT_RPS", 0),
		RateLimitBurst:  envIntOr("RATE_LIMIT_BURST", 1),
		SyncWorkerCount: envIntOr("SYNC_WORKER_COUNT", 2),
		SyncQueueSize:   envIntOr("SYNC_QUEUE_SIZE", 32),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.Addr == "" {
		errs = append(errs, errors.New("ADDR cannot be empty"))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("DB_PATH cannot be empty"))
	}
	if c.APIBaseURL == "" {
		errs = append(errs, errors.New("API_BASE_URL cannot be empty"))
	} else if u, err := url.Parse(c.APIBaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("API_BASE_URL must be an absolute http(s) URL, got %q", c.APIBaseURL))
	}
	if _, ok := logger.LookupLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR, got %q", c.LogLevel))
	}
	if c.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("REQUEST_TIMEOUT cannot be negative, got %s", c.RequestTimeout))
	}
	if c.RateLimitRPS < 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_RPS cannot be negative, got %v", c.RateLimitRPS))
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_BURST must be positive when rate limiting, got %d", c.RateLimitBurst))
	}
	if c.SyncWorkerCount <= 0 {
		errs = append(errs, fmt.Errorf("SYNC_WORKER_COUNT must be positive, got %d", c.SyncWorkerCount))
	}
	if c.SyncQueueSize <= 0 {
		errs = append(errs, fmt.Errorf("SYNC_QUEUE_SIZE must be positive, got %d", c.SyncQueueSize))
	}

	return errors.Join(errs...)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid value for %s=%q, using default %v", key, v, def)
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %s", key, v, def)
	}
	return def
}
