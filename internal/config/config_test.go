package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/dsaportal/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:            ":8080",
		APIBaseURL:      "http://localhost:5000/api",
		DBPath:          "test.db",
		LogLevel:        "INFO",
		RateLimitBurst:  1,
		SyncWorkerCount: 2,
		SyncQueueSize:   32,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_APIBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "http", url: "http://localhost:5000/api"},
		{name: "https", url: "https://portal.example.com/api"},
		{name: "empty", url: "", wantErr: true},
		{name: "relative", url: "/api", wantErr: true},
		{name: "other scheme", url: "ftp://example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.APIBaseURL = tt.url

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "API_BASE_URL")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_LogLevel(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{level: "DEBUG"},
		{level: "INFO"},
		{level: "WARN"},
		{level: "ERROR"},
		{level: "debug"},
		{level: "INVALID", wantErr: true},
		{level: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = tt.level

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_RateLimit(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimitRPS = 5
	cfg.RateLimitBurst = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RATE_LIMIT_BURST")

	cfg.RateLimitRPS = -1
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RATE_LIMIT_RPS")
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{
		LogLevel:       "INVALID",
		RequestTimeout: -time.Second,
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "ADDR cannot be empty")
	assert.Contains(t, errStr, "DB_PATH cannot be empty")
	assert.Contains(t, errStr, "API_BASE_URL cannot be empty")
	assert.Contains(t, errStr, "LOG_LEVEL")
	assert.Contains(t, errStr, "REQUEST_TIMEOUT")
	assert.Contains(t, errStr, "SYNC_WORKER_COUNT")
	assert.Contains(t, errStr, "SYNC_QUEUE_SIZE")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("API_BASE_URL", "https://portal.example.com/api/")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("SYNC_WORKER_COUNT", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "https://portal.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2, cfg.SyncWorkerCount)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("REQUEST_TIMEOUT", "")

	cfg := config.Load()

	assert.Equal(t, config.DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Zero(t, cfg.RequestTimeout)
}
