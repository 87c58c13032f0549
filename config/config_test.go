package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults",
			env:  map[string]string{"GO_ENV": "production"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "8080", cfg.Port)
				assert.Equal(t, DriverPostgres, cfg.DBDriver)
				assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
				assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
				assert.True(t, cfg.IsProduction())
				assert.False(t, cfg.TrustProxyHeaders)
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"GO_ENV":              "production",
				"PORT":                "9090",
				"DB_DRIVER":           " SQLite ",
				"SQLITE_PATH":         "/tmp/test.db",
				"CORS_ORIGINS":        "http://a.test,http://b.test",
				"REQUEST_TIMEOUT":     "2s",
				"TRUST_PROXY_HEADERS": "true",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "9090", cfg.Port)
				assert.Equal(t, DriverSQLite, cfg.DBDriver)
				assert.Equal(t, "/tmp/test.db", cfg.SQLitePath)
				assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
				assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
				assert.True(t, cfg.TrustProxyHeaders)
			},
		},
		{
			name:    "unsupported driver",
			env:     map[string]string{"GO_ENV": "production", "DB_DRIVER": "mysql"},
			wantErr: true,
		},
		{
			name:    "bad duration",
			env:     map[string]string{"GO_ENV": "production", "REQUEST_TIMEOUT": "soon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "production", "warn")
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "v", rec["k"])

	buf.Reset()
	logger = newLogger(&buf, "", "")
	require.True(t, logger.Enabled(t.Context(), slog.LevelInfo))
	require.False(t, logger.Enabled(t.Context(), slog.LevelDebug))
	logger.Info("text")
	assert.Contains(t, buf.String(), "msg=text")
}
