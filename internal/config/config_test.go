package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultsAndEnv(t *testing.T) {
	t.Setenv("DATABASE_USER", "inventory")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DATABASE_URL", "db:5432/inventory?sslmode=disable")
	t.Setenv("FORECAST_MAX_ATTEMPTS", "5")
	t.Setenv("FORECAST_INITIAL_BACKOFF", "500ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://inventory:secret@db:5432/inventory?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, 5, cfg.Forecast.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Forecast.InitialBackoff)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.AllowedOrigins)

	assert.Equal(t, 7, cfg.Forecast.HorizonDays)
	assert.InDelta(t, 2.0, cfg.Forecast.BackoffMultiplier, 0.0001)
	assert.Equal(t, time.Hour, cfg.Forecast.CacheTTL)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "0 2 * * *", cfg.ForecastSnapshot.CronSchedule)
	assert.False(t, cfg.ForecastSnapshot.Enabled)
}

func TestConfig_SalesLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		want     string
	}{
		{name: "fuso válido", timezone: "Asia/Manila", want: "Asia/Manila"},
		{name: "fuso inválido", timezone: "Lua/Base", want: "UTC"},
		{name: "vazio", timezone: "", want: "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Sales: Sales{Timezone: tt.timezone}}
			assert.Equal(t, tt.want, cfg.SalesLocation().String())
		})
	}
}

func TestLoadEnvFile_ParentDirectory(t *testing.T) {
	root := t.TempDir()
	child := filepath.Join(root, "cmd")
	require.NoError(t, os.Mkdir(child, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("INVENTORY_ENV_SOURCE=parent\n"), 0o600))

	require.NoError(t, os.Unsetenv("INVENTORY_ENV_SOURCE"))
	t.Cleanup(func() { os.Unsetenv("INVENTORY_ENV_SOURCE") })
	t.Chdir(child)

	loadEnvFile()

	assert.Equal(t, "parent", os.Getenv("INVENTORY_ENV_SOURCE"))
}
