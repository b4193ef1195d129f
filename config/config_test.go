package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
Env = "staging"

[Database]
Type = "sqlite"
File = "concierge.db"

[Settlement]
Interval = "15m"
Workers = 4
Timezone = "UTC"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	t.Setenv("SETTLEMENT_WORKERS", "8")
	t.Setenv("ADMIN_TOKEN", "secret")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "staging", cfg.Env)
	require.Equal(t, "sqlite", cfg.Database.Type)
	require.Equal(t, "concierge.db", cfg.Database.File)
	require.Equal(t, 15*time.Minute, cfg.Settlement.Interval.Duration)
	require.Equal(t, 8, cfg.Settlement.Workers)
	require.Equal(t, "secret", cfg.Admin.Token)

	// Defaults survive when the file does not set them.
	require.Equal(t, 24*time.Hour, cfg.Redis.DrawResultTTL.Duration)
	require.True(t, cfg.Settlement.RunNow)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("SETTLEMENT_WORKERS", "0")
	_, err := Load("")
	require.Error(t, err)

	t.Setenv("SETTLEMENT_WORKERS", "2")
	t.Setenv("SETTLEMENT_TIMEZONE", "Mars/Olympus")
	_, err = Load("")
	require.Error(t, err)

	t.Setenv("SETTLEMENT_TIMEZONE", "UTC")
	t.Setenv("SETTLEMENT_INTERVAL", "soon")
	_, err = Load("")
	require.Error(t, err)
}

func TestKafkaConfigs_Brokers(t *testing.T) {
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"},
		KafkaConfigs{Addr: "kafka-1:9092, kafka-2:9092,"}.Brokers())
	require.Empty(t, KafkaConfigs{}.Brokers())
}
