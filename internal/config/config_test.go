package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, ":8080", cfg.HTTPAddress)
	require.Equal(t, "web/static", cfg.StaticDir)
	require.Empty(t, cfg.EventBrokers)
	require.Equal(t, "activity_membership", cfg.EventTopic)
	require.Equal(t, 5*time.Second, cfg.ReadTimeout)
	require.Equal(t, 10*time.Second, cfg.WriteTimeout)
	require.Equal(t, 60*time.Second, cfg.IdleTimeout)
	require.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("EVENT_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("HTTP_READ_TIMEOUT", "2s")

	cfg := Load()

	require.Equal(t, ":9090", cfg.HTTPAddress)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.EventBrokers)
	require.Equal(t, 2*time.Second, cfg.ReadTimeout)
}

func TestLoadIgnoresMalformedDuration(t *testing.T) {
	t.Setenv("HTTP_WRITE_TIMEOUT", "soon")

	cfg := Load()

	require.Equal(t, 10*time.Second, cfg.WriteTimeout)
}
