package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlContent := []byte(`
env:
  env: develop
http:
  port: 8080
pubsub:
  provider: kafka
  topicId: notification-events
  brokers: []
rateLimit:
  enabled: true
  limit: 10
  window: 1m
`)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), yamlContent, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Chdir(dir)
	t.Setenv("PUBSUB_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("RATELIMIT_LIMIT", "25")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	if err != nil {
		t.Fatalf("LoadWithEnv() error = %v", err)
	}
	applyDefaults(cfg)

	if cfg.HTTP.Port != 9090 {
		t.Fatalf("HTTP.Port = %d, want 9090", cfg.HTTP.Port)
	}
	if got := cfg.PubSub.Brokers; len(got) != 2 || got[0] != "kafka-1:9092" || got[1] != "kafka-2:9092" {
		t.Fatalf("PubSub.Brokers = %v", got)
	}
	if cfg.RateLimit.Limit != 25 || cfg.RateLimit.Window != time.Minute {
		t.Fatalf("RateLimit = %+v", *cfg.RateLimit)
	}
	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q", cfg.HTTP.MaxRequestBodySize)
	}
	if cfg.Redis.Enabled() {
		t.Fatal("redis must be disabled without an address")
	}
}
