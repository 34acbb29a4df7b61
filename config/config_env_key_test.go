package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"payment": map[string]any{
			"apiKey":        "",
			"webhookSecret": "",
		},
		"secretKey": map[string]any{
			"session": "",
		},
		"http": map[string]any{
			"baseURL": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PAYMENT_APIKEY", want: "payment.apiKey"},
		{envKey: "PAYMENT_WEBHOOKSECRET", want: "payment.webhookSecret"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "HTTP_BASEURL", want: "http.baseURL"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.HTTP.Port = 8000

	applyDefaults(cfg)

	assert.Equal(t, "http://localhost:8000", cfg.HTTP.BaseURL)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 6, cfg.Auth.MinPasswordLength)
	assert.Equal(t, "brl", cfg.Payment.Currency)
	assert.Equal(t, 300*time.Second, cfg.Cache.UserTTL)
	assert.Equal(t, 600*time.Second, cfg.Cache.ProfileTTL)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.Equal(t, "none", cfg.PubSub.Provider)
}

func TestApplyDefaults_TrimsBaseURL(t *testing.T) {
	cfg := &Config{}
	cfg.HTTP.BaseURL = "https://loja.example.com/"

	applyDefaults(cfg)

	assert.Equal(t, "https://loja.example.com", cfg.HTTP.BaseURL)
}

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := &PostgresConfig{Database: "comerciojusto"}
	dsn := cfg.DSN(ConnectionConfig{Host: "db", Port: "5432", UserName: "app", Password: "secret"})

	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=comerciojusto sslmode=disable", dsn)
}
