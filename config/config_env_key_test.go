package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"uri":          "mongodb://localhost:27017",
			"transactions": true,
		},
		"redis": map[string]any{
			"keyPrefix": "roster",
		},
		"rateLimit": map[string]any{
			"login": "10-M",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"tokenTTL": "24h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_URI", want: "mongo.uri"},
		{envKey: "MONGO_TRANSACTIONS", want: "mongo.transactions"},
		{envKey: "REDIS_KEYPREFIX", want: "redis.keyPrefix"},
		{envKey: "RATELIMIT_LOGIN", want: "rateLimit.login"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
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

func TestApplyDefaults_FillsEmptySections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Mongo)
	require.NotNil(t, cfg.Session)
	require.NotNil(t, cfg.Auth)
	require.NotNil(t, cfg.Pagination)
	require.NotNil(t, cfg.RateLimit)
	require.NotNil(t, cfg.Metrics)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, SessionStoreMemory, cfg.Session.Store)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, defaultMaxRecords, cfg.Pagination.MaxRecords)
	assert.Equal(t, defaultLoginRate, cfg.RateLimit.Login)
	assert.Equal(t, defaultMongoTimeout, cfg.Mongo.Timeout)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Session:    &SessionConfig{Store: SessionStoreRedis},
		Pagination: &PaginationConfig{MaxRecords: 20},
		Auth:       &AuthConfig{TokenTTL: time.Hour, BcryptCost: 11},
	}

	applyDefaults(cfg)

	assert.Equal(t, SessionStoreRedis, cfg.Session.Store)
	assert.Equal(t, 20, cfg.MaxRecords())
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 11, cfg.Auth.BcryptCost)
}

func TestConfig_MaxRecordsOnNil(t *testing.T) {
	var cfg *Config

	assert.Equal(t, defaultMaxRecords, cfg.MaxRecords())
}
