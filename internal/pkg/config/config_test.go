package config

import (
	"context"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "storefront", cfg.Mongo.Database)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Empty(t, cfg.Redis.Password)
	assert.Equal(t, "usd", cfg.Payment.Currency)
	assert.Empty(t, cfg.Payment.StripeKey)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":     "s3cret",
		"PORT":           "8080",
		"ENV":            "production",
		"REDIS_DB":       "2",
		"REDIS_PASSWORD": "r3dis",
		"STRIPE_KEY":     "sk_test_123",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "r3dis", cfg.Redis.Password)
	assert.Equal(t, "sk_test_123", cfg.Payment.StripeKey)
}

func TestLoadFrom_MissingSecret(t *testing.T) {
	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}
