package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, env map[string]string) (*Config, error) {
	t.Helper()
	return LoadFrom(context.Background(), envconfig.MapLookuper(env))
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := load(t, map[string]string{"JWT_SECRET": "s"})
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreFile, cfg.Credential.Store)
	assert.Equal(t, ".console/credential", cfg.Credential.Path)
	assert.Equal(t, "console:auth_token", cfg.Credential.Key)
	assert.False(t, cfg.Session.AllowDegradedClaims)
	assert.Equal(t, 16, cfg.Session.DecodeCacheSize)
	assert.Equal(t, LoginLocal, cfg.Login.Mode)
	assert.Equal(t, 8*time.Hour, cfg.Login.TokenTTL)
	assert.Equal(t, DirectoryMemory, cfg.Login.Directory)
	assert.Equal(t, "admin_console", cfg.Mongo.Database)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := load(t, map[string]string{
		"ENV":                           "production",
		"CREDENTIAL_STORE":              "redis",
		"REDIS_ADDR":                    "cache:6379",
		"REDIS_DB":                      "3",
		"SESSION_ALLOW_DEGRADED_CLAIMS": "true",
		"LOGIN_MODE":                    "remote",
		"LOGIN_URL":                     "https://idp.example.com/auth/login",
	})
	require.NoError(t, err)

	assert.Equal(t, StoreRedis, cfg.Credential.Store)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.True(t, cfg.Session.AllowDegradedClaims)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"missing secret":     {},
		"bad store":          {"JWT_SECRET": "s", "CREDENTIAL_STORE": "cookie"},
		"bad mode":           {"JWT_SECRET": "s", "LOGIN_MODE": "sso"},
		"remote without url": {"LOGIN_MODE": "remote"},
		"bad directory":      {"JWT_SECRET": "s", "USER_DIRECTORY": "ldap"},
		"half seed":          {"JWT_SECRET": "s", "SEED_USERNAME": "root"},
		"negative cache":     {"JWT_SECRET": "s", "SESSION_DECODE_CACHE": "-1"},
		"unparsable bool":    {"JWT_SECRET": "s", "SESSION_ALLOW_DEGRADED_CLAIMS": "maybe"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := load(t, env)
			assert.Error(t, err)
		})
	}
}
