package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for a test and returns a cleanup
// function that restores the previous values.
func setupEnv(t *testing.T, envVars map[string]string) func() {
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	for name, value := range envVars {
		if value == "" {
			require.NoError(t, os.Unsetenv(name))
			continue
		}
		require.NoError(t, os.Setenv(name, value), "Failed to set environment variable %s", name)
	}

	return func() {
		for name, value := range originalValues {
			if value == "" {
				_ = os.Unsetenv(name)
			} else {
				_ = os.Setenv(name, value)
			}
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		// The secret is the only setting without a default.
		"TASKAPI_AUTH_JWT_SECRET": "thisisasecretkeythatis32charslong!!",
		"TASKAPI_SERVER_PORT":     "",
		"TASKAPI_SERVER_LOG_LEVEL": "",
		"TASKAPI_REDIS_URL":        "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes, "Default token lifetime should be 60 minutes")
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"TASKAPI_SERVER_PORT":                "9090",
		"TASKAPI_SERVER_LOG_LEVEL":           "debug",
		"TASKAPI_REDIS_URL":                  "redis://redis.internal:6379/1",
		"TASKAPI_AUTH_JWT_SECRET":            "thisisasecretkeythatis32charslong!!",
		"TASKAPI_AUTH_TOKEN_LIFETIME_MINUTES": "15",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "redis://redis.internal:6379/1", cfg.Redis.URL)
	assert.Equal(t, "thisisasecretkeythatis32charslong!!", cfg.Auth.JWTSecret)
	assert.Equal(t, 15, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "missing jwt secret",
			envVars: map[string]string{
				"TASKAPI_AUTH_JWT_SECRET": "",
			},
		},
		{
			name: "jwt secret too short",
			envVars: map[string]string{
				"TASKAPI_AUTH_JWT_SECRET": "too-short",
			},
		},
		{
			name: "invalid log level",
			envVars: map[string]string{
				"TASKAPI_AUTH_JWT_SECRET":  "thisisasecretkeythatis32charslong!!",
				"TASKAPI_SERVER_LOG_LEVEL": "verbose",
			},
		},
		{
			name: "port out of range",
			envVars: map[string]string{
				"TASKAPI_AUTH_JWT_SECRET": "thisisasecretkeythatis32charslong!!",
				"TASKAPI_SERVER_PORT":     "70000",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
