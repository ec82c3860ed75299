package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name          string
		env           map[string]string
		expectedError bool
		check         func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults",
			env: map[string]string{
				"COURSES_API_URL": "http://localhost:9000/",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "http://localhost:9000", cfg.CoursesAPI.BaseURL)
				assert.Equal(t, 10*time.Second, cfg.CoursesAPI.Timeout)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 100, cfg.Server.RateLimitPerMinute)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
			},
		},
		{
			name: "explicit values",
			env: map[string]string{
				"COURSES_API_URL":       "http://backend",
				"COURSES_API_TIMEOUT":   "3s",
				"SERVER_PORT":           "9090",
				"RATE_LIMIT_PER_MINUTE": "20",
				"LOG_LEVEL":             "debug",
				"CORS_ALLOWED_ORIGINS":  "http://a.test, ,http://b.test",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 3*time.Second, cfg.CoursesAPI.Timeout)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 20, cfg.Server.RateLimitPerMinute)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
			},
		},
		{
			name:          "missing backend url",
			env:           map[string]string{"COURSES_API_URL": ""},
			expectedError: true,
		},
		{
			name: "invalid port",
			env: map[string]string{
				"COURSES_API_URL": "http://backend",
				"SERVER_PORT":     "eighty",
			},
			expectedError: true,
		},
		{
			name: "invalid timeout",
			env: map[string]string{
				"COURSES_API_URL":     "http://backend",
				"COURSES_API_TIMEOUT": "soon",
			},
			expectedError: true,
		},
		{
			name: "non-positive rate limit",
			env: map[string]string{
				"COURSES_API_URL":       "http://backend",
				"RATE_LIMIT_PER_MINUTE": "0",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"COURSES_API_URL", "COURSES_API_TIMEOUT", "SERVER_PORT", "RATE_LIMIT_PER_MINUTE", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadTestConfig(t *testing.T) {
	t.Run("default timeout", func(t *testing.T) {
		t.Setenv("TEST_COURSES_API_TIMEOUT", "")

		cfg, err := LoadTestConfig()

		require.NoError(t, err)
		assert.Empty(t, cfg.CoursesAPI.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.CoursesAPI.Timeout)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("custom timeout", func(t *testing.T) {
		t.Setenv("TEST_COURSES_API_TIMEOUT", "2s")

		cfg, err := LoadTestConfig()

		require.NoError(t, err)
		assert.Equal(t, 2*time.Second, cfg.CoursesAPI.Timeout)
	})

	t.Run("invalid timeout", func(t *testing.T) {
		t.Setenv("TEST_COURSES_API_TIMEOUT", "soon")

		_, err := LoadTestConfig()

		assert.Error(t, err)
	})
}
