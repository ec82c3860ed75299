package config

import (
	"time"

	"github.com/joho/godotenv"
)

// LoadTestConfig loads the configuration from the .env file or environment variables for integration tests
// The courses backend is served in-process by the tests, so the base URL stays empty
func LoadTestConfig() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist - it's optional)
	// Try both possible paths
	_ = godotenv.Load("./../../configs/.env")
	_ = godotenv.Load()

	cfg := &Config{}
	timeout, err := durationEnv("TEST_COURSES_API_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.CoursesAPI.Timeout = timeout

	cfg.Logging.Level = "debug"
	cfg.CORS.AllowedOrigins = []string{"*"}

	return cfg, nil
}
