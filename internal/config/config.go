package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the functions
type Config struct {
	Environment string `validate:"required"`
	Logging     LoggingConfig
	Failure     FailureConfig
	Serverless  ServerlessConfig
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string `validate:"required,oneof=trace debug info warn warning error fatal panic"`
	Format string `validate:"omitempty,oneof=json text"` // "json" or "text"; empty picks per deployment mode
}

// FailureConfig controls the simulated failure of the second function
type FailureConfig struct {
	Rate  float64       `validate:"gte=0,lte=1"`
	Delay time.Duration `validate:"gte=0"`
	Seed  int64
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("STAGE", "dev")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "")
	viper.SetDefault("FAILURE_RATE", 0.3)
	viper.SetDefault("FAILURE_DELAY", 2*time.Second)
	viper.SetDefault("FAILURE_SEED", 0)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Logging: LoggingConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Failure: FailureConfig{
			Rate:  viper.GetFloat64("FAILURE_RATE"),
			Delay: viper.GetDuration("FAILURE_DELAY"),
			Seed:  viper.GetInt64("FAILURE_SEED"),
		},
		Serverless: LoadServerlessConfig(),
	}

	return config, nil
}

// Validate checks the configuration against its field constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
