package config

import (
	"os"
)

// ServerlessConfig holds serverless-specific configuration
type ServerlessConfig struct {
	IsLambda        bool
	FunctionName    string
	FunctionVersion string
	MemoryMB        int
	Region          string
	Stage           string
}

// LoadServerlessConfig reads the runtime environment the platform exposes
func LoadServerlessConfig() ServerlessConfig {
	return ServerlessConfig{
		IsLambda:        isRunningInLambda(),
		FunctionName:    os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		FunctionVersion: os.Getenv("AWS_LAMBDA_FUNCTION_VERSION"),
		MemoryMB:        GetEnvAsInt("AWS_LAMBDA_FUNCTION_MEMORY_SIZE", 0),
		Region:          os.Getenv("AWS_REGION"),
		Stage:           GetEnv("STAGE", "dev"),
	}
}

// isRunningInLambda detects if the application is running in AWS Lambda
func isRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// GetDeploymentMode returns the current deployment mode
func (c *Config) GetDeploymentMode() string {
	if c.Serverless.IsLambda {
		return "serverless"
	}
	return "local"
}

// AdaptConfigForServerless fills in settings that depend on where the
// function runs
func AdaptConfigForServerless(config *Config) *Config {
	if config.Logging.Format != "" {
		return config
	}

	// JSON inside Lambda, text on a terminal
	if config.Serverless.IsLambda {
		config.Logging.Format = "json"
	} else {
		config.Logging.Format = "text"
	}

	return config
}

// GetOptimizedConfig returns configuration optimized for the current deployment mode
func GetOptimizedConfig() (*Config, error) {
	config, err := Load()
	if err != nil {
		return nil, err
	}

	config = AdaptConfigForServerless(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
