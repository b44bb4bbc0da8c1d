package internal

import "time"

type Config struct {
	Host              string        `env:"HOST,default=localhost"`
	Port              int           `env:"PORT,default=8080"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
	ProviderTimeout   time.Duration `env:"PROVIDER_TIMEOUT,default=15s"`
	OpenAIAPIKey      string        `env:"OPENAI_API_KEY"`
	AnthropicAPIKey   string        `env:"ANTHROPIC_API_KEY"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,default=30s"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}
