package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramBotToken string
	Environment      string
	ServicePort      string
	CartStore        string
	RedisConfig      RedisConfig
	TracingConfig    TracingConfig
}

type RedisConfig struct {
	Addr string
}

type TracingConfig struct {
	Enabled       bool
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		Environment:      os.Getenv("ENVIRONMENT"),
		ServicePort:      os.Getenv("SERVICE_PORT"),
		CartStore:        os.Getenv("CART_STORE"),
		RedisConfig: RedisConfig{
			Addr: os.Getenv("REDIS_ADDR"),
		},
		TracingConfig: TracingConfig{
			Enabled:       os.Getenv("TRACING_ENABLED") == "true",
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	if conf.ServicePort == "" {
		conf.ServicePort = "8080"
	}
	if conf.CartStore == "" {
		conf.CartStore = "memory"
	}

	return &conf
}
