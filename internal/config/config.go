package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	EnvironmentSandbox    = "sandbox"
	EnvironmentProduction = "production"
)

type Config struct {
	RunAddress string `env:"RUN_ADDRESS"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`

	// SessionTTL время жизни сессионных слотов (заказ + транзакция).
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"1h"`

	GatewayBaseURL     string        `env:"GATEWAY_BASE_URL"`
	GatewayMerchantID  string        `env:"GATEWAY_MERCHANT_ID"`
	GatewayPublicKey   string        `env:"GATEWAY_PUBLIC_KEY"`
	GatewayPrivateKey  string        `env:"GATEWAY_PRIVATE_KEY"`
	GatewayEnvironment string        `env:"GATEWAY_ENVIRONMENT" envDefault:"sandbox"`
	GatewayTimeout     time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"10s"`

	Currency string `env:"CURRENCY" envDefault:"USD"`
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)

	if missing := missingGatewayVars(conf); len(missing) > 0 {
		return nil, errors.New("missing required gateway credentials: " + strings.Join(missing, ", "))
	}

	if conf.GatewayEnvironment != EnvironmentSandbox && conf.GatewayEnvironment != EnvironmentProduction {
		return nil, fmt.Errorf("unknown gateway environment %q", conf.GatewayEnvironment)
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

// missingGatewayVars возвращает список незаполненных обязательных реквизитов шлюза.
// Без них запускать процесс нет смысла.
func missingGatewayVars(conf *Config) []string {
	var missing []string
	if conf.GatewayMerchantID == "" {
		missing = append(missing, "GATEWAY_MERCHANT_ID")
	}
	if conf.GatewayPublicKey == "" {
		missing = append(missing, "GATEWAY_PUBLIC_KEY")
	}
	if conf.GatewayPrivateKey == "" {
		missing = append(missing, "GATEWAY_PRIVATE_KEY")
	}
	return missing
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.RedisAddr, "r", "localhost:6379", "Redis address in format host:port")
	flag.StringVar(&flagConfig.GatewayBaseURL, "g", "https://api.sandbox.gateway.example.com", "Payment gateway base URL")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	merged := *envConfig
	merged.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	merged.RedisAddr = defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr)
	merged.GatewayBaseURL = defaultIfBlank(envConfig.GatewayBaseURL, flagsConfig.GatewayBaseURL)
	return &merged
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
