package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort string `mapstructure:"APP_PORT"`
	Env     string `mapstructure:"ENV"`

	// Upstream marketplace API.
	BackendAPIURL    string `mapstructure:"BACKEND_API_URL"`
	BackendTimeoutMS int    `mapstructure:"BACKEND_TIMEOUT_MS"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Persisted state store: "badger", "redis" or "memory".
	StateStore string `mapstructure:"STATE_STORE"`
	StateDir   string `mapstructure:"STATE_DIR"`

	// Redis configuration (used when STATE_STORE=redis).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisStateDB  int    `mapstructure:"REDIS_STATE_DB"`

	// Background timers.
	DashboardPollSeconds int `mapstructure:"DASHBOARD_POLL_SECONDS"`
	AutosaveSeconds      int `mapstructure:"AUTOSAVE_SECONDS"`
}

var AppConfig Config

func LoadConfig() {
	// A local .env is optional; viper picks up whatever it exports.
	_ = godotenv.Load()

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("BACKEND_API_URL", "http://localhost:8000")
	viper.SetDefault("BACKEND_TIMEOUT_MS", 15000)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("STATE_STORE", "badger")
	viper.SetDefault("STATE_DIR", "./data/state")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_STATE_DB", 0)
	viper.SetDefault("DASHBOARD_POLL_SECONDS", 30)
	viper.SetDefault("AUTOSAVE_SECONDS", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
