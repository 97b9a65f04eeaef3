package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Cal.com API configuration.
	CalAPIKey   string `mapstructure:"CAL_API_KEY"`
	CalUsername string `mapstructure:"CAL_USERNAME"`
	CalBaseURL  string `mapstructure:"CAL_BASE_URL"`

	// Gemini configuration.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Assistant defaults.
	DefaultTimezone    string `mapstructure:"DEFAULT_TIMEZONE"`
	DefaultDurationMin int    `mapstructure:"DEFAULT_DURATION_MIN"`
	SlotToleranceMin   int    `mapstructure:"SLOT_TOLERANCE_MIN"`
	SuggestionLimit    int    `mapstructure:"SUGGESTION_LIMIT"`

	// Session storage. Backend is "memory" or "redis".
	SessionBackend string `mapstructure:"SESSION_BACKEND"`
	SessionTTLMin  int    `mapstructure:"SESSION_TTL_MIN"`

	// Redis configuration (used when SESSION_BACKEND is "redis").
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Auth for the chat API.
	JWTSecret    string `mapstructure:"JWT_SECRET"`
	AuthRequired bool   `mapstructure:"AUTH_REQUIRED"`
}

var AppConfig Config

func LoadConfig() {
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
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("CAL_API_KEY", "")
	viper.SetDefault("CAL_USERNAME", "")
	viper.SetDefault("CAL_BASE_URL", "https://api.cal.com/v1")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("DEFAULT_TIMEZONE", "America/Los_Angeles")
	viper.SetDefault("DEFAULT_DURATION_MIN", 30)
	viper.SetDefault("SLOT_TOLERANCE_MIN", 15)
	viper.SetDefault("SUGGESTION_LIMIT", 5)
	viper.SetDefault("SESSION_BACKEND", "memory")
	viper.SetDefault("SESSION_TTL_MIN", 30)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("AUTH_REQUIRED", false)

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
