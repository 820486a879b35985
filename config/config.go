package config

import (
	"strings"

	"github.com/spf13/viper"
)

const configFilePath = "./config.yaml"

type Config struct {
	// Server settings
	Env      string
	Port     string
	AppUrl   string
	AppName  string
	LogLevel string

	// Backend settings
	ApiBaseUrl        string
	ApiTimeoutSeconds int // 0 disables the timeout

	// Session settings
	SessionSecret     string
	SessionTTLMinutes int

	// Rate limiting
	RateLimitMax int
}

func LoadConfig() *Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server settings
	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8050")
	v.SetDefault("APP_URL", "http://localhost:8050")
	v.SetDefault("APP_NAME", "Shopping Helper Admin")
	v.SetDefault("LOG_LEVEL", "debug")

	// Backend settings
	v.SetDefault("API_BASE_URL", "http://127.0.0.1:8000")
	v.SetDefault("API_TIMEOUT_SECONDS", 0)

	// Session settings
	v.SetDefault("SESSION_SECRET", "change-me-shopping-helper-session")
	v.SetDefault("SESSION_TTL_MINUTES", 720)

	v.SetDefault("RATE_LIMIT_MAX", 100)

	// config.yaml is optional, env vars still win
	v.SetConfigFile(configFilePath)
	_ = v.ReadInConfig()

	apiTimeout := v.GetInt("API_TIMEOUT_SECONDS")
	if apiTimeout < 0 {
		apiTimeout = 0
	}

	sessionTTL := v.GetInt("SESSION_TTL_MINUTES")
	if sessionTTL <= 0 {
		sessionTTL = 720 // default 12 hours
	}

	rateLimitMax := v.GetInt("RATE_LIMIT_MAX")
	if rateLimitMax <= 0 {
		rateLimitMax = 100
	}

	return &Config{
		// Server settings
		Env:      v.GetString("ENV"),
		Port:     v.GetString("PORT"),
		AppUrl:   v.GetString("APP_URL"),
		AppName:  v.GetString("APP_NAME"),
		LogLevel: v.GetString("LOG_LEVEL"),

		// Backend settings
		ApiBaseUrl:        strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		ApiTimeoutSeconds: apiTimeout,

		// Session settings
		SessionSecret:     v.GetString("SESSION_SECRET"),
		SessionTTLMinutes: sessionTTL,

		RateLimitMax: rateLimitMax,
	}
}

// IsProduction reports whether the app runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
