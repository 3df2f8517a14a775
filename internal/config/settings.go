package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	Port         string
	Env          string
	DBDriver     string
	DatabaseDSN  string
	JWTSecret    string
	CryptoKey    string
	CookieDomain string

	AIProvider          string
	GeminiAPIKey        string
	GeminiModel         string
	OpenAIAPIKey        string
	OpenAIBaseURL       string
	OpenAIModel         string
	AITimeout           time.Duration
	AIRequestsPerMinute int

	StatsTimeout          time.Duration
	ResumeProcessingDelay time.Duration
}

var current = defaultSettings()

func defaultSettings() Settings {
	return Settings{
		Port:          "8080",
		Env:           "development",
		DBDriver:      "postgres",
		AIProvider:    "gemini",
		GeminiModel:   "gemini-2.0-flash",
		OpenAIBaseURL: "https://api.openai.com",
		OpenAIModel:   "gpt-4o-mini",
		AITimeout:     12 * time.Second,
		StatsTimeout:  3 * time.Second,
	}
}

// LoadSettings reads .env, an optional configs/config.yaml and the environment.
// Environment variables win over the file.
func LoadSettings() Settings {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		Logger.Debug("No configs/config.yaml found, using environment only")
	}

	d := defaultSettings()
	v.SetDefault("PORT", d.Port)
	v.SetDefault("APP_ENV", d.Env)
	v.SetDefault("DB_DRIVER", d.DBDriver)
	v.SetDefault("AI_PROVIDER", d.AIProvider)
	v.SetDefault("GEMINI_MODEL", d.GeminiModel)
	v.SetDefault("OPENAI_BASE_URL", d.OpenAIBaseURL)
	v.SetDefault("OPENAI_MODEL", d.OpenAIModel)
	v.SetDefault("AI_TIMEOUT", d.AITimeout)
	v.SetDefault("AI_REQUESTS_PER_MINUTE", 0)
	v.SetDefault("STATS_TIMEOUT", d.StatsTimeout)
	v.SetDefault("RESUME_PROCESSING_DELAY", time.Duration(0))

	s := Settings{
		Port:                  v.GetString("PORT"),
		Env:                   v.GetString("APP_ENV"),
		DBDriver:              strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseDSN:           v.GetString("DATABASE_DSN"),
		JWTSecret:             v.GetString("JWT_SECRET"),
		CryptoKey:             v.GetString("CRYPTO_KEY"),
		CookieDomain:          v.GetString("COOKIE_DOMAIN"),
		AIProvider:            strings.ToLower(v.GetString("AI_PROVIDER")),
		GeminiAPIKey:          v.GetString("GEMINI_API_KEY"),
		GeminiModel:           v.GetString("GEMINI_MODEL"),
		OpenAIAPIKey:          v.GetString("OPENAI_API_KEY"),
		OpenAIBaseURL:         strings.TrimRight(v.GetString("OPENAI_BASE_URL"), "/"),
		OpenAIModel:           v.GetString("OPENAI_MODEL"),
		AITimeout:             v.GetDuration("AI_TIMEOUT"),
		AIRequestsPerMinute:   v.GetInt("AI_REQUESTS_PER_MINUTE"),
		StatsTimeout:          v.GetDuration("STATS_TIMEOUT"),
		ResumeProcessingDelay: v.GetDuration("RESUME_PROCESSING_DELAY"),
	}

	if s.AITimeout <= 0 {
		s.AITimeout = d.AITimeout
	}
	if s.StatsTimeout <= 0 {
		s.StatsTimeout = d.StatsTimeout
	}

	current = s
	return s
}

func IsProduction() bool {
	return current.Env == "production"
}
