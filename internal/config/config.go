package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	Cache  CacheConfig
	Stripe StripeConfig
	Mail   MailConfig
}

type ServerConfig struct {
	Port      string
	Env       string
	IndexPath string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// CacheConfig selects the analysis result store. When DatabaseURL is empty
// results stay in process memory, which is only correct for a single
// instance or behind sticky routing.
type CacheConfig struct {
	DatabaseURL string
}

type StripeConfig struct {
	APIKey string
}

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Complete reports whether the configuration carries everything needed to
// deliver mail. Incomplete configuration disables the contact form until
// the process restarts with the missing values.
func (m MailConfig) Complete() bool {
	return m.Host != "" && m.From != "" && m.To != ""
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	secrets := newSecretSource()

	return &Config{
		Server: ServerConfig{
			Port:      getEnv("PORT", "8080"),
			Env:       getEnv("ENV", "development"),
			IndexPath: getEnv("INDEX_PATH", "./web/index.html"),
		},
		Gemini: GeminiConfig{
			APIKey: secrets.Lookup("GEMINI_API_KEY"),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.0-flash-lite-001"),
		},
		Cache: CacheConfig{
			DatabaseURL: getEnv("CACHE_DATABASE_URL", ""),
		},
		Stripe: StripeConfig{
			APIKey: secrets.Lookup("STRIPE_API_KEY"),
		},
		Mail: MailConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: secrets.Lookup("SMTP_PASSWORD"),
			From:     getEnv("MAIL_FROM", ""),
			To:       getEnv("MAIL_TO", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
