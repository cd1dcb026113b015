package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port string

	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	RequestTimeoutSec int
	MaxUploadMB       int64
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Warn().Str("key", k).Str("value", v).Msg("ignoring non-positive or non-numeric env value")
	}
	return def
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first if present. A missing API key is not fatal
// here: the affected engine reports a configuration error at request time
// instead of crashing the process.
func Load() *Config {
	_ = godotenv.Load()

	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		// Older deployments configured the key as GOOGLE_API_KEY.
		geminiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if geminiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set; gemini engine will return a configuration error")
	}

	return &Config{
		Port: getEnv("PORT", "8000"),

		GeminiAPIKey: geminiKey,
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		RequestTimeoutSec: getEnvInt("REQUEST_TIMEOUT_SEC", 120),
		MaxUploadMB:       int64(getEnvInt("MAX_UPLOAD_MB", 10)),
	}
}
