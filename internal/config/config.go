package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	AllowedOrigin string

	Provider   string
	GroqAPIKey string
	GroqModel  string

	OllamaURL   string
	OllamaModel string

	CVFilePath string
	CVOwner    string
}

func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port:          getEnvDefault("PORT", "5001"),
		AllowedOrigin: getEnvDefault("ALLOWED_ORIGIN", "*"),
		Provider:      getEnvDefault("CVCHAT_PROVIDER", "groq"),
		GroqAPIKey:    os.Getenv("GROQ_API_KEY"),
		GroqModel:     getEnvDefault("GROQ_MODEL", "llama-3.3-70b-versatile"),
		OllamaURL:     getEnvDefault("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel:   getEnvDefault("OLLAMA_MODEL", "llama3"),
		CVFilePath:    getEnvDefault("CV_FILE_PATH", "cv.txt"),
		CVOwner:       os.Getenv("CV_OWNER"),
	}
}

func (c Config) Validate() error {
	switch c.Provider {
	case "groq":
		if c.GroqAPIKey == "" {
			return errors.New("GROQ_API_KEY not set in .env file")
		}
	case "ollama":
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	return nil
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
