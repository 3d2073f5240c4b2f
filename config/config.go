package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port         string
	MongoURI     string
	MongoDB      string
	AllowOrigins string
	SentryDSN    string
}

// Load reads .env (if present) and assembles the config with defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, reading from system env")
	}

	return &Config{
		Port:         getenv("PORT", "5000"),
		MongoURI:     getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getenv("MONGO_DB", "citypulse"),
		AllowOrigins: getenv("ALLOW_ORIGINS", "http://localhost:3000, http://localhost:3001"),
		SentryDSN:    strings.TrimSpace(os.Getenv("SENTRY_DSN")),
	}
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
