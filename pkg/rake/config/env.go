package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ApplyEnv overrides settings from RAKE_* environment variables. A .env file
// in the working directory is loaded first if present; variables already set
// in the environment win over it.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	c.Language = getEnv("RAKE_LANGUAGE", c.Language)
	c.StopwordsFile = getEnv("RAKE_STOPWORDS_FILE", c.StopwordsFile)
	c.Top = getEnvInt("RAKE_TOP", c.Top)
	c.Order = strings.ToLower(getEnv("RAKE_ORDER", c.Order))
	c.HTML = getEnvBool("RAKE_HTML", c.HTML)
	c.Workers = getEnvInt("RAKE_WORKERS", c.Workers)
	c.DB = getEnv("RAKE_DB", c.DB)
	c.Debug = getEnvBool("RAKE_DEBUG", c.Debug)
	c.Server.Host = getEnv("RAKE_SERVER_HOST", c.Server.Host)
	c.Server.Port = getEnvInt("RAKE_SERVER_PORT", c.Server.Port)
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
