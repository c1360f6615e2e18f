// Package config loads the process-wide configuration from the environment
package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultSourceURL   = "https://www.aare-bern.ch/wasserdaten-temperatur/"
	defaultBackendURL  = "http://api:80"
	defaultBackendPath = "lake/{}/temperature"
	defaultChatlist    = "139656428"
)

// Config holds all environment-derived settings, read once at startup and
// immutable afterwards. Passed explicitly into each component.
type Config struct {
	SourceURL   string
	BackendURL  string
	BackendPath string // Path template, "{}" is filled with the UUID
	UUID        string
	APIKey      string
	Token       string   // Telegram bot token, empty disables notifications
	Chatlist    []string // Telegram chat IDs receiving failure alerts
	Schedule    string   // Optional cron expression, empty means run once
}

// Load reads the configuration from the environment. A .env file is loaded
// best-effort beforehand so local runs don't need exported variables.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env file")
	}

	return &Config{
		SourceURL:   getEnv("TEMPERATURE_URL", defaultSourceURL),
		BackendURL:  getEnv("BACKEND_URL", defaultBackendURL),
		BackendPath: getEnv("BACKEND_PATH", defaultBackendPath),
		UUID:        os.Getenv("AARE_UUID"),
		APIKey:      os.Getenv("API_KEY"),
		Token:       os.Getenv("TOKEN"),
		Chatlist:    splitChatlist(getEnv("TELEGRAM_CHATLIST", defaultChatlist)),
		Schedule:    os.Getenv("SCRAPE_SCHEDULE"),
	}
}

// Validate checks that the required settings are present. It must pass
// before the pipeline performs any network access.
func (c *Config) Validate() error {
	if c.UUID == "" {
		return fmt.Errorf("AARE_UUID not defined in environment")
	}
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY not defined in environment")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitChatlist(raw string) []string {
	var chats []string
	for _, entry := range strings.Split(raw, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			chats = append(chats, entry)
		}
	}
	return chats
}
