// Package config loads application settings from a .env file (when present)
// and the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the trainer reads from the environment.
type Config struct {
	Anthropic AnthropicConfig
	AppSheet  AppSheetConfig
	Store     StoreConfig
	Archive   ArchiveConfig
}

// AnthropicConfig configures the customer-simulator model.
type AnthropicConfig struct {
	APIKey string
	Model  string // haiku or sonnet
}

// AppSheetConfig configures the AppSheet table backend.
type AppSheetConfig struct {
	AppID     string
	AccessKey string
	Table     string
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Backend     string // appsheet, dynamo, or none
	DynamoTable string
}

// ArchiveConfig configures optional S3 transcript archival.
type ArchiveConfig struct {
	Bucket string
}

// Load reads .env (if present) and the environment.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Anthropic: AnthropicConfig{
			APIKey: os.Getenv("ANTHROPIC_API_KEY"),
			Model:  getEnvOrDefault("TRAINER_MODEL", "haiku"),
		},
		AppSheet: AppSheetConfig{
			AppID:     os.Getenv("APPSHEET_APP_ID"),
			AccessKey: os.Getenv("APPSHEET_KEY"),
			Table:     getEnvOrDefault("APPSHEET_TABLE", "Grivet Retail Sales Trainer Data"),
		},
		Store: StoreConfig{
			Backend:     getEnvOrDefault("STORE_BACKEND", "appsheet"),
			DynamoTable: os.Getenv("DYNAMO_TABLE"),
		},
		Archive: ArchiveConfig{
			Bucket: os.Getenv("TRANSCRIPT_BUCKET"),
		},
	}
}

// AppSheetConfigured reports whether the AppSheet backend has what it needs.
func (c *Config) AppSheetConfigured() bool {
	return c.AppSheet.AppID != "" && c.AppSheet.AccessKey != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
