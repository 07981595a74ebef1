// Package config manages application configuration from environment variables,
// an optional .env file, an optional YAML file, and default values.
package config

import "time"

// Config defines the application configuration. It is built once at startup
// and passed explicitly to the components that need it.
type Config struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
	Notion   NotionConfig   `mapstructure:"notion"`
	Log      LogConfig      `mapstructure:"log"`
}

// TelegramConfig holds the Telegram Bot API credentials.
type TelegramConfig struct {
	Token string `mapstructure:"token" validate:"required"`
}

// NotionConfig holds the Notion API credentials and the collection to probe.
type NotionConfig struct {
	Token        string        `mapstructure:"token"         validate:"required"`
	CollectionID string        `mapstructure:"collection_id" validate:"required"`
	Timeout      time.Duration `mapstructure:"timeout"       validate:"min=1s,max=5m"`
}

// LogConfig controls the slog handler built by the logger package.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}
