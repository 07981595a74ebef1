package config

import "time"

const (
	DefaultConfigPath = "config.yaml"
	DefaultEnvPath    = ".env"

	defaultLogLevel      = "info"
	defaultNotionTimeout = 30 * time.Second
)

var defaults = map[string]any{
	"log.level":      defaultLogLevel,
	"log.json":       false,
	"notion.timeout": defaultNotionTimeout,
}

// envBindings maps configuration keys to the environment variables that set them.
var envBindings = map[string]string{
	"telegram.token":       "BOT_TOKEN",
	"notion.token":         "API_TOKEN",
	"notion.collection_id": "COLLECTION_ID",
	"notion.timeout":       "NOTION_TIMEOUT",
	"log.level":            "LOG_LEVEL",
	"log.json":             "LOG_JSON",
}
