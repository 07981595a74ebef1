package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrConfiguration wraps every error returned by Load.
var ErrConfiguration = errors.New("configuration error")

// Options selects the optional files Load reads. Empty paths are skipped.
type Options struct {
	ConfigPath string
	EnvPath    string
}

// Load builds the configuration from, in increasing priority: defaults, the
// YAML file, the .env file and the process environment. Missing files are
// ignored. The .env file never modifies the process environment.
//
// Returns the validated configuration or an error wrapping ErrConfiguration.
func Load(opts Options) (*Config, error) {
	startTime := time.Now()
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := readConfigFile(v, opts.ConfigPath); err != nil {
		return nil, fmt.Errorf("%w: failed to read config file: %v", ErrConfiguration, err)
	}

	if err := seedDotEnv(v, opts.EnvPath); err != nil {
		return nil, fmt.Errorf("%w: failed to read env file: %v", ErrConfiguration, err)
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("%w: failed to bind %s: %v", ErrConfiguration, env, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrConfiguration, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	slog.Debug("configuration loaded",
		"collection_id", cfg.Notion.CollectionID,
		"notion_timeout", cfg.Notion.Timeout,
		"log_level", cfg.Log.Level,
		"log_json", cfg.Log.JSON,
		"duration_ms", time.Since(startTime).Milliseconds())

	return cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		slog.Debug("config file not found, skipping", "path", path)
		return nil
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	return v.ReadInConfig()
}

// seedDotEnv copies recognised variables from the .env file into v, unless
// the process environment already provides a non-empty value.
func seedDotEnv(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("env file not found, skipping", "path", path)
			return nil
		}
		return err
	}

	for key, env := range envBindings {
		value, ok := values[env]
		if !ok || os.Getenv(env) != "" {
			continue
		}
		v.Set(key, value)
	}
	return nil
}
