// Package config loads the configuration of the command line.
//
// Values come, by increasing priority, from the defaults, the optional
// spot.yaml file, a .env file in the working directory and the SPOT_
// environment variables (SPOT_STORE_PATH for store.path, and so on).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all the configuration.
type Config struct {
	Language string        `mapstructure:"language"` // Language overrides the detected language, empty to detect.
	Store    StoreConfig   `mapstructure:"store"`
	Quote    QuoteConfig   `mapstructure:"quote"`
	Insight  InsightConfig `mapstructure:"insight"`
	Log      LogConfig     `mapstructure:"log"`
}

// StoreConfig selects where the state is persisted.
type StoreConfig struct {
	Driver string `mapstructure:"driver"` // file or sqlite
	Path   string `mapstructure:"path"`
}

// QuoteConfig configures the quote client and the poller.
type QuoteConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	Interval time.Duration `mapstructure:"interval"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// InsightConfig configures the insight generator.
type InsightConfig struct {
	Model  string `mapstructure:"model"`
	APIKey string `mapstructure:"api_key"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// DefaultDir returns the default configuration directory.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".spot"
	}
	return filepath.Join(dir, "spot")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("language", "")
	v.SetDefault("store.driver", "file")
	v.SetDefault("store.path", "")
	v.SetDefault("quote.base_url", "https://api.binance.com")
	v.SetDefault("quote.interval", 20*time.Second)
	v.SetDefault("quote.timeout", 10*time.Second)
	v.SetDefault("insight.model", "gemini-3-flash-preview")
	v.SetDefault("insight.api_key", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
}

// Load loads the configuration. file is an explicit configuration file, when
// empty $SPOT_CONFIG is used, and then spot.yaml in the default directory if
// it exists.
func Load(file string) (*Config, error) {
	// A missing .env is not an error.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if file == "" {
		file = os.Getenv("SPOT_CONFIG")
	}
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("spot")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultDir())
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("SPOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Insight.APIKey == "" {
		cfg.Insight.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = defaultStorePath(cfg.Store.Driver)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func defaultStorePath(driver string) string {
	name := "spot.json"
	if driver == "sqlite" {
		name = "spot.db"
	}
	return filepath.Join(DefaultDir(), name)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "file", "sqlite":
	default:
		return fmt.Errorf("invalid store driver: %q (must be 'file' or 'sqlite')", c.Store.Driver)
	}
	if c.Quote.Interval <= 0 {
		return fmt.Errorf("quote.interval must be positive, got %v", c.Quote.Interval)
	}
	if c.Quote.Timeout <= 0 {
		return fmt.Errorf("quote.timeout must be positive, got %v", c.Quote.Timeout)
	}
	switch c.Language {
	case "", "en", "zh":
	default:
		return fmt.Errorf("invalid language: %q (must be 'en' or 'zh')", c.Language)
	}
	return nil
}
