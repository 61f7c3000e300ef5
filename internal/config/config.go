package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Veraticus/bottleshop/internal/common"
)

// Catalog sources.
const (
	SourceStore  = "store"
	SourceFile   = "file"
	SourceRemote = "remote"
)

// Config holds all configuration for the application.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	UI       UIConfig       `mapstructure:"ui"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// DatabaseConfig holds the local SQLite store settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// CatalogConfig selects where the category catalog comes from.
type CatalogConfig struct {
	Source  string        `mapstructure:"source"`
	File    string        `mapstructure:"file"`
	BaseURL string        `mapstructure:"base_url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
	Retries int           `mapstructure:"retries"`
}

// UIConfig holds terminal storefront settings.
type UIConfig struct {
	Theme      string `mapstructure:"theme"`
	Locale     string `mapstructure:"locale"`
	LogFile    string `mapstructure:"log_file"`
	Breakpoint int    `mapstructure:"breakpoint"`
	ShowAll    bool   `mapstructure:"show_all"`
}

// LoggingConfig holds slog settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", DataPath("bottleshop.db"))
	v.SetDefault("catalog.source", SourceStore)
	v.SetDefault("catalog.timeout", 10*time.Second)
	v.SetDefault("catalog.retries", 3)
	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.locale", "en")
	v.SetDefault("ui.breakpoint", 100)
	v.SetDefault("ui.show_all", true)
	v.SetDefault("ui.log_file", DataPath("tui.log"))
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Database.Path = ExpandPath(cfg.Database.Path)
	cfg.Catalog.File = ExpandPath(cfg.Catalog.File)
	cfg.UI.LogFile = ExpandPath(cfg.UI.LogFile)
	cfg.Catalog.Source = strings.ToLower(cfg.Catalog.Source)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("%w: database.path is required", common.ErrMissingConfig)
	}

	switch c.Catalog.Source {
	case SourceStore:
	case SourceFile:
		if c.Catalog.File == "" {
			return fmt.Errorf("%w: catalog.file is required for the file source", common.ErrMissingConfig)
		}
	case SourceRemote:
		if c.Catalog.BaseURL == "" {
			return fmt.Errorf("%w: catalog.base_url is required for the remote source", common.ErrMissingConfig)
		}
	default:
		return fmt.Errorf("%w: unknown catalog.source %q", common.ErrInvalidConfig, c.Catalog.Source)
	}

	if c.UI.Breakpoint <= 0 {
		return fmt.Errorf("%w: ui.breakpoint must be positive", common.ErrInvalidConfig)
	}
	return nil
}
