package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"food-menu/internal/catalog"
	"food-menu/internal/logger"
)

const (
	DefaultConfigPath = "menu.yaml"
	DefaultEnvPath    = ".env"
	DefaultLogoPath   = "img/logo.png"
	DefaultDebounce   = 200 * time.Millisecond
)

// Config holds everything the application reads at startup.
type Config struct {
	Sources  []catalog.Source
	LogoPath string
	LogLevel zerolog.Level
	JSONLogs bool
	Watch    bool
	Debounce time.Duration
}

// fileConfig is the shape of menu.yaml
type fileConfig struct {
	Logo       string           `yaml:"logo"`
	LogLevel   string           `yaml:"log_level"`
	JSONLogs   *bool            `yaml:"json_logs"`
	Watch      *bool            `yaml:"watch"`
	DebounceMs int              `yaml:"debounce_ms"`
	Categories []catalog.Source `yaml:"categories"`
}

func Default() Config {
	return Config{
		Sources:  catalog.DefaultSources(),
		LogoPath: DefaultLogoPath,
		LogLevel: zerolog.InfoLevel,
		Debounce: DefaultDebounce,
	}
}

// Load applies, in order: defaults, an optional .env file, an optional YAML file
// (MENU_CONFIG or menu.yaml) and finally environment variables.
func Load() (Config, error) {
	if err := godotenv.Load(DefaultEnvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", DefaultEnvPath, err)
	}

	cfg := Default()

	path := os.Getenv("MENU_CONFIG")
	if path == "" {
		path = DefaultConfigPath
	}
	if err := cfg.applyFile(path); err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if fc.Logo != "" {
		c.LogoPath = fc.Logo
	}
	if fc.LogLevel != "" {
		level, err := logger.ParseLevel(fc.LogLevel)
		if err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		c.LogLevel = level
	}
	if fc.JSONLogs != nil {
		c.JSONLogs = *fc.JSONLogs
	}
	if fc.Watch != nil {
		c.Watch = *fc.Watch
	}
	if fc.DebounceMs > 0 {
		c.Debounce = time.Duration(fc.DebounceMs) * time.Millisecond
	}
	if len(fc.Categories) > 0 {
		for i, src := range fc.Categories {
			if strings.TrimSpace(src.Category) == "" || strings.TrimSpace(src.Path) == "" {
				return fmt.Errorf("config %s: category %d needs both name and source", path, i+1)
			}
		}
		c.Sources = fc.Categories
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level, err := logger.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("LOG_LEVEL: %w", err)
		}
		c.LogLevel = level
	} else if os.Getenv("DEBUG") == "1" {
		c.LogLevel = zerolog.DebugLevel
	}

	if v := os.Getenv("MENU_LOGO"); v != "" {
		c.LogoPath = v
	}

	var err error
	if c.JSONLogs, err = envBool("MENU_JSON_LOGS", c.JSONLogs); err != nil {
		return err
	}
	if c.Watch, err = envBool("MENU_WATCH", c.Watch); err != nil {
		return err
	}

	return nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

// SourcePaths lists the configured source files.
func (c Config) SourcePaths() []string {
	paths := make([]string, 0, len(c.Sources))
	for _, src := range c.Sources {
		paths = append(paths, src.Path)
	}
	return paths
}
