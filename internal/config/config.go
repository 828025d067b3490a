package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version    int              `toml:"version"`
	PeopleFile string           `toml:"people_file"` // empty means the built-in list
	Watch      bool             `toml:"watch"`       // reload people_file when it changes
	Selector   SelectorSettings `toml:"selector"`
}

// SelectorSettings represents the search widget configuration
type SelectorSettings struct {
	DelayMS     int    `toml:"delay_ms"`
	Placeholder string `toml:"placeholder"`
	MaxVisible  int    `toml:"max_visible"`
}

// Delay returns the debounce quiet period
func (s SelectorSettings) Delay() time.Duration {
	return time.Duration(s.DelayMS) * time.Millisecond
}

// Validate rejects values the selector cannot use
func (c *Config) Validate() error {
	if c.Selector.DelayMS < 0 {
		return fmt.Errorf("%w: selector.delay_ms must not be negative, got %d", ErrInvalidConfig, c.Selector.DelayMS)
	}
	if c.Selector.MaxVisible < 0 {
		return fmt.Errorf("%w: selector.max_visible must not be negative, got %d", ErrInvalidConfig, c.Selector.MaxVisible)
	}
	if c.Watch && c.PeopleFile == "" {
		return fmt.Errorf("%w: watch needs people_file", ErrInvalidConfig)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "peoplepick", "config.toml")
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	return NewConfigServiceAt(DefaultPath())
}

// NewConfigServiceAt creates a config service reading and writing path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Selector: SelectorSettings{
			DelayMS:     300,
			Placeholder: "Enter a part of the name",
			MaxVisible:  10,
		},
	}
}
