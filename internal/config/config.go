package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
)

// ErrUnknownFormat is returned for config paths with an unsupported extension
var ErrUnknownFormat = errors.New("unknown config format")

// Config represents the demo configuration
type Config struct {
	Version    int            `toml:"version" yaml:"version"`
	Title      string         `toml:"title" yaml:"title"`
	UISettings UISettings     `toml:"ui" yaml:"ui"`
	Widgets    []WidgetConfig `toml:"widgets" yaml:"widgets"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Width        int  `toml:"width,omitempty" yaml:"width,omitempty"`
	MaxVisible   int  `toml:"max_visible,omitempty" yaml:"max_visible,omitempty"`
	DisableMouse bool `toml:"disable_mouse" yaml:"disable_mouse"`
}

// ApplySelection stores a widget's current selection. It reports false when
// no widget has that ID.
func (c *Config) ApplySelection(sel domain.Selection) bool {
	for i := range c.Widgets {
		if c.Widgets[i].ID == sel.WidgetID {
			c.Widgets[i].Selected = append([]string(nil), sel.Labels...)
			return true
		}
	}
	return false
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	bus      eventbus.EventBus
	filePath string
	mu       sync.Mutex
}

// DefaultPath is the config file used when none is given on the command line
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
	return filepath.Join(configDir, "multiselect", "config.toml")
}

// NewConfigService creates a config service for path. An empty path uses
// DefaultPath.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file. A missing file
// yields DefaultConfig.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:    cs.filePath,
			Widgets: len(cfg.Widgets),
		})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := unmarshal(path, data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	data, err := marshal(path, config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func formatOf(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return "toml", nil
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

func marshal(path string, cfg *Config) ([]byte, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	if format == "yaml" {
		return yaml.Marshal(cfg)
	}
	return toml.Marshal(cfg)
}

func unmarshal(path string, data []byte, cfg *Config) error {
	format, err := formatOf(path)
	if err != nil {
		return err
	}
	if format == "yaml" {
		return yaml.Unmarshal(data, cfg)
	}
	return toml.Unmarshal(data, cfg)
}

// DefaultConfig returns the sample widgets shown when no config file exists
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Title:   "multiselect demo",
		Widgets: []WidgetConfig{
			{
				ID:          "fruits",
				Label:       "Fruits",
				Placeholder: "Pick fruits",
				Options:     []string{"Apple", "Banana", "Cherry", "Grape", "Mango", "Orange", "Peach", "Pear", "Plum", "Strawberry"},
				Selected:    []string{"Banana"},
			},
			{
				ID:           "people",
				Label:        "People",
				Placeholder:  "Assign people",
				DisplayField: "name",
				LoadDelay:    "1s",
				Records: []map[string]any{
					{"name": "Ada Lovelace", "id": 1},
					{"name": "Grace Hopper", "id": 2},
					{"name": "Ken Thompson", "id": 3},
					{"name": "Rob Pike", "id": 4},
				},
			},
			{
				ID:             "empty",
				Label:          "Nothing here",
				EmptyRecordMsg: "Nothing to choose",
			},
		},
	}
}
