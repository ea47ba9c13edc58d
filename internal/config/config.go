package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	appName = "gitignore-tui"

	// Version is reported by --version and sent in the User-Agent header
	Version = "4.1.0"

	DefaultBaseURL      = "https://www.toptal.com/developers/gitignore/api"
	DefaultTimeout      = 10 * time.Second
	DefaultOutputPath   = ".gitignore"
	DefaultTickInterval = 100 * time.Millisecond
	DefaultErrorTimeout = 5 * time.Second
	DefaultGlamourStyle = "auto"
	usageFileName       = ".gitignore_tui_usage.json"
)

// DefaultUserAgent identifies the tool to the catalog service
var DefaultUserAgent = "GitIgnore-TUI/" + Version

// Config represents the application configuration
type Config struct {
	Version int             `toml:"version"`
	API     APISettings     `toml:"api"`
	Output  OutputSettings  `toml:"output"`
	Usage   UsageSettings   `toml:"usage"`
	UI      UISettings      `toml:"ui"`
	Logging LoggingSettings `toml:"logging"`
}

// APISettings configures the catalog client
type APISettings struct {
	BaseURL   string   `toml:"base_url"`
	Timeout   Duration `toml:"timeout"`
	UserAgent string   `toml:"user_agent"`
}

// OutputSettings configures where the generated file is saved
type OutputSettings struct {
	Path string `toml:"path"`
}

// UsageSettings configures the usage record location
type UsageSettings struct {
	Path string `toml:"path"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	TickInterval Duration `toml:"tick_interval"`
	ErrorTimeout Duration `toml:"error_timeout"`
	AltScreen    bool     `toml:"alt_screen"`
	GlamourStyle string   `toml:"glamour_style"` // "auto", "dark", "light", "notty"
}

// LoggingSettings configures the debug log; an empty File disables it
type LoggingSettings struct {
	File  string `toml:"file"`
	Trace bool   `toml:"trace"`
}

// Duration is a time.Duration stored as a string like "10s"
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
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

type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted at path, or at the
// per-user default location when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, appName, "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load returns the configuration file merged over the defaults; a missing
// file yields the defaults
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys absent from the
// file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Encode(config)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Encode renders the configuration as TOML
func Encode(config *Config) ([]byte, error) {
	data, err := toml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL:   DefaultBaseURL,
			Timeout:   Duration{DefaultTimeout},
			UserAgent: DefaultUserAgent,
		},
		Output: OutputSettings{Path: DefaultOutputPath},
		Usage:  UsageSettings{Path: defaultUsagePath()},
		UI: UISettings{
			TickInterval: Duration{DefaultTickInterval},
			ErrorTimeout: Duration{DefaultErrorTimeout},
			AltScreen:    true,
			GlamourStyle: DefaultGlamourStyle,
		},
		Logging: LoggingSettings{File: defaultLogPath()},
	}
}

// normalize replaces zero and invalid values with defaults
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.API.BaseURL == "" {
		c.API.BaseURL = def.API.BaseURL
	}
	if c.API.Timeout.Duration <= 0 {
		c.API.Timeout = def.API.Timeout
	}
	if c.API.UserAgent == "" {
		c.API.UserAgent = def.API.UserAgent
	}
	if c.Output.Path == "" {
		c.Output.Path = def.Output.Path
	}
	if c.Usage.Path == "" {
		c.Usage.Path = def.Usage.Path
	}
	if c.UI.TickInterval.Duration <= 0 {
		c.UI.TickInterval = def.UI.TickInterval
	}
	if c.UI.ErrorTimeout.Duration <= 0 {
		c.UI.ErrorTimeout = def.UI.ErrorTimeout
	}
	if c.UI.GlamourStyle == "" {
		c.UI.GlamourStyle = def.UI.GlamourStyle
	}
}

// Normalize is exported for callers that overlay values after loading
func (c *Config) Normalize() {
	c.normalize()
}

func defaultUsagePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return usageFileName
	}
	return filepath.Join(home, usageFileName)
}

func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName, appName+".log")
}
