package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/winstack/core"
)

// Config holds application configuration.
type Config struct {
	TickRateMS      int           `mapstructure:"tick_rate_ms"`
	ShowCursor      bool          `mapstructure:"show_cursor"`
	RawMode         bool          `mapstructure:"raw_mode"`
	AlternateScreen bool          `mapstructure:"alternate_screen"`
	EventQueueSize  int           `mapstructure:"event_queue_size"`
	Backend         string        `mapstructure:"backend"`
	Escape          EscapeConfig  `mapstructure:"escape"`
	Log             LogConfig     `mapstructure:"log"`
	Journal         JournalConfig `mapstructure:"journal"`
}

// EscapeConfig controls the coordinator-level close key.
type EscapeConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Keys    []string `mapstructure:"keys"`
}

// LogConfig holds logrus settings. An empty File discards logs.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// JournalConfig holds the stack-transition journal settings.
type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("tick_rate_ms", 250)
	v.SetDefault("show_cursor", true)
	v.SetDefault("raw_mode", false)
	v.SetDefault("alternate_screen", false)
	v.SetDefault("event_queue_size", core.DefaultQueueSize)
	v.SetDefault("backend", BackendANSI)
	v.SetDefault("escape.enabled", false)
	v.SetDefault("escape.keys", []string{"esc"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "winstack", "journal.db"))
}

// New returns a viper instance wired for defaults, the config file and env.
// Env var overrides use prefix WINSTACK_.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("WINSTACK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "winstack"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WINSTACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Load reads configuration from file and env.
func Load() (Config, error) {
	return FromViper(New())
}

// FromViper reads the config file if present and decodes v. Callers that
// bind CLI flags onto v use this instead of Load.
func FromViper(v *viper.Viper) (Config, error) {
	// A missing file is fine; a malformed one is not.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the coordinator cannot run with.
func (c Config) Validate() error {
	if c.TickRateMS < 1 {
		return fmt.Errorf("tick_rate_ms must be at least 1, got %d", c.TickRateMS)
	}
	if c.EventQueueSize < 1 {
		return fmt.Errorf("event_queue_size must be at least 1, got %d", c.EventQueueSize)
	}
	switch strings.ToLower(strings.TrimSpace(c.Backend)) {
	case BackendANSI, BackendTcell:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Journal.Enabled && strings.TrimSpace(c.Journal.Path) == "" {
		return fmt.Errorf("journal.path required when journal is enabled")
	}
	return nil
}

// Settings converts the config into coordinator construction parameters.
func (c Config) Settings() core.Settings {
	return core.Settings{
		TickRate:        time.Duration(c.TickRateMS) * time.Millisecond,
		ShowCursor:      c.ShowCursor,
		RawMode:         c.RawMode,
		AlternateScreen: c.AlternateScreen,
		QueueSize:       c.EventQueueSize,
	}
}

// KeyRegistry builds the escape policy bindings, or nil when disabled.
func (c Config) KeyRegistry() *core.KeyRegistry {
	if !c.Escape.Enabled {
		return nil
	}
	return core.NewKeyRegistry(core.EscapeBindings(c.Escape.Keys...))
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("WINSTACK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "winstack", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("tick_rate_ms", cfg.TickRateMS)
	v.Set("show_cursor", cfg.ShowCursor)
	v.Set("raw_mode", cfg.RawMode)
	v.Set("alternate_screen", cfg.AlternateScreen)
	v.Set("event_queue_size", cfg.EventQueueSize)
	v.Set("backend", cfg.Backend)
	v.Set("escape.enabled", cfg.Escape.Enabled)
	v.Set("escape.keys", cfg.Escape.Keys)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	v.Set("journal.enabled", cfg.Journal.Enabled)
	v.Set("journal.path", cfg.Journal.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
