// Package config loads the configuration file and converts the custom
// key bindings it declares into resolver bindings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/keywarden/keywarden/internal/command"
	"github.com/keywarden/keywarden/internal/keychord"
	"github.com/keywarden/keywarden/internal/keymap"
	"github.com/keywarden/keywarden/internal/keyring"
)

const (
	// DefaultTickRate drives the terminal refresh and output expiry.
	DefaultTickRate = 250 * time.Millisecond
	// DefaultDetailLevel is the initial key detail level.
	DefaultDetailLevel = "minimum"
)

// Config is the application configuration.
type Config struct {
	General GeneralConfig `yaml:"general"`
	GPG     GPGConfig     `yaml:"gpg"`
}

// GeneralConfig holds interface settings.
type GeneralConfig struct {
	// Splash enables the splash screen on startup.
	Splash bool `yaml:"splash"`
	// TickRateMs is the tick interval in milliseconds.
	TickRateMs int `yaml:"tick_rate"`
	// Colored enables the colored interface style.
	Colored bool `yaml:"colored"`
	// DetailLevel is the initial detail level (minimum/standard/full).
	DetailLevel string `yaml:"detail_level"`
	// LogFile is where log output goes; empty disables file logging.
	LogFile string `yaml:"log_file"`
	// KeyBindings are user-defined key bindings, checked before the
	// built-in table in declaration order.
	KeyBindings []KeyBindingConfig `yaml:"key_bindings"`
}

// GPGConfig holds key store settings.
type GPGConfig struct {
	// Armor enables ASCII armored output.
	Armor bool `yaml:"armor"`
	// Homedir overrides the GnuPG home directory.
	Homedir string `yaml:"homedir"`
	// Outdir is where exported keys are written.
	Outdir string `yaml:"outdir"`
	// DefaultKey is the key used for signing.
	DefaultKey string `yaml:"default_key"`
}

// KeyBindingConfig is the file form of a custom key binding: a list of
// key tokens plus a command string.
type KeyBindingConfig struct {
	Keys    []string `yaml:"keys"`
	Command string   `yaml:"command"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			TickRateMs:  int(DefaultTickRate / time.Millisecond),
			DetailLevel: DefaultDetailLevel,
		},
	}
}

// DefaultPath returns the first existing configuration file among the
// known locations, or empty when none exists.
//
//   - <config_dir>/keywarden.yml
//   - <config_dir>/keywarden/keywarden.yml
//   - <config_dir>/keywarden/config
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	for _, path := range []string{
		filepath.Join(configDir, "keywarden.yml"),
		filepath.Join(configDir, "keywarden", "keywarden.yml"),
		filepath.Join(configDir, "keywarden", "config"),
	} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// TickRate returns the configured tick interval.
func (c *Config) TickRate() time.Duration {
	if c.General.TickRateMs <= 0 {
		return DefaultTickRate
	}
	return time.Duration(c.General.TickRateMs) * time.Millisecond
}

// Detail returns the configured detail level.
func (c *Config) Detail() keyring.Detail {
	detail, err := keyring.ParseDetail(c.General.DetailLevel)
	if err != nil {
		return keyring.DetailMinimum
	}
	return detail
}

// KeyBindings converts the configured bindings into resolver bindings.
// A binding with an unparsable key or command fails the whole load so
// mistakes surface at startup instead of as dead keys.
func (c *Config) KeyBindings() ([]keymap.CustomKeyBinding, error) {
	var bindings []keymap.CustomKeyBinding
	for _, kb := range c.General.KeyBindings {
		if len(kb.Keys) == 0 {
			return nil, fmt.Errorf("key binding for %q has no keys", kb.Command)
		}
		var keys []keychord.KeyChord
		for _, token := range kb.Keys {
			chord, err := keychord.Parse(token)
			if err != nil {
				return nil, fmt.Errorf("key binding: %w", err)
			}
			keys = append(keys, chord)
		}
		cmd, err := command.Parse(kb.Command)
		if err != nil {
			return nil, fmt.Errorf("key binding: %w", err)
		}
		bindings = append(bindings, keymap.CustomKeyBinding{
			Keys:    keys,
			Command: cmd,
		})
	}
	return bindings, nil
}
