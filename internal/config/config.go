package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"zikkycal.dev/zikkycal/internal/errors"
	"zikkycal.dev/zikkycal/internal/utils"
)

const (
	// ThemeDark is the default theme
	ThemeDark = "dark"
	// ThemeLight is the light theme
	ThemeLight = "light"

	// DefaultShareURL is the link offered by the share dialog
	DefaultShareURL = "https://github.com/zikky0001-droid/zikkycal.com"

	// KeyTheme is the configuration key for the theme
	KeyTheme = "theme"
	// KeyShareURL is the configuration key for the share link
	KeyShareURL = "share.url"
)

// Themes lists the accepted theme names
var Themes = []string{ThemeDark, ThemeLight}

// Config holds user configuration.
type Config struct {
	Theme string
	Share ShareConfig
}

// ShareConfig holds share dialog settings.
type ShareConfig struct {
	URL string
}

// Keys returns the configuration keys understood by Get and Set
func Keys() []string {
	return []string{KeyTheme, KeyShareURL}
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		Theme: ThemeDark,
		Share: ShareConfig{URL: DefaultShareURL},
	}
}

// Path returns the config file path.
// If ZIKKYCAL_CONFIG is set, uses that path.
// Otherwise, uses <user config dir>/zikkycal/config.json
func Path() (string, error) {
	if custom := os.Getenv("ZIKKYCAL_CONFIG"); custom != "" {
		return custom, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "zikkycal", "config.json"), nil
}

// Load reads configuration from file and env. Env var overrides use prefix ZIKKYCAL_.
func Load() (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault(KeyTheme, def.Theme)
	v.SetDefault(KeyShareURL, def.Share.URL)

	v.SetConfigType("json")
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("ZIKKYCAL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing file is fine; a broken one is not.
	if _, statErr := os.Stat(path); statErr == nil {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
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

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set(KeyTheme, cfg.Theme)
	v.Set(KeyShareURL, cfg.Share.URL)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Get returns the value of a configuration key
func (c Config) Get(key string) (string, error) {
	switch key {
	case KeyTheme:
		return c.Theme, nil
	case KeyShareURL:
		return c.Share.URL, nil
	}
	return "", errors.NewConfigKeyError(key, utils.Suggest(key, Keys()))
}

// Set validates and stores the value of a configuration key
func (c *Config) Set(key, value string) error {
	switch key {
	case KeyTheme:
		if err := validateTheme(value); err != nil {
			return err
		}
		c.Theme = value
	case KeyShareURL:
		if err := validateShareURL(value); err != nil {
			return err
		}
		c.Share.URL = value
	default:
		return errors.NewConfigKeyError(key, utils.Suggest(key, Keys()))
	}
	return nil
}

// Validate checks every value
func (c Config) Validate() error {
	if err := validateTheme(c.Theme); err != nil {
		return err
	}
	return validateShareURL(c.Share.URL)
}

// ToggledTheme returns the theme a toggle switches to
func (c Config) ToggledTheme() string {
	if c.Theme == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

func validateTheme(theme string) error {
	if !utils.ContainsString(Themes, theme) {
		return errors.NewConfigValueError(KeyTheme, theme, Themes)
	}
	return nil
}

func validateShareURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.NewConfigValueError(KeyShareURL, raw, nil)
	}
	return nil
}
