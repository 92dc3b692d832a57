// Package config loads and saves the parlsim TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all parlsim configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Generator  GeneratorConfig  `toml:"generator"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultScale  string `toml:"default_scale"`
	DefaultStance string `toml:"default_stance"`
	Journal       bool   `toml:"journal"`
	DBPath        string `toml:"db_path,omitempty"`
}

// GeneratorConfig tunes the generated legislature.
type GeneratorConfig struct {
	PartyNames []string `toml:"party_names,omitempty"`
	MinParties int      `toml:"min_parties"`
	MaxParties int      `toml:"max_parties"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// SeedEnv overrides the random seed when set.
const SeedEnv = "PARLSIM_SEED"

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultScale:  "small",
			DefaultStance: "opposition",
			Journal:       true,
		},
		Generator: GeneratorConfig{
			MinParties: 6,
			MaxParties: 8,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "parlsim")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "parlsim")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// SeedFromEnv returns the seed from PARLSIM_SEED. ok is false when the
// variable is unset.
func SeedFromEnv() (seed int64, ok bool, err error) {
	v := strings.TrimSpace(os.Getenv(SeedEnv))
	if v == "" {
		return 0, false, nil
	}
	seed, err = strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parsing %s: %w", SeedEnv, err)
	}
	return seed, true, nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
