// Package config loads application settings from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Save SaveConfig
	Game GameConfig
}

// SaveConfig holds persistence settings. The save file is a single flat
// blob; choosing where it lives is the host's job, so the path sits here
// rather than in the core.
type SaveConfig struct {
	Path string
}

// GameConfig holds the defaults a fresh session starts with.
type GameConfig struct {
	DefaultSize int
	Hints       bool
}

func defaultSavePath() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "pascaltri", "save.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix
// PASCALTRI_. A missing config file is fine; defaults apply.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("save.path", defaultSavePath())
	v.SetDefault("game.defaultsize", 5)
	v.SetDefault("game.hints", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PASCALTRI_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "pascaltri"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PASCALTRI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return normalize(c), nil
}

// normalize pulls out-of-range settings back to sane values rather than
// failing startup over a hand-edited file.
func normalize(c Config) Config {
	if c.Game.DefaultSize < 2 || c.Game.DefaultSize > 10 {
		c.Game.DefaultSize = 5
	}
	if strings.TrimSpace(c.Save.Path) == "" {
		c.Save.Path = defaultSavePath()
	}
	return c
}
