package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/rpsls/internal/game/core"
)

// Config holds all configuration for the application
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Console ConsoleConfig `mapstructure:"console"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GameConfig holds game mechanics configuration
type GameConfig struct {
	Seed        int64  `mapstructure:"seed"`
	QuitKeyword string `mapstructure:"quit_keyword"`
}

// ConsoleConfig holds settings for the interactive console. An empty Prompt
// names the configured quit keyword.
type ConsoleConfig struct {
	Prompt string `mapstructure:"prompt"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Events bool   `mapstructure:"events"`
}

var (
	mu  sync.RWMutex
	cfg *Config
	v   *viper.Viper
)

// flagKeys maps command line flags onto config keys
var flagKeys = map[string]string{
	"seed":       "game.seed",
	"log-level":  "logging.level",
	"log-format": "logging.format",
	"log-events": "logging.events",
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.quit_keyword", "quit")

	// Empty means the prompt is built from game.quit_keyword
	v.SetDefault("console.prompt", "")

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.events", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	return InitWithFlags(configPath, nil)
}

// InitWithFlags initializes the configuration and lets any flags in flags
// that were set on the command line override file and environment values.
func InitWithFlags(configPath string, flags *pflag.FlagSet) error {
	nv := viper.New()
	setViperDefaults(nv)

	if configPath != "" {
		nv.SetConfigFile(configPath)
	} else {
		nv.SetConfigName("config")
		nv.SetConfigType("yaml")
		nv.AddConfigPath(".")
		nv.AddConfigPath("./config")
		nv.AddConfigPath("$HOME/.config/rpsls")
	}

	nv.SetEnvPrefix("RPSLS")
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	nv.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := nv.BindPFlag(key, flag); err != nil {
					return fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := nv.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing file, explicit or not, falls back to defaults
		missing := errors.As(err, &notFound) || (configPath != "" && errors.Is(err, fs.ErrNotExist))
		if !missing {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	c, err := decode(nv)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	v = nv
	cfg = c
	return nil
}

func decode(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(c); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return c, nil
}

// Get returns the global config instance
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()

	if c == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
		mu.RLock()
		c = cfg
		mu.RUnlock()
	}
	return c
}

// LoadEnvironmentConfig merges config.<env>.yaml from the working directory
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()
	if v == nil {
		return fmt.Errorf("config not initialized - call Init() first")
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)
	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}

	c, err := decode(v)
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// Set allows runtime config updates
func Set(key string, value interface{}) error {
	mu.Lock()
	defer mu.Unlock()
	if v == nil {
		return fmt.Errorf("config not initialized - call Init() first")
	}

	v.Set(key, value)
	c, err := decode(v)
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	mu.RLock()
	defer mu.RUnlock()
	if v == nil {
		return ""
	}
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. onChange receives
// the new config after it passes validation; invalid edits are reported to
// onError and the previous config stays active.
func WatchConfig(onChange func(*Config), onError func(error)) {
	mu.RLock()
	wv := v
	mu.RUnlock()
	if wv == nil {
		return
	}

	wv.OnConfigChange(func(e fsnotify.Event) {
		mu.Lock()
		c, err := decode(wv)
		if err == nil {
			cfg = c
		}
		mu.Unlock()

		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		if onChange != nil {
			onChange(c)
		}
	})
	wv.WatchConfig()
}

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"console": true, "json": true}
)

// Validate validates the configuration values
func Validate(c *Config) error {
	quit := core.Fold(c.Game.QuitKeyword)
	if quit == "" {
		return fmt.Errorf("game.quit_keyword must not be empty")
	}
	if _, err := core.ParseMove(quit); err == nil {
		return fmt.Errorf("game.quit_keyword must not be a move name, got %q", c.Game.QuitKeyword)
	}

	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}

	return nil
}
