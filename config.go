package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Player struct {
		Name string `mapstructure:"name"`
	} `mapstructure:"player"`
	Store struct {
		Capacity int `mapstructure:"capacity"`
	} `mapstructure:"store"`
	UI struct {
		Color    string `mapstructure:"color"`
		MaxWidth int    `mapstructure:"max_width"`
	} `mapstructure:"ui"`
	Artwork struct {
		WidthPixels int `mapstructure:"width_pixels"`
	} `mapstructure:"artwork"`
}

// SafeConfig wraps Config with thread-safe access
type SafeConfig struct {
	mu  sync.RWMutex
	cfg Config
}

// Get returns a copy of the current config (thread-safe read)
func (sc *SafeConfig) Get() Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.cfg
}

// Set updates the config (thread-safe write)
func (sc *SafeConfig) Set(cfg Config) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.cfg = cfg
}

var config = &SafeConfig{}

func initConfig() {
	// Set defaults
	viper.SetDefault("player.name", "spotify")
	viper.SetDefault("store.capacity", DefaultStoreCapacity)
	viper.SetDefault("ui.color", "2")
	viper.SetDefault("ui.max_width", 0) // 0 = no truncation
	viper.SetDefault("artwork.width_pixels", 300)

	// Set config file location following XDG standard
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Check XDG_CONFIG_HOME first, fallback to ~/.config
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			configHome = filepath.Join(homeDir, ".config")
		}
	}

	if configHome != "" {
		viper.AddConfigPath(filepath.Join(configHome, "nowplaying"))
	}

	// Environment variable support with NOWPLAYING_ prefix
	viper.SetEnvPrefix("NOWPLAYING")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file (ignore error if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file found but had errors
			fmt.Fprintf(os.Stderr, "Warning: Error reading config file: %v\n", err)
		}
	}

	// Command-line flags take precedence over file and environment
	if playerFlag != "" {
		viper.Set("player.name", playerFlag)
	}
	if capacityFlag > 0 {
		viper.Set("store.capacity", capacityFlag)
	}
	if colorFlag != "" {
		viper.Set("ui.color", colorFlag)
	}
	if maxWidthFlag > 0 {
		viper.Set("ui.max_width", maxWidthFlag)
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error parsing config: %v\n", err)
	}
	config.Set(cfg)
}
