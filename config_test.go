package main

import (
	"sync"
	"testing"

	"github.com/spf13/viper"
)

// TestSafeConfigGetReturnsCopy tests that Get() returns a copy, not a reference
func TestSafeConfigGetReturnsCopy(t *testing.T) {
	sc := &SafeConfig{}

	cfg1 := Config{}
	cfg1.Player.Name = "spotify"
	cfg1.Store.Capacity = 100
	sc.Set(cfg1)

	// Modify the retrieved copy
	retrieved1 := sc.Get()
	retrieved1.Player.Name = "vlc"
	retrieved1.Store.Capacity = 5

	// A fresh copy still has the original values
	retrieved2 := sc.Get()
	assertEqual(t, retrieved2.Player.Name, "spotify", "player name")
	assertEqual(t, retrieved2.Store.Capacity, 100, "store capacity")
}

// TestSafeConfigConcurrency tests that SafeConfig can be safely accessed from multiple goroutines
func TestSafeConfigConcurrency(t *testing.T) {
	sc := &SafeConfig{}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cfg := Config{}
				cfg.Player.Name = string(rune('a' + id%26))
				cfg.Store.Capacity = id
				sc.Set(cfg)
			}
		}(i)
	}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cfg := sc.Get()
				_ = cfg.Player.Name
				_ = cfg.Store.Capacity
			}
		}()
	}
	wg.Wait()
}

// TestInitConfigDefaults verifies the built-in defaults survive a load with
// no config file, no environment and no flags.
func TestInitConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	initConfig()
	cfg := config.Get()

	assertEqual(t, cfg.Player.Name, "spotify", "default player")
	assertEqual(t, cfg.Store.Capacity, DefaultStoreCapacity, "default capacity")
	assertEqual(t, cfg.UI.Color, "2", "default accent color")
	assertEqual(t, cfg.UI.MaxWidth, 0, "default max width (unlimited)")
	assertEqual(t, cfg.Artwork.WidthPixels, 300, "default artwork width")
}

// TestInitConfigFlagOverride verifies flags take precedence over defaults.
func TestInitConfigFlagOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	playerFlag = "vlc"
	capacityFlag = 7
	t.Cleanup(func() {
		playerFlag = ""
		capacityFlag = 0
	})

	initConfig()
	cfg := config.Get()

	assertEqual(t, cfg.Player.Name, "vlc", "player flag override")
	assertEqual(t, cfg.Store.Capacity, 7, "capacity flag override")
}
