package main

import (
	"image"
	"image/color"
	"testing"

	"github.com/godbus/dbus/v5"
)

// fakeSource is a canned MetadataSource for exercising run() without a bus.
type fakeSource struct {
	meta map[string]dbus.Variant
	err  error
}

func (f *fakeSource) Metadata() (map[string]dbus.Variant, error) {
	return f.meta, f.err
}

// setTestConfig installs a known configuration for the duration of a test,
// bypassing viper so tests stay independent of files and environment.
func setTestConfig(t *testing.T) {
	t.Helper()
	old := config.Get()

	var cfg Config
	cfg.Player.Name = "spotify"
	cfg.Store.Capacity = DefaultStoreCapacity
	cfg.UI.Color = "2"
	config.Set(cfg)

	t.Cleanup(func() { config.Set(old) })
}

// generateTestImage creates a solid-color test image for artwork tests
func generateTestImage(width, height int, fillColor color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, fillColor)
		}
	}
	return img
}

// assertNoError is a test helper that fails the test if an error occurred
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// assertEqual is a generic test helper for comparing values
func assertEqual(t *testing.T, got, want interface{}, msg string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

// isValidHexColor checks if a string is a valid hex color (e.g., "#RRGGBB")
func isValidHexColor(color string) bool {
	if len(color) != 7 || color[0] != '#' {
		return false
	}
	for i := 1; i < 7; i++ {
		c := color[i]
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
