package main

import "github.com/godbus/dbus/v5"

// MetadataSource fetches the now-playing metadata dictionary from a media
// player. The keys are MPRIS property names (xesam:artist, mpris:artUrl,
// ...); each value is a variant whose shape is only known at decode time.
type MetadataSource interface {
	Metadata() (map[string]dbus.Variant, error)
}
