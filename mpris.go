package main

import (
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	mprisBusNamePrefix = "org.mpris.MediaPlayer2."
	mprisObjectPath    = dbus.ObjectPath("/org/mpris/MediaPlayer2")
	playerInterface    = "org.mpris.MediaPlayer2.Player"
	metadataProperty   = "Metadata"

	propertiesGet      = "org.freedesktop.DBus.Properties.Get"
	serviceUnknownName = "org.freedesktop.DBus.Error.ServiceUnknown"
)

// ErrPlayerNotRunning means the player owns no name on the session bus,
// i.e. it is not running (or not exporting MPRIS).
var ErrPlayerNotRunning = errors.New("player is not running")

// MPRISSource implements MetadataSource against a player's MPRIS interface
// on the D-Bus session bus. Each Metadata call opens a private connection,
// performs one synchronous Properties.Get round trip with no timeout, and
// closes the connection before returning.
type MPRISSource struct {
	player string
}

// NewMPRISSource targets the player registered as
// org.mpris.MediaPlayer2.<player> on the session bus.
func NewMPRISSource(player string) *MPRISSource {
	return &MPRISSource{player: player}
}

func (m *MPRISSource) Metadata() (map[string]dbus.Variant, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connecting to session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object(mprisBusNamePrefix+m.player, mprisObjectPath)

	var reply dbus.Variant
	call := obj.Call(propertiesGet, 0, playerInterface, metadataProperty)
	if call.Err != nil {
		return nil, mapBusError(call.Err)
	}
	if err := call.Store(&reply); err != nil {
		return nil, fmt.Errorf("reading Metadata reply: %w", err)
	}

	meta, ok := reply.Value().(map[string]dbus.Variant)
	if !ok {
		return nil, fmt.Errorf("unexpected Metadata shape %s", reply.Signature())
	}
	return meta, nil
}

// mapBusError distinguishes "the player is simply not there" from every
// other bus failure, so the CLI can print the friendlier diagnostic.
func mapBusError(err error) error {
	var busErr dbus.Error
	if errors.As(err, &busErr) && busErr.Name == serviceUnknownName {
		return ErrPlayerNotRunning
	}
	return err
}
