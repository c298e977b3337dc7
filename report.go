package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Metadata keys the report commands query.
const (
	keyArtist = "xesam:artist"
	keyTitle  = "xesam:title"
	keyArtURL = "mpris:artUrl"
)

// renderTrack builds the one-line "<artist> - <title>" summary for status
// bars. Both keys must resolve to strings; a missing or mistyped key fails
// the whole command rather than printing a partial line. maxWidth > 0
// truncates the finished line with an ellipsis so it fits a bar slot.
func renderTrack(store *Store, maxWidth int) (string, error) {
	artist, err := store.Lookup(keyArtist, TypeString)
	if err != nil {
		return "", fmt.Errorf("looking up %s: %w", keyArtist, err)
	}
	title, err := store.Lookup(keyTitle, TypeString)
	if err != nil {
		return "", fmt.Errorf("looking up %s: %w", keyTitle, err)
	}

	line := artist.Str() + " - " + title.Str()
	if maxWidth > 0 {
		line = truncateText(line, maxWidth)
	}
	return line, nil
}

// renderMetadata lists every store entry in insertion order, one line per
// entry: key, type tag, value. Repeated keys from flattened arrays appear
// once per element. The key is tinted with the accent color; on terminals
// without a color profile lipgloss renders it plain, so the layout is the
// contract, not the styling.
func renderMetadata(store *Store, accent string) string {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true)

	var b strings.Builder
	for _, e := range store.Entries() {
		b.WriteString(fmt.Sprintf("%s\t%s: %s\n",
			keyStyle.Render(e.Key),
			e.Value.Type(),
			e.Value.Render(),
		))
	}
	return b.String()
}
