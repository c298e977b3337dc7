package main

// truncateText shortens text to at most max runes, replacing the tail with
// an ellipsis. Rune-safe so multi-byte titles don't get split mid-character.
func truncateText(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
