package ui

import "fmt"

// StatusLine formats the HUD text for a generation.
func StatusLine(generation, population int, paused bool) string {
	s := fmt.Sprintf("gen %d  pop %d", generation, population)
	if paused {
		s += "  [paused]"
	}
	return s
}
