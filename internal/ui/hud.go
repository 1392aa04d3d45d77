//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a one-line status bar in the top-left corner of the board.
type HUD struct {
	line  string
	panel *ebiten.Image
}

// NewHUD constructs an empty HUD.
func NewHUD() *HUD {
	panel := ebiten.NewImage(1, 1)
	panel.Fill(color.RGBA{A: 160})
	return &HUD{panel: panel}
}

// Update refreshes the status line.
func (h *HUD) Update(generation, population int, paused bool) {
	if h == nil {
		return
	}
	h.line = StatusLine(generation, population, paused)
}

// Draw renders the status line over a translucent backing strip.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.line == "" {
		return
	}
	face := basicfont.Face7x13
	width := len(h.line)*7 + 8

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width), 18)
	screen.DrawImage(h.panel, op)
	text.Draw(screen, h.line, face, 4, 13, color.RGBA{R: 255, G: 220, B: 96, A: 255})
}
