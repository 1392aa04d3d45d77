//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"
	"lifegrid/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life grid to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	grid    *life.Grid
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep

	onColor  color.Color
	offColor color.Color

	paused   bool
	tickOnce bool
}

// New constructs a Game with a freshly seeded grid.
func New(cfg *Config) (*Game, error) {
	grid, err := cfg.NewGrid()
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:      cfg,
		grid:     grid,
		painter:  render.NewGridPainter(grid.Width(), grid.Height()),
		hud:      ui.NewHUD(),
		pacer:    core.NewFixedStep(cfg.TPS),
		onColor:  color.White,
		offColor: color.Black,
	}, nil
}

// Reset reseeds the grid from the configuration.
func (g *Game) Reset() error {
	g.tickOnce = false
	return g.cfg.SeedGrid(g.grid)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.cfg.Pattern = PatternRandom
		g.cfg.PatternFile = ""
		g.cfg.Seed = time.Now().UnixNano()
		if err := g.Reset(); err != nil {
			return err
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if _, err := toggleAt(g.grid, x, y, g.cfg.Scale); err != nil {
			return err
		}
	}

	if g.tickOnce {
		g.grid.Step()
		g.tickOnce = false
	} else if !g.paused && g.pacer.ShouldStep() {
		g.grid.Step()
	}
	g.hud.Update(g.grid.Generation(), g.grid.Population(), g.paused)
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.grid.Cells(), g.onColor, g.offColor, g.cfg.Scale)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.grid.Width() * g.cfg.Scale, g.grid.Height() * g.cfg.Scale
}
