package app

import (
	"errors"

	"lifegrid/pkg/sims/life"
)

// toggleAt flips the cell under screen pixel (x, y) for a board drawn at the
// given scale. Clicks outside the board are ignored and report false.
func toggleAt(g *life.Grid, x, y, scale int) (bool, error) {
	if scale <= 0 || x < 0 || y < 0 {
		return false, nil
	}
	row, col := y/scale, x/scale
	alive, err := g.Alive(row, col)
	if errors.Is(err, life.ErrOutOfBounds) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := g.Set(row, col, !alive); err != nil {
		return false, err
	}
	return true, nil
}
