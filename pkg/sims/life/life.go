package life

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDimension is returned when a grid is requested with a
	// non-positive width or height, or with more cells than an int can count.
	ErrInvalidDimension = errors.New("life: invalid dimension")
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("life: coordinate out of bounds")
)

// Grid implements Conway's Game of Life on a fixed board. Cells beyond the
// edge do not exist; they never wrap around.
type Grid struct {
	w, h int
	gen  int
	cur  []bool
	nxt  []bool
}

// New returns an all-dead grid with the provided dimensions. The cell count
// w*h must fit in an int.
func New(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 || w > math.MaxInt/h {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	cells := make([]bool, w*h)
	return &Grid{w: w, h: h, cur: cells, nxt: make([]bool, len(cells))}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Generation returns how many times Step has run since creation or Clear.
func (g *Grid) Generation() int { return g.gen }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

func (g *Grid) check(row, col int) error {
	if !g.inBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, row, col, g.w, g.h)
	}
	return nil
}

// Set changes the state of a single cell.
func (g *Grid) Set(row, col int, alive bool) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	g.cur[row*g.w+col] = alive
	return nil
}

// SetCells applies the same state to every listed (row, col) pair. Nothing is
// written unless all coordinates are in bounds.
func (g *Grid) SetCells(cells [][2]int, alive bool) error {
	for _, c := range cells {
		if err := g.check(c[0], c[1]); err != nil {
			return err
		}
	}
	for _, c := range cells {
		g.cur[c[0]*g.w+c[1]] = alive
	}
	return nil
}

// Alive reports whether the cell is alive in the current generation.
func (g *Grid) Alive(row, col int) (bool, error) {
	if err := g.check(row, col); err != nil {
		return false, err
	}
	return g.cur[row*g.w+col], nil
}

// LiveNeighbors counts the live cells in the Moore neighbourhood of
// (row, col). Positions off the board contribute nothing.
func (g *Grid) LiveNeighbors(row, col int) (int, error) {
	if err := g.check(row, col); err != nil {
		return 0, err
	}
	return g.neighbors(row, col), nil
}

func (g *Grid) neighbors(row, col int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			r, c := row+dy, col+dx
			if !g.inBounds(r, c) {
				continue
			}
			if g.cur[r*g.w+c] {
				n++
			}
		}
	}
	return n
}

// Rule returns the next state of a cell given its current state and the
// number of live neighbours.
func Rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Step advances the simulation by one generation. Every cell is evaluated
// against the current buffer and written to the spare one; the buffers are
// swapped only once the whole board is done.
func (g *Grid) Step() {
	w, h := g.w, g.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			g.nxt[idx] = Rule(g.cur[idx], g.neighbors(y, x))
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.gen++
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cur {
		if alive {
			n++
		}
	}
	return n
}

// Clear kills every cell and resets the generation counter.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = false
	}
	g.gen = 0
}

// Cells returns a copy of the current generation as 0/1 bytes in row-major
// order.
func (g *Grid) Cells() []uint8 {
	out := make([]uint8, len(g.cur))
	for i, alive := range g.cur {
		if alive {
			out[i] = 1
		}
	}
	return out
}
