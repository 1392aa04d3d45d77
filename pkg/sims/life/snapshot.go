package life

import "slices"

// Snapshot is a frozen copy of one generation. It shares no memory with the
// grid it was taken from.
type Snapshot struct {
	w, h  int
	gen   int
	cells []bool
}

// Snapshot copies the current generation.
func (g *Grid) Snapshot() Snapshot {
	return Snapshot{w: g.w, h: g.h, gen: g.gen, cells: slices.Clone(g.cur)}
}

// Width returns the number of columns.
func (s Snapshot) Width() int { return s.w }

// Height returns the number of rows.
func (s Snapshot) Height() int { return s.h }

// Generation returns the generation the snapshot was taken at.
func (s Snapshot) Generation() int { return s.gen }

// Alive reports the state of (row, col). Coordinates off the board read as
// dead.
func (s Snapshot) Alive(row, col int) bool {
	if row < 0 || row >= s.h || col < 0 || col >= s.w {
		return false
	}
	return s.cells[row*s.w+col]
}

// Population returns the number of live cells.
func (s Snapshot) Population() int {
	n := 0
	for _, alive := range s.cells {
		if alive {
			n++
		}
	}
	return n
}

// Rows returns the cell states as a freshly allocated [row][col] matrix.
func (s Snapshot) Rows() [][]bool {
	rows := make([][]bool, s.h)
	for y := range rows {
		rows[y] = slices.Clone(s.cells[y*s.w : (y+1)*s.w])
	}
	return rows
}

// Equal reports whether both snapshots hold the same dimensions and cell
// states. The generation number is ignored.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.w == o.w && s.h == o.h && slices.Equal(s.cells, o.cells)
}
