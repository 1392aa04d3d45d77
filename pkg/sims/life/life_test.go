package life

import (
	"errors"
	"math"
	"testing"
)

func mustGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	g, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	return g
}

func seed(t *testing.T, g *Grid, cells ...[2]int) {
	t.Helper()
	if err := g.SetCells(cells, true); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

// expectAlive fails unless exactly the listed cells are alive.
func expectAlive(t *testing.T, g *Grid, label string, cells ...[2]int) {
	t.Helper()
	want := make(map[[2]int]bool, len(cells))
	for _, c := range cells {
		want[c] = true
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			alive, err := g.Alive(y, x)
			if err != nil {
				t.Fatalf("Alive(%d,%d): %v", y, x, err)
			}
			if alive != want[[2]int{y, x}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", label, y, x, alive, want[[2]int{y, x}])
			}
		}
	}
}

func TestNewAllDead(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 7}, {10, 10}, {64, 1}} {
		g := mustGrid(t, dims[0], dims[1])
		if g.Width() != dims[0] || g.Height() != dims[1] {
			t.Fatalf("size = %dx%d, want %dx%d", g.Width(), g.Height(), dims[0], dims[1])
		}
		if n := g.Population(); n != 0 {
			t.Fatalf("%dx%d grid starts with %d live cells", dims[0], dims[1], n)
		}
		if len(g.Cells()) != dims[0]*dims[1] {
			t.Fatalf("cells len = %d, want %d", len(g.Cells()), dims[0]*dims[1])
		}
	}
}

func TestNewInvalidDimension(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 4}, {4, -3}, {math.MaxInt, 2}, {2, math.MaxInt}, {math.MaxInt/2 + 1, 2}} {
		g, err := New(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("New(%d, %d) err = %v, want ErrInvalidDimension", dims[0], dims[1], err)
		}
		if g != nil {
			t.Fatalf("New(%d, %d) returned a grid alongside an error", dims[0], dims[1])
		}
	}
}

func TestSetOutOfBoundsLeavesGridUnchanged(t *testing.T) {
	g := mustGrid(t, 4, 3)
	seed(t, g, [2]int{1, 1}, [2]int{2, 3})
	before := g.Snapshot()

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 4}, {3, 4}} {
		if err := g.Set(c[0], c[1], true); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Set(%d,%d) err = %v, want ErrOutOfBounds", c[0], c[1], err)
		}
	}
	if !g.Snapshot().Equal(before) {
		t.Fatal("failed Set mutated the grid")
	}
}

func TestSetCellsIsAllOrNothing(t *testing.T) {
	g := mustGrid(t, 5, 5)
	before := g.Snapshot()

	err := g.SetCells([][2]int{{0, 0}, {1, 1}, {5, 5}}, true)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("SetCells err = %v, want ErrOutOfBounds", err)
	}
	if !g.Snapshot().Equal(before) {
		t.Fatal("rejected SetCells wrote some cells")
	}
}

func TestLiveNeighborsInterior(t *testing.T) {
	g := mustGrid(t, 5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if err := g.Set(y, x, true); err != nil {
				t.Fatal(err)
			}
		}
	}
	n, err := g.LiveNeighbors(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if n != 8 {
		t.Fatalf("interior neighbours on full board = %d, want 8", n)
	}

	// The cell itself never counts.
	g.Clear()
	seed(t, g, [2]int{2, 2})
	if n, _ := g.LiveNeighbors(2, 2); n != 0 {
		t.Fatalf("isolated cell counts %d neighbours, want 0", n)
	}
}

func TestLiveNeighborsBoundary(t *testing.T) {
	g := mustGrid(t, 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if err := g.Set(y, x, true); err != nil {
				t.Fatal(err)
			}
		}
	}

	cases := []struct {
		row, col int
		want     int
	}{
		{0, 0, 3},
		{0, 3, 3},
		{3, 0, 3},
		{3, 3, 3},
		{0, 1, 5},
		{2, 0, 5},
		{3, 2, 5},
		{1, 3, 5},
		{1, 1, 8},
	}
	for _, tc := range cases {
		got, err := g.LiveNeighbors(tc.row, tc.col)
		if err != nil {
			t.Fatalf("LiveNeighbors(%d,%d): %v", tc.row, tc.col, err)
		}
		if got != tc.want {
			t.Fatalf("LiveNeighbors(%d,%d) = %d, want %d", tc.row, tc.col, got, tc.want)
		}
	}

	// Opposite edges must not see each other.
	g.Clear()
	seed(t, g, [2]int{0, 3}, [2]int{3, 0}, [2]int{3, 3})
	if n, _ := g.LiveNeighbors(0, 0); n != 0 {
		t.Fatalf("corner sees %d neighbours across the edge, want 0", n)
	}
}

func TestLiveNeighborsOutOfBounds(t *testing.T) {
	g := mustGrid(t, 3, 3)
	if _, err := g.LiveNeighbors(3, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
	if _, err := g.LiveNeighbors(0, -1); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestRuleTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := Rule(true, n); got != wantAlive {
			t.Fatalf("Rule(alive, %d) = %v, want %v", n, got, wantAlive)
		}
		wantBorn := n == 3
		if got := Rule(false, n); got != wantBorn {
			t.Fatalf("Rule(dead, %d) = %v, want %v", n, got, wantBorn)
		}
	}
}

func TestBlockStillLife(t *testing.T) {
	g := mustGrid(t, 6, 6)
	block := [][2]int{{2, 2}, {2, 3}, {3, 2}, {3, 3}}
	seed(t, g, block...)

	for i := 0; i < 3; i++ {
		g.Step()
		expectAlive(t, g, "block", block...)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := mustGrid(t, 5, 5)
	seed(t, g, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	g.Step()
	expectAlive(t, g, "after first step", [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

	g.Step()
	expectAlive(t, g, "after second step", [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
}

// An in-place update would let the first row's births leak into the second
// row's neighbour counts; the blinker only survives with a frozen snapshot.
func TestStepReadsFrozenGeneration(t *testing.T) {
	g := mustGrid(t, 3, 3)
	seed(t, g, [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1})

	g.Step()
	expectAlive(t, g, "vertical blinker", [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})
}

func TestSingleCellDiesOut(t *testing.T) {
	g := mustGrid(t, 5, 5)
	seed(t, g, [2]int{2, 2})

	for i := 0; i < 4; i++ {
		g.Step()
		if n := g.Population(); n != 0 {
			t.Fatalf("generation %d has %d live cells, want 0", g.Generation(), n)
		}
	}
}

func TestStepEmptyGridStaysEmpty(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {2, 9}, {16, 16}} {
		g := mustGrid(t, dims[0], dims[1])
		before := g.Snapshot()
		g.Step()
		if !g.Snapshot().Equal(before) {
			t.Fatalf("%dx%d empty grid changed after Step", dims[0], dims[1])
		}
	}
}

func TestGliderHitsCorner(t *testing.T) {
	// With no wrapping the glider from the demo driver collapses into a block
	// in the bottom-right corner of a 10x10 board.
	g := mustGrid(t, 10, 10)
	p, err := LookupPattern("glider")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Place(p, 1, 1); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		g.Step()
	}
	expectAlive(t, g, "glider after 50", [2]int{8, 8}, [2]int{8, 9}, [2]int{9, 8}, [2]int{9, 9})
}

func TestDeterministic(t *testing.T) {
	a := mustGrid(t, 24, 18)
	b := mustGrid(t, 24, 18)
	Randomize(a, 7, 0.35)
	Randomize(b, 7, 0.35)

	for i := 0; i < 30; i++ {
		if !a.Snapshot().Equal(b.Snapshot()) {
			t.Fatalf("grids diverged at generation %d", i)
		}
		a.Step()
		b.Step()
	}
}

func TestGenerationAndClear(t *testing.T) {
	g := mustGrid(t, 4, 4)
	seed(t, g, [2]int{1, 1})
	g.Step()
	g.Step()
	if g.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", g.Generation())
	}
	g.Clear()
	if g.Generation() != 0 || g.Population() != 0 {
		t.Fatalf("after Clear generation=%d population=%d", g.Generation(), g.Population())
	}
}
