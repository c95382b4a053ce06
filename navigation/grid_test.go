package navigation

import (
	"testing"

	"github.com/lixenwraith/nightwatch/vmath"
)

// TestBuildGridDimensions verifies floor sizing and obstacle rasterization
func TestBuildGridDimensions(t *testing.T) {
	g := BuildGrid(105, 61, 10, []vmath.Rect{{X: 20, Y: 20, W: 15, H: 10}})
	if g.Cols != 10 || g.Rows != 6 {
		t.Fatalf("Expected 10x6 grid, got %dx%d", g.Cols, g.Rows)
	}

	blocked := map[[2]int]bool{{2, 2}: true, {3, 2}: true}
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			if g.IsBlocked(x, y) != blocked[[2]int{x, y}] {
				t.Errorf("Cell (%d,%d) blocked=%v, want %v", x, y, g.IsBlocked(x, y), blocked[[2]int{x, y}])
			}
		}
	}
}

func TestCellOfClamps(t *testing.T) {
	g := BuildGrid(100, 100, 10, nil)
	x, y := g.CellOf(vmath.V(-50, 500))
	if x != 0 || y != 9 {
		t.Errorf("Expected clamped (0,9), got (%d,%d)", x, y)
	}
	if c := g.CellCenter(1, 2); c != vmath.V(15, 25) {
		t.Errorf("Expected center (15,25), got %v", c)
	}
}

// TestNearestFreeEnclosed verifies the fallback lands next to the obstacle boundary
func TestNearestFreeEnclosed(t *testing.T) {
	// Cells 3..7 blocked in both axes; start in the middle (5,5)
	g := BuildGrid(200, 200, 10, []vmath.Rect{{X: 30, Y: 30, W: 50, H: 50}})
	if !g.IsBlocked(5, 5) {
		t.Fatal("Expected start cell to be blocked")
	}

	x, y := g.NearestFree(5, 5)
	if g.IsBlocked(x, y) {
		t.Fatalf("NearestFree returned blocked cell (%d,%d)", x, y)
	}
	if x == 5 && y == 5 {
		t.Fatal("NearestFree returned the original blocked cell")
	}

	adjacent := false
	for _, d := range cardinalDirs {
		if g.IsBlocked(x+d[0], y+d[1]) && g.InBounds(x+d[0], y+d[1]) {
			adjacent = true
		}
	}
	if !adjacent {
		t.Errorf("Expected cell adjacent to obstacle boundary, got (%d,%d)", x, y)
	}
	if dist := manhattan(x, y, 5, 5); dist != 3 {
		t.Errorf("Expected nearest free cell 3 steps away, got %d", dist)
	}
}
