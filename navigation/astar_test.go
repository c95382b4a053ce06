package navigation

import (
	"testing"

	"github.com/lixenwraith/nightwatch/vmath"
)

// TestFindPathManhattanLength verifies open-grid paths have Manhattan length in cells
func TestFindPathManhattanLength(t *testing.T) {
	g := BuildGrid(400, 300, 20, nil)

	tests := []struct {
		name       string
		start, end vmath.Vec2
	}{
		{"horizontal", vmath.V(10, 10), vmath.V(390, 10)},
		{"diagonal", vmath.V(10, 10), vmath.V(290, 210)},
		{"reverse", vmath.V(350, 250), vmath.V(30, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, found := FindPath(g, tt.start, tt.end)
			if !found {
				t.Fatal("Expected path on open grid")
			}
			sx, sy := g.CellOf(tt.start)
			ex, ey := g.CellOf(tt.end)
			if got, want := len(path)-1, manhattan(sx, sy, ex, ey); got != want {
				t.Errorf("Path steps = %d, want Manhattan %d", got, want)
			}
			if path[0] != g.CellCenter(sx, sy) {
				t.Errorf("Path must start at start cell center, got %v", path[0])
			}
			if path[len(path)-1] != g.CellCenter(ex, ey) {
				t.Errorf("Path must end at end cell center, got %v", path[len(path)-1])
			}
			for i := 1; i < len(path); i++ {
				d := path[i].Sub(path[i-1])
				if d.Magnitude() != g.CellSize {
					t.Fatalf("Non-adjacent step %d: %v -> %v", i, path[i-1], path[i])
				}
			}
		})
	}
}

// TestFindPathAroundWall verifies the route never enters blocked cells
func TestFindPathAroundWall(t *testing.T) {
	// Vertical wall at x cells 5, rows 0..7 of a 10x10 grid; gap at rows 8-9
	g := BuildGrid(100, 100, 10, []vmath.Rect{{X: 50, Y: 0, W: 10, H: 80}})
	path, found := FindPath(g, vmath.V(15, 15), vmath.V(85, 15))
	if !found {
		t.Fatal("Expected route through gap")
	}
	for _, p := range path {
		x, y := g.CellOf(p)
		if g.IsBlocked(x, y) {
			t.Fatalf("Path crosses blocked cell (%d,%d)", x, y)
		}
	}
	// Down 7, across 7, up 7
	if len(path)-1 != 21 {
		t.Errorf("Expected 21 steps around wall, got %d", len(path)-1)
	}
}

// TestFindPathUnreachable verifies the degenerate two-point fallback
func TestFindPathUnreachable(t *testing.T) {
	// Full-height wall splits the map
	g := BuildGrid(100, 100, 10, []vmath.Rect{{X: 50, Y: 0, W: 10, H: 100}})
	path, found := FindPath(g, vmath.V(15, 15), vmath.V(85, 85))
	if found {
		t.Fatal("Expected no route")
	}
	if len(path) != 2 {
		t.Fatalf("Expected two-point fallback, got %d points", len(path))
	}
	if path[0] != g.CellCenter(1, 1) || path[1] != g.CellCenter(8, 8) {
		t.Errorf("Unexpected fallback endpoints %v", path)
	}
}

// TestFindPathBlockedTarget verifies a target inside an obstacle is corrected
func TestFindPathBlockedTarget(t *testing.T) {
	g := BuildGrid(100, 100, 10, []vmath.Rect{{X: 40, Y: 40, W: 20, H: 20}})
	path, found := FindPath(g, vmath.V(5, 5), vmath.V(50, 50))
	if !found {
		t.Fatal("Expected route to nearest free cell")
	}
	last := path[len(path)-1]
	x, y := g.CellOf(last)
	if g.IsBlocked(x, y) {
		t.Errorf("Path ends in blocked cell (%d,%d)", x, y)
	}
}

func TestFindPathSameCell(t *testing.T) {
	g := BuildGrid(100, 100, 10, nil)
	path, found := FindPath(g, vmath.V(12, 12), vmath.V(18, 18))
	if !found || len(path) != 1 {
		t.Fatalf("Expected single-point path, got %v found=%v", path, found)
	}
}

// TestFindPathDeterministic verifies tie-breaking is stable across calls
func TestFindPathDeterministic(t *testing.T) {
	g := BuildGrid(300, 300, 10, []vmath.Rect{{X: 100, Y: 100, W: 50, H: 50}})
	a, _ := FindPath(g, vmath.V(5, 5), vmath.V(295, 295))
	b, _ := FindPath(g, vmath.V(5, 5), vmath.V(295, 295))
	if len(a) != len(b) {
		t.Fatalf("Path length changed: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Waypoint %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestMinHeapTieBreak(t *testing.T) {
	var h minHeap
	h.push(heapEntry{idx: 1, f: 5, seq: 0})
	h.push(heapEntry{idx: 2, f: 3, seq: 1})
	h.push(heapEntry{idx: 3, f: 3, seq: 2})
	h.push(heapEntry{idx: 4, f: 3, seq: 3})

	want := []int{2, 3, 4, 1}
	for i, w := range want {
		if got := h.pop().idx; got != w {
			t.Errorf("Pop %d: got idx %d, want %d", i, got, w)
		}
	}
}
