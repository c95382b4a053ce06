package navigation

import (
	"math"

	"github.com/lixenwraith/nightwatch/parameter"
	"github.com/lixenwraith/nightwatch/vmath"
)

// WallChecker is a function that returns true if cell blocks navigation
type WallChecker func(x, y int) bool

// Cardinal neighbor offsets in expansion order: E, W, S, N
var cardinalDirs = [4][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// Grid is a rasterized battlefield of blocked/free cells
type Grid struct {
	Cols, Rows int
	CellSize   float64
	Blocked    []bool // Flat index y*Cols+x
}

// BuildGrid rasterizes a width×height battlefield into floor(width/cellSize)×floor(height/cellSize) cells
// Any cell whose rectangle overlaps an obstacle with positive area is blocked
func BuildGrid(width, height, cellSize float64, obstacles []vmath.Rect) *Grid {
	if !(cellSize > 0) {
		cellSize = parameter.NavDefaultCellSize
	}
	cols := int(math.Floor(width / cellSize))
	rows := int(math.Floor(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	g := &Grid{
		Cols:     cols,
		Rows:     rows,
		CellSize: cellSize,
		Blocked:  make([]bool, cols*rows),
	}

	for _, o := range obstacles {
		if o.Empty() {
			continue
		}
		x0 := clampInt(int(math.Floor(o.X/cellSize)), 0, cols-1)
		x1 := clampInt(int(math.Ceil((o.X+o.W)/cellSize))-1, 0, cols-1)
		y0 := clampInt(int(math.Floor(o.Y/cellSize)), 0, rows-1)
		y1 := clampInt(int(math.Ceil((o.Y+o.H)/cellSize))-1, 0, rows-1)

		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if g.cellRect(x, y).Overlaps(o) {
					g.Blocked[y*cols+x] = true
				}
			}
		}
	}
	return g
}

func (g *Grid) cellRect(x, y int) vmath.Rect {
	return vmath.Rect{
		X: float64(x) * g.CellSize,
		Y: float64(y) * g.CellSize,
		W: g.CellSize,
		H: g.CellSize,
	}
}

// InBounds reports whether the cell lies on the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Cols && y < g.Rows
}

// IsBlocked reports blocked cells; off-grid cells are blocked
func (g *Grid) IsBlocked(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.Blocked[y*g.Cols+x]
}

// CellOf snaps a world position to its cell, clamped to the grid
func (g *Grid) CellOf(p vmath.Vec2) (x, y int) {
	x = clampInt(floorToInt(p.X/g.CellSize), 0, g.Cols-1)
	y = clampInt(floorToInt(p.Y/g.CellSize), 0, g.Rows-1)
	return x, y
}

// CellCenter returns the world position of a cell center
func (g *Grid) CellCenter(x, y int) vmath.Vec2 {
	return vmath.Vec2{
		X: (float64(x) + 0.5) * g.CellSize,
		Y: (float64(y) + 0.5) * g.CellSize,
	}
}

// NearestFree returns the closest free cell by 4-connected breadth-first search
// Returns the input cell if it is free or if the whole grid is blocked
func (g *Grid) NearestFree(x, y int) (int, int) {
	if !g.IsBlocked(x, y) {
		return x, y
	}
	if !g.InBounds(x, y) {
		x, y = clampInt(x, 0, g.Cols-1), clampInt(y, 0, g.Rows-1)
	}

	visited := make([]bool, g.Cols*g.Rows)
	queue := make([]int, 0, 64)
	start := y*g.Cols + x
	visited[start] = true
	queue = append(queue, start)

	for head := 0; head < len(queue); head++ {
		idx := queue[head]
		cx, cy := idx%g.Cols, idx/g.Cols
		if !g.Blocked[idx] {
			return cx, cy
		}
		for _, d := range cardinalDirs {
			nx, ny := cx+d[0], cy+d[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			nIdx := ny*g.Cols + nx
			if visited[nIdx] {
				continue
			}
			visited[nIdx] = true
			queue = append(queue, nIdx)
		}
	}
	return x, y
}

func floorToInt(v float64) int {
	if v != v {
		return 0
	}
	return int(math.Floor(v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
