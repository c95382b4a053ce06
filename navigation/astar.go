package navigation

import (
	"github.com/lixenwraith/nightwatch/vmath"
)

// FindPath returns a sequence of cell-center waypoints from start to end
//
// Blocked endpoints are corrected to the nearest free cell first. The path is prefixed
// with the (corrected) start cell center. When no route exists the result is the
// degenerate [startCenter, endCenter] pair and found is false; callers may walk it as a
// straight line.
func FindPath(g *Grid, start, end vmath.Vec2) (path []vmath.Vec2, found bool) {
	if g == nil {
		return []vmath.Vec2{start, end}, false
	}

	sx, sy := g.NearestFree(g.CellOf(start))
	ex, ey := g.NearestFree(g.CellOf(end))
	startCenter := g.CellCenter(sx, sy)

	if sx == ex && sy == ey {
		return []vmath.Vec2{startCenter}, true
	}

	cells := searchCells(g.Cols, g.Rows, sx, sy, ex, ey, g.IsBlocked)
	if cells == nil {
		return []vmath.Vec2{startCenter, g.CellCenter(ex, ey)}, false
	}

	path = make([]vmath.Vec2, len(cells))
	for i, idx := range cells {
		path[i] = g.CellCenter(idx%g.Cols, idx/g.Cols)
	}
	return path, true
}

// searchCells runs A* over 4-connected free cells with unit edge cost and Manhattan heuristic
// Returns flat cell indices from start to end inclusive, nil if unreachable
func searchCells(cols, rows, sx, sy, ex, ey int, isBlocked WallChecker) []int {
	if isBlocked(sx, sy) || isBlocked(ex, ey) {
		return nil
	}

	size := cols * rows
	startIdx := sy*cols + sx
	endIdx := ey*cols + ex

	gScore := make([]int, size)
	cameFrom := make([]int, size)
	closed := make([]bool, size)
	for i := range gScore {
		gScore[i] = -1
		cameFrom[i] = -1
	}

	seq := 0
	open := make(minHeap, 0, 64)
	gScore[startIdx] = 0
	open.push(heapEntry{idx: startIdx, f: manhattan(sx, sy, ex, ey), seq: seq})

	for len(open) > 0 {
		cur := open.pop()
		if closed[cur.idx] {
			continue // Stale entry
		}
		if cur.idx == endIdx {
			return reconstruct(cameFrom, startIdx, endIdx)
		}
		closed[cur.idx] = true

		cx, cy := cur.idx%cols, cur.idx/cols
		for _, d := range cardinalDirs {
			nx, ny := cx+d[0], cy+d[1]
			if nx < 0 || ny < 0 || nx >= cols || ny >= rows {
				continue
			}
			if isBlocked(nx, ny) {
				continue
			}
			nIdx := ny*cols + nx
			if closed[nIdx] {
				continue
			}
			tentative := gScore[cur.idx] + 1
			if gScore[nIdx] >= 0 && tentative >= gScore[nIdx] {
				continue
			}
			gScore[nIdx] = tentative
			cameFrom[nIdx] = cur.idx
			seq++
			open.push(heapEntry{idx: nIdx, f: tentative + manhattan(nx, ny, ex, ey), seq: seq})
		}
	}
	return nil
}

func reconstruct(cameFrom []int, startIdx, endIdx int) []int {
	var rev []int
	for idx := endIdx; idx != -1; idx = cameFrom[idx] {
		rev = append(rev, idx)
		if idx == startIdx {
			break
		}
	}
	out := make([]int, len(rev))
	for i, idx := range rev {
		out[len(rev)-1-i] = idx
	}
	return out
}

func manhattan(ax, ay, bx, by int) int {
	dx := ax - bx
	dy := ay - by
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
