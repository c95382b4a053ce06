package spawn

import (
	"math"
	"strings"

	"github.com/lixenwraith/nightwatch/vmath"
)

// Edge names a battlefield border
type Edge string

const (
	EdgeNorth Edge = "N"
	EdgeEast  Edge = "E"
	EdgeSouth Edge = "S"
	EdgeWest  Edge = "W"
)

// AllEdges lists borders in tie-break order
var AllEdges = []Edge{EdgeNorth, EdgeEast, EdgeSouth, EdgeWest}

// NormalizeEdge accepts N/E/S/W or full names, case-insensitive
func NormalizeEdge(s string) (Edge, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N", "NORTH", "TOP":
		return EdgeNorth, true
	case "E", "EAST", "RIGHT":
		return EdgeEast, true
	case "S", "SOUTH", "BOTTOM":
		return EdgeSouth, true
	case "W", "WEST", "LEFT":
		return EdgeWest, true
	}
	return "", false
}

// Bounds is the playable battlefield rectangle
type Bounds struct {
	X, Y          float64
	Width, Height float64
}

// BoundsOf returns bounds anchored at the origin
func BoundsOf(width, height float64) Bounds {
	return Bounds{Width: width, Height: height}
}

// point returns the position at parameter t along edge, padding units outside the bounds
func (b Bounds) point(e Edge, t, padding float64) vmath.Vec2 {
	switch e {
	case EdgeNorth:
		return vmath.V(b.X+float64(t*b.Width), b.Y-padding)
	case EdgeEast:
		return vmath.V(b.X+b.Width+padding, b.Y+float64(t*b.Height))
	case EdgeSouth:
		return vmath.V(b.X+float64(t*b.Width), b.Y+b.Height+padding)
	default:
		return vmath.V(b.X-padding, b.Y+float64(t*b.Height))
	}
}

// Forward returns the unit vector pointing from edge into the battlefield
func (e Edge) Forward() vmath.Vec2 {
	switch e {
	case EdgeNorth:
		return vmath.V(0, 1)
	case EdgeEast:
		return vmath.V(-1, 0)
	case EdgeSouth:
		return vmath.V(0, -1)
	default:
		return vmath.V(1, 0)
	}
}

// InferEdge classifies a point by its nearest border, ties broken N, E, S, W
func InferEdge(p vmath.Vec2, b Bounds) Edge {
	dists := [4]float64{
		math.Abs(p.Y - b.Y),
		math.Abs(p.X - (b.X + b.Width)),
		math.Abs(p.Y - (b.Y + b.Height)),
		math.Abs(p.X - b.X),
	}
	best := 0
	for i := 1; i < len(dists); i++ {
		if dists[i] < dists[best] {
			best = i
		}
	}
	return AllEdges[best]
}
