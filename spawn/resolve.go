package spawn

import (
	"math"

	"github.com/lixenwraith/nightwatch/parameter"
	"github.com/lixenwraith/nightwatch/rng"
	"github.com/lixenwraith/nightwatch/vmath"
)

// EdgeSpec is a requested spawn border with an optional weight
type EdgeSpec struct {
	Edge   string  `msgpack:"edge" toml:"edge" yaml:"edge"`
	Weight float64 `msgpack:"weight,omitempty" toml:"weight" yaml:"weight,omitempty"`
}

// Count is a fixed per-edge point count, or a [Min, Max] range when Max > 0
type Count struct {
	Fixed int `msgpack:"fixed,omitempty" toml:"fixed" yaml:"fixed,omitempty"`
	Min   int `msgpack:"min,omitempty" toml:"min" yaml:"min,omitempty"`
	Max   int `msgpack:"max,omitempty" toml:"max" yaml:"max,omitempty"`
}

// FixedCount returns a constant count
func FixedCount(n int) Count {
	return Count{Fixed: n}
}

// RangeCount returns a seeded [lo, hi] count
func RangeCount(lo, hi int) Count {
	return Count{Min: lo, Max: hi}
}

// IsRange reports whether the count is sampled
func (c Count) IsRange() bool {
	return c.Max > 0
}

func (c Count) resolve(r *rng.Rand) int {
	if !c.IsRange() {
		return max(c.Fixed, 0)
	}
	lo, hi := max(c.Min, 0), max(c.Max, 0)
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.NextInt(hi-lo+1)
}

// Transform is a resolved spawn point
type Transform struct {
	Pos     vmath.Vec2 `msgpack:"pos"`
	Forward vmath.Vec2 `msgpack:"forward"`
	Edge    Edge       `msgpack:"edge"`
	Weight  float64    `msgpack:"weight"`
}

// ResolveTransforms places per-edge spawn points along the battlefield border
//
// Edges are normalized and de-duplicated in request order. Each edge gets its count
// (fixed or seeded from a range), points are spread at (i+1)/(n+1) with seeded jitter,
// and each point retries up to SpawnPlacementRetries times to keep minDistance from every
// earlier point. When retries fail the best of SpawnFallbackCandidates evenly spaced
// candidates (largest distance to existing points) is kept.
func ResolveTransforms(edges []EdgeSpec, perEdge Count, bounds Bounds, padding, minDistance float64, seed uint32) []Transform {
	if padding != padding || padding < 0 {
		padding = 0
	}
	if minDistance != minDistance || minDistance < 0 {
		minDistance = 0
	}

	type resolvedEdge struct {
		edge   Edge
		weight float64
	}
	var resolved []resolvedEdge
	seen := make(map[Edge]bool, 4)
	for _, spec := range edges {
		e, ok := NormalizeEdge(spec.Edge)
		if !ok || seen[e] {
			continue
		}
		seen[e] = true
		w := spec.Weight
		if !(w > 0) {
			w = 1
		}
		resolved = append(resolved, resolvedEdge{edge: e, weight: w})
	}
	if len(resolved) == 0 {
		return nil
	}

	r := rng.New(seed)
	var out []Transform
	for _, re := range resolved {
		count := perEdge.resolve(r)
		jitterSpan := 0.5 / float64(count+1)

		for i := 0; i < count; i++ {
			base := float64(i+1) / float64(count+1)

			var pos vmath.Vec2
			placed := false
			for attempt := 0; attempt < parameter.SpawnPlacementRetries; attempt++ {
				jitter := float64((r.NextFloat()*2 - 1) * jitterSpan)
				t := clampT(base + jitter)
				pos = bounds.point(re.edge, t, padding)
				if minDistTo(pos, out) >= minDistance {
					placed = true
					break
				}
			}
			if !placed {
				pos = bestCandidate(bounds, re.edge, padding, out)
			}

			out = append(out, Transform{
				Pos:     pos,
				Forward: re.edge.Forward(),
				Edge:    re.edge,
				Weight:  re.weight,
			})
		}
	}
	return out
}

// bestCandidate scans evenly spaced t values and keeps the one farthest from existing points
func bestCandidate(b Bounds, e Edge, padding float64, existing []Transform) vmath.Vec2 {
	n := parameter.SpawnFallbackCandidates
	var best vmath.Vec2
	bestDist := -1.0
	for k := 0; k < n; k++ {
		t := parameter.SpawnEdgeMinT + (parameter.SpawnEdgeMaxT-parameter.SpawnEdgeMinT)*float64(k)/float64(n-1)
		p := b.point(e, t, padding)
		if d := minDistTo(p, existing); d > bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

func minDistTo(p vmath.Vec2, existing []Transform) float64 {
	best := math.Inf(1)
	for _, tr := range existing {
		if d := p.Dist(tr.Pos); d < best {
			best = d
		}
	}
	return best
}

func clampT(t float64) float64 {
	return vmath.Clamp(t, parameter.SpawnEdgeMinT, parameter.SpawnEdgeMaxT)
}
