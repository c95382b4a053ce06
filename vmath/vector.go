package vmath

import "math"

// Vec2 is a world-space position, velocity, or facing vector
// Products are wrapped in explicit float64 conversions to keep the compiler from fusing multiply-add, which would break bit-level replay across architectures
type Vec2 struct {
	X float64 `msgpack:"x" toml:"x" yaml:"x"`
	Y float64 `msgpack:"y" toml:"y" yaml:"y"`
}

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: float64(v.X * s), Y: float64(v.Y * s)}
}

// MagnitudeSq returns squared length without sqrt
func (v Vec2) MagnitudeSq() float64 {
	return float64(v.X*v.X) + float64(v.Y*v.Y)
}

// Magnitude returns Euclidean length
func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSq())
}

// Dist returns Euclidean distance between two points
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Magnitude()
}

// DistSq returns squared distance between two points
func (v Vec2) DistSq(o Vec2) float64 {
	return v.Sub(o).MagnitudeSq()
}

// MoveToward steps from v toward target by at most step
// Returns the new point and true when the target was reached
func (v Vec2) MoveToward(target Vec2, step float64) (Vec2, bool) {
	d := target.Sub(v)
	dist := d.Magnitude()
	if dist <= step || dist == 0 {
		return target, true
	}
	return v.Add(d.Scale(step / dist)), false
}
