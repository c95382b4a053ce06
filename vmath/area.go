package vmath

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X float64 `msgpack:"x" toml:"x" yaml:"x"`
	Y float64 `msgpack:"y" toml:"y" yaml:"y"`
	W float64 `msgpack:"w" toml:"w" yaml:"w"`
	H float64 `msgpack:"h" toml:"h" yaml:"h"`
}

// Contains checks if point is within rectangle, right and bottom edges exclusive
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Overlaps reports a positive-area intersection; touching edges do not overlap
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Empty reports a degenerate rectangle
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
