package vmath

// Clamp limits v to [lo, hi]; NaN collapses to lo
func Clamp(v, lo, hi float64) float64 {
	if v != v || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampMin floors v at lo; NaN collapses to lo
func ClampMin(v, lo float64) float64 {
	if v != v || v < lo {
		return lo
	}
	return v
}
