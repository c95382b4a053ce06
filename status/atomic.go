package status

import (
	"math"
	"sync/atomic"
)

// Float is an atomic float64 stored as raw bits; zero value reads 0
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Store(v float64) {
	f.bits.Store(math.Float64bits(v))
}

func (f *Float) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add applies delta with a CAS loop and returns the new value
func (f *Float) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// MaxTextLen bounds stored labels so overlay rows stay one line
const MaxTextLen = 32

// Text is an atomic short label; zero value reads ""
type Text struct {
	ptr atomic.Pointer[string]
}

// Store sets the label, truncated to MaxTextLen bytes
func (t *Text) Store(v string) {
	if len(v) > MaxTextLen {
		v = v[:MaxTextLen]
	}
	t.ptr.Store(&v)
}

func (t *Text) Load() string {
	if p := t.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
