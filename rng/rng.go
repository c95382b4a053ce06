package rng

import (
	"fmt"
	"strconv"
)

// FNV-1a 32-bit constants
const (
	fnvOffset = 2166136261
	fnvPrime  = 16777619

	// partSeparator is folded between parts so ("ab","c") and ("a","bc") diverge
	partSeparator = 0x1f
)

// zeroSeedFallback replaces a zero seed; xorshift never leaves the all-zero state
const zeroSeedFallback uint32 = 0x6d2b79f5

// DeriveSeed folds a base seed and a path of semantic parts into an independent sub-stream seed
// Identical (base, parts) always yield the same seed; parts are hashed by canonical string form
func DeriveSeed(base uint32, parts ...any) uint32 {
	h := uint32(fnvOffset)
	h = mixUint32(h, base)
	for _, p := range parts {
		h ^= partSeparator
		h *= fnvPrime
		for _, b := range []byte(partString(p)) {
			h ^= uint32(b)
			h *= fnvPrime
		}
	}
	return h
}

func mixUint32(h, v uint32) uint32 {
	for i := 0; i < 4; i++ {
		h ^= (v >> (8 * i)) & 0xff
		h *= fnvPrime
	}
	return h
}

// partString renders a seed part without locale or platform dependence
func partString(p any) string {
	switch v := p.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Rand is a xorshift32 generator; the zero value is not usable, construct with New
type Rand struct {
	state uint32
}

// New creates a generator for seed, remapping zero to a fixed non-zero state
func New(seed uint32) *Rand {
	if seed == 0 {
		seed = zeroSeedFallback
	}
	return &Rand{state: seed}
}

// State returns the raw generator state for storage or replay
func (r *Rand) State() uint32 {
	return r.state
}

func (r *Rand) next() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// NextFloat returns a value in [0, 1)
func (r *Rand) NextFloat() float64 {
	return float64(r.next()) / 4294967296.0
}

// NextInt returns floor(NextFloat*max), 0 when max <= 1
func (r *Rand) NextInt(max int) int {
	if max <= 1 {
		return 0
	}
	n := int(r.NextFloat() * float64(max))
	if n >= max {
		n = max - 1
	}
	return n
}

// Pick returns a uniformly chosen element, false for an empty slice
func Pick[T any](r *Rand, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[r.NextInt(len(items))], true
}

// PickWithoutReplacement draws up to count distinct elements in draw order
// The input slice is not modified
func PickWithoutReplacement[T any](items []T, count int, r *Rand) []T {
	if count <= 0 || len(items) == 0 {
		return nil
	}
	pool := make([]T, len(items))
	copy(pool, items)

	out := make([]T, 0, min(count, len(pool)))
	for len(out) < count && len(pool) > 0 {
		idx := r.NextInt(len(pool))
		out = append(out, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return out
}
