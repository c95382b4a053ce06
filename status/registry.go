package status

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

// Registry holds the battle telemetry published by the runner
// Writers cache cell pointers once; readers snapshot with Fields or Lines
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[Float]
	Texts  *MetricMap[Text]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[Float](),
		Texts:  NewMetricMap[Text](),
	}
}

// TotalCount is the number of registered metrics of every type
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Texts.Count()
}

// Fields snapshots every metric into a map suitable for structured log fields
func (r *Registry) Fields() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Bools.Range(func(k string, c *atomic.Bool) { out[k] = c.Load() })
	r.Ints.Range(func(k string, c *atomic.Int64) { out[k] = c.Load() })
	r.Floats.Range(func(k string, c *Float) { out[k] = c.Load() })
	r.Texts.Range(func(k string, c *Text) { out[k] = c.Load() })
	return out
}

// Lines renders "key: value" rows sorted by key for overlays
func (r *Registry) Lines() []string {
	fields := r.Fields()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+": "+format(fields[k]))
	}
	return lines
}

func format(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', 2, 64)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case string:
		return x
	}
	return fmt.Sprint(v)
}
