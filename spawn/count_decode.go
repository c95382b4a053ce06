package spawn

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// UnmarshalTOML accepts either a bare integer or a {min, max} table
func (c *Count) UnmarshalTOML(v any) error {
	switch t := v.(type) {
	case int64:
		*c = FixedCount(int(t))
		return nil
	case float64:
		*c = FixedCount(int(t))
		return nil
	case map[string]any:
		var out Count
		for key, raw := range t {
			n, ok := raw.(int64)
			if !ok {
				return errors.Errorf("spawn count %q: expected integer, got %T", key, raw)
			}
			switch key {
			case "fixed":
				out.Fixed = int(n)
			case "min":
				out.Min = int(n)
			case "max":
				out.Max = int(n)
			default:
				return errors.Errorf("spawn count: unknown key %q", key)
			}
		}
		*c = out
		return nil
	}
	return errors.Errorf("spawn count: unsupported value %T", v)
}

// UnmarshalYAML accepts either a scalar integer or a mapping
func (c *Count) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var n int
		if err := node.Decode(&n); err != nil {
			return errors.Wrap(err, "spawn count")
		}
		*c = FixedCount(n)
		return nil
	}
	type plain Count
	var p plain
	if err := node.Decode(&p); err != nil {
		return errors.Wrap(err, "spawn count")
	}
	*c = Count(p)
	return nil
}
