package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLSource loads records from a YAML file.
type YAMLSource struct{}

// Load expects spec to be a string filepath.
func (YAMLSource) Load(ctx context.Context, spec any) ([]string, error) { //nolint:revive // ctx reserved for future use
	path, err := pathSpec("yaml", spec)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	records, err := parseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parse yaml %s: %w", path, err)
	}
	return records, nil
}

// parseYAML supports two shapes:
// 1) Top-level sequence of scalars: "- a"
// 2) Map with a records sequence: "records: [...]"
func parseYAML(data []byte) ([]string, error) {
	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	var seq []any
	switch n := root.(type) {
	case nil:
		return []string{}, nil
	case []any:
		seq = n
	case map[string]any:
		v, ok := n["records"]
		if !ok {
			return nil, fmt.Errorf("invalid yaml: missing 'records'")
		}
		if v == nil {
			return []string{}, nil
		}
		s, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("invalid yaml: 'records' must be a sequence")
		}
		seq = s
	default:
		return nil, fmt.Errorf("invalid yaml: expected sequence or map with 'records'")
	}

	out := make([]string, 0, len(seq))
	for i, e := range seq {
		switch v := e.(type) {
		case nil:
			out = append(out, "")
		case map[string]any, map[any]any, []any:
			return nil, fmt.Errorf("invalid yaml: record %d is not a scalar", i)
		default:
			out = append(out, fmt.Sprint(v))
		}
	}
	return out, nil
}
