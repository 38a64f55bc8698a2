package domain

import (
	"encoding/json"
	"slices"
	"sort"
)

// Answers is an immutable snapshot of the answer store.
// The zero value is not a valid snapshot; use NewAnswers.
type Answers struct {
	values map[string]any
}

// NewAnswers builds a snapshot from a copy of values.
func NewAnswers(values map[string]any) Answers {
	cp := make(map[string]any, len(values))
	for k, v := range values {
		cp[k] = copyValue(v)
	}
	return Answers{values: cp}
}

// Valid reports whether the snapshot was built with NewAnswers.
func (a Answers) Valid() bool {
	return a.values != nil
}

// Raw returns the stored value for key.
func (a Answers) Raw(key string) (any, bool) {
	v, ok := a.values[key]
	return copyValue(v), ok
}

// Has reports whether key holds a value.
func (a Answers) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

// String returns the string value for key, or "" when absent or not a string.
func (a Answers) String(key string) string {
	s, _ := a.values[key].(string)
	return s
}

// Strings returns a copy of the list value for key.
func (a Answers) Strings(key string) []string {
	switch v := a.values[key].(type) {
	case []string:
		return slices.Clone(v)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Number returns the numeric value for key.
func (a Answers) Number(key string) (float64, bool) {
	switch v := a.values[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// Equals reports whether the single value for key is want.
func (a Answers) Equals(key, want string) bool {
	return a.String(key) == want
}

// Includes reports whether the list value for key contains want.
func (a Answers) Includes(key, want string) bool {
	return slices.Contains(a.Strings(key), want)
}

// IncludesAny reports whether the list value for key contains any of wants.
func (a Answers) IncludesAny(key string, wants ...string) bool {
	list := a.Strings(key)
	for _, w := range wants {
		if slices.Contains(list, w) {
			return true
		}
	}
	return false
}

// Keys returns the stored keys in lexical order.
func (a Answers) Keys() []string {
	keys := make([]string, 0, len(a.values))
	for k := range a.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a deep copy of the stored values.
func (a Answers) Map() map[string]any {
	out := make(map[string]any, len(a.values))
	for k, v := range a.values {
		out[k] = copyValue(v)
	}
	return out
}

// MarshalJSON encodes the snapshot as a plain object.
func (a Answers) MarshalJSON() ([]byte, error) {
	if a.values == nil {
		return []byte("null"), nil
	}
	return json.Marshal(a.values)
}

// UnmarshalJSON decodes a plain object into a snapshot.
func (a *Answers) UnmarshalJSON(data []byte) error {
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	if values == nil {
		a.values = nil
		return nil
	}
	*a = NewAnswers(values)
	return nil
}

func copyValue(v any) any {
	switch t := v.(type) {
	case []string:
		return slices.Clone(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = copyValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = copyValue(item)
		}
		return out
	default:
		return v
	}
}
