package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"
	"time"
)

// Type defines the contract for answer validation.
// Implementations determine how values are validated against a type.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "range[0,10]").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// Coercer is implemented by types that can normalize loosely typed input
// (e.g. decoded JSON) into their canonical Go representation before validation.
type Coercer interface {
	Coerce(value any) (any, error)
}

// Apply coerces value when t supports it and validates the result.
// It returns the canonical value that should be stored.
func Apply(t Type, value any) (any, error) {
	if c, ok := t.(Coercer); ok {
		coerced, err := c.Coerce(value)
		if err != nil {
			return nil, err
		}
		value = coerced
	}
	if err := t.Validate(value); err != nil {
		return nil, err
	}
	return value, nil
}

// --- Built-in Type Implementations ---

// StringType validates string values.
type StringType struct{}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Validate(value any) error {
	_, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	return nil
}

// OneOfType validates a single selection among a closed set of option ids.
// The empty string is accepted and means "not answered yet".
type OneOfType struct {
	options []string
}

func (t *OneOfType) Name() string {
	return fmt.Sprintf("oneof(%s)", strings.Join(t.options, "|"))
}

func (t *OneOfType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	if s == "" || slices.Contains(t.options, s) {
		return nil
	}
	return fmt.Errorf("%q is not one of [%s]", s, strings.Join(t.options, ", "))
}

// SetType validates a multi-selection: a list of distinct option ids.
type SetType struct {
	options []string
}

func (t *SetType) Name() string {
	return fmt.Sprintf("set(%s)", strings.Join(t.options, "|"))
}

func (t *SetType) Coerce(value any) (any, error) {
	return toStrings(value)
}

func (t *SetType) Validate(value any) error {
	items, ok := value.([]string)
	if !ok {
		return fmt.Errorf("expected []string, got %T", value)
	}
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		if !slices.Contains(t.options, item) {
			return fmt.Errorf("element %d: %q is not one of [%s]", i, item, strings.Join(t.options, ", "))
		}
		if seen[item] {
			return fmt.Errorf("element %d: duplicate selection %q", i, item)
		}
		seen[item] = true
	}
	return nil
}

// FloatType validates numeric values. Every number is stored as float64.
type FloatType struct{}

func (t *FloatType) Name() string { return "float" }

func (t *FloatType) Coerce(value any) (any, error) {
	return toFloat(value)
}

func (t *FloatType) Validate(value any) error {
	f, ok := value.(float64)
	if !ok {
		return fmt.Errorf("expected float, got %T", value)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("expected a finite number")
	}
	return nil
}

// RangeType validates a number within inclusive bounds.
type RangeType struct {
	Min float64
	Max float64
}

func (t *RangeType) Name() string {
	return fmt.Sprintf("range[%g,%g]", t.Min, t.Max)
}

func (t *RangeType) Coerce(value any) (any, error) {
	return toFloat(value)
}

func (t *RangeType) Validate(value any) error {
	if err := (&FloatType{}).Validate(value); err != nil {
		return err
	}
	f := value.(float64)
	if f < t.Min || f > t.Max {
		return fmt.Errorf("%g is outside [%g, %g]", f, t.Min, t.Max)
	}
	return nil
}

// TimeOfDayType validates "HH:MM" strings on a 24h clock.
type TimeOfDayType struct{}

func (t *TimeOfDayType) Name() string { return "time" }

func (t *TimeOfDayType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	if len(s) != 5 {
		return fmt.Errorf("%q is not a HH:MM time", s)
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("%q is not a HH:MM time", s)
	}
	return nil
}

// BoolType validates boolean values.
type BoolType struct{}

func (t *BoolType) Name() string { return "bool" }

func (t *BoolType) Validate(value any) error {
	_, ok := value.(bool)
	if !ok {
		return fmt.Errorf("expected bool, got %T", value)
	}
	return nil
}

// SliceType validates slices of a specific element type.
type SliceType struct {
	elemType Type
}

func (t *SliceType) Name() string {
	return fmt.Sprintf("[%s]", t.elemType.Name())
}

func (t *SliceType) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Errorf("expected slice, got %T", value)
	}

	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		if err := t.elemType.Validate(elem); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// CustomType applies a user-defined validation function.
type CustomType struct {
	name     string
	validate func(any) error
}

func (t *CustomType) Name() string { return t.name }

func (t *CustomType) Validate(value any) error {
	return t.validate(value)
}

// --- Factory Functions ---

// String creates a free-text type validator.
func String() Type { return &StringType{} }

// OneOf creates a single-selection validator over the given option ids.
func OneOf(options ...string) Type {
	return &OneOfType{options: slices.Clone(options)}
}

// Set creates a multi-selection validator over the given option ids.
func Set(options ...string) Type {
	return &SetType{options: slices.Clone(options)}
}

// Float creates a numeric validator.
func Float() Type { return &FloatType{} }

// Range creates a bounded numeric validator.
func Range(min, max float64) Type { return &RangeType{Min: min, Max: max} }

// TimeOfDay creates a HH:MM validator.
func TimeOfDay() Type { return &TimeOfDayType{} }

// Bool creates a boolean type validator.
func Bool() Type { return &BoolType{} }

// Slice creates a slice type validator for elements of the given type.
func Slice(elemType Type) Type {
	return &SliceType{elemType: elemType}
}

// Custom creates a custom type validator with a user-defined function.
func Custom(name string, validate func(any) error) Type {
	return &CustomType{name: name, validate: validate}
}

func toFloat(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("expected number, got %q", v.String())
		}
		return f, nil
	default:
		return nil, fmt.Errorf("expected number, got %T", value)
	}
}

func toStrings(value any) (any, error) {
	switch v := value.(type) {
	case []string:
		return slices.Clone(v), nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d: expected string, got %T", i, item)
			}
			out = append(out, s)
		}
		return out, nil
	case nil:
		return []string{}, nil
	default:
		return nil, fmt.Errorf("expected list of strings, got %T", value)
	}
}
