package schema

import "sort"

// Schema is a map of answer keys to their expected types.
// Example: {"concentration": OneOf("high-focus", "low-focus"), "monthlyIncome": Range(1000, 50000)}
type Schema map[string]Type

// Keys returns the declared keys in lexical order.
func (s Schema) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Check coerces and validates a single value against the type declared for key.
// It returns the canonical value, a *ValidationError, or nil type info when the
// key is not declared (ok == false).
func (s Schema) Check(key string, value any) (canonical any, ok bool, err error) {
	t, exists := s[key]
	if !exists {
		return nil, false, nil
	}
	canonical, err = Apply(t, value)
	if err != nil {
		return nil, true, &ValidationError{Key: key, Reason: err.Error(), Value: value}
	}
	return canonical, true, nil
}

// Validate checks if data conforms to the schema.
// Missing keys are reported as "required". All failures are aggregated.
func Validate(schema Schema, data map[string]any) error {
	if len(schema) == 0 {
		return nil
	}

	var errs []error
	for _, key := range schema.Keys() {
		value, exists := data[key]
		if !exists {
			errs = append(errs, &ValidationError{Key: key, Reason: "required"})
			continue
		}
		if _, err := Apply(schema[key], value); err != nil {
			errs = append(errs, &ValidationError{Key: key, Reason: err.Error(), Value: value})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
