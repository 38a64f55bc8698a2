package schema

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_Check(t *testing.T) {
	s := Schema{
		"energy":        OneOf("high-energy", "low-energy"),
		"monthlyIncome": Range(1000, 50000),
	}

	t.Run("canonical value", func(t *testing.T) {
		v, declared, err := s.Check("monthlyIncome", 3000)
		require.NoError(t, err)
		assert.True(t, declared)
		assert.Equal(t, 3000.0, v)
	})

	t.Run("undeclared key", func(t *testing.T) {
		_, declared, err := s.Check("favouriteColour", "blue")
		require.NoError(t, err)
		assert.False(t, declared)
	})

	t.Run("typed failure", func(t *testing.T) {
		_, declared, err := s.Check("energy", "sleepy")
		assert.True(t, declared)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "energy", verr.Key)
		assert.Equal(t, "sleepy", verr.Value)
	})
}

func TestValidate_AggregatesFailures(t *testing.T) {
	s := Schema{
		"energy":        OneOf("high-energy"),
		"monthlyIncome": Range(1000, 50000),
		"wakeupTime":    TimeOfDay(),
	}

	err := Validate(s, map[string]any{
		"energy":        "sleepy",
		"monthlyIncome": 5000,
	})
	require.Error(t, err)

	errs := ValidationErrors(err)
	require.Len(t, errs, 2)

	keys := []string{errs[0].(*ValidationError).Key, errs[1].(*ValidationError).Key}
	assert.Equal(t, []string{"energy", "wakeupTime"}, keys)
	assert.Contains(t, errs[1].Error(), "required")
}

func TestValidate_EmptySchema(t *testing.T) {
	assert.NoError(t, Validate(nil, map[string]any{"anything": 1}))
}

func TestSchema_MarshalJSON(t *testing.T) {
	s := Schema{
		"wakeupTime": TimeOfDay(),
		"goals":      Set("travel", "family"),
	}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"wakeupTime":"time","goals":"set(travel|family)"}`, string(data))
}
