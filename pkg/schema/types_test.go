package schema

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringType(t *testing.T) {
	typ := String()
	assert.Equal(t, "string", typ.Name())

	tests := []struct {
		value   any
		wantErr bool
	}{
		{"hello", false},
		{"", false},
		{42, true},
		{3.14, true},
		{nil, true},
	}

	for _, tt := range tests {
		err := typ.Validate(tt.value)
		assert.Equal(t, tt.wantErr, err != nil, "Validate(%v) error = %v", tt.value, err)
	}
}

func TestOneOfType(t *testing.T) {
	typ := OneOf("high-focus", "medium-focus", "low-focus")
	assert.Equal(t, "oneof(high-focus|medium-focus|low-focus)", typ.Name())

	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{"known option", "low-focus", false},
		{"unanswered", "", false},
		{"unknown option", "no-focus", true},
		{"wrong type", 1, true},
		{"list", []string{"low-focus"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := typ.Validate(tt.value)
			assert.Equal(t, tt.wantErr, err != nil, "error = %v", err)
		})
	}
}

func TestSetType(t *testing.T) {
	typ := Set("tech", "ecommerce", "content")

	t.Run("coerces decoded JSON lists", func(t *testing.T) {
		got, err := Apply(typ, []any{"tech", "content"})
		require.NoError(t, err)
		assert.Equal(t, []string{"tech", "content"}, got)
	})

	t.Run("nil becomes empty selection", func(t *testing.T) {
		got, err := Apply(typ, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{}, got)
	})

	t.Run("rejects unknown option", func(t *testing.T) {
		_, err := Apply(typ, []string{"tech", "mining"})
		assert.ErrorContains(t, err, "element 1")
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		_, err := Apply(typ, []string{"tech", "tech"})
		assert.ErrorContains(t, err, "duplicate")
	})

	t.Run("rejects mixed lists", func(t *testing.T) {
		_, err := Apply(typ, []any{"tech", 3})
		assert.Error(t, err)
	})

	t.Run("copies the caller slice", func(t *testing.T) {
		in := []string{"tech"}
		got, err := Apply(typ, in)
		require.NoError(t, err)
		in[0] = "content"
		assert.Equal(t, []string{"tech"}, got)
	})
}

func TestRangeType(t *testing.T) {
	typ := Range(1000, 50000)
	assert.Equal(t, "range[1000,50000]", typ.Name())

	tests := []struct {
		name    string
		value   any
		want    float64
		wantErr bool
	}{
		{"int is normalized", 5000, 5000, false},
		{"json number", json.Number("12500"), 12500, false},
		{"lower bound", 1000.0, 1000, false},
		{"upper bound", int64(50000), 50000, false},
		{"below", 999, 0, true},
		{"above", 50001.0, 0, true},
		{"string", "5000", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(typ, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFloatType_RejectsNaN(t *testing.T) {
	_, err := Apply(Float(), math.NaN())
	assert.Error(t, err)
	_, err = Apply(Float(), math.Inf(1))
	assert.Error(t, err)
}

func TestTimeOfDayType(t *testing.T) {
	typ := TimeOfDay()

	for _, ok := range []string{"07:00", "23:59", "00:00"} {
		assert.NoError(t, typ.Validate(ok), ok)
	}
	for _, bad := range []string{"7:00", "24:00", "12:60", "noon", ""} {
		assert.Error(t, typ.Validate(bad), bad)
	}
	assert.Error(t, typ.Validate(700))
}

func TestSliceAndCustomTypes(t *testing.T) {
	slice := Slice(String())
	assert.Equal(t, "[string]", slice.Name())
	assert.NoError(t, slice.Validate([]string{"a", "b"}))
	assert.Error(t, slice.Validate([]any{"a", 1}))
	assert.Error(t, slice.Validate("a"))

	nonEmpty := Custom("non_empty", func(v any) error {
		if s, _ := v.(string); s == "" {
			return assert.AnError
		}
		return nil
	})
	assert.Equal(t, "non_empty", nonEmpty.Name())
	assert.NoError(t, nonEmpty.Validate("x"))
	assert.Error(t, nonEmpty.Validate(""))
}
