package dotenv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertString(t *testing.T) {
	value, err := Convert("  anything at all  ", TypeString)
	require.NoError(t, err)
	assert.Equal(t, "  anything at all  ", value) // identity, no trimming
}

func TestConvertNumber(t *testing.T) {
	t.Run("decimal values", func(t *testing.T) {
		cases := map[string]float64{
			"42":      42,
			"-3.5":    -3.5,
			"  10  ":  10,
			"0":       0,
			"1e3":     1000,
			"0.0625":  0.0625,
			"-0.5":    -0.5,
			"+7":      7,
			"1000000": 1000000,
		}
		for input, expected := range cases {
			value, err := Convert(input, TypeNumber)
			require.NoError(t, err, "input %q", input)
			assert.Equal(t, expected, value, "input %q", input)
		}
	})

	t.Run("special literals", func(t *testing.T) {
		value, err := Convert("Infinity", TypeNumber)
		require.NoError(t, err)
		assert.True(t, math.IsInf(value.(float64), 1))

		value, err = Convert("-INFINITY", TypeNumber)
		require.NoError(t, err)
		assert.True(t, math.IsInf(value.(float64), -1))

		value, err = Convert("NaN", TypeNumber)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(value.(float64)))
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, input := range []string{"", "   ", "abc", "1.2.3", "10 apples"} {
			_, err := Convert(input, TypeNumber)
			var conversion *TypeConversionError
			require.ErrorAs(t, err, &conversion, "input %q", input)
			assert.Equal(t, TypeNumber, conversion.Type)
		}
	})
}

func TestConvertBoolean(t *testing.T) {
	t.Run("truthy values", func(t *testing.T) {
		for _, input := range []string{"true", "TRUE", "1", "yes", "On", " enabled "} {
			value, err := Convert(input, TypeBoolean)
			require.NoError(t, err, "input %q", input)
			assert.Equal(t, true, value, "input %q", input)
		}
	})

	t.Run("falsy values", func(t *testing.T) {
		for _, input := range []string{"false", "0", "No", "OFF", "disabled"} {
			value, err := Convert(input, TypeBoolean)
			require.NoError(t, err, "input %q", input)
			assert.Equal(t, false, value, "input %q", input)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, input := range []string{"", "maybe", "2", "truee"} {
			_, err := Convert(input, TypeBoolean)
			var conversion *TypeConversionError
			require.ErrorAs(t, err, &conversion, "input %q", input)
		}
	})
}

func TestConvertArray(t *testing.T) {
	t.Run("elements are trimmed and empties dropped", func(t *testing.T) {
		value, err := Convert("a, b ,,c", TypeArray)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, value)
	})

	t.Run("empty input yields an empty sequence", func(t *testing.T) {
		value, err := Convert("", TypeArray)
		require.NoError(t, err)
		assert.Equal(t, []string{}, value)
	})

	t.Run("only separators yields an empty sequence", func(t *testing.T) {
		value, err := Convert(" , , ", TypeArray)
		require.NoError(t, err)
		assert.Equal(t, []string{}, value)
	})

	t.Run("single element", func(t *testing.T) {
		value, err := Convert("solo", TypeArray)
		require.NoError(t, err)
		assert.Equal(t, []string{"solo"}, value)
	})
}

func TestConvertJSON(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		value, err := Convert(`{"name":"app","port":8080}`, TypeJSON)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "app", "port": float64(8080)}, value)
	})

	t.Run("array and scalar values", func(t *testing.T) {
		value, err := Convert(`[1,2,3]`, TypeJSON)
		require.NoError(t, err)
		assert.Equal(t, []any{float64(1), float64(2), float64(3)}, value)

		value, err = Convert(`"quoted"`, TypeJSON)
		require.NoError(t, err)
		assert.Equal(t, "quoted", value)
	})

	t.Run("syntax failure", func(t *testing.T) {
		_, err := Convert(`{broken`, TypeJSON)
		var conversion *TypeConversionError
		require.ErrorAs(t, err, &conversion)
		assert.Equal(t, TypeJSON, conversion.Type)
	})
}

func TestConvertTypeNames(t *testing.T) {
	t.Run("type names are case-insensitive", func(t *testing.T) {
		value, err := Convert("42", "NUMBER")
		require.NoError(t, err)
		assert.Equal(t, float64(42), value)

		value, err = Convert("yes", "Boolean")
		require.NoError(t, err)
		assert.Equal(t, true, value)
	})

	t.Run("unknown type names the valid set", func(t *testing.T) {
		_, err := Convert("x", "integer")
		var unsupported *UnsupportedTypeError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, "integer", unsupported.Type)
		assert.Contains(t, err.Error(), "string, number, boolean, array, json")
	})
}
