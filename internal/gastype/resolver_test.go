package gastype

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_ListsAndRanges(t *testing.T) {
	tests := []struct {
		name     string
		gas      string
		input    string
		expected []string
	}{
		{
			name:     "single number",
			gas:      "Oxygen",
			input:    "1",
			expected: []string{"OXY0001"},
		},
		{
			name:     "list with range",
			gas:      "Oxygen",
			input:    "1,3-5",
			expected: []string{"OXY0001", "OXY0003", "OXY0004", "OXY0005"},
		},
		{
			name:     "degenerate range",
			gas:      "Oxygen",
			input:    "5-5",
			expected: []string{"OXY0005"},
		},
		{
			name:     "duplicates collapse preserving first-seen order",
			gas:      "Argon",
			input:    "3,1-4,2",
			expected: []string{"ARG0003", "ARG0001", "ARG0002", "ARG0004"},
		},
		{
			name:     "whitespace and empty tokens ignored",
			gas:      "Helium",
			input:    " 7 , , 9 ",
			expected: []string{"HE0007", "HE0009"},
		},
		{
			name:     "multi word type uses prefix table",
			gas:      "Carbon Dioxide",
			input:    "12",
			expected: []string{"CO20012"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Resolve(tc.gas, tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	t.Run("unknown gas type", func(t *testing.T) {
		_, err := Resolve("Nitrogen", "1")
		assert.ErrorIs(t, err, ErrInvalidGasType)
	})

	t.Run("reversed range", func(t *testing.T) {
		_, err := Resolve("Oxygen", "5-3")
		var tokenErr *InvalidTokenError
		require.True(t, errors.As(err, &tokenErr))
		assert.Equal(t, "5-3", tokenErr.Token)
	})

	t.Run("non numeric token", func(t *testing.T) {
		_, err := Resolve("Oxygen", "1,abc")
		var tokenErr *InvalidTokenError
		require.True(t, errors.As(err, &tokenErr))
		assert.Equal(t, "abc", tokenErr.Token)
	})

	t.Run("zero sequence rejected", func(t *testing.T) {
		_, err := Resolve("Oxygen", "0")
		var tokenErr *InvalidTokenError
		assert.True(t, errors.As(err, &tokenErr))
	})

	t.Run("sequence above namespace rejected", func(t *testing.T) {
		got, err := Resolve("Oxygen", "9999")
		require.NoError(t, err)
		assert.Equal(t, []string{"OXY9999"}, got)

		_, err = Resolve("Oxygen", "10000")
		var tokenErr *InvalidTokenError
		require.True(t, errors.As(err, &tokenErr))
		assert.Equal(t, "10000", tokenErr.Token)
	})

	t.Run("oversized range rejected before expansion", func(t *testing.T) {
		_, err := Resolve("Oxygen", "1-2000000000")
		var tokenErr *InvalidTokenError
		require.True(t, errors.As(err, &tokenErr))
		assert.Equal(t, "1-2000000000", tokenErr.Token)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := Resolve("Oxygen", " , ,")
		assert.ErrorIs(t, err, ErrNoCylindersParsed)
	})
}

func TestOrder_CanonicalTable(t *testing.T) {
	require.Len(t, Order, 16)
	assert.Equal(t, "Oxygen", Order[0].Name)
	assert.Equal(t, "Other Gas 5", Order[15].Name)

	prefixes := make(map[string]struct{}, len(Order))
	for _, typ := range Order {
		_, dup := prefixes[typ.Prefix]
		assert.Falsef(t, dup, "duplicate prefix %s", typ.Prefix)
		prefixes[typ.Prefix] = struct{}{}
	}

	moxy, ok := Lookup("M Oxygen")
	require.True(t, ok)
	assert.Equal(t, "MOXY0001", moxy.Identifier(1))
}
