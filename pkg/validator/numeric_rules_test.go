package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ordutils/pkg/validator"
)

func TestParseInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{raw: "0", want: 0, ok: true},
		{raw: "42", want: 42, ok: true},
		{raw: "-17", want: -17, ok: true},
		{raw: "+3", want: 3, ok: true},
		{raw: " 5", want: 5, ok: true},
		{raw: "7\n", want: 7, ok: true},
		{raw: "", ok: false},
		{raw: "   ", ok: false},
		{raw: "1 2", ok: false},
		{raw: "1.5", ok: false},
		{raw: "abc", ok: false},
		{raw: "99999999999999999999", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			n, err := validator.ParseInt(tt.raw)
			if !tt.ok {
				assert.ErrorIs(t, err, validator.ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestParseFloat(t *testing.T) {
	t.Parallel()

	f, err := validator.ParseFloat("2.5e3")
	require.NoError(t, err)
	assert.InDelta(t, 2500.0, f, 1e-9)

	f, err = validator.ParseFloat("-inf")
	require.NoError(t, err)
	assert.Less(t, f, 0.0)

	_, err = validator.ParseFloat("nan")
	assert.ErrorIs(t, err, validator.ErrInvalidFormat)

	_, err = validator.ParseFloat("1,5")
	assert.ErrorIs(t, err, validator.ErrInvalidFormat)

	f, err = validator.ParseFloat("\t0.25 ")
	require.NoError(t, err)
	assert.InDelta(t, 0.25, f, 1e-9)
}

func TestAtLeast(t *testing.T) {
	t.Parallel()

	t.Run("int bound is inclusive", func(t *testing.T) {
		rule := validator.AtLeast(validator.Rule[string, int](validator.ParseInt), 0)

		n, err := rule("0")
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		_, err = rule("-1")
		assert.ErrorIs(t, err, validator.ErrOutOfRange)
	})

	t.Run("float bound", func(t *testing.T) {
		rule := validator.AtLeast(validator.Rule[string, float64](validator.ParseFloat), 0.5)

		_, err := rule("0.49")
		assert.ErrorIs(t, err, validator.ErrOutOfRange)

		f, err := rule("0.5")
		require.NoError(t, err)
		assert.InDelta(t, 0.5, f, 1e-9)
	})

	t.Run("parse failure wins over bound", func(t *testing.T) {
		rule := validator.AtLeast(validator.Rule[string, int](validator.ParseInt), 0)
		_, err := rule("x")
		assert.ErrorIs(t, err, validator.ErrInvalidFormat)
		assert.NotErrorIs(t, err, validator.ErrOutOfRange)
	})
}
