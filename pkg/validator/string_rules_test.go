package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ordutils/pkg/validator"
)

func TestNotBlank(t *testing.T) {
	t.Parallel()

	out, err := validator.NotBlank("name")
	require.NoError(t, err)
	assert.Equal(t, "name", out)

	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := validator.NotBlank(in)
		assert.ErrorIs(t, err, validator.ErrFieldRequired, "%q", in)
	}
}

func TestLengthRules(t *testing.T) {
	t.Parallel()

	t.Run("min counts runes", func(t *testing.T) {
		_, err := validator.MinLen(3)("héé")
		assert.NoError(t, err)

		_, err = validator.MinLen(3)("hé")
		assert.ErrorIs(t, err, validator.ErrOutOfRange)
	})

	t.Run("max counts runes", func(t *testing.T) {
		_, err := validator.MaxLen(2)("éé")
		assert.NoError(t, err)

		_, err = validator.MaxLen(2)("abc")
		assert.ErrorIs(t, err, validator.ErrOutOfRange)
	})

	t.Run("message names the bound", func(t *testing.T) {
		_, err := validator.Describe("Invalid tag", validator.MaxLen(2))("abc")
		assert.EqualError(t, err, "Invalid tag: 'abc' must be at most 2 characters long.")
	})
}

func TestMatches(t *testing.T) {
	t.Parallel()

	rule := validator.Matches(regexp.MustCompile(`^[a-z]+$`))

	out, err := rule("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", out)

	_, err = rule("ABC")
	assert.ErrorIs(t, err, validator.ErrInvalidFormat)

	var ve *validator.ValidationError
	_, err = validator.Describe("Invalid name", rule)("a1")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "validation.regex_pattern", ve.TranslationKey)
	assert.Equal(t, "^[a-z]+$", ve.TranslationValues["pattern"])
	assert.Equal(t, "a1", ve.TranslationValues["value"])
}
