package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// NotBlank rejects strings that are empty or whitespace only.
func NotBlank(in string) (string, error) {
	if strings.TrimSpace(in) == "" {
		return "", violation(ErrFieldRequired, "validation.required", nil)
	}
	return in, nil
}

// MinLen requires at least min runes.
func MinLen(min int) Rule[string, string] {
	return func(in string) (string, error) {
		if utf8.RuneCountInString(in) < min {
			v := violation(ErrOutOfRange, "validation.min_length", map[string]any{"min": min})
			v.Message = fmt.Sprintf("must be at least %d characters long", min)
			return "", v
		}
		return in, nil
	}
}

// MaxLen allows at most max runes.
func MaxLen(max int) Rule[string, string] {
	return func(in string) (string, error) {
		if utf8.RuneCountInString(in) > max {
			v := violation(ErrOutOfRange, "validation.max_length", map[string]any{"max": max})
			v.Message = fmt.Sprintf("must be at most %d characters long", max)
			return "", v
		}
		return in, nil
	}
}

// Matches requires re to match the input. Compile re once and reuse the rule.
func Matches(re *regexp.Regexp) Rule[string, string] {
	return func(in string) (string, error) {
		if !re.MatchString(in) {
			v := violation(ErrInvalidFormat, "validation.regex_pattern", map[string]any{"pattern": re.String()})
			v.Message = fmt.Sprintf("must match %s", re.String())
			return "", v
		}
		return in, nil
	}
}
