package validator

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ConversionError is returned by ParseBool. Unlike ValidationError it
// carries no description, only the offending value.
type ConversionError struct {
	Value  string
	Target string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert '%s' to %s", e.Value, e.Target)
}

func (e *ConversionError) Unwrap() error {
	return ErrConversion
}

// ParseBool maps the case-insensitive spellings true/t/yes/y and
// false/f/no/n to a boolean.
func ParseBool(raw string) (bool, error) {
	// cases.Caser is stateful, so a fresh one is built per call. Lower, not
	// Fold: folding maps look-alikes such as U+017F onto ASCII letters.
	switch cases.Lower(language.Und).String(raw) {
	case "true", "t", "yes", "y":
		return true, nil
	case "false", "f", "no", "n":
		return false, nil
	}
	return false, &ConversionError{Value: raw, Target: "bool"}
}
