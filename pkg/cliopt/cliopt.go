package cliopt

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/ordutils/pkg/validator"
)

// ValidateFile checks that a file exists at path, or with MustNotExist that
// nothing does. A nil path fails unless AllowAbsent is given.
func ValidateFile(path *string, description string, opts ...Option) error {
	o := newOptions(opts)
	rule := validator.FileExists(o.ctx, o.prober)
	if !o.shouldExist {
		rule = validator.NotExists(o.ctx, o.prober)
	}
	_, err := validator.Describe(description, optional(rule, o.nullable))(path)
	return err
}

// ValidateDir checks that a directory exists at path, or with MustNotExist
// that nothing does. A nil path fails unless AllowAbsent is given.
func ValidateDir(path *string, description string, opts ...Option) error {
	o := newOptions(opts)
	rule := validator.DirExists(o.ctx, o.prober)
	if !o.shouldExist {
		rule = validator.NotExists(o.ctx, o.prober)
	}
	_, err := validator.Describe(description, optional(rule, o.nullable))(path)
	return err
}

// ValidateKey looks key up in table and returns the mapped value.
func ValidateKey[K comparable, V any](key K, table map[K]V, description string) (V, error) {
	return validator.Describe(description, validator.Lookup(table))(key)
}

// ValidateMember checks that value is one of allowed.
func ValidateMember[T comparable](value T, allowed []T, description string) error {
	_, err := validator.Describe(description, validator.OneOf(allowed))(value)
	return err
}

// ValidateInt parses raw as an integer, honouring MinInt and AllowAbsent.
// With AllowAbsent a nil raw yields a nil result and no error.
func ValidateInt(raw *string, description string, opts ...Option) (*int, error) {
	o := newOptions(opts)
	rule := validator.Rule[string, int](validator.ParseInt)
	if o.minInt != nil {
		rule = validator.AtLeast(rule, *o.minInt)
	}
	return validator.Describe(description, optional(rule, o.nullable))(raw)
}

// ValidateFloat parses raw as a float64, honouring MinFloat.
func ValidateFloat(raw string, description string, opts ...Option) (float64, error) {
	o := newOptions(opts)
	rule := validator.Rule[string, float64](validator.ParseFloat)
	if o.minFloat != nil {
		rule = validator.AtLeast(rule, *o.minFloat)
	}
	return validator.Describe(description, rule)(raw)
}

// ValidateList splits raw on the separator and converts every item with
// item, in order. The first failing item aborts the call and is named in the
// error; no partial result is returned.
func ValidateList[T any](raw string, item func(string) (T, error), description string, opts ...Option) ([]T, error) {
	o := newOptions(opts)
	return validator.Describe(description, validator.Each(validator.Rule[string, T](item), o.separator))(raw)
}

// ValidateStrings is ValidateList for transforms that may decline to produce
// a value: a nil result keeps the original item.
func ValidateStrings(raw string, item func(string) (*string, error), description string, opts ...Option) ([]string, error) {
	return ValidateList[string](raw, validator.OrOriginal(item), description, opts...)
}

// ValidateUUID parses raw as a canonical UUID.
func ValidateUUID(raw string, description string) (uuid.UUID, error) {
	return validator.Describe(description, validator.Rule[string, uuid.UUID](validator.ParseUUID))(raw)
}

// ParseBool maps true/t/yes/y and false/f/no/n, in any case, to a boolean.
// Any other input fails with a *validator.ConversionError.
func ParseBool(raw string) (bool, error) {
	return validator.ParseBool(raw)
}

func optional[Out any](rule validator.Rule[string, Out], nullable bool) validator.Rule[*string, *Out] {
	if nullable {
		return validator.Nullable(rule)
	}
	return validator.Then[*string, Out, *Out](validator.Required(rule), func(v Out) (*Out, error) {
		return &v, nil
	})
}
