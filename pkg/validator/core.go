package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule validates a single input value and converts it to Out.
// Base rules return a bare cause (usually a *Violation); Describe turns it
// into a user-facing ValidationError.
type Rule[In, Out any] func(in In) (Out, error)

// Violation is the cause reported by a base rule. It carries the sentinel
// error together with optional message and translation metadata which
// Describe copies into the resulting ValidationError.
type Violation struct {
	Err               error
	Cause             error
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (v *Violation) Error() string {
	msg := v.Err.Error()
	if v.Message != "" {
		msg += ": " + v.Message
	}
	if v.Cause != nil {
		msg += ": " + v.Cause.Error()
	}
	return msg
}

func (v *Violation) Unwrap() []error {
	if v.Cause == nil {
		return []error{v.Err}
	}
	return []error{v.Err, v.Cause}
}

func violation(err error, key string, values map[string]any) *Violation {
	return &Violation{Err: err, TranslationKey: key, TranslationValues: values}
}

// ValidationError represents a single failed option value.
// Error renders it as "<description>: '<value>'." or, when Message is set,
// "<description>: '<value>' <message>.".
type ValidationError struct {
	Description       string
	Value             string
	Message           string
	Err               error
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: '%s' %s.", e.Description, e.Value, e.Message)
	}
	return fmt.Sprintf("%s: '%s'.", e.Description, e.Value)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes every entry as a *ValidationError, so errors.Is and
// errors.As see through the collection.
func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, len(ve))
	for i := range ve {
		errs[i] = &ve[i]
	}
	return errs
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(description string) bool {
	for _, err := range ve {
		if err.Description == description {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(description string) []string {
	var messages []string
	for _, err := range ve {
		if err.Description == description {
			messages = append(messages, err.Error())
		}
	}
	return messages
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Check is a deferred validation of one option, typically a closure around
// one of the cliopt validators.
type Check func() error

// Apply runs every check and reports all failures at once.
// ValidationError failures are collected into ValidationErrors; any other
// error is joined alongside them.
func Apply(checks ...Check) error {
	var (
		verrs  ValidationErrors
		others []error
	)

	for _, check := range checks {
		err := check()
		if err == nil {
			continue
		}
		var nested ValidationErrors
		if errors.As(err, &nested) {
			verrs = append(verrs, nested...)
			continue
		}
		var ve *ValidationError
		if errors.As(err, &ve) {
			verrs.Add(*ve)
			continue
		}
		others = append(others, err)
	}

	if verrs.IsEmpty() && len(others) == 0 {
		return nil
	}
	if len(others) == 0 {
		return verrs
	}
	if !verrs.IsEmpty() {
		others = append(others, verrs)
	}
	return errors.Join(others...)
}

// ExtractValidationErrors extracts ValidationErrors from an error.
// A single *ValidationError is returned as a one-element collection.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return ValidationErrors{*ve}
	}

	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}

// Describe is the message layer of a rule: any failure of rule is reported as
// a *ValidationError carrying description and the rendered original input.
// For list rules the offending item is rendered instead of the whole input.
func Describe[In, Out any](description string, rule Rule[In, Out]) Rule[In, Out] {
	return func(in In) (Out, error) {
		out, err := rule(in)
		if err == nil {
			return out, nil
		}

		ve := &ValidationError{
			Description: description,
			Value:       render(in),
			Err:         err,
		}

		item := itemOf(err)
		if item != nil {
			ve.Value = item.Item
		}

		var v *Violation
		if errors.As(err, &v) {
			ve.Message = v.Message
			ve.TranslationKey = v.TranslationKey
			ve.TranslationValues = v.TranslationValues
		}
		if ve.TranslationKey == "" {
			ve.TranslationKey = "validation.invalid"
		}

		values := make(map[string]any, len(ve.TranslationValues)+3)
		for k, val := range ve.TranslationValues {
			values[k] = val
		}
		values["description"] = description
		values["value"] = ve.Value
		if item != nil {
			values["index"] = item.Index
		}
		ve.TranslationValues = values

		var zero Out
		return zero, ve
	}
}

// Nullable lets an absent (nil) input bypass rule and yield nil.
func Nullable[In, Out any](rule Rule[In, Out]) Rule[*In, *Out] {
	return func(in *In) (*Out, error) {
		if in == nil {
			return nil, nil
		}
		out, err := rule(*in)
		if err != nil {
			return nil, err
		}
		return &out, nil
	}
}

// Required rejects an absent (nil) input and validates present ones with rule.
func Required[In, Out any](rule Rule[In, Out]) Rule[*In, Out] {
	return func(in *In) (Out, error) {
		if in == nil {
			var zero Out
			return zero, violation(ErrFieldRequired, "validation.required", nil)
		}
		return rule(*in)
	}
}

// Then runs next on the result of first.
func Then[In, Mid, Out any](first Rule[In, Mid], next Rule[Mid, Out]) Rule[In, Out] {
	return func(in In) (Out, error) {
		mid, err := first(in)
		if err != nil {
			var zero Out
			return zero, err
		}
		return next(mid)
	}
}

// Keep adapts a pass/fail predicate into a rule that returns its input unchanged.
func Keep[T any](fn func(T) error) Rule[T, T] {
	return func(in T) (T, error) {
		if err := fn(in); err != nil {
			var zero T
			return zero, err
		}
		return in, nil
	}
}

// OrOriginal keeps the original string whenever rule succeeds without
// producing a value.
func OrOriginal(rule Rule[string, *string]) Rule[string, string] {
	return func(in string) (string, error) {
		out, err := rule(in)
		if err != nil {
			return "", err
		}
		if out == nil {
			return in, nil
		}
		return *out, nil
	}
}

func itemOf(err error) *ItemError {
	var item *ItemError
	if errors.As(err, &item) {
		return item
	}
	return nil
}

func render(v any) string {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return "<nil>"
	}
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "<nil>"
		}
		return render(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}
