package validator

import (
	"fmt"
	"strings"
)

// DefaultSeparator splits list options when no separator is given.
const DefaultSeparator = ","

// ItemError reports the first list item that failed its rule.
type ItemError struct {
	Index int
	Item  string
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d %q: %v", e.Index, e.Item, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// Each splits the input on separator and applies rule to every item in
// order. Items are not trimmed. The first failing item aborts the whole list.
func Each[T any](rule Rule[string, T], separator string) Rule[string, []T] {
	if separator == "" {
		separator = DefaultSeparator
	}
	return func(raw string) ([]T, error) {
		items := strings.Split(raw, separator)
		out := make([]T, 0, len(items))
		for i, item := range items {
			v, err := rule(item)
			if err != nil {
				return nil, &ItemError{Index: i, Item: item, Err: err}
			}
			out = append(out, v)
		}
		return out, nil
	}
}
