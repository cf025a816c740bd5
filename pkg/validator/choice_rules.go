package validator

import "slices"

// Lookup translates a key through table. The table is read-only to the rule
// and must not be mutated while the rule is in use.
func Lookup[K comparable, V any](table map[K]V) Rule[K, V] {
	return func(key K) (V, error) {
		v, ok := table[key]
		if !ok {
			var zero V
			return zero, violation(ErrNotFound, "validation.lookup", nil)
		}
		return v, nil
	}
}

// OneOf accepts only members of allowed.
func OneOf[T comparable](allowed []T) Rule[T, T] {
	return func(value T) (T, error) {
		if !slices.Contains(allowed, value) {
			var zero T
			return zero, violation(ErrNotAllowed, "validation.in_list", map[string]any{
				"allowed_values": allowed,
			})
		}
		return value, nil
	}
}
