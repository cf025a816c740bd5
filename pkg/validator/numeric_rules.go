package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseInt parses a base-10 integer. Surrounding whitespace is ignored.
func ParseInt(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		v := violation(ErrInvalidFormat, "validation.integer", nil)
		v.Cause = err
		return 0, v
	}
	return n, nil
}

// ParseFloat parses a 64-bit floating-point number. NaN is rejected since it
// cannot be compared against a bound. Surrounding whitespace is ignored.
func ParseFloat(raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		v := violation(ErrInvalidFormat, "validation.float", nil)
		v.Cause = err
		return 0, v
	}
	if math.IsNaN(f) {
		return 0, violation(ErrInvalidFormat, "validation.float", nil)
	}
	return f, nil
}

// AtLeast fails when the result of rule is strictly less than min.
func AtLeast[In any, T Numeric](rule Rule[In, T], min T) Rule[In, T] {
	return func(in In) (T, error) {
		n, err := rule(in)
		if err != nil {
			return n, err
		}
		if n < min {
			v := violation(ErrOutOfRange, "validation.min", map[string]any{"min": min})
			v.Message = fmt.Sprintf("must be at least %v", min)
			var zero T
			return zero, v
		}
		return n, nil
	}
}
