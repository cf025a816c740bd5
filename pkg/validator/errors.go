package validator

import "errors"

// Causes reported by base rules. A ValidationError unwraps to one of these,
// so callers can branch with errors.Is without parsing messages.
var (
	// ErrFieldRequired is returned when an option value is absent and the rule is not nullable.
	ErrFieldRequired = errors.New("value is required")

	// ErrInvalidFormat is returned when a raw value cannot be parsed into the target type.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrOutOfRange is returned when a numeric value is below the allowed minimum.
	ErrOutOfRange = errors.New("value out of range")

	// ErrNotFound is returned when a lookup key is missing from the values table.
	ErrNotFound = errors.New("key not found")

	// ErrNotAllowed is returned when a value is not a member of the allowed set.
	ErrNotAllowed = errors.New("value not allowed")

	// Path rules
	ErrPathNotFound = errors.New("path does not exist")
	ErrPathExists   = errors.New("path already exists")
	ErrNotDirectory = errors.New("path is not a directory")
	ErrIsDirectory  = errors.New("path is a directory")
	ErrProbeFailed  = errors.New("failed to probe path")

	// ErrConversion is the cause of every ConversionError.
	ErrConversion = errors.New("conversion failed")
)
