package validator

import (
	"strings"

	"github.com/google/uuid"
)

// ParseUUID parses a UUID in its canonical 36-character form.
func ParseUUID(raw string) (uuid.UUID, error) {
	// Fast rejection: check length and hyphen positions before parsing
	if len(raw) != 36 || strings.Count(raw, "-") != 4 ||
		raw[8] != '-' || raw[13] != '-' || raw[18] != '-' || raw[23] != '-' {
		return uuid.Nil, violation(ErrInvalidFormat, "validation.uuid", nil)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		v := violation(ErrInvalidFormat, "validation.uuid", nil)
		v.Cause = err
		return uuid.Nil, v
	}
	return id, nil
}
