package messages

import "errors"

var (
	ErrParsingCancelled = errors.New("catalog parsing cancelled")
	ErrFailedToParse    = errors.New("failed to parse translation catalog")
	ErrFailedToReadFile = errors.New("failed to read translation catalog")
	ErrEmptyCatalog     = errors.New("no translations found in catalog")
	ErrInvalidLanguage  = errors.New("invalid language section")
)
