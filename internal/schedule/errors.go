package schedule

import "errors"

var (
	ErrEmptyText       = errors.New("schedule text is empty")
	ErrInvalidMonth    = errors.New("month must be between 1 and 12")
	ErrNoEntriesParsed = errors.New("no schedule entries could be parsed from the text")
	ErrEntryNotFound   = errors.New("schedule entry not found")
)
