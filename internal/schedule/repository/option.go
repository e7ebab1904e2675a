package repository

import (
	"time"

	"teamsched/internal/model"
)

// ListEntriesOptions filters the entry listing. CategoryID is required;
// From/To bound DueDate when non-zero (inclusive from, exclusive to).
type ListEntriesOptions struct {
	CategoryID string
	From       time.Time
	To         time.Time
}

// CreateEntryOptions holds the full field set for a new entry row.
type CreateEntryOptions struct {
	CategoryID string
	Title      string
	DueDate    time.Time
	DueTime    string
	Highlight  int
	Organizer  string
	Source     model.EntrySource

	ResourceURL string
	Notes       string
	Tags        []string
	IsPinned    bool
	Completed   bool
}

// UpdateEntryOptions is a partial update; nil fields are left unchanged.
type UpdateEntryOptions struct {
	Title       *string
	DueTime     *string
	ResourceURL *string
	Notes       *string
	Tags        *[]string
	IsPinned    *bool
	Completed   *bool
}

// CreateNoteOptions holds the parameters for filing a backup note.
type CreateNoteOptions struct {
	Title   string
	Content string
	Pinned  bool
}
