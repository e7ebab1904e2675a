package schedule

import (
	"time"

	"teamsched/internal/model"
	"teamsched/internal/schedule/parser"
)

// --- UseCase Inputs ---

// ImportInput carries a raw schedule dump pasted from the external tool.
// Month is 1-based (January = 1); the HTTP layer converts from the UI's
// 0-based month before calling the use case.
type ImportInput struct {
	Text   string
	Year   int
	Month  time.Month
	Legacy bool // accept bare HH:MM and all-day time lines, skip month rollover
}

type ListEntriesInput struct {
	Year  int
	Month time.Month // zero value lists the whole category
}

type CreateEntryInput struct {
	Title     string
	DueDate   time.Time
	DueTime   string
	Organizer string
	Highlight int

	ResourceURL string
	Notes       string
	Tags        []string
	IsPinned    bool
}

// UpdateEntryInput is a partial update; nil fields are left unchanged.
type UpdateEntryInput struct {
	ID          string
	Title       *string
	DueTime     *string
	ResourceURL *string
	Notes       *string
	Tags        *[]string
	IsPinned    *bool
	Completed   *bool
}

// --- UseCase Outputs ---

// ImportOutput summarizes an applied import for the caller's one-line
// confirmation message.
type ImportOutput struct {
	Imported    int      // entries written
	Deleted     int      // replaced entries removed
	Restored    int      // entries that regained enrichment from a backup
	OrphanNotes int      // pinned backup notes filed
	Months      []string // "2025-01" style, sorted
}

// PreviewOutput is the dry-run result: the parsed records plus the plan
// counts, with nothing applied.
type PreviewOutput struct {
	Records     []parser.ParsedSchedule
	ToDelete    int
	ToCreate    int
	ToRestore   int
	OrphanNotes int
	Months      []string
}

type ListEntriesOutput struct {
	Entries []model.ScheduleEntry
}

type EntryOutput struct {
	Entry model.ScheduleEntry
}
