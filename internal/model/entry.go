package model

import "time"

// EntrySource tags who created a schedule entry.
type EntrySource string

const (
	// SourceTeam marks machine-imported entries, subject to replacement on re-import.
	SourceTeam EntrySource = "team"
	// SourceManual marks user-created entries, never auto-deleted.
	SourceManual EntrySource = "manual"
)

// ScheduleEntry is a persisted schedule entry in the team schedule category.
type ScheduleEntry struct {
	ID         string      `db:"id"`
	CategoryID string      `db:"category_id"`
	Title      string      `db:"title"`
	DueDate    time.Time   `db:"due_date"` // calendar date, midnight UTC
	DueTime    string      `db:"due_time"` // "HH:MM - HH:MM", "HH:MM", all-day marker, or empty
	Highlight  int         `db:"highlight_level"`
	Organizer  string      `db:"organizer"`
	Source     EntrySource `db:"source"` // empty on legacy rows

	// User-owned enrichment, preserved across re-imports when possible.
	ResourceURL string   `db:"resource_url"`
	Notes       string   `db:"notes"`
	Tags        []string `db:"-"`
	IsPinned    bool     `db:"is_pinned"`
	Completed   bool     `db:"completed"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// IsManual reports whether the entry is user-created. Legacy rows with an
// empty source count as imported for deletion purposes.
func (e ScheduleEntry) IsManual() bool {
	return e.Source == SourceManual
}

// HasEnrichment reports whether the entry carries user data worth backing up.
func (e ScheduleEntry) HasEnrichment() bool {
	return e.ResourceURL != "" || e.Notes != "" || len(e.Tags) > 0
}

// Category is a logical grouping of schedule entries.
type Category struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// TeamScheduleCategory is the fixed category name that holds all
// machine-imported entries. Created on demand.
const TeamScheduleCategory = "Team Schedule"

// BackupNote is a free-form note synthesized to preserve enrichment data
// orphaned by a re-import.
type BackupNote struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Pinned    bool      `db:"pinned"`
	CreatedAt time.Time `db:"created_at"`
}
