// Package reconcile computes the replacement plan for a schedule import.
// It is pure: it reads a snapshot of the persisted entries plus the freshly
// parsed records and returns an explicit plan; applying the plan against
// the store is the use case's job.
package reconcile

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"teamsched/internal/model"
	"teamsched/internal/schedule/parser"
)

// Enrichment is the user-owned data carried from a deleted entry onto its
// replacement, or into an orphan note when no replacement matches.
type Enrichment struct {
	ResourceURL string
	Notes       string
	Tags        []string
	IsPinned    bool
	Completed   bool
}

func (e Enrichment) empty() bool {
	return e.ResourceURL == "" && e.Notes == "" && len(e.Tags) == 0
}

// NewEntry is one entry the plan creates, tagged 'team' on insert. Restore
// is non-nil when a deleted entry with the same (date, title) key donated
// its enrichment.
type NewEntry struct {
	Title     string
	DueDate   time.Time
	DueTime   string
	Highlight int
	Organizer string
	Restore   *Enrichment
}

// OrphanNote preserves enrichment whose (date, title) pairing vanished from
// the import. Always pinned so the user notices it.
type OrphanNote struct {
	Title   string
	Content string
}

// Plan is the full reconciliation outcome.
type Plan struct {
	ToDelete    []model.ScheduleEntry
	ToCreate    []NewEntry
	OrphanNotes []OrphanNote
	Months      []string // "2006-01" keys of the months the import touches, sorted
}

// Restored counts the created entries that regained a backup.
func (p Plan) Restored() int {
	n := 0
	for _, c := range p.ToCreate {
		if c.Restore != nil {
			n++
		}
	}
	return n
}

// matchKey identifies an entry across imports. The source tool has no
// stable ids, so date+trimmed-title is the best available identity. A
// renamed event is indistinguishable from a new one and orphans its old
// enrichment instead of merging onto an unrelated entry.
func matchKey(date time.Time, title string) string {
	return date.Format("2006-01-02") + "|" + strings.TrimSpace(title)
}

func monthKey(date time.Time) string {
	return date.Format("2006-01")
}

// BuildPlan reconciles parsed records against the existing entry snapshot.
//
// Entries tagged manual are never touched. Entries in months absent from
// the import are never touched. Everything else in an imported month is
// deleted and recreated from the parse, with enrichment restored by match
// key. On duplicate keys the first occurrence wins: a later duplicate in
// the old set loses its backup slot, a later duplicate in the new set is
// created unmatched.
func BuildPlan(parsed []parser.ParsedSchedule, existing []model.ScheduleEntry) Plan {
	var plan Plan

	targetMonths := make(map[string]bool)
	for _, rec := range parsed {
		if !targetMonths[monthKey(rec.Date)] {
			targetMonths[monthKey(rec.Date)] = true
			plan.Months = append(plan.Months, monthKey(rec.Date))
		}
	}
	sort.Strings(plan.Months)

	type backup struct {
		enrichment Enrichment
		origin     model.ScheduleEntry
		claimed    bool
	}
	backups := make(map[string]*backup)
	var backupOrder []string

	for _, entry := range existing {
		if entry.IsManual() {
			continue
		}
		if !targetMonths[monthKey(entry.DueDate)] {
			continue
		}

		key := matchKey(entry.DueDate, entry.Title)
		if _, dup := backups[key]; !dup {
			backups[key] = &backup{
				enrichment: Enrichment{
					ResourceURL: entry.ResourceURL,
					Notes:       entry.Notes,
					Tags:        entry.Tags,
					IsPinned:    entry.IsPinned,
					Completed:   entry.Completed,
				},
				origin: entry,
			}
			backupOrder = append(backupOrder, key)
		}
		plan.ToDelete = append(plan.ToDelete, entry)
	}

	for _, rec := range parsed {
		create := NewEntry{
			Title:     strings.TrimSpace(rec.Title),
			DueDate:   rec.Date,
			DueTime:   rec.Time,
			Highlight: rec.Highlight,
			Organizer: rec.Organizer,
		}
		if b, ok := backups[matchKey(rec.Date, rec.Title)]; ok && !b.claimed {
			enrichment := b.enrichment
			create.Restore = &enrichment
			b.claimed = true
		}
		plan.ToCreate = append(plan.ToCreate, create)
	}

	for _, key := range backupOrder {
		b := backups[key]
		if b.claimed || b.enrichment.empty() {
			continue
		}
		plan.OrphanNotes = append(plan.OrphanNotes, newOrphanNote(b.origin, b.enrichment))
	}

	return plan
}

// newOrphanNote renders the preserved fields in a fixed human-readable
// layout. The title encodes the original date and title so the user can
// trace it back.
func newOrphanNote(origin model.ScheduleEntry, e Enrichment) OrphanNote {
	var body []string
	if e.ResourceURL != "" {
		body = append(body, "Link: "+e.ResourceURL)
	}
	if e.Notes != "" {
		body = append(body, "Notes: "+e.Notes)
	}
	if len(e.Tags) > 0 {
		body = append(body, "Tags: "+strings.Join(e.Tags, ", "))
	}

	return OrphanNote{
		Title:   fmt.Sprintf("[Schedule Backup] %s %s", origin.DueDate.Format("2006-01-02"), strings.TrimSpace(origin.Title)),
		Content: strings.Join(body, "\n"),
	}
}
