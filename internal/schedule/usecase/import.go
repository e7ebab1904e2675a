package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"teamsched/internal/model"
	"teamsched/internal/schedule"
	"teamsched/internal/schedule/parser"
	"teamsched/internal/schedule/reconcile"
	"teamsched/internal/schedule/repository"
)

// Import parses a raw schedule dump and applies the reconciliation plan
// against the record store.
//
// Plan application is sequential and not transactional: a store failure
// aborts the remaining writes and is returned as-is, with no rollback of
// entries already written. The store is single-writer, so each individual
// write is atomic from our perspective.
func (uc *implUseCase) Import(ctx context.Context, input schedule.ImportInput) (schedule.ImportOutput, error) {
	records, err := uc.parseRecords(input)
	if err != nil {
		return schedule.ImportOutput{}, err
	}

	uc.l.Infof(ctx, "Import: parsed %d records for %d-%02d", len(records), input.Year, input.Month)

	category, err := uc.categories.GetOrCreateCategory(ctx, model.TeamScheduleCategory)
	if err != nil {
		return schedule.ImportOutput{}, fmt.Errorf("resolve team schedule category: %w", err)
	}

	existing, err := uc.entries.ListEntries(ctx, repository.ListEntriesOptions{CategoryID: category.ID})
	if err != nil {
		return schedule.ImportOutput{}, fmt.Errorf("snapshot existing entries: %w", err)
	}

	plan := reconcile.BuildPlan(records, existing)

	for _, entry := range plan.ToDelete {
		if err := uc.entries.DeleteEntry(ctx, entry.ID); err != nil {
			return schedule.ImportOutput{}, fmt.Errorf("delete entry %s: %w", entry.ID, err)
		}
	}

	created := make([]model.ScheduleEntry, 0, len(plan.ToCreate))
	for _, c := range plan.ToCreate {
		opt := repository.CreateEntryOptions{
			CategoryID: category.ID,
			Title:      c.Title,
			DueDate:    c.DueDate,
			DueTime:    c.DueTime,
			Highlight:  c.Highlight,
			Organizer:  c.Organizer,
			Source:     model.SourceTeam,
		}
		if c.Restore != nil {
			opt.ResourceURL = c.Restore.ResourceURL
			opt.Notes = c.Restore.Notes
			opt.Tags = c.Restore.Tags
			opt.IsPinned = c.Restore.IsPinned
			opt.Completed = c.Restore.Completed
		}

		entry, createErr := uc.entries.CreateEntry(ctx, opt)
		if createErr != nil {
			return schedule.ImportOutput{}, fmt.Errorf("create entry %q: %w", c.Title, createErr)
		}
		created = append(created, entry)
	}

	for _, note := range plan.OrphanNotes {
		if _, noteErr := uc.notes.CreateNote(ctx, repository.CreateNoteOptions{
			Title:   note.Title,
			Content: note.Content,
			Pinned:  true,
		}); noteErr != nil {
			return schedule.ImportOutput{}, fmt.Errorf("create backup note %q: %w", note.Title, noteErr)
		}
	}

	uc.mirrorToCalendar(ctx, created)

	out := schedule.ImportOutput{
		Imported:    len(created),
		Deleted:     len(plan.ToDelete),
		Restored:    plan.Restored(),
		OrphanNotes: len(plan.OrphanNotes),
		Months:      plan.Months,
	}
	uc.l.Infof(ctx, "Import: wrote %d entries, deleted %d, restored %d, orphaned %d",
		out.Imported, out.Deleted, out.Restored, out.OrphanNotes)
	return out, nil
}

// Preview parses and plans an import without applying it.
func (uc *implUseCase) Preview(ctx context.Context, input schedule.ImportInput) (schedule.PreviewOutput, error) {
	records, err := uc.parseRecords(input)
	if err != nil {
		return schedule.PreviewOutput{}, err
	}

	category, err := uc.categories.GetOrCreateCategory(ctx, model.TeamScheduleCategory)
	if err != nil {
		return schedule.PreviewOutput{}, fmt.Errorf("resolve team schedule category: %w", err)
	}

	existing, err := uc.entries.ListEntries(ctx, repository.ListEntriesOptions{CategoryID: category.ID})
	if err != nil {
		return schedule.PreviewOutput{}, fmt.Errorf("snapshot existing entries: %w", err)
	}

	plan := reconcile.BuildPlan(records, existing)
	return schedule.PreviewOutput{
		Records:     records,
		ToDelete:    len(plan.ToDelete),
		ToCreate:    len(plan.ToCreate),
		ToRestore:   plan.Restored(),
		OrphanNotes: len(plan.OrphanNotes),
		Months:      plan.Months,
	}, nil
}

func (uc *implUseCase) parseRecords(input schedule.ImportInput) ([]parser.ParsedSchedule, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, schedule.ErrEmptyText
	}
	if input.Month < time.January || input.Month > time.December {
		return nil, schedule.ErrInvalidMonth
	}

	var records []parser.ParsedSchedule
	if input.Legacy {
		records = parser.ParseLegacy(input.Text, input.Year, input.Month, uc.rules)
	} else {
		records = parser.Parse(input.Text, input.Year, input.Month, uc.rules)
	}
	if len(records) == 0 {
		return nil, schedule.ErrNoEntriesParsed
	}
	return records, nil
}
