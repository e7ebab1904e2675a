package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"teamsched/internal/model"
	"teamsched/internal/schedule"
	"teamsched/internal/schedule/repository"
)

// ListEntries returns the entries of the team schedule category, optionally
// bounded to a single month.
func (uc *implUseCase) ListEntries(ctx context.Context, input schedule.ListEntriesInput) (schedule.ListEntriesOutput, error) {
	category, err := uc.categories.GetOrCreateCategory(ctx, model.TeamScheduleCategory)
	if err != nil {
		return schedule.ListEntriesOutput{}, fmt.Errorf("resolve team schedule category: %w", err)
	}

	opt := repository.ListEntriesOptions{CategoryID: category.ID}
	if input.Month != 0 {
		opt.From = time.Date(input.Year, input.Month, 1, 0, 0, 0, 0, time.UTC)
		opt.To = opt.From.AddDate(0, 1, 0)
	}

	entries, err := uc.entries.ListEntries(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListEntries: %v", err)
		return schedule.ListEntriesOutput{}, err
	}
	return schedule.ListEntriesOutput{Entries: entries}, nil
}

// CreateEntry creates a user-authored entry. Manual entries are permanently
// excluded from import replacement.
func (uc *implUseCase) CreateEntry(ctx context.Context, input schedule.CreateEntryInput) (schedule.EntryOutput, error) {
	category, err := uc.categories.GetOrCreateCategory(ctx, model.TeamScheduleCategory)
	if err != nil {
		return schedule.EntryOutput{}, fmt.Errorf("resolve team schedule category: %w", err)
	}

	entry, err := uc.entries.CreateEntry(ctx, repository.CreateEntryOptions{
		CategoryID:  category.ID,
		Title:       input.Title,
		DueDate:     input.DueDate,
		DueTime:     input.DueTime,
		Highlight:   input.Highlight,
		Organizer:   input.Organizer,
		Source:      model.SourceManual,
		ResourceURL: input.ResourceURL,
		Notes:       input.Notes,
		Tags:        input.Tags,
		IsPinned:    input.IsPinned,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateEntry: %v", err)
		return schedule.EntryOutput{}, err
	}
	return schedule.EntryOutput{Entry: entry}, nil
}

// UpdateEntry applies a partial update to an entry's user-owned fields.
func (uc *implUseCase) UpdateEntry(ctx context.Context, input schedule.UpdateEntryInput) (schedule.EntryOutput, error) {
	entry, err := uc.entries.UpdateEntry(ctx, input.ID, repository.UpdateEntryOptions{
		Title:       input.Title,
		DueTime:     input.DueTime,
		ResourceURL: input.ResourceURL,
		Notes:       input.Notes,
		Tags:        input.Tags,
		IsPinned:    input.IsPinned,
		Completed:   input.Completed,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return schedule.EntryOutput{}, schedule.ErrEntryNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateEntry: %v", err)
		return schedule.EntryOutput{}, err
	}
	return schedule.EntryOutput{Entry: entry}, nil
}

// DeleteEntry removes an entry by id.
func (uc *implUseCase) DeleteEntry(ctx context.Context, id string) error {
	err := uc.entries.DeleteEntry(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return schedule.ErrEntryNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteEntry: %v", err)
	}
	return err
}
