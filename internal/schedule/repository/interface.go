package repository

import (
	"context"

	"teamsched/internal/model"
)

// EntryRepository is the record-store interface for schedule entries. The
// reconciler treats it as a dumb, synchronous, single-writer substrate: no
// transactions, no retries.
type EntryRepository interface {
	ListEntries(ctx context.Context, opt ListEntriesOptions) ([]model.ScheduleEntry, error)
	GetEntry(ctx context.Context, id string) (model.ScheduleEntry, error)
	CreateEntry(ctx context.Context, opt CreateEntryOptions) (model.ScheduleEntry, error)
	UpdateEntry(ctx context.Context, id string, opt UpdateEntryOptions) (model.ScheduleEntry, error)
	DeleteEntry(ctx context.Context, id string) error
}

// NoteRepository files the orphan backup notes.
type NoteRepository interface {
	CreateNote(ctx context.Context, opt CreateNoteOptions) (model.BackupNote, error)
}

// CategoryRepository resolves the fixed team schedule category.
type CategoryRepository interface {
	GetOrCreateCategory(ctx context.Context, name string) (model.Category, error)
}
