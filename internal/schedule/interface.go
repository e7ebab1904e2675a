package schedule

import "context"

// UseCase defines the business logic interface for the schedule domain.
type UseCase interface {
	// Import parses a raw schedule dump and reconciles it against the
	// persisted team schedule entries, preserving user enrichment.
	Import(ctx context.Context, input ImportInput) (ImportOutput, error)

	// Preview parses and plans an import without applying it.
	Preview(ctx context.Context, input ImportInput) (PreviewOutput, error)

	// Entry CRUD
	ListEntries(ctx context.Context, input ListEntriesInput) (ListEntriesOutput, error)
	CreateEntry(ctx context.Context, input CreateEntryInput) (EntryOutput, error)
	UpdateEntry(ctx context.Context, input UpdateEntryInput) (EntryOutput, error)
	DeleteEntry(ctx context.Context, id string) error
}
