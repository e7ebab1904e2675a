package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"teamsched/internal/model"
	"teamsched/internal/schedule"
	"teamsched/internal/schedule/repository"
	"teamsched/internal/schedule/usecase"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// memStore is an in-memory stand-in for the Postgres repositories.
type memStore struct {
	entries    map[string]model.ScheduleEntry
	order      []string
	notes      []repository.CreateNoteOptions
	nextID     int
	failCreate bool
}

func newMemStore() *memStore {
	return &memStore{entries: map[string]model.ScheduleEntry{}}
}

func (s *memStore) seed(entry model.ScheduleEntry) {
	if entry.ID == "" {
		s.nextID++
		entry.ID = fmt.Sprintf("seed-%d", s.nextID)
	}
	entry.CategoryID = "cat1"
	s.entries[entry.ID] = entry
	s.order = append(s.order, entry.ID)
}

func (s *memStore) list() []model.ScheduleEntry {
	var out []model.ScheduleEntry
	for _, id := range s.order {
		if e, ok := s.entries[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

func (s *memStore) ListEntries(ctx context.Context, opt repository.ListEntriesOptions) ([]model.ScheduleEntry, error) {
	var out []model.ScheduleEntry
	for _, e := range s.list() {
		if !opt.From.IsZero() && e.DueDate.Before(opt.From) {
			continue
		}
		if !opt.To.IsZero() && !e.DueDate.Before(opt.To) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *memStore) GetEntry(ctx context.Context, id string) (model.ScheduleEntry, error) {
	e, ok := s.entries[id]
	if !ok {
		return model.ScheduleEntry{}, repository.ErrNotFound
	}
	return e, nil
}

func (s *memStore) CreateEntry(ctx context.Context, opt repository.CreateEntryOptions) (model.ScheduleEntry, error) {
	if s.failCreate {
		return model.ScheduleEntry{}, repository.ErrFailedToInsert
	}
	s.nextID++
	entry := model.ScheduleEntry{
		ID:          fmt.Sprintf("e-%d", s.nextID),
		CategoryID:  opt.CategoryID,
		Title:       opt.Title,
		DueDate:     opt.DueDate,
		DueTime:     opt.DueTime,
		Highlight:   opt.Highlight,
		Organizer:   opt.Organizer,
		Source:      opt.Source,
		ResourceURL: opt.ResourceURL,
		Notes:       opt.Notes,
		Tags:        opt.Tags,
		IsPinned:    opt.IsPinned,
		Completed:   opt.Completed,
	}
	s.entries[entry.ID] = entry
	s.order = append(s.order, entry.ID)
	return entry, nil
}

func (s *memStore) UpdateEntry(ctx context.Context, id string, opt repository.UpdateEntryOptions) (model.ScheduleEntry, error) {
	e, ok := s.entries[id]
	if !ok {
		return model.ScheduleEntry{}, repository.ErrNotFound
	}
	if opt.Title != nil {
		e.Title = *opt.Title
	}
	if opt.DueTime != nil {
		e.DueTime = *opt.DueTime
	}
	if opt.ResourceURL != nil {
		e.ResourceURL = *opt.ResourceURL
	}
	if opt.Notes != nil {
		e.Notes = *opt.Notes
	}
	if opt.Tags != nil {
		e.Tags = *opt.Tags
	}
	if opt.IsPinned != nil {
		e.IsPinned = *opt.IsPinned
	}
	if opt.Completed != nil {
		e.Completed = *opt.Completed
	}
	s.entries[id] = e
	return e, nil
}

func (s *memStore) DeleteEntry(ctx context.Context, id string) error {
	if _, ok := s.entries[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.entries, id)
	return nil
}

func (s *memStore) CreateNote(ctx context.Context, opt repository.CreateNoteOptions) (model.BackupNote, error) {
	s.notes = append(s.notes, opt)
	return model.BackupNote{ID: fmt.Sprintf("n-%d", len(s.notes)), Title: opt.Title, Content: opt.Content, Pinned: opt.Pinned}, nil
}

func (s *memStore) GetOrCreateCategory(ctx context.Context, name string) (model.Category, error) {
	return model.Category{ID: "cat1", Name: name}, nil
}

func newUseCase(store *memStore) schedule.UseCase {
	return usecase.New(&mockLogger{}, store, store, store, nil, nil, "", "UTC")
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const importText = "01 Wed\n09:00 - 10:00\nStaff Meeting\n이청 / CEO"

func TestImportRestoresEnrichment(t *testing.T) {
	store := newMemStore()
	store.seed(model.ScheduleEntry{
		Title:   "Staff Meeting",
		DueDate: date(2025, time.January, 1),
		Source:  model.SourceTeam,
		Notes:   "bring laptop",
	})

	uc := newUseCase(store)
	out, err := uc.Import(context.Background(), schedule.ImportInput{
		Text: importText, Year: 2025, Month: time.January,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Imported != 1 || out.Deleted != 1 || out.Restored != 1 || out.OrphanNotes != 0 {
		t.Errorf("unexpected summary: %+v", out)
	}

	entries := store.list()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after import, got %d", len(entries))
	}
	got := entries[0]
	if got.Notes != "bring laptop" {
		t.Errorf("enrichment not restored: %+v", got)
	}
	if got.Source != model.SourceTeam {
		t.Errorf("imported entry must be tagged team, got %q", got.Source)
	}
	if got.Highlight != 1 {
		t.Errorf("organizer keyword should set highlight 1, got %d", got.Highlight)
	}
}

func TestImportOrphansUnmatchedEnrichment(t *testing.T) {
	store := newMemStore()
	store.seed(model.ScheduleEntry{
		Title:       "Old Meeting",
		DueDate:     date(2025, time.January, 1),
		Source:      model.SourceTeam,
		ResourceURL: "https://x",
	})

	uc := newUseCase(store)
	out, err := uc.Import(context.Background(), schedule.ImportInput{
		Text: importText, Year: 2025, Month: time.January,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.OrphanNotes != 1 {
		t.Fatalf("expected 1 orphan note, got %d", out.OrphanNotes)
	}
	if len(store.notes) != 1 {
		t.Fatalf("expected note filed, got %d", len(store.notes))
	}
	note := store.notes[0]
	if !note.Pinned {
		t.Error("orphan note must be pinned")
	}
	if !strings.Contains(note.Title, "Old Meeting") || !strings.Contains(note.Content, "https://x") {
		t.Errorf("orphan note does not reference the lost data: %+v", note)
	}
}

func TestImportManualImmunity(t *testing.T) {
	store := newMemStore()
	store.seed(model.ScheduleEntry{
		ID:      "manual-1",
		Title:   "Dentist",
		DueDate: date(2025, time.January, 1),
		Source:  model.SourceManual,
		Notes:   "own appointment",
	})

	uc := newUseCase(store)
	if _, err := uc.Import(context.Background(), schedule.ImportInput{
		Text: importText, Year: 2025, Month: time.January,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := store.entries["manual-1"]; !ok {
		t.Error("manual entry was deleted by import")
	}
	if store.entries["manual-1"].Notes != "own appointment" {
		t.Error("manual entry was altered by import")
	}
}

func TestImportMonthScoping(t *testing.T) {
	store := newMemStore()
	store.seed(model.ScheduleEntry{
		ID:      "feb-1",
		Title:   "February Planning",
		DueDate: date(2025, time.February, 10),
		Source:  model.SourceTeam,
	})

	uc := newUseCase(store)
	if _, err := uc.Import(context.Background(), schedule.ImportInput{
		Text: importText, Year: 2025, Month: time.January,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := store.entries["feb-1"]; !ok {
		t.Error("entry outside the imported months was deleted")
	}
}

func TestImportIdempotent(t *testing.T) {
	store := newMemStore()
	uc := newUseCase(store)
	input := schedule.ImportInput{Text: importText, Year: 2025, Month: time.January}

	if _, err := uc.Import(context.Background(), input); err != nil {
		t.Fatalf("first import: %v", err)
	}
	second, err := uc.Import(context.Background(), input)
	if err != nil {
		t.Fatalf("second import: %v", err)
	}

	if second.OrphanNotes != 0 {
		t.Errorf("re-import of identical data must not orphan anything, got %d", second.OrphanNotes)
	}
	entries := store.list()
	if len(entries) != 1 || entries[0].Title != "Staff Meeting" {
		t.Errorf("unexpected final entry set: %+v", entries)
	}
}

func TestImportValidation(t *testing.T) {
	uc := newUseCase(newMemStore())

	tests := []struct {
		name    string
		input   schedule.ImportInput
		wantErr error
	}{
		{
			name:    "empty text",
			input:   schedule.ImportInput{Text: "   \n ", Year: 2025, Month: time.January},
			wantErr: schedule.ErrEmptyText,
		},
		{
			name:    "invalid month",
			input:   schedule.ImportInput{Text: importText, Year: 2025, Month: 13},
			wantErr: schedule.ErrInvalidMonth,
		},
		{
			name:    "nothing parseable",
			input:   schedule.ImportInput{Text: "just some prose\nwithout any dates", Year: 2025, Month: time.January},
			wantErr: schedule.ErrNoEntriesParsed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Import(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestImportAbortsOnStoreFailure(t *testing.T) {
	store := newMemStore()
	store.seed(model.ScheduleEntry{
		Title:       "Old Meeting",
		DueDate:     date(2025, time.January, 1),
		Source:      model.SourceTeam,
		ResourceURL: "https://x",
	})
	store.failCreate = true

	uc := newUseCase(store)
	_, err := uc.Import(context.Background(), schedule.ImportInput{
		Text: importText, Year: 2025, Month: time.January,
	})
	if !errors.Is(err, repository.ErrFailedToInsert) {
		t.Fatalf("store failure must propagate, got %v", err)
	}
	// Orphan notes come after entry creation; the abort must have stopped
	// before writing them.
	if len(store.notes) != 0 {
		t.Errorf("aborted import wrote orphan notes: %+v", store.notes)
	}
}

func TestPreviewDoesNotWrite(t *testing.T) {
	store := newMemStore()
	store.seed(model.ScheduleEntry{
		ID:          "old-1",
		Title:       "Old Meeting",
		DueDate:     date(2025, time.January, 1),
		Source:      model.SourceTeam,
		ResourceURL: "https://x",
	})

	uc := newUseCase(store)
	out, err := uc.Preview(context.Background(), schedule.ImportInput{
		Text: importText, Year: 2025, Month: time.January,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.ToCreate != 1 || out.ToDelete != 1 || out.OrphanNotes != 1 {
		t.Errorf("unexpected preview counts: %+v", out)
	}
	if len(out.Records) != 1 {
		t.Errorf("preview should return the parsed records, got %d", len(out.Records))
	}
	if _, ok := store.entries["old-1"]; !ok {
		t.Error("preview deleted an entry")
	}
	if len(store.notes) != 0 {
		t.Error("preview filed a note")
	}
}
