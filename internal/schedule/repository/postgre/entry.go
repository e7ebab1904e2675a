package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"teamsched/internal/model"
	repo "teamsched/internal/schedule/repository"
)

const entryColumns = `id, category_id, title, due_date, due_time, highlight_level, organizer, source, resource_url, notes, tags, is_pinned, completed, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (model.ScheduleEntry, error) {
	var e model.ScheduleEntry
	var source sql.NullString
	var tags pq.StringArray
	err := row.Scan(
		&e.ID, &e.CategoryID, &e.Title, &e.DueDate, &e.DueTime, &e.Highlight,
		&e.Organizer, &source, &e.ResourceURL, &e.Notes, &tags,
		&e.IsPinned, &e.Completed, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return model.ScheduleEntry{}, err
	}
	e.Source = model.EntrySource(source.String)
	e.Tags = []string(tags)
	return e, nil
}

// ListEntries returns entries in a category, oldest due date first,
// optionally bounded by [From, To).
func (r *implRepository) ListEntries(ctx context.Context, opt repo.ListEntriesOptions) ([]model.ScheduleEntry, error) {
	where := []string{"category_id = $1"}
	args := []any{opt.CategoryID}
	if !opt.From.IsZero() {
		where = append(where, fmt.Sprintf("due_date >= $%d", len(args)+1))
		args = append(args, opt.From)
	}
	if !opt.To.IsZero() {
		where = append(where, fmt.Sprintf("due_date < $%d", len(args)+1))
		args = append(args, opt.To)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM schedule_entries WHERE %s ORDER BY due_date ASC, due_time ASC, created_at ASC",
		entryColumns, strings.Join(where, " AND "),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("ListEntries"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var entries []model.ScheduleEntry
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.op("ListEntries"), scanErr)
			return nil, repo.ErrFailedToList
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.op("ListEntries"), err)
		return nil, repo.ErrFailedToList
	}
	return entries, nil
}

// GetEntry fetches a single entry by id.
func (r *implRepository) GetEntry(ctx context.Context, id string) (model.ScheduleEntry, error) {
	query := fmt.Sprintf("SELECT %s FROM schedule_entries WHERE id = $1", entryColumns)

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.ScheduleEntry{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("GetEntry"), err)
		return model.ScheduleEntry{}, repo.ErrFailedToGet
	}
	return entry, nil
}

// CreateEntry inserts a new entry row and returns the created entity.
func (r *implRepository) CreateEntry(ctx context.Context, opt repo.CreateEntryOptions) (model.ScheduleEntry, error) {
	query := fmt.Sprintf(`
		INSERT INTO schedule_entries (id, category_id, title, due_date, due_time, highlight_level, organizer, source, resource_url, notes, tags, is_pinned, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING %s`, entryColumns)

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.CategoryID, opt.Title, opt.DueDate, opt.DueTime,
		opt.Highlight, opt.Organizer, string(opt.Source), opt.ResourceURL,
		opt.Notes, pq.Array(opt.Tags), opt.IsPinned, opt.Completed,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("CreateEntry"), err)
		return model.ScheduleEntry{}, repo.ErrFailedToInsert
	}
	return entry, nil
}

// UpdateEntry applies a partial update and returns the updated entity.
func (r *implRepository) UpdateEntry(ctx context.Context, id string, opt repo.UpdateEntryOptions) (model.ScheduleEntry, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{id}

	add := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}
	if opt.Title != nil {
		add("title", *opt.Title)
	}
	if opt.DueTime != nil {
		add("due_time", *opt.DueTime)
	}
	if opt.ResourceURL != nil {
		add("resource_url", *opt.ResourceURL)
	}
	if opt.Notes != nil {
		add("notes", *opt.Notes)
	}
	if opt.Tags != nil {
		add("tags", pq.Array(*opt.Tags))
	}
	if opt.IsPinned != nil {
		add("is_pinned", *opt.IsPinned)
	}
	if opt.Completed != nil {
		add("completed", *opt.Completed)
	}

	query := fmt.Sprintf(
		"UPDATE schedule_entries SET %s WHERE id = $1 RETURNING %s",
		strings.Join(sets, ", "), entryColumns,
	)

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.ScheduleEntry{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("UpdateEntry"), err)
		return model.ScheduleEntry{}, repo.ErrFailedToUpdate
	}
	return entry, nil
}

// DeleteEntry removes an entry by id.
func (r *implRepository) DeleteEntry(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM schedule_entries WHERE id = $1", id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("DeleteEntry"), err)
		return repo.ErrFailedToDelete
	}
	affected, err := result.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.op("DeleteEntry"), err)
		return repo.ErrFailedToDelete
	}
	if affected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
