package postgre

import (
	"context"

	"github.com/google/uuid"

	"teamsched/internal/model"
	repo "teamsched/internal/schedule/repository"
)

// CreateNote files a backup note and returns the created entity.
func (r *implRepository) CreateNote(ctx context.Context, opt repo.CreateNoteOptions) (model.BackupNote, error) {
	const query = `
		INSERT INTO backup_notes (id, title, content, pinned, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, title, content, pinned, created_at`

	var note model.BackupNote
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), opt.Title, opt.Content, opt.Pinned).Scan(
		&note.ID, &note.Title, &note.Content, &note.Pinned, &note.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("CreateNote"), err)
		return model.BackupNote{}, repo.ErrFailedToInsert
	}
	return note, nil
}
