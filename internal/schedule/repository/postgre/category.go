package postgre

import (
	"context"

	"github.com/google/uuid"

	"teamsched/internal/model"
	repo "teamsched/internal/schedule/repository"
)

// GetOrCreateCategory resolves a category by name, creating it on demand.
// The upsert keeps this a single round-trip: the no-op update makes
// RETURNING yield the existing row on conflict.
func (r *implRepository) GetOrCreateCategory(ctx context.Context, name string) (model.Category, error) {
	const query = `
		INSERT INTO schedule_categories (id, name, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, created_at`

	var category model.Category
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), name).Scan(
		&category.ID, &category.Name, &category.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("GetOrCreateCategory"), err)
		return model.Category{}, repo.ErrFailedToInsert
	}
	return category, nil
}
