package postgre

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"teamsched/pkg/log"
)

// implRepository is the Postgres-backed implementation of the entry, note
// and category repositories. One struct implements all three: the store is
// a single database accessed from a single logical writer.
type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed repository.
func New(db *sqlx.DB, l log.Logger) *implRepository {
	if db == nil {
		panic("schedule/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// op returns a method-scoped prefix for log lines.
func (r *implRepository) op(method string) string {
	return fmt.Sprintf("schedule/repository/postgre.%s", method)
}
