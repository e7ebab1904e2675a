package usecase

import (
	"teamsched/internal/schedule/parser"
	"teamsched/internal/schedule/repository"
	"teamsched/pkg/gcalendar"
	pkgLog "teamsched/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	entries    repository.EntryRepository
	notes      repository.NoteRepository
	categories repository.CategoryRepository
	rules      parser.Rules

	// Optional mirror of imported entries to an external calendar.
	calendar   *gcalendar.Client
	calendarID string
	timezone   string
}

// New creates a new schedule UseCase instance. calendar may be nil; the
// mirror is then skipped.
func New(
	l pkgLog.Logger,
	entries repository.EntryRepository,
	notes repository.NoteRepository,
	categories repository.CategoryRepository,
	rules parser.Rules,
	calendar *gcalendar.Client,
	calendarID string,
	timezone string,
) *implUseCase {
	if len(rules) == 0 {
		rules = parser.DefaultRules()
	}
	return &implUseCase{
		l:          l,
		entries:    entries,
		notes:      notes,
		categories: categories,
		rules:      rules,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
