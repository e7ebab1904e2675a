package http

import (
	"teamsched/internal/importguard"
	"teamsched/internal/schedule"
	"teamsched/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    schedule.UseCase
	guard *importguard.Guard
}

// New creates a new HTTP handler for the schedule domain. guard may be nil
// to disable rate limiting and duplicate-paste detection.
func New(l log.Logger, uc schedule.UseCase, guard *importguard.Guard) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		guard: guard,
	}
}
