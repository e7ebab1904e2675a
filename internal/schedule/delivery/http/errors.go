package http

import (
	"errors"
	"net/http"

	"teamsched/internal/schedule"
	pkgErrors "teamsched/pkg/errors"
)

var errMissingID = errors.New("id is required")

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrEmptyText),
		errors.Is(err, schedule.ErrInvalidMonth),
		errors.Is(err, schedule.ErrNoEntriesParsed):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, schedule.ErrEntryNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "schedule entry not found")
	default:
		// Store failures surface as 500. An import batch is not rolled
		// back, so already-applied writes stay applied.
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "schedule store failure")
	}
}
