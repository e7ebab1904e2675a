package http

import (
	"github.com/gin-gonic/gin"

	"teamsched/pkg/response"
)

// Import godoc
// @Summary     Import a schedule dump
// @Description Parses raw text pasted from the external scheduling tool and reconciles it against the stored team schedule, preserving user enrichment.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body importReq true "Raw schedule text with target year/month"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Rate limited or duplicate paste"
// @Failure     500 {object} response.Resp "Store failure (batch may be partially applied)"
// @Router      /api/v1/schedule/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if h.guard != nil {
		if guardErr := h.guard.Check(c.ClientIP(), req.Text); guardErr != nil {
			h.l.Warnf(ctx, "Import: rejected by guard: %v", guardErr)
			response.TooManyRequests(c, guardErr.Error())
			return
		}
	}

	output, err := h.uc.Import(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Import: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	if h.guard != nil {
		h.guard.Remember(c.ClientIP(), req.Text)
	}

	response.OK(c, newImportResp(output))
}

// Preview godoc
// @Summary     Preview a schedule import
// @Description Parses the text and returns the reconciliation plan counts without applying anything.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body importReq true "Raw schedule text with target year/month"
// @Success     200 {object} previewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/schedule/import/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Preview(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newPreviewResp(output))
}

// ListEntries godoc
// @Summary     List schedule entries
// @Description Returns team schedule entries, optionally bounded to one month.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       year  query int false "Target year (with month)"
// @Param       month query int false "Target month, 0-based as displayed by the UI"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/schedule/entries [GET]
func (h *handler) ListEntries(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListEntries(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListEntries: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListResp(output))
}

// CreateEntry godoc
// @Summary     Create a manual schedule entry
// @Description Creates a user-authored entry. Manual entries are never deleted by imports.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body createEntryReq true "Entry fields"
// @Success     200 {object} entryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/schedule/entries [POST]
func (h *handler) CreateEntry(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateEntryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateEntry(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateEntry: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newEntryResp(output.Entry))
}

// UpdateEntry godoc
// @Summary     Update a schedule entry
// @Description Partial update of an entry's user-owned fields.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Entry ID"
// @Param       body body updateEntryReq true "Fields to update"
// @Success     200 {object} entryResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/schedule/entries/{id} [PUT]
func (h *handler) UpdateEntry(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateEntryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateEntry(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateEntry: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newEntryResp(output.Entry))
}

// DeleteEntry godoc
// @Summary     Delete a schedule entry
// @Description Permanently removes an entry by ID.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       id path string true "Entry ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/schedule/entries/{id} [DELETE]
func (h *handler) DeleteEntry(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	if err := h.uc.DeleteEntry(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteEntry: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
