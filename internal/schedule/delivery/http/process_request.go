package http

import (
	"github.com/gin-gonic/gin"
)

// processImportReq binds and validates the import request body.
func (h *handler) processImportReq(c *gin.Context) (importReq, error) {
	var req importReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processCreateEntryReq binds and validates the manual entry body.
func (h *handler) processCreateEntryReq(c *gin.Context) (createEntryReq, error) {
	var req createEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateEntryReq binds the update body plus the URI param.
func (h *handler) processUpdateEntryReq(c *gin.Context) (updateEntryReq, error) {
	var req updateEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}
