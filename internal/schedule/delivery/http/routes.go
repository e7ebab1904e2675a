package http

import (
	"github.com/gin-gonic/gin"

	"teamsched/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	imports := rg.Group("/import")
	{
		imports.POST("", mw.Auth(), h.Import)
		imports.POST("/preview", mw.Auth(), h.Preview)
	}

	entries := rg.Group("/entries")
	{
		entries.GET("", mw.Auth(), h.ListEntries)
		entries.POST("", mw.Auth(), h.CreateEntry)
		entries.PUT("/:id", mw.Auth(), h.UpdateEntry)
		entries.DELETE("/:id", mw.Auth(), h.DeleteEntry)
	}
}
