package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"teamsched/internal/importguard"
	"teamsched/internal/middleware"
	scheduleHTTP "teamsched/internal/schedule/delivery/http"
	scheduleRepo "teamsched/internal/schedule/repository/postgre"
	scheduleUC "teamsched/internal/schedule/usecase"
)

// setupScheduleDomain initializes the schedule domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, ...)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv *HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := scheduleRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := scheduleUC.New(srv.l, repo, repo, repo, srv.highlightRules, srv.calendar, srv.calendarID, srv.timezone)

	// 3. HTTP Handler
	guard := importguard.New(srv.guardCfg, srv.l)
	h := scheduleHTTP.New(srv.l, uc, guard)

	// 4. Routes: registers /api/v1/schedule/...
	scheduleHTTP.RegisterRoutes(api.Group("/schedule"), h, mw)

	srv.l.Infof(ctx, "Schedule domain registered")
	return nil
}
