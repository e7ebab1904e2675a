package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"teamsched/internal/importguard"
	"teamsched/internal/schedule/parser"
	"teamsched/pkg/gcalendar"
	"teamsched/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	postgresDB *sqlx.DB
	apiKey     string
	guardCfg   importguard.Config

	highlightRules parser.Rules

	calendar   *gcalendar.Client
	calendarID string
	timezone   string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sqlx.DB
	APIKey     string
	Guard      importguard.Config

	HighlightRules parser.Rules

	Calendar   *gcalendar.Client
	CalendarID string
	Timezone   string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.Default(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		postgresDB:     cfg.PostgresDB,
		apiKey:         cfg.APIKey,
		guardCfg:       cfg.Guard,
		highlightRules: cfg.HighlightRules,
		calendar:       cfg.Calendar,
		calendarID:     cfg.CalendarID,
		timezone:       cfg.Timezone,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	return nil
}
