package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"teamsched/config"
	_ "teamsched/docs" // Swagger docs
	"teamsched/internal/httpserver"
	"teamsched/internal/importguard"
	"teamsched/internal/schedule/parser"
	"teamsched/pkg/gcalendar"
	"teamsched/pkg/log"
)

// @title       Teamsched API
// @description Schedule dump importer: parses text pasted from the team scheduling tool and reconciles it against stored entries, preserving user enrichment.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Teamsched...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Postgres.DSN())
	if err != nil {
		logger.Error(ctx, "Failed to connect to Postgres: ", err)
		return
	}
	defer db.Close()

	// 4. Google Calendar mirror (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			logger.Info(ctx, "Google Calendar mirror initialized")
		}
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		APIKey:      cfg.Auth.APIKey,
		Guard: importguard.Config{
			RateLimitPerMin: cfg.ImportGuard.RateLimitPerMin,
			DedupeTTL:       cfg.ImportGuard.DedupeTTL,
		},
		HighlightRules: highlightRules(cfg.Schedule.HighlightRules),
		Calendar:       calendarClient,
		CalendarID:     cfg.GoogleCalendar.CalendarID,
		Timezone:       cfg.Schedule.Timezone,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// highlightRules converts configured rules into the parser's form. An empty
// config keeps the parser defaults.
func highlightRules(cfgRules []config.HighlightRuleConfig) parser.Rules {
	var rules parser.Rules
	for _, r := range cfgRules {
		rules = append(rules, parser.HighlightRule{
			Level:           r.Level,
			BracketKeywords: r.BracketKeywords,
			OrganizerNames:  r.OrganizerNames,
		})
	}
	return rules
}
