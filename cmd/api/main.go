package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/opspulse/opspulse-backend-go/internal/config"
	"github.com/opspulse/opspulse-backend-go/internal/domain/dashboard"
	"github.com/opspulse/opspulse-backend-go/internal/domain/entry"
	"github.com/opspulse/opspulse-backend-go/internal/domain/team"
	"github.com/opspulse/opspulse-backend-go/internal/domain/user"
	"github.com/opspulse/opspulse-backend-go/internal/fixtures"
	appHTTP "github.com/opspulse/opspulse-backend-go/internal/handler/http"
	"github.com/opspulse/opspulse-backend-go/internal/pkg/database"
	"github.com/opspulse/opspulse-backend-go/internal/pkg/jwt"
	"github.com/opspulse/opspulse-backend-go/internal/repository/postgresql"
	"github.com/opspulse/opspulse-backend-go/internal/repository/sqlite"
	calendarService "github.com/opspulse/opspulse-backend-go/internal/service/calendar"
	dashboardService "github.com/opspulse/opspulse-backend-go/internal/service/dashboard"
	entryService "github.com/opspulse/opspulse-backend-go/internal/service/entry"
	exportService "github.com/opspulse/opspulse-backend-go/internal/service/export"
	metricsService "github.com/opspulse/opspulse-backend-go/internal/service/metrics"
	userService "github.com/opspulse/opspulse-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	entryRepo, userRepo, statsRepo, err := buildRepositories(cfg)
	if err != nil {
		log.Fatal("Error initializing storage: ", err)
	}

	catalog, err := team.NewCatalog(fixtures.DefaultTeams())
	if err != nil {
		log.Fatal("Error building team catalog: ", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	entrySvc := entryService.NewEntryService(entryRepo)
	metricsSvc := metricsService.NewMetricsService(entryRepo)
	calendarSvc := calendarService.NewCalendarService(entryRepo)
	exportSvc := exportService.NewExportService(entryRepo)
	userSvc := userService.NewUserService(userRepo, catalog)
	dashboardSvc := dashboardService.NewDashboardService(userRepo, statsRepo, metricsSvc)

	router := appHTTP.NewRouter(cfg, JWTService, appHTTP.RouterHandlers{
		Auth:      appHTTP.NewAuthHandler(userSvc, JWTService),
		User:      appHTTP.NewUserHandler(userSvc),
		Entry:     appHTTP.NewEntryHandler(entrySvc),
		Analytics: appHTTP.NewAnalyticsHandler(metricsSvc, userSvc),
		Calendar:  appHTTP.NewCalendarHandler(calendarSvc),
		Export:    appHTTP.NewExportHandler(exportSvc),
		Team:      appHTTP.NewTeamHandler(catalog),
		Dashboard: appHTTP.NewDashboardHandler(dashboardSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}

// buildRepositories wires the persistence backend selected by configuration.
// Everything past this point only sees the store interfaces.
func buildRepositories(cfg *config.Config) (entry.Repository, user.Repository, dashboard.StatsRepository, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendPostgres:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		return postgresql.NewEntryRepository(db),
			postgresql.NewUserRepository(db),
			postgresql.NewStatsRepository(db),
			nil

	case config.StorageBackendSQLite:
		db, err := database.NewSQLiteDB(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		ctx := context.Background()
		entryRepo := sqlite.NewEntryRepository(db)
		userRepo := sqlite.NewUserRepository(db)
		if err := entryRepo.InitTable(ctx); err != nil {
			return nil, nil, nil, err
		}
		if err := userRepo.InitTable(ctx); err != nil {
			return nil, nil, nil, err
		}
		return entryRepo, userRepo, sqlite.NewStatsRepository(db), nil

	default:
		return nil, nil, nil, fmt.Errorf("unsupported storage backend: %s", cfg.Storage.Backend)
	}
}
