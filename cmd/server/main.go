// Package main - entry point for the Academia Records Hub API server.
//
// The server exposes the enrollment pipeline, group management,
// assessment, and summons coordination over a REST API.
//
// The architecture follows Clean Architecture and DDD:
// - Domain: pure business logic without external dependencies
// - Application: use case orchestration (Commands/Queries)
// - Infrastructure: repository implementations, cache, auth
// - Interface: HTTP endpoints
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/academia-hub/academia-records-hub/config"

	// Application layer
	appauth "github.com/academia-hub/academia-records-hub/internal/application/auth"
	"github.com/academia-hub/academia-records-hub/internal/application/command"
	"github.com/academia-hub/academia-records-hub/internal/application/query"

	// Domain layer
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"

	// Infrastructure layer
	infraauth "github.com/academia-hub/academia-records-hub/internal/infrastructure/auth"
	"github.com/academia-hub/academia-records-hub/internal/infrastructure/messaging"
	"github.com/academia-hub/academia-records-hub/internal/infrastructure/persistence/postgres"
	"github.com/academia-hub/academia-records-hub/internal/infrastructure/persistence/redis"

	// Interface layer
	httpserver "github.com/academia-hub/academia-records-hub/internal/interface/http"

	// Packages
	"github.com/academia-hub/academia-records-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN
// ══════════════════════════════════════════════════════════════════════════════

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. CONFIGURATION
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. LOGGING
	// ─────────────────────────────────────────────────────────────────────────
	log := setupLogger(cfg)
	log.Info("starting Academia Records Hub",
		"env", string(cfg.App.Environment),
		"debug", cfg.App.Debug,
		"timezone", cfg.App.Timezone,
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. DATABASE CONNECTION (PostgreSQL)
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("connecting to database...")
	dbConn, err := postgres.NewConnectionFromURL(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		log.Info("closing database connection...")
		dbConn.Close()
	}()

	if err := dbConn.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	log.Info("database connection established")

	// ─────────────────────────────────────────────────────────────────────────
	// 4. MIGRATIONS
	// ─────────────────────────────────────────────────────────────────────────
	if cfg.Database.MigrateOnStart {
		log.Info("running database migrations...")
		migrator := postgres.NewMigrator(dbConn)
		if err := migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		status, err := migrator.Status(ctx)
		if err != nil {
			log.Warn("failed to get migration status", "error", err)
		} else {
			appliedCount := 0
			for _, m := range status {
				if m.IsApplied {
					appliedCount++
				}
			}
			log.Info("migrations completed", "applied", appliedCount, "total", len(status))
		}
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 5. REDIS (optional read-model cache)
	// ─────────────────────────────────────────────────────────────────────────
	var redisCache *redis.Cache
	var reportCardCache *redis.ReportCardCache
	var groupRosterCache *redis.GroupRosterCache

	if !cfg.Redis.Disabled {
		log.Info("connecting to Redis...")
		redisCfg := redis.DefaultConfig()
		redisCfg.Host = cfg.Redis.Host
		redisCfg.Port = cfg.Redis.Port
		redisCfg.Password = cfg.Redis.Password
		redisCfg.DB = cfg.Redis.DB
		redisCfg.PoolSize = cfg.Redis.PoolSize
		redisCfg.MinIdleConns = cfg.Redis.MinIdleConns
		redisCfg.DialTimeout = cfg.Redis.DialTimeout
		redisCfg.ReadTimeout = cfg.Redis.ReadTimeout
		redisCfg.WriteTimeout = cfg.Redis.WriteTimeout

		redisCache, err = redis.NewCache(redisCfg)
		if err != nil {
			log.Warn("failed to connect to Redis, caching disabled", "error", err)
			redisCache = nil
		} else {
			defer redisCache.Close()
			reportCardCache = redis.NewReportCardCache(redisCache)
			groupRosterCache = redis.NewGroupRosterCache(redisCache)
			log.Info("Redis connection established")
		}
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 6. REPOSITORIES
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("initializing repositories...")
	personRepo := postgres.NewPersonRepository(dbConn)
	applicantRepo := postgres.NewApplicantRepository(dbConn)
	formRepo := postgres.NewFormRepository(dbConn)
	studentRepo := postgres.NewStudentRepository(dbConn)
	groupRepo := postgres.NewGroupRepository(dbConn)
	gradeRepo := postgres.NewGradeRepository(dbConn)
	achievementRepo := postgres.NewAchievementRepository(dbConn)
	observationRepo := postgres.NewObservationRepository(dbConn)
	summonsRepo := postgres.NewSummonsRepository(dbConn)

	// ─────────────────────────────────────────────────────────────────────────
	// 7. EVENT BUS
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("initializing event bus...")
	eventBusConfig := messaging.DefaultInMemoryEventBusConfig()
	eventBusConfig.Logger = log
	eventBusConfig.AsyncMode = cfg.Events.Async
	eventBusConfig.WorkerPoolSize = cfg.Events.Workers
	eventBus := messaging.NewInMemoryEventBus(eventBusConfig)
	defer func() {
		log.Info("closing event bus...")
		_ = eventBus.Close()
	}()

	// Report cards are rebuilt lazily; grade writes drop the cached copy.
	if reportCardCache != nil {
		handler := reportCardCache.InvalidateOnGradeEvents()
		if err := eventBus.Subscribe(shared.EventGradeRecorded, handler); err != nil {
			return fmt.Errorf("failed to subscribe cache invalidation: %w", err)
		}
		if err := eventBus.Subscribe(shared.EventGradeUpdated, handler); err != nil {
			return fmt.Errorf("failed to subscribe cache invalidation: %w", err)
		}
	}

	// Rosters are dropped on membership and lifecycle changes.
	if groupRosterCache != nil {
		handler := groupRosterCache.InvalidateOnGroupEvents()
		for _, eventType := range []shared.EventType{
			shared.EventRosterChanged,
			shared.EventGroupConfirmed,
			shared.EventGroupRetired,
		} {
			if err := eventBus.Subscribe(eventType, handler); err != nil {
				return fmt.Errorf("failed to subscribe cache invalidation: %w", err)
			}
		}
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 8. AUTHENTICATION
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("initializing authentication...")

	tokenSecret := cfg.Auth.TokenSecret
	if tokenSecret == "" {
		// Validate() rejects this in production
		log.Warn("AUTH_TOKEN_SECRET not set, using insecure development secret")
		tokenSecret = "development-secret"
	}

	tokenIssuer, err := infraauth.NewJWTIssuer(tokenSecret, cfg.Auth.TokenIssuer)
	if err != nil {
		return fmt.Errorf("failed to create token issuer: %w", err)
	}
	hasher := infraauth.NewBcryptHasher(cfg.Auth.BcryptCost)
	credentials := infraauth.NewRandomGenerator()

	authService := appauth.NewService(personRepo, hasher, tokenIssuer, cfg.Auth.TokenTTL)

	// ─────────────────────────────────────────────────────────────────────────
	// 9. APPLICATION LAYER (Commands, Queries)
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("initializing application layer...")

	createApplicantCmd := command.NewCreateApplicantHandler(personRepo, applicantRepo, studentRepo, hasher, credentials, dbConn, eventBus)
	savePreregistrationCmd := command.NewSavePreregistrationHandler(applicantRepo, formRepo, personRepo, dbConn, eventBus)
	changeApplicantStateCmd := command.NewChangeApplicantStateHandler(applicantRepo, eventBus)
	scheduleInterviewCmd := command.NewScheduleInterviewHandler(applicantRepo, eventBus)
	requestCredentialCmd := command.NewRequestTemporaryCredentialHandler(personRepo, applicantRepo, hasher, credentials, dbConn, eventBus)
	createGroupCmd := command.NewCreateGroupHandler(groupRepo, personRepo, eventBus)
	confirmGroupCmd := command.NewConfirmGroupHandler(groupRepo, studentRepo, dbConn, eventBus)
	removeGroupCmd := command.NewRemoveGroupHandler(groupRepo, studentRepo, dbConn, eventBus)
	assignStudentsCmd := command.NewAssignStudentsHandler(groupRepo, studentRepo, dbConn, eventBus)
	addStudentCmd := command.NewAddStudentHandler(groupRepo, studentRepo, dbConn, eventBus)
	unassignStudentCmd := command.NewUnassignStudentHandler(studentRepo, eventBus)
	recordGradeCmd := command.NewRecordGradeHandler(gradeRepo, achievementRepo, studentRepo, eventBus)
	updateGradeCmd := command.NewUpdateGradeHandler(gradeRepo, eventBus)
	achievementCmd := command.NewAchievementHandler(achievementRepo)
	recordObservationCmd := command.NewRecordObservationHandler(observationRepo, studentRepo, eventBus)
	createSummonsCmd := command.NewCreateSummonsHandler(summonsRepo, personRepo, applicantRepo, eventBus)
	changeSummonsStatusCmd := command.NewChangeSummonsStatusHandler(summonsRepo, eventBus)

	listApplicantsQuery := query.NewListApplicantsHandler(applicantRepo)
	getPreregistrationQuery := query.NewGetPreregistrationHandler(applicantRepo, formRepo)
	listGroupsQuery := query.NewListGroupsHandler(groupRepo)
	var rosterCache query.GroupRosterCache
	if groupRosterCache != nil {
		rosterCache = groupRosterCache
	}
	getGroupRosterQuery := query.NewGetGroupRosterHandler(groupRepo, studentRepo, rosterCache)
	listStudentsQuery := query.NewListStudentsHandler(studentRepo)
	listGradesQuery := query.NewListGradesHandler(gradeRepo, studentRepo)
	listAchievementsQuery := query.NewListAchievementsHandler(achievementRepo)
	listObservationsQuery := query.NewListObservationsHandler(observationRepo)
	listSummonsesQuery := query.NewListSummonsesHandler(summonsRepo)

	var cardCache query.ReportCardCache
	if reportCardCache != nil {
		cardCache = reportCardCache
	}
	getReportCardQuery := query.NewGetReportCardHandler(gradeRepo, studentRepo, cardCache)

	// ─────────────────────────────────────────────────────────────────────────
	// 10. HTTP SERVER
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("initializing HTTP server...")

	httpConfig := httpserver.DefaultConfig()
	httpConfig.ReadTimeout = cfg.HTTP.ReadTimeout
	httpConfig.WriteTimeout = cfg.HTTP.WriteTimeout
	httpConfig.IdleTimeout = cfg.HTTP.IdleTimeout
	if host, port, ok := splitAddr(cfg.HTTP.Addr); ok {
		httpConfig.Host = host
		httpConfig.Port = port
	}

	httpDeps := httpserver.Dependencies{
		AuthService:   authService,
		TokenVerifier: tokenIssuer,

		CreateApplicantHandler:     createApplicantCmd,
		SavePreregistrationHandler: savePreregistrationCmd,
		ChangeApplicantState:       changeApplicantStateCmd,
		ScheduleInterviewHandler:   scheduleInterviewCmd,
		RequestCredentialHandler:   requestCredentialCmd,
		CreateGroupHandler:         createGroupCmd,
		ConfirmGroupHandler:        confirmGroupCmd,
		RemoveGroupHandler:         removeGroupCmd,
		AssignStudentsHandler:      assignStudentsCmd,
		AddStudentHandler:          addStudentCmd,
		UnassignStudentHandler:     unassignStudentCmd,
		RecordGradeHandler:         recordGradeCmd,
		UpdateGradeHandler:         updateGradeCmd,
		AchievementHandler:         achievementCmd,
		RecordObservationHandler:   recordObservationCmd,
		CreateSummonsHandler:       createSummonsCmd,
		ChangeSummonsStatus:        changeSummonsStatusCmd,

		ListApplicantsHandler:     listApplicantsQuery,
		GetPreregistrationHandler: getPreregistrationQuery,
		ListGroupsHandler:         listGroupsQuery,
		GetGroupRosterHandler:     getGroupRosterQuery,
		ListStudentsHandler:       listStudentsQuery,
		ListGradesHandler:         listGradesQuery,
		GetReportCardHandler:      getReportCardQuery,
		ListAchievementsHandler:   listAchievementsQuery,
		ListObservationsHandler:   listObservationsQuery,
		ListSummonsesHandler:      listSummonsesQuery,

		Logger:        setupHTTPLogger(cfg),
		HealthChecker: &healthChecker{db: dbConn, cache: redisCache},
	}

	httpServer := httpserver.NewServer(httpConfig, httpDeps)

	// ─────────────────────────────────────────────────────────────────────────
	// 11. START SERVICES
	// ─────────────────────────────────────────────────────────────────────────
	errCh := make(chan error, 1)

	go func() {
		log.Info("starting HTTP server", "address", httpServer.Address())
		if err := httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// ─────────────────────────────────────────────────────────────────────────
	// 12. GRACEFUL SHUTDOWN
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("Academia Records Hub is running", "http_address", httpServer.Address())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	select {
	case sig := <-sigCh:
		log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		log.Error("service error", "error", err)
		return err
	}

	log.Info("starting graceful shutdown...", "timeout", cfg.App.ShutdownTimeout.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop HTTP server gracefully", "error", err)
		return err
	}

	// Event bus and database close via defers

	log.Info("shutdown completed successfully")
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// HELPERS
// ══════════════════════════════════════════════════════════════════════════════

// setupLogger configures structured logging.
func setupLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if cfg.App.Debug {
		opts.Level = slog.LevelDebug
	}

	if cfg.IsProduction() {
		// JSON format for production log aggregation
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		// Text format reads better in development
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)

	return log
}

// setupHTTPLogger builds the request logger for the HTTP layer. It
// mirrors the slog setup: JSON in production, text in development.
func setupHTTPLogger(cfg *config.Config) *logger.Logger {
	opts := logger.Options{Level: logger.ParseLevel(cfg.Observability.LogLevel), Format: logger.FormatText}
	if cfg.App.Debug {
		opts.Level = logger.LevelDebug
	}
	if cfg.IsProduction() {
		opts.Format = logger.FormatJSON
	}
	return logger.New(opts).With(logger.Component("http"))
}

// splitAddr parses "host:port" or ":port" into its parts.
func splitAddr(addr string) (string, int, bool) {
	host := "0.0.0.0"
	var port int

	idx := -1
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", 0, false
	}
	if idx > 0 {
		host = addr[:idx]
	}
	if _, err := fmt.Sscanf(addr[idx+1:], "%d", &port); err != nil {
		return "", 0, false
	}
	return host, port, true
}

// ══════════════════════════════════════════════════════════════════════════════
// ADAPTERS
// ══════════════════════════════════════════════════════════════════════════════

// healthChecker reports downstream dependency health for probes.
type healthChecker struct {
	db    *postgres.Connection
	cache *redis.Cache
}

// Check implements httpserver.HealthChecker.
func (h *healthChecker) Check(ctx context.Context) httpserver.HealthStatus {
	if err := h.db.Ping(ctx); err != nil {
		return httpserver.HealthStatus{
			Healthy: false,
			Ready:   false,
			Message: fmt.Sprintf("database unreachable: %v", err),
		}
	}

	// Cache is optional; a down cache degrades performance, not health.
	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			return httpserver.HealthStatus{
				Healthy: true,
				Ready:   true,
				Message: "cache unreachable, serving without cache",
			}
		}
	}

	return httpserver.HealthStatus{Healthy: true, Ready: true}
}
