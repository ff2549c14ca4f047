package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"hr-dashboard-api/internal/config"
	"hr-dashboard-api/internal/database"
	"hr-dashboard-api/internal/handler"
	"hr-dashboard-api/internal/metrics"
	"hr-dashboard-api/internal/middleware"
	"hr-dashboard-api/internal/model"
	"hr-dashboard-api/internal/repository"
	"hr-dashboard-api/internal/router"
	"hr-dashboard-api/internal/service"
	"hr-dashboard-api/internal/token"
)

type App struct {
	server *http.Server
	db     *database.DB
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	pool := db.Pool
	userRepo := repository.NewUserRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)
	jobOfferRepo := repository.NewJobOfferRepository(pool)
	planningRepo := repository.NewPlanningRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)
	auditRepo := repository.NewAuditRepository(pool)
	slog.Info("database ready")

	if err := seedAdminUser(context.Background(), cfg, userRepo); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed admin user: %w", err)
	}

	codec, err := token.NewCodec(cfg.JWTSecret)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize token codec: %w", err)
	}

	authService, err := service.NewAuthService(codec, userRepo, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}

	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics(registry)

	auditService := service.NewAuditService(auditRepo)
	authMiddleware := middleware.NewAuthMiddleware(codec, m.AuthFailures)
	authHandler := handler.NewAuthHandler(authService, auditService, m)
	employeeHandler := handler.NewEmployeeHandler(service.NewEmployeeService(employeeRepo))
	jobOfferHandler := handler.NewJobOfferHandler(service.NewJobOfferService(jobOfferRepo))
	planningHandler := handler.NewPlanningHandler(service.NewPlanningService(planningRepo))
	dashboardHandler := handler.NewDashboardHandler(service.NewDashboardService(dashboardRepo))
	auditHandler := handler.NewAuditHandler(auditService)
	healthHandler := handler.NewHealthHandler(db)
	docsHandler := handler.NewDocsHandler("./docs/openapi.yaml")

	appRouter := router.New(cfg, m, registry,
		authMiddleware,
		authHandler,
		employeeHandler,
		jobOfferHandler,
		planningHandler,
		dashboardHandler,
		auditHandler,
		healthHandler,
		docsHandler,
	)

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{server: server, db: db}, nil
}

// seedAdminUser provisions the bootstrap admin account on an empty user
// table. Existing installations are left untouched.
func seedAdminUser(ctx context.Context, cfg *config.Config, users *repository.UserRepository) error {
	count, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	admin := model.User{
		ID:           uuid.NewString(),
		Username:     "admin",
		Email:        "admin@hr-dashboard.local",
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	slog.Info("seeded bootstrap admin user", "username", admin.Username)
	return nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a.db.Close()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
