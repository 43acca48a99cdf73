package main

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/dgrollins/monsterdash/pkg/config"
	"github.com/dgrollins/monsterdash/pkg/database"
	"github.com/dgrollins/monsterdash/pkg/dnd5e"
	"github.com/dgrollins/monsterdash/pkg/handlers"
	"github.com/dgrollins/monsterdash/pkg/logging"
	"github.com/dgrollins/monsterdash/pkg/middleware"
	"github.com/dgrollins/monsterdash/pkg/repositories"
	"github.com/dgrollins/monsterdash/pkg/services"
	"github.com/dgrollins/monsterdash/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("version", cfg.Version),
		zap.String("upstream", cfg.Upstream.BaseURL),
		zap.String("database", logging.SanitizeConnectionString(cfg.Database.ConnectionString())))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connStr := cfg.Database.ConnectionString()

	// Migrations run over database/sql; the application pool is pgx-native.
	migrationDB, err := sql.Open("pgx", connStr)
	if err != nil {
		logger.Fatal("Failed to open migration connection", zap.Error(err))
	}
	if err := database.RunMigrations(migrationDB, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	if err := migrationDB.Close(); err != nil {
		logger.Warn("Failed to close migration connection", zap.Error(err))
	}

	db, err := database.NewConnection(ctx, &database.Config{
		URL:            connStr,
		MaxConnections: cfg.Database.MaxConnections,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	client := dnd5e.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout(), logger)

	noteRepo := repositories.NewNoteRepository(db)
	hitPointsRepo := repositories.NewHitPointsRepository(db)
	logRepo := repositories.NewLogRepository(db)

	monsterService := services.NewMonsterService(client, logger)
	noteService := services.NewNoteService(noteRepo, logger)
	hitPointsService := services.NewHitPointsService(hitPointsRepo, logger)
	logService := services.NewLogService(logRepo, logger)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, db, logger).RegisterRoutes(mux)
	handlers.NewMonstersHandler(monsterService, logger).RegisterRoutes(mux)
	handlers.NewNotesHandler(noteService, logger).RegisterRoutes(mux)
	handlers.NewHitPointsHandler(hitPointsService, logger).RegisterRoutes(mux)
	handlers.NewLogsHandler(logService, logger).RegisterRoutes(mux)

	// Serve the dashboard UI for everything the API does not claim.
	distFS, err := fs.Sub(ui.DistFS(), "dist")
	if err != nil {
		logger.Fatal("Failed to open UI filesystem", zap.Error(err))
	}
	mux.Handle("/", http.FileServer(http.FS(distFS)))

	server := &http.Server{
		Addr:              cfg.BindAddr + ":" + cfg.Port,
		Handler:           middleware.RequestLogger(logger)(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting monsterdash",
			zap.String("addr", server.Addr),
			zap.String("version", cfg.Version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
