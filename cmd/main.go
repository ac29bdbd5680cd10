package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/code-review-relay.net/internal/adapter/jobe"
	"gitlab.com/code-review-relay.net/internal/adapter/logging"
	"gitlab.com/code-review-relay.net/internal/adapter/postgres/templaterepository"
	"gitlab.com/code-review-relay.net/internal/adapter/redis/templateport"
	"gitlab.com/code-review-relay.net/internal/adapter/reviewagent"
	"gitlab.com/code-review-relay.net/internal/adapter/templatefs"
	"gitlab.com/code-review-relay.net/internal/config"
	"gitlab.com/code-review-relay.net/internal/core/ports/primary"
	"gitlab.com/code-review-relay.net/internal/core/ports/secondary"
	"gitlab.com/code-review-relay.net/internal/core/services/review"
	"gitlab.com/code-review-relay.net/internal/core/services/run"
	"gitlab.com/code-review-relay.net/internal/core/services/template"
	logger2 "gitlab.com/code-review-relay.net/internal/global/logger"
	http2 "gitlab.com/code-review-relay.net/internal/http"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sysCfg := config.NewSystemConfig()
	logger := logging.NewZapLogger(sysCfg.DebugMode)
	defer logger.Sync()
	logger.Info("Starting code review relay",
		"sandbox", sysCfg.SandboxConfig.BaseURL,
		"review", sysCfg.ReviewConfig.URL,
		"templates", sysCfg.TemplateConfig.Source)

	ctxBg := context.Background()

	templateSource, closeSource, err := setupTemplateSource(ctxBg, sysCfg, logger)
	if err != nil {
		logger.Error("Failed to set up template source", "error", err)
		os.Exit(1)
	}
	defer closeSource()

	// SECONDARY PORTS
	sandboxClient := jobe.NewClient(
		sysCfg.SandboxConfig.BaseURL,
		&http.Client{Timeout: sysCfg.SandboxConfig.Timeout},
		logger,
	)
	reviewClient := reviewagent.NewClient(
		sysCfg.ReviewConfig.URL,
		&http.Client{Timeout: sysCfg.ReviewConfig.Timeout},
		logger,
	)

	//services
	resolver := template.NewResolver(templateSource, logger)
	runSvc := run.NewRunService(resolver, sandboxClient, logger)
	reviewSvc := review.NewReviewService(runSvc, reviewClient, logger)
	serviceProvider := http2.NewServiceProvider(runSvc, reviewSvc)

	//server
	httpServer := http2.NewServer(sysCfg.ServerConfig.Port, sysCfg.ServerConfig.ServiceName, *serviceProvider, logger)
	if err := httpServer.Init(); err != nil {
		logger.Error("Failed to init http server", "error", err)
		os.Exit(1)
	}
	errCh := make(chan error, 1)
	httpServer.Start(errCh)

	select {
	case <-quit:
	case err := <-errCh:
		logger.Error("Server stopped unexpectedly", "error", err)
	}
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, sysCfg.ServerConfig.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Stop(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("successfully shutdown server")
}

// setupTemplateSource builds the configured template source. The returned
// func releases its connections.
func setupTemplateSource(ctx context.Context, cfg *config.AppConfig, logger primary.Logger) (secondary.TemplateSource, func(), error) {
	builtin := templatefs.New()

	var store secondary.TemplateStore
	closeFn := func() {}

	switch cfg.TemplateConfig.Source {
	case config.TemplateSourceRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisConfig.Url,
			Password: cfg.RedisConfig.Password,
			DB:       cfg.RedisConfig.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			_ = redisClient.Close()
			return nil, closeFn, fmt.Errorf("failed to connect to redis: %w", err)
		}
		store = templateport.NewTemplateRepository(redisClient, logger)
		closeFn = func() { _ = redisClient.Close() }

	case config.TemplateSourcePostgres:
		db, err := setupDatabase(cfg.PostgresConfig.Url)
		if err != nil {
			return nil, closeFn, err
		}
		repo := templaterepository.NewTemplateRepository(db, logger)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, closeFn, err
		}
		store = repo
		closeFn = func() { _ = db.Close() }

	default:
		return builtin, closeFn, nil
	}

	if cfg.TemplateConfig.Seed {
		n, err := template.Seed(ctx, builtin, store, logger)
		if err != nil {
			closeFn()
			return nil, func() {}, err
		}
		logger.Info("Template store seeded", "copied", n)
	}
	return store, closeFn, nil
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(connStr string) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// InitReader loads <env>.env when an environment name is passed as the
// first argument. Without one the process environment is used as is.
func InitReader() {
	if len(os.Args) < 2 {
		logger2.Warn("No env supplied in argument, using process environment")
		return
	}

	environment := os.Args[1]
	if err := godotenv.Load(environment + ".env"); err != nil {
		logger2.Error("Error loading env file", "file", environment+".env", "error", err)
		os.Exit(1)
	}
}
