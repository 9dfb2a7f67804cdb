package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/sundial-labs/sundial-engine/pkg/apperrors"
	"github.com/sundial-labs/sundial-engine/pkg/catalog"
	"github.com/sundial-labs/sundial-engine/pkg/config"
	"github.com/sundial-labs/sundial-engine/pkg/database"
	"github.com/sundial-labs/sundial-engine/pkg/handlers"
	"github.com/sundial-labs/sundial-engine/pkg/llm"
	"github.com/sundial-labs/sundial-engine/pkg/logging"
	"github.com/sundial-labs/sundial-engine/pkg/middleware"
	"github.com/sundial-labs/sundial-engine/pkg/models"
	"github.com/sundial-labs/sundial-engine/pkg/repositories"
	"github.com/sundial-labs/sundial-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("ai_provider", cfg.AI.Provider),
		zap.Bool("database_enabled", cfg.Database.Enabled))

	ctx := context.Background()

	cat, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}

	client := newLLMClient(cfg, logger)

	defaults := models.Constraints{
		MealTimes: models.MealTimes{
			Breakfast: cfg.Schedule.Breakfast,
			Lunch:     cfg.Schedule.Lunch,
			Dinner:    cfg.Schedule.Dinner,
		},
		SleepTime: cfg.Schedule.SleepTime,
	}

	stackService := services.NewStackService(cat, defaults, logger)
	commentaryService := services.NewCommentaryService(client, cfg.AI.Timeout(), logger)
	analysisService := services.NewAnalysisService(client, cat, cfg.AI.Timeout(), logger)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewStackHandler(stackService, logger).RegisterRoutes(mux)
	handlers.NewCommentaryHandler(commentaryService, logger).RegisterRoutes(mux)
	handlers.NewAnalysisHandler(analysisService, logger).RegisterRoutes(mux)

	handler := middleware.RequestLogger(logger)(mux)

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting sundial-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

// loadCatalog builds the reference catalog, from Postgres when the database
// is enabled and from the compiled-in tables otherwise. A fresh database is
// migrated and seeded before the first load.
func loadCatalog(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*catalog.Catalog, error) {
	if !cfg.Database.Enabled {
		logger.Info("Using built-in catalog")
		return catalog.StaticSource{}.Load(ctx)
	}

	db, err := database.NewConnection(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	if err := database.RunMigrations(db.SQLDB(), cfg.Database.MigrationsPath, logger); err != nil {
		return nil, err
	}

	source := repositories.NewPostgresSource(db, logger)
	if err := source.Seed(ctx); err != nil {
		return nil, err
	}
	return source.Load(ctx)
}

// newLLMClient builds the configured provider client. A missing API key is
// not fatal: commentary and analysis degrade to their deterministic
// fallbacks.
func newLLMClient(cfg *config.Config, logger *zap.Logger) llm.Client {
	client, err := llm.NewFromConfig(&llm.Config{
		Provider:    cfg.AI.Provider,
		Endpoint:    cfg.AI.Endpoint,
		Model:       cfg.AI.Model,
		APIKey:      cfg.AI.APIKey,
		MaxTokens:   cfg.AI.MaxTokens,
		Temperature: cfg.AI.Temperature,
	}, logger)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoProvider) {
			logger.Warn("AI provider not configured, using deterministic fallbacks")
			return nil
		}
		logger.Fatal("Failed to create AI client", zap.Error(err))
	}
	return client
}
