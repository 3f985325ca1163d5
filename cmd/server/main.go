package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"moim/internal/analyzer"
	"moim/internal/analyzer/claude"
	"moim/internal/analyzer/openai"
	"moim/internal/cache"
	"moim/internal/config"
	"moim/internal/extract"
	"moim/internal/handler"
	logpkg "moim/internal/logger"
	"moim/internal/ocr"
	"moim/internal/places"
	"moim/internal/port"
	"moim/internal/repository/postgres"
	"moim/internal/router"
	"moim/internal/service"
	s3storage "moim/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Best effort: local development keeps settings in a .env file.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logpkg.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = logger.Sync() }()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	fileRepo := postgres.NewFileRepo(db)

	// Analysis cache. Redis being down degrades to always-miss, it never
	// blocks startup.
	var cacheStore port.CacheStore
	redisStore := cache.NewRedisStore(&cfg.Redis)
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisStore.Ping(pingCtx); err != nil {
		logger.Warn("redis unreachable, analysis cache disabled", zap.Error(err))
	} else {
		cacheStore = redisStore
	}
	cancel()
	analysisCache := cache.NewAnalysisCache(cacheStore, logger)

	// Object storage is optional; without it uploads simply lose their
	// archive URL.
	var storage port.ObjectStorage
	if cfg.S3.Configured() {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize object storage: %w", err)
		}
	} else {
		logger.Warn("object storage not configured, uploads will not be archived")
	}

	// OCR is optional; without it only .txt uploads succeed.
	var ocrClient port.OCRClient
	if cfg.OCR.Configured() {
		ocrClient = ocr.NewClient(&cfg.OCR)
	} else {
		logger.Warn("ocr service not configured, image and video uploads will be rejected")
	}

	// Structured-reasoning provider.
	analyzer.RegisterProvider("openai", func(c *config.AnalyzerConfig) (port.ChatAnalyzer, error) {
		return openai.NewAnalyzer(c), nil
	})
	analyzer.RegisterProvider("claude", func(c *config.AnalyzerConfig) (port.ChatAnalyzer, error) {
		return claude.NewAnalyzer(c), nil
	})
	llm, err := analyzer.New(&cfg.Analyzer)
	if err != nil {
		return fmt.Errorf("failed to initialize analyzer: %w", err)
	}

	placeClient := places.NewClient(&cfg.Places)
	extractor := extract.NewExtractor(ocrClient, storage, cfg, logger)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	fileSvc := service.NewFileService(fileRepo, extractor, &cfg.S3, logger)
	analysisSvc := service.NewAnalysisService(llm, analysisCache, logger)
	synthesizer := service.NewRouteSynthesizer(placeClient, logger)
	recSvc := service.NewRecommendationService(fileRepo, analysisSvc, synthesizer)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	fileH := handler.NewFileHandler(fileSvc)
	recH := handler.NewRecommendationHandler(recSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, authH, fileH, recH, healthH, logger, cfg.CORS.AllowedOrigins)

	logger.Info("server starting", zap.String("addr", cfg.Server.Port))
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
