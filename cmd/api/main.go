// @title JP Grammar API
// @version 1.0
// @description Read API over a catalogue of Japanese grammar points, example sentences and vocabulary, with a multiple-choice quiz generator.
// @host localhost:8001
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"jp-grammar/internal/adapter"
	"jp-grammar/internal/cache"
	"jp-grammar/internal/config"
	"jp-grammar/internal/domain"
	"jp-grammar/internal/handler"
	"jp-grammar/internal/logger"
	"jp-grammar/internal/middleware"
	"jp-grammar/internal/repository"
	"jp-grammar/internal/service"
	"jp-grammar/internal/supabase"

	_ "jp-grammar/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger logs every HTTP request with its outcome.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	supabaseClient, err := supabase.New(cfg.Supabase)
	if err != nil {
		appLogger.Fatal("Failed to create storage client", zap.Error(err))
	}

	grammarRepository := repository.NewGrammarRepository(supabaseClient, cfg.Supabase.PointsTable)
	exampleRepository := repository.NewExampleRepository(supabaseClient, cfg.Supabase.ExamplesTable)
	levelRepository := repository.NewLevelRepository(supabaseClient, cfg.Supabase.LevelsTable)
	vocabRepository := repository.NewVocabRepository(supabaseClient, cfg.Supabase.VocabTable, cfg.Supabase.JotobaTable)

	// Redis is optional: without an address the services run uncached.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Redis cache enabled", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Info("No Redis address configured, caching disabled")
	}

	levelService := service.NewLevelService(levelRepository, cacheAdapter, cfg)
	grammarService := service.NewGrammarService(grammarRepository, exampleRepository, cacheAdapter, cfg)
	exampleService := service.NewExampleService(exampleRepository)
	searchService := service.NewSearchService(grammarRepository, exampleRepository)
	vocabService := service.NewVocabService(vocabRepository)
	quizService := service.NewQuizService(grammarRepository, exampleRepository)

	levelHandler := handler.NewLevelHandler(levelService)
	grammarHandler := handler.NewGrammarHandler(grammarService)
	exampleHandler := handler.NewExampleHandler(exampleService)
	searchHandler := handler.NewSearchHandler(searchService)
	vocabHandler := handler.NewVocabHandler(vocabService)
	quizHandler := handler.NewQuizHandler(quizService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/swagger/index.html")
	})

	validationMiddleware := middleware.NewValidationMiddleware()

	apiGroup := app.Group("/api")
	apiGroup.Get("/health", handler.Health)
	apiGroup.Get("/levels", levelHandler.GetLevels)
	apiGroup.Get("/grammar", validationMiddleware.ValidateLevelCode(), grammarHandler.ListGrammar)
	apiGroup.Get("/grammar/:id", grammarHandler.GetGrammar)
	apiGroup.Get("/examples", validationMiddleware.ValidateLevelCode(), exampleHandler.ListExamples)
	apiGroup.Get("/search", validationMiddleware.ValidateSearchQuery(), searchHandler.Search)
	apiGroup.Get("/vocab", vocabHandler.ListVocab)
	apiGroup.Get("/jotoba", vocabHandler.ListJotoba)
	apiGroup.Get("/quiz", quizHandler.GenerateQuiz)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
