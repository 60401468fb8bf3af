package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"hirelens/internal/analysis"
	"hirelens/internal/cache"
	"hirelens/internal/config"
	"hirelens/internal/interview"
	"hirelens/internal/logger"
	"hirelens/internal/question"
	"hirelens/internal/repository"
	"hirelens/internal/scoring"
	"hirelens/internal/service"
	"hirelens/internal/skills"
	"hirelens/internal/transport/rest"
)

// Actual version can be specified in the build command.
var version = "unknown"

func main() {
	rootCmd := &cobra.Command{
		Use:   "hirelens",
		Short: "Candidate evaluation service: interviews, scoring and integrity analysis",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(_ *cobra.Command, _ []string) error {
			return serve()
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("hirelens version: %s\n", version)
		},
	}

	rootCmd.AddCommand(serveCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	// MongoDB
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return fmt.Errorf("connect mongodb: %w", err)
	}
	defer func() { _ = mongoClient.Disconnect(ctx) }()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		return fmt.Errorf("ping mongodb: %w", err)
	}
	log.Info("connected to mongodb")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer func() { _ = rdb.Close() }()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	log.Info("connected to redis")

	// Repositories and caches
	candidateRepo := repository.NewCandidateRepo(db)
	sessionRepo := repository.NewSessionRepo(db)
	recRepo := repository.NewRecommendationRepo(db)
	sessionCache := cache.NewSessionCache(rdb)
	reportCache := cache.NewReportCache(rdb)

	// Scoring core
	policy := analysis.DefaultPolicy()
	policy.EmptySessionHonesty = cfg.EmptySessionHonesty
	integrity := analysis.NewIntegrityAnalyzer(policy, log)
	technical := scoring.NewTechnicalScorer(log)

	// Services
	notifier := service.NewLogNotifier(log)
	evaluator := service.NewEvaluationService(integrity, technical, recRepo, reportCache, notifier, log)
	summaries := service.NewSummaryService(recRepo, log)

	// Interview flow
	bank := question.NewBank()
	selector := question.NewSelector(bank, rand.New(rand.NewSource(time.Now().UnixNano())), log)
	manager := interview.NewManager(sessionRepo, sessionCache, log)

	router := rest.NewRouter(&rest.Container{
		CandidateRepo: candidateRepo,
		Extractor:     skills.NewExtractor(),
		Selector:      selector,
		Manager:       manager,
		Evaluator:     evaluator,
		Summaries:     summaries,
		AuthToken:     cfg.AuthToken,
		MaxQuestions:  cfg.MaxQuestions,
		Log:           log,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}

	log.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server exited")
	return nil
}
