package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/Volcanex/kindle-server/internal/config"
	"github.com/Volcanex/kindle-server/internal/content"
	"github.com/Volcanex/kindle-server/internal/feed"
	"github.com/Volcanex/kindle-server/internal/publisher"
	"github.com/Volcanex/kindle-server/internal/scheduler"
	"github.com/Volcanex/kindle-server/internal/service"
	"github.com/Volcanex/kindle-server/internal/storage/postgres"
	"github.com/Volcanex/kindle-server/internal/tester"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	articleStore := postgres.NewArticleStore(db)
	sourceStore := postgres.NewSourceStore(db)
	txManager := postgres.NewTransactionManager(db)

	client := feed.NewClient(cfg.HTTP.UserAgent, logger)
	parser := feed.NewParser()
	extractor := content.NewExtractor()

	feedTester := tester.New(client, parser, extractor, logger)

	aggregator := service.NewAggregator(
		client,
		parser,
		extractor,
		articleStore,
		rabbitMQ,
		logger,
	)

	syncManager := service.NewSyncManager(
		aggregator,
		feedTester,
		articleStore,
		sourceStore,
		rabbitMQ,
		txManager,
		logger,
		cfg.Sync,
	)

	sched := scheduler.NewScheduler(syncManager, cfg.Sync.Interval, cfg.Sync.CleanupDays, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting feed syncer",
		"interval", cfg.Sync.Interval,
		"workers", cfg.Sync.Workers,
		"quality_threshold", cfg.Sync.QualityThreshold,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
