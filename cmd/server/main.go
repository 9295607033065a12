package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prasetyo-dev/boolsearch/internal/analyzer"
	"github.com/prasetyo-dev/boolsearch/internal/cache"
	"github.com/prasetyo-dev/boolsearch/internal/corpus"
	"github.com/prasetyo-dev/boolsearch/internal/ingest"
	"github.com/prasetyo-dev/boolsearch/internal/server"
	"github.com/prasetyo-dev/boolsearch/internal/storage"
	"github.com/prasetyo-dev/boolsearch/pkg/config"
	"github.com/prasetyo-dev/boolsearch/pkg/health"
	"github.com/prasetyo-dev/boolsearch/pkg/kafka"
	"github.com/prasetyo-dev/boolsearch/pkg/logger"
	"github.com/prasetyo-dev/boolsearch/pkg/metrics"
	"github.com/prasetyo-dev/boolsearch/pkg/postgres"
	pkgredis "github.com/prasetyo-dev/boolsearch/pkg/redis"
	"github.com/prasetyo-dev/boolsearch/pkg/resilience"
)

func main() {
	configPath := flag.String("config", "configs/development.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("starting boolean retrieval service", "port", cfg.Server.Port)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	if cfg.Metrics.Enabled {
		shutdownMetrics := metrics.StartServer(cfg.Metrics.Port)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			shutdownMetrics(shutdownCtx)
		}()
	}

	a := analyzer.New()
	engine, err := openEngine(ctx, cfg, a)
	if err != nil {
		slog.Error("failed to open storage engine", "error", err)
		os.Exit(1)
	}
	defer engine.Close()

	if cfg.Corpus.Path != "" {
		if err := seedCorpus(ctx, cfg.Corpus.Path, engine, m); err != nil {
			slog.Warn("corpus load skipped", "path", cfg.Corpus.Path, "error", err)
		}
	}

	var queryCache *cache.QueryCache
	var redisClient *pkgredis.Client
	if cfg.Redis.Enabled {
		redisClient, err = pkgredis.NewClient(cfg.Redis)
		if err != nil {
			slog.Warn("redis unavailable, query caching disabled", "error", err)
		} else {
			defer redisClient.Close()
			queryCache = cache.New(redisClient, cfg.Redis)
			slog.Info("query cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.CacheTTL)
		}
	}

	service := server.NewService(engine, a, queryCache, m)
	if err := service.Rebuild(ctx); err != nil {
		slog.Error("initial index build failed", "error", err)
		os.Exit(1)
	}

	if cfg.Kafka.Enabled {
		rebuilds := make(chan struct{}, 1)
		handler := ingest.HandleDocumentEvent(engine, func(int) {
			select {
			case rebuilds <- struct{}{}:
			default:
			}
		})
		consumer := kafka.NewConsumer(cfg.Kafka, cfg.Kafka.Topics.DocumentIngest, handler)
		go func() {
			if err := consumer.Start(ctx); err != nil {
				slog.Error("document consumer error", "error", err)
			}
		}()
		go rebuildLoop(ctx, service, rebuilds)
		slog.Info("document consumer started", "topic", cfg.Kafka.Topics.DocumentIngest)
	}

	checker := health.NewChecker()
	checker.Register("storage_engine", func(ctx context.Context) health.ComponentHealth {
		count, err := engine.Count(ctx)
		if err != nil {
			return health.ComponentHealth{Status: health.StatusDown, Message: err.Error()}
		}
		return health.ComponentHealth{Status: health.StatusUp, Message: fmt.Sprintf("%d documents", count)}
	})
	checker.Register("index", func(ctx context.Context) health.ComponentHealth {
		if !service.Ready() {
			return health.ComponentHealth{Status: health.StatusDown, Message: "index not built"}
		}
		docs, vocab, _, _ := service.IndexInfo()
		return health.ComponentHealth{
			Status:  health.StatusUp,
			Message: fmt.Sprintf("%d documents, %d terms", docs, vocab),
		}
	})
	if redisClient != nil {
		checker.Register("redis", func(ctx context.Context) health.ComponentHealth {
			if err := redisClient.Ping(ctx); err != nil {
				return health.ComponentHealth{Status: health.StatusDegraded, Message: err.Error()}
			}
			return health.ComponentHealth{Status: health.StatusUp}
		})
	}

	handler := server.NewHandler(service, cfg.Search.DefaultLimit, cfg.Search.MaxResults)
	router := server.NewRouter(handler, checker, m, cfg.Server.RequestTimeout)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		slog.Info("http server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}
	slog.Info("shutdown complete")
}

// openEngine connects the configured storage engine, retrying transient
// connection failures for the Postgres case.
func openEngine(ctx context.Context, cfg *config.Config, a *analyzer.Analyzer) (storage.Engine, error) {
	if !cfg.Postgres.Enabled {
		slog.Info("using in-memory storage engine")
		return storage.NewMemoryEngine(a), nil
	}

	var client *postgres.Client
	err := resilience.Retry(ctx, "postgres-connect", resilience.RetryConfig{MaxAttempts: 5}, func() error {
		var connErr error
		client, connErr = postgres.New(cfg.Postgres)
		return connErr
	})
	if err != nil {
		return nil, err
	}
	slog.Info("using postgres storage engine", "host", cfg.Postgres.Host, "database", cfg.Postgres.Database)
	return storage.NewPostgresEngine(ctx, client, a)
}

// seedCorpus loads a JSONL collection into the engine when one is
// configured. Missing files are not fatal; ingestion may happen over Kafka
// instead.
func seedCorpus(ctx context.Context, path string, engine storage.Engine, m *metrics.Metrics) error {
	docs, skipped, err := corpus.LoadFile(path)
	if err != nil {
		return err
	}
	if err := engine.Store(ctx, docs); err != nil {
		return err
	}
	m.DocsStoredTotal.Add(float64(len(docs)))
	m.SkippedRecordsTotal.Add(float64(skipped))
	slog.Info("corpus loaded", "path", path, "documents", len(docs), "skipped", skipped)
	return nil
}

// rebuildLoop debounces rebuild requests from the ingest consumer so a
// burst of documents triggers one index build.
func rebuildLoop(ctx context.Context, service *server.Service, rebuilds <-chan struct{}) {
	const quiet = 2 * time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-rebuilds:
		}

		timer := time.NewTimer(quiet)
	drain:
		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-rebuilds:
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(quiet)
			case <-timer.C:
				break drain
			}
		}

		if err := service.Rebuild(ctx); err != nil {
			slog.Error("index rebuild failed", "error", err)
		}
	}
}
