package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/debt-ledger/pkg/api"
	"github.com/chris/debt-ledger/pkg/config"
	"github.com/chris/debt-ledger/pkg/events"
	"github.com/chris/debt-ledger/pkg/handlers"
	"github.com/chris/debt-ledger/pkg/handlers/respond"
	"github.com/chris/debt-ledger/pkg/lock"
	"github.com/chris/debt-ledger/pkg/middleware"
	"github.com/chris/debt-ledger/pkg/photos"
	"github.com/chris/debt-ledger/pkg/service"
	"github.com/chris/debt-ledger/pkg/storage"
	"github.com/chris/debt-ledger/pkg/storage/backend"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Amounts go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	store, closeStore, err := backend.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer closeStore()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	opts := []service.Option{service.WithLocation(loc), service.WithLogger(logger)}

	locker, err := newLocker(ctx, cfg)
	if err != nil {
		return err
	}
	opts = append(opts, service.WithLocker(locker))

	publisher, err := newPublisher(ctx, cfg, store)
	if err != nil {
		return err
	}
	opts = append(opts, service.WithPublisher(publisher))

	photoStore, err := newPhotoStore(ctx, cfg)
	if err != nil {
		return err
	}
	opts = append(opts, service.WithPhotoStore(photoStore))

	svc := service.New(store, opts...)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(middleware.NewStructuredLogger(logger))
	router.Use(chimiddleware.Recoverer)

	if cfg.PhotoBackend == config.PhotosLocal {
		router.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))
	}

	api.HandlerWithOptions(handlers.NewApiHandler(svc), api.ChiServerOptions{
		BaseRouter:       router,
		ErrorHandlerFunc: respond.ParamError,
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "port", cfg.HTTPPort, "storage", cfg.StorageBackend, "events", cfg.EventsBackend, "lock", cfg.LockBackend, "photos", cfg.PhotoBackend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func newLocker(ctx context.Context, cfg *config.Config) (lock.Locker, error) {
	if cfg.LockBackend != config.LockRedis {
		return lock.NewLocalLocker(cfg.LockWait), nil
	}
	client, err := lock.NewRedisClient(ctx, lock.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, err
	}
	return lock.NewRedisLocker(client, cfg.LockTTL, cfg.LockWait), nil
}

func newPublisher(ctx context.Context, cfg *config.Config, store storage.AuditWriter) (events.Publisher, error) {
	switch cfg.EventsBackend {
	case config.EventsSQS:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("unable to load SDK config: %w", err)
		}
		return events.NewSQSPublisher(sqs.NewFromConfig(awsCfg), cfg.SQSQueueURL), nil
	case config.EventsAudit:
		return events.NewAuditPublisher(store), nil
	default:
		return &events.NoOpPublisher{}, nil
	}
}

func newPhotoStore(ctx context.Context, cfg *config.Config) (photos.Store, error) {
	if cfg.PhotoBackend == config.PhotosS3 {
		return photos.NewS3Store(ctx, photos.S3Config{
			Bucket:          cfg.S3.Bucket,
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		})
	}
	return photos.NewLocalStore(cfg.UploadsDir)
}
