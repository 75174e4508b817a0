package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/backoffice/internal/collection"
	"github.com/kailas-cloud/backoffice/internal/config"
	dbRedis "github.com/kailas-cloud/backoffice/internal/db/redis"
	domcat "github.com/kailas-cloud/backoffice/internal/domain/category"
	domprod "github.com/kailas-cloud/backoffice/internal/domain/product"
	dompromo "github.com/kailas-cloud/backoffice/internal/domain/promotion"
	domsale "github.com/kailas-cloud/backoffice/internal/domain/sale"
	domtx "github.com/kailas-cloud/backoffice/internal/domain/transaction"
	"github.com/kailas-cloud/backoffice/internal/idgen"
	logpkg "github.com/kailas-cloud/backoffice/internal/logger"
	"github.com/kailas-cloud/backoffice/internal/metrics"
	categoryrepo "github.com/kailas-cloud/backoffice/internal/repository/category"
	"github.com/kailas-cloud/backoffice/internal/repository/seed"
	"github.com/kailas-cloud/backoffice/internal/transport/categoryapi"
	chiTransport "github.com/kailas-cloud/backoffice/internal/transport/chi"
	categoryuc "github.com/kailas-cloud/backoffice/internal/usecase/category"
	dashboarduc "github.com/kailas-cloud/backoffice/internal/usecase/dashboard"
	healthuc "github.com/kailas-cloud/backoffice/internal/usecase/health"
	productuc "github.com/kailas-cloud/backoffice/internal/usecase/product"
	promotionuc "github.com/kailas-cloud/backoffice/internal/usecase/promotion"
	saleuc "github.com/kailas-cloud/backoffice/internal/usecase/sale"
	transactionuc "github.com/kailas-cloud/backoffice/internal/usecase/transaction"
	"github.com/kailas-cloud/backoffice/internal/version"
)

// categoryBackend is the remote category collaborator plus its health check.
type categoryBackend interface {
	categoryuc.Backend
	healthuc.Checker
}

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting backoffice API server",
		zap.String("version", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("categories_driver", cfg.Categories.Driver),
	)

	// Register store metrics explicitly (no init())
	metrics.RegisterStoreMetrics()

	dataset, err := seed.Load(cfg.Seed.Path)
	if err != nil {
		logger.Fatal("Failed to load seed dataset", zap.String("path", cfg.Seed.Path), zap.Error(err))
	}

	ctx := logpkg.ContextWithLogger(context.Background(), logger)

	checks := map[string]healthuc.Checker{}
	backend, closeBackend, err := buildCategoryBackend(ctx, cfg, dataset, checks, logger)
	if err != nil {
		logger.Fatal("Failed to create category backend", zap.Error(err))
	}
	defer closeBackend()
	checks["categories"] = backend

	// Stores
	observer := metrics.StoreObserver{}
	categoryStore := collection.New[domcat.Category]("categories", collection.Append).WithObserver(observer)
	productStore := collection.New[domprod.Product]("products", collection.Append).WithObserver(observer)
	saleStore := collection.New[domsale.Sale]("sales", collection.Prepend).WithObserver(observer)
	txStore := collection.New[domtx.Transaction]("transactions", collection.Prepend).WithObserver(observer)
	promoStore := collection.New[dompromo.Promotion]("promotions", collection.Prepend).WithObserver(observer)

	if err := errors.Join(
		productStore.Seed(dataset.Products()),
		saleStore.Seed(dataset.Sales()),
		txStore.Seed(dataset.Transactions()),
		promoStore.Seed(dataset.Promotions()),
	); err != nil {
		logger.Fatal("Invalid seed dataset", zap.Error(err))
	}

	// Create use case services
	categorySvc := categoryuc.New(categoryStore, backend)
	productSvc := productuc.New(productStore, idgen.UUID{}, cfg.Products.LowStockThreshold)
	saleSvc := saleuc.New(saleStore, idgen.NewSequence(domsale.IDPrefix, domsale.IDWidth), time.Now)
	txSvc := transactionuc.New(txStore, idgen.UUID{}, time.Now)
	promoSvc := promotionuc.New(promoStore, idgen.UUID{}, promotionuc.Options{
		ExpiringWindowDays: cfg.Promotions.ExpiringWindowDays,
		RankingLimit:       cfg.Promotions.RankingLimit,
	})

	// Categories start empty when the backend is unreachable; the API keeps serving.
	loadCtx, cancelLoad := context.WithTimeout(ctx, cfg.Categories.Timeout())
	if err := categorySvc.Load(loadCtx); err != nil {
		logger.Warn("Categories not loaded", zap.Error(err))
	} else {
		logger.Info("Categories loaded", zap.Int("count", categoryStore.Len()))
	}
	cancelLoad()

	dashboardSvc := dashboarduc.New(dashboarduc.Sources{
		Categories:   categorySvc,
		Products:     productSvc,
		Sales:        saleSvc,
		Transactions: txSvc,
		Promotions:   promoSvc,
	})
	healthSvc := healthuc.New(checks)

	// Create chi server
	server := chiTransport.NewServer(chiTransport.Services{
		Categories:   categorySvc,
		Products:     productSvc,
		Sales:        saleSvc,
		Transactions: txSvc,
		Promotions:   promoSvc,
		Dashboard:    dashboardSvc,
		Health:       healthSvc,
	}, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	chiTransport.HandlerWithOptions(server, chiTransport.ServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
				Code:    chiTransport.ErrorCodeBadRequest,
				Message: err.Error(),
			})
		},
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildCategoryBackend selects the category collaborator for cfg.Categories.Driver.
// The returned func releases any connection it opened.
func buildCategoryBackend(
	ctx context.Context,
	cfg config.Config,
	dataset *seed.Dataset,
	checks map[string]healthuc.Checker,
	logger *zap.Logger,
) (categoryBackend, func(), error) {
	noop := func() {}

	switch cfg.Categories.Driver {
	case config.DriverHTTP:
		logger.Info("Using remote category service", zap.String("base_url", cfg.Categories.BaseURL))
		return categoryapi.New(categoryapi.Config{
			BaseURL: cfg.Categories.BaseURL,
			Timeout: cfg.Categories.Timeout(),
			Logger:  logger,
		}), noop, nil

	case config.DriverRedis:
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Categories.Addrs,
			Password: cfg.Categories.Password,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("create redis store: %w", err)
		}
		readiness := time.Duration(cfg.Categories.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(ctx, readiness); err != nil {
			store.Close()
			return nil, noop, fmt.Errorf("redis not ready: %w", err)
		}
		logger.Info("Connected to redis", zap.Strings("addrs", cfg.Categories.Addrs))

		repo := categoryrepo.New(store, cfg.Categories.KeyPrefix)
		written, err := repo.Bootstrap(ctx, dataset.Categories())
		if err != nil {
			store.Close()
			return nil, noop, fmt.Errorf("bootstrap categories: %w", err)
		}
		if written > 0 {
			logger.Info("Seeded category keyspace", zap.Int("written", written))
		}
		checks["database"] = healthuc.CheckerFunc(store.Ping)
		return repo, store.Close, nil

	case config.DriverSeed:
		return categoryrepo.NewMemory(dataset.Categories()), noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown categories driver %q", cfg.Categories.Driver)
	}
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.String("path", r.URL.Path),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
						Code:    chiTransport.ErrorCodeInternalError,
						Message: "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
