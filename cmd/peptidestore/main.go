package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/codemedavid/the-peptide-source-ph/internal/app"
	"github.com/codemedavid/the-peptide-source-ph/internal/auth"
	"github.com/codemedavid/the-peptide-source-ph/internal/cart"
	"github.com/codemedavid/the-peptide-source-ph/internal/catalog/categories"
	"github.com/codemedavid/the-peptide-source-ph/internal/catalog/payments"
	"github.com/codemedavid/the-peptide-source-ph/internal/catalog/products"
	"github.com/codemedavid/the-peptide-source-ph/internal/checkout"
	"github.com/codemedavid/the-peptide-source-ph/internal/observability"
	"github.com/codemedavid/the-peptide-source-ph/internal/platform/cache"
	"github.com/codemedavid/the-peptide-source-ph/internal/platform/db"
	"github.com/codemedavid/the-peptide-source-ph/internal/settings"
	"github.com/codemedavid/the-peptide-source-ph/internal/shared"
	"github.com/codemedavid/the-peptide-source-ph/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionManager := shared.NewSessionManager(redisClient, "peptide_session", cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())

	authRepo := auth.NewRepository(dbpool)
	authService := auth.NewService(authRepo)
	authHandler := auth.NewHandler(logger, authService, sessionManager)

	productsRepo := products.NewCachedRepository(products.NewRepository(dbpool), redisClient, cfg.CatalogTTL)
	productsService := products.NewService(productsRepo)
	productsHandler := products.NewHandler(logger, productsService)

	categoriesService := categories.NewService(categories.NewRepository(dbpool))
	categoriesHandler := categories.NewHandler(logger, categoriesService)

	paymentsService := payments.NewService(payments.NewRepository(dbpool))
	paymentsHandler := payments.NewHandler(logger, paymentsService)

	cartStore := cart.NewStore(redisClient, cfg.CartTTL)
	cartHandler := cart.NewHandler(logger, cartStore, productsService)

	jobsClient := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := jobsClient.Close(); err != nil {
			logger.Warn("jobs client close", slog.Any("error", err))
		}
	}()

	checkoutService := checkout.NewService(
		checkout.NewRepository(dbpool),
		paymentsService,
		cartStore,
		checkout.NewFormatter(),
		jobsClient,
		cfg.ViberNumber,
		logger,
	)
	checkoutHandler := checkout.NewHandler(logger, checkoutService)

	settingsService := settings.NewService(settings.NewRepository(dbpool))
	settingsHandler := settings.NewHandler(logger, settingsService)

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()
	jobHandler := jobs.NewHandler(inspector, logger)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		SessionManager:    sessionManager,
		AuthHandler:       authHandler,
		ProductsHandler:   productsHandler,
		CategoriesHandler: categoriesHandler,
		PaymentsHandler:   paymentsHandler,
		CartHandler:       cartHandler,
		CheckoutHandler:   checkoutHandler,
		SettingsHandler:   settingsHandler,
		JobHandler:        jobHandler,
		Metrics:           metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
