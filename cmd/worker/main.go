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
	"github.com/codemedavid/the-peptide-source-ph/internal/catalog/products"
	"github.com/codemedavid/the-peptide-source-ph/internal/checkout"
	jobmetrics "github.com/codemedavid/the-peptide-source-ph/internal/jobs"
	"github.com/codemedavid/the-peptide-source-ph/internal/notify"
	"github.com/codemedavid/the-peptide-source-ph/internal/platform/db"
	"github.com/codemedavid/the-peptide-source-ph/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
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

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect database", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	metrics := jobmetrics.NewMetrics(nil)

	viberBot := &notify.BotAPI{
		Endpoint:  cfg.ViberBotEndpoint,
		Token:     cfg.ViberBotToken,
		Recipient: cfg.ViberNumber,
		Client:    &http.Client{Timeout: 10 * time.Second},
	}

	ordersRepo := checkout.NewRepository(pool)
	notifyJob := jobs.NewOrderNotifyJob(ordersRepo, viberBot, logger, metrics)

	catalogRepo := products.NewRepository(pool)
	stockJob := jobs.NewLowStockScanJob(catalogRepo, logger, metrics)

	stockTask, err := jobs.NewLowStockScanTask(time.Now().UTC())
	if err != nil {
		logger.Error("build stock scan task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskTypeOrderNotify, Handler: notifyJob.Handle},
			{Type: jobs.TaskTypeLowStockScan, Handler: stockJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: "0 1 * * *", Task: stockTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
