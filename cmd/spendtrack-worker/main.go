package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"spendtrack/internal/amqp"
	"spendtrack/internal/chart"
	"spendtrack/internal/config"
	"spendtrack/internal/log"
	"spendtrack/internal/mail"
	"spendtrack/internal/services"
	"spendtrack/internal/sheets"
	gsheet "spendtrack/internal/sheets/google"
	"spendtrack/internal/storage"
	"spendtrack/internal/summary"
	"spendtrack/internal/worker"
)

func main() {
	_ = godotenv.Load()

	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)

	logger.Info("Starting spendtrack-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	if !cfg.MailConfigured() {
		logger.Error("Summary delivery requires SMTP_HOST, MAIL_FROM and MAIL_TO")
		os.Exit(1)
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to open SQLite repository", log.FieldError, err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	sender := mail.NewSender(mail.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
		To:       cfg.MailTo,
		Attempts: cfg.SendAttempts,
	})
	exporter := summary.NewExporter(chart.NewRenderer(), sender)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Spreadsheet backup is optional.
	var backup sheets.ReportWriter
	if cfg.GoogleSpreadsheetID != "" {
		client, err := gsheet.New(ctx, cfg.GoogleSpreadsheetID, cfg.GoogleReportSheet)
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", log.FieldError, err)
			os.Exit(1)
		}
		backup = client
		logger.Info("Report backup enabled", "spreadsheet_id", cfg.GoogleSpreadsheetID)
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", log.FieldError, err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	summaryWorker := worker.NewSummaryWorker(repo, services.NewReportService(repo), exporter, backup, logger, 10)

	// Recover requests whose queue message was lost while we were down.
	if err := summaryWorker.ProcessPendingRequests(ctx); err != nil {
		logger.Error("Startup sweep failed", log.FieldError, err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return amqpClient.ConsumeSummaryRequests(gctx, func(msg *amqp.SummaryRequestMessage) error {
			return summaryWorker.HandleSummaryRequest(gctx, msg)
		})
	})

	g.Go(func() error {
		ticker := time.NewTicker(cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case <-ticker.C:
				if err := summaryWorker.ProcessPendingRequests(gctx); err != nil {
					logger.Error("Periodic sweep failed", log.FieldError, err)
				}
			}
		}
	})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())
		cancel()
	}()

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", log.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Worker shutdown complete")
}
