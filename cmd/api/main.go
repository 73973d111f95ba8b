package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/popsorte/draw-backend/api/routes"
	"github.com/popsorte/draw-backend/internal/config"
	"github.com/popsorte/draw-backend/internal/handlers"
	"github.com/popsorte/draw-backend/internal/repositories/memory"
	"github.com/popsorte/draw-backend/internal/services"
	"github.com/popsorte/draw-backend/pkg/sheets"
	"github.com/popsorte/draw-backend/pkg/ticketapi"
	"github.com/popsorte/draw-backend/pkg/transport"
	"golang.org/x/exp/slog"
)

func main() {
	// Load .env if present; real deployments set environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg.LogLevel)

	retryPolicy := transport.RetryPolicy{
		MaxAttempts: cfg.Retry.MaxAttempts,
		BaseDelay:   cfg.Retry.BaseDelay,
		MaxJitter:   cfg.Retry.MaxJitter,
	}

	sheetsClient := sheets.NewClient(cfg.Sheets.EntriesURL, cfg.Sheets.ResultsURL, retryPolicy)
	ticketClient := ticketapi.NewClient(cfg.Ticket.BaseURL, cfg.Ticket.APIKey, cfg.Ticket.MockAPI, retryPolicy)

	entryRepo := memory.NewEntryRepository()
	resultRepo := memory.NewResultRepository()

	// Schedule resolution runs on the sheet server's clock, not the local
	// one, so countdowns agree with the publishing side.
	serverNow := func() time.Time {
		return time.Now().Add(sheetsClient.Offset())
	}

	drawService := services.NewDrawService(serverNow)
	entryService := services.NewEntryService(drawService, ticketClient, cfg.Game.Platforms)
	resultService := services.NewResultService(sheetsClient, entryRepo, resultRepo)
	winnerService := services.NewWinnerService(entryRepo, resultRepo)

	deps := routes.HandlerDependencies{
		ScheduleHandler: handlers.NewScheduleHandler(drawService),
		EntryHandler:    handlers.NewEntryHandler(entryService),
		ResultHandler:   handlers.NewResultHandler(resultService),
		WinnerHandler:   handlers.NewWinnerHandler(winnerService),
	}

	router := routes.SetupRouter(cfg, deps)

	pollCtx, stopPolling := context.WithCancel(context.Background())
	go pollSheets(pollCtx, resultService, cfg.Sheets.PollInterval)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	slog.Info("Server starting", "port", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server")
	stopPolling()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exiting")
}

// pollSheets refreshes the sheet snapshots on a fixed interval, starting
// with one immediate refresh so the API never serves an empty state
// longer than the first fetch takes.
func pollSheets(ctx context.Context, resultService services.ResultService, interval time.Duration) {
	if interval <= 0 {
		interval = 2 * time.Minute
	}
	refresh := func() {
		refreshCtx, cancel := context.WithTimeout(ctx, interval)
		defer cancel()
		if _, err := resultService.Refresh(refreshCtx); err != nil {
			slog.Error("Sheet poll failed", "error", err)
		}
	}

	refresh()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refresh()
		}
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
