package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/textlens/line_ocr_bot/internal/adapters/gemini"
	"github.com/textlens/line_ocr_bot/internal/adapters/line"
	"github.com/textlens/line_ocr_bot/internal/adapters/ocrspace"
	"github.com/textlens/line_ocr_bot/internal/adapters/pdf"
	"github.com/textlens/line_ocr_bot/internal/config"
	delivery "github.com/textlens/line_ocr_bot/internal/delivery/http"
	"github.com/textlens/line_ocr_bot/internal/ports"
	"github.com/textlens/line_ocr_bot/internal/useCases"
)

const (
	envDev  = "dev"
	envProd = "prod"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}
	logger := setupLogger(cfg.Env)

	ctx := context.Background()
	reader, err := newTextReader(ctx, cfg, logger)
	if err != nil {
		logger.Error("OCR reader init failed", "err", err)
		os.Exit(1)
	}

	lineClient := line.NewClient(cfg, logger)
	extractor := pdf.NewExtractor(reader, logger)
	uploadSvc := useCases.NewUploadService(reader, extractor, logger)
	webhookSvc := useCases.NewWebhookService(reader, lineClient, lineClient, cfg.DefaultReplyToken, logger)
	handler := delivery.NewHandler(uploadSvc, webhookSvc, logger)
	router := delivery.NewRouter(handler, logger)

	server := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		// OCR round trips are synchronous; give handlers room to finish.
		WriteTimeout: 120 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", "addr", cfg.ServerAddr(), "ocr_provider", cfg.OCRProvider)
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error("HTTP server error", "err", err)
				os.Exit(1)
			}
			logger.Info("HTTP server closed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
}

func newTextReader(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.TextReader, error) {
	switch cfg.OCRProvider {
	case config.ProviderOCRSpace:
		return ocrspace.NewReader(cfg, logger), nil
	default:
		return gemini.NewReader(ctx, cfg, logger)
	}
}

func setupLogger(env string) *slog.Logger {
	var level slog.Level

	switch env {
	case envProd:
		level = slog.LevelInfo
	case envDev:
		level = slog.LevelDebug
	default:
		level = slog.LevelDebug
	}

	return slog.New(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}),
	)
}
