package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/listingone/leadgen/internal/api"
	"github.com/listingone/leadgen/internal/config"
	"github.com/listingone/leadgen/internal/engine"
	"github.com/listingone/leadgen/internal/notify"
	"github.com/listingone/leadgen/internal/responder"
	"github.com/listingone/leadgen/internal/rules"
	"github.com/listingone/leadgen/internal/store"
)

func main() {
	// Local development convenience; absence of a .env file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("LEADGEN_CONFIG"))
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg.Log.Level)

	slog.Info("leadgen starting", "port", cfg.Server.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Rules
	r := rules.Default()
	if cfg.Rules.Path != "" {
		r, err = rules.Load(cfg.Rules.Path)
		if err != nil {
			slog.Error("failed to load rules overlay", "path", cfg.Rules.Path, "error", err)
			os.Exit(1)
		}
		slog.Info("rules overlay loaded", "path", cfg.Rules.Path)
	}

	// Session store
	var st store.Store
	if cfg.Database.URL != "" {
		pg, err := store.NewPostgres(ctx, cfg.Database.URL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pg.Close()
		st = pg
		slog.Info("database connected")
	} else {
		st = store.NewMemory()
		slog.Warn("no database configured — sessions are in-memory only")
	}

	// Lead notifications
	var notifier notify.Notifier = notify.Noop{}
	if cfg.NATS.URL != "" {
		pub, err := notify.NewNATSPublisher(cfg.NATS.URL, cfg.NATS.Token, cfg.Notify.Subject, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer pub.Close()
		notifier = pub
		slog.Info("NATS connected", "url", cfg.NATS.URL, "subject", cfg.Notify.Subject)
	} else {
		slog.Warn("NATS not configured — qualified-lead events are dropped")
	}

	// Responder
	var resp responder.Responder
	if cfg.Anthropic.APIKey != "" {
		resp = responder.NewAnthropic(cfg.Anthropic.APIKey, cfg.Anthropic.Model)
		slog.Info("anthropic responder ready", "model", cfg.Anthropic.Model)
	} else {
		resp = responder.NewStatic()
		slog.Warn("no Anthropic key — using canned stage questions")
	}

	eng := engine.New(st, r, resp, notifier, slog.Default())
	eng.StartSweeper(ctx, cfg.Session.TTL, cfg.Session.SweepInterval)

	srv := api.NewServer(cfg.Server.Port, eng, slog.Default())
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
			cancel()
		}
	}()

	slog.Info("leadgen ready", "port", cfg.Server.Port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
	case <-ctx.Done():
	}
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP shutdown error", "error", err)
	}
	cancel()
	slog.Info("leadgen stopped")
}

func setupLogging(level string) {
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
