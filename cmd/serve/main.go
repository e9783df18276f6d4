// Command serve runs the research assistant web UI.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spetersoncode/scribe"
	"github.com/spetersoncode/scribe/client"
	"github.com/spetersoncode/scribe/internal/store"
	"github.com/spetersoncode/scribe/tool"
	"github.com/spetersoncode/scribe/web"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		zap.NewExample().Fatal("invalid configuration", zap.Error(err))
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		zap.NewExample().Fatal("build logger", zap.Error(err))
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider, err := client.New(ctx, client.Config{
		Provider: scribe.Provider(cfg.Provider),
		APIKey:   cfg.APIKey(),
		Model:    cfg.Model,
	})
	if err != nil {
		log.Fatal("create provider", zap.Error(err))
	}

	registry := tool.NewRegistry()
	search, err := tool.NewWebSearch()
	if err != nil {
		log.Fatal("create search tool", zap.Error(err))
	}
	registry.Add(search, tool.NewWikipedia(), tool.NewSaveText(cfg.SavePath))

	srv := web.New(provider, registry, store.NewMemory(), log,
		web.WithMaxSteps(cfg.MaxSteps))

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening",
			zap.String("addr", httpServer.Addr),
			zap.String("provider", cfg.Provider),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
