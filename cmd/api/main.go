package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vet-form/internal/config"
	"vet-form/internal/platform/logger"
	"vet-form/internal/router"
)

// @title vet-form API
// @version 1.0
// @description Backend del formulario de registro de clínicas veterinarias: alta y edición por link, verificación y borrado por content management.
// @BasePath /
func main() {
	config.Load()
	cfg := config.NewServer()

	log := logger.NewFromEnv()
	defer func() { _ = log.Sync() }()

	h, err := router.NewRouter(router.Options{Config: cfg, Logger: log})
	if err != nil {
		log.Error("router setup failed", map[string]any{"error": err})
		os.Exit(1)
	}

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting server", map[string]any{"addr": addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err})
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", map[string]any{"error": err})
	}
	log.Info("server stopped", nil)
}
