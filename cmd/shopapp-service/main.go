package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopapp/shopapp-backend/internal/api"
	"github.com/shopapp/shopapp-backend/internal/config"
	"github.com/shopapp/shopapp-backend/internal/health"
	"github.com/shopapp/shopapp-backend/internal/platform/factory"
	"github.com/shopapp/shopapp-backend/internal/platform/logger"
)

func main() {
	log := logger.New("shopapp-backend")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("db_driver", cfg.DBDriver).
		Int("http_port", cfg.HTTPPort).
		Msg("Shopapp backend starting…")

	runCtx, cancelRun := context.WithCancel(context.Background())
	defer cancelRun()

	st, err := factory.NewStore(runCtx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Store driver unavailable")
	}

	var healthSrc health.Source
	if p, ok := st.(health.HealthPinger); ok {
		checker := health.NewStoreChecker(p, log, time.Duration(cfg.HealthProbeTimeoutSeconds)*time.Second)
		go checker.Start(runCtx, time.Duration(cfg.HealthIntervalSeconds)*time.Second)
		healthSrc = checker
	}

	router := api.NewRouter(st, healthSrc)
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server…")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
