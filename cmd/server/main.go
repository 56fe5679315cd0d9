package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VoidMesh/density/internal/api"
	"github.com/VoidMesh/density/internal/biome"
	"github.com/VoidMesh/density/internal/config"
	"github.com/VoidMesh/density/internal/logging"
	"github.com/VoidMesh/density/internal/noise"
	"github.com/VoidMesh/density/internal/sampler"
	"github.com/VoidMesh/density/internal/store"
	"github.com/VoidMesh/density/internal/world"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.GetLogger().Fatal("Failed to load configuration", "error", err)
	}

	// Setup logging
	logging.Configure(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Prefix: "[density] ",
	})
	log := logging.GetLogger()
	log.Debug("Configuration loaded", "server_port", cfg.Server.Port, "store_driver", cfg.Store.Driver, "store_path", cfg.Store.Path, "log_level", cfg.Logging.Level)

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", "error", err)
	}

	// Initialize store
	st, err := store.Open(cfg.Store, logging.NewDefaultLoggerWrapper())
	if err != nil {
		log.Fatal("Failed to open snapshot store", "error", err)
	}
	defer st.Close()

	// Initialize generation pipeline
	gen := cfg.Generation
	src, err := noise.New(noise.Kind(gen.NoiseKind), gen.Seed)
	if err != nil {
		log.Fatal("Failed to create noise source", "error", err)
	}
	classifier := biome.NewCached(biome.NewClassifier(src, gen.BiomeScale))
	w := world.New(gen.WorldName, gen.Seed)

	svc, err := sampler.NewServiceWithDefaultLogger(sampler.Options{
		Mode:       cfg.InterpMode(),
		World:      w,
		Classifier: classifier,
		Source:     src,
		Workers:    gen.Workers,
	})
	if err != nil {
		log.Fatal("Failed to create sampler", "error", err)
	}
	log.Info("Generation pipeline ready", "world", w, "noise", gen.NoiseKind, "mode", svc.Mode(), "workers", gen.Workers)

	// Start background services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Store.Retention > 0 {
		go startPruning(ctx, st, cfg.Store.Retention, cfg.Store.PruneInterval)
	}

	// Initialize API handlers
	handler := api.NewHandler(svc, st, logging.NewDefaultLoggerWrapper())
	router := api.SetupRoutes(handler, cfg.Server.RequestTimeout)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Starting density server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", "error", err)
		}
		log.Debug("Server stopped listening")
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info("Shutting down server...", "signal", sig.String())
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	} else {
		log.Debug("Server shutdown completed gracefully")
	}

	log.Info("Server exited")
}

func startPruning(ctx context.Context, st store.Store, retention, interval time.Duration) {
	log := logging.GetLogger()
	log.Debug("Starting snapshot pruning ticker", "interval", interval, "retention", retention)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Background services stopped")
			return

		case <-ticker.C:
			_, _ = pruneOnce(ctx, st, retention)
		}
	}
}

// pruneOnce removes snapshots older than retention and reports how many went.
func pruneOnce(ctx context.Context, st store.Store, retention time.Duration) (int, error) {
	start := time.Now()
	removed, err := st.PruneBefore(ctx, start.Add(-retention))
	log := logging.WithDuration("prune", time.Since(start))
	if err != nil {
		log.Error("Failed to prune snapshots", "error", err)
		return 0, err
	}
	log.Debug("Pruned expired snapshots", "removed", removed)
	return removed, nil
}
