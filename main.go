package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/oho/hospital-planner-daemon/internal/api"
	"github.com/oho/hospital-planner-daemon/internal/config"
	"github.com/oho/hospital-planner-daemon/internal/server"
)

func main() {
	// Configure structured logging
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	slog.Info("Starting hospital planner daemon...")

	// Load config
	cfg := config.LoadConfig()
	slog.Info("Configuration loaded",
		"host", cfg.Host,
		"port", cfg.Port,
		"max_neighborhoods", cfg.MaxNeighborhoods,
		"optimal_k_cap", cfg.OptimalKPointCap)

	// Build HTTP router
	r := server.NewRouter()

	// Liveness endpoints
	r.Get("/", server.RootHandler())
	r.Get("/health", server.HealthHandler())

	// Clustering API
	r.Mount("/kmeans", api.KMeansRouter(cfg))

	// Start HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 60))
	fmt.Printf("  Hospital Planner Daemon (Go)\n")
	fmt.Printf("  http://%s\n", addr)
	fmt.Printf("  Max neighborhoods: %d\n", cfg.MaxNeighborhoods)
	fmt.Printf("%s\n\n", strings.Repeat("=", 60))

	slog.Info("Daemon ready", "addr", addr)

	// Graceful shutdown on signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(ctx)

	slog.Info("Daemon stopped")
}
