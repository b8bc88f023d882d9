// jobmate-recruit-service
//
// State engine for the recruiter dashboard: job posting orders, per-order
// candidate profiles, derived board views, the simulated AI-analysis
// workflow, and the deadline sweep. State is held in memory and mirrored to
// Redis; lifecycle events go out on Redis pub/sub for Gateway SSE forward.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobmate/recruit-service/internal/analysis"
	"jobmate/recruit-service/internal/config"
	"jobmate/recruit-service/internal/dashboard"
	"jobmate/recruit-service/internal/db"
	"jobmate/recruit-service/internal/events"
	"jobmate/recruit-service/internal/scheduler"
	"jobmate/recruit-service/internal/store"
)

const version = "1.0.0"

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[recruit-service] Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── Redis ────────────────────────────────────────────────────────────────
	log.Println("[recruit-service] Connecting to Redis…")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("[recruit-service] Redis: %v", err)
	}
	defer rdb.Close()
	log.Println("[recruit-service] Redis connected ✓")

	// ── Engine ───────────────────────────────────────────────────────────────
	engine := dashboard.NewEngine(ctx,
		store.NewRedisStore(rdb),
		analysis.NewSimulator(time.Duration(cfg.AnalysisDelaySeconds)*time.Second),
		events.NewRedisPublisher(rdb),
	)
	defer engine.Close()

	// ── Deadline sweep ───────────────────────────────────────────────────────
	sched := scheduler.New(engine, cfg.SweepIntervalMinutes)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("[recruit-service] Scheduler: %v", err)
	}
	defer sched.Stop()

	// ── HTTP server ──────────────────────────────────────────────────────────
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	dashboard.NewHandler(engine).RegisterRoutes(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[recruit-service] v%s listening on :%s", version, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[recruit-service] HTTP server error: %v", err)
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[recruit-service] Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[recruit-service] Shutdown error: %v", err)
	}
	log.Println("[recruit-service] Stopped.")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "recruit-service",
		"version": version,
	})
}
