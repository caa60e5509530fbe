// huntd — monitor service.
//
// Re-hunts every watched identifier on a cron interval, stores hunt
// history in Postgres and announces newly discovered accounts once via the
// Redis first-seen cache.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/catalog"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/config"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/db"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/hunt"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/scheduler"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/store"
)

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(healthResponse{
		Status:  "ok",
		Service: "huntd",
		Version: "0.1.0",
	})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[huntd] Config error: %v", err)
	}
	if err := cfg.RequireMonitor(); err != nil {
		log.Fatalf("[huntd] Config error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[huntd] Postgres: %v", err)
	}
	defer pool.Close()

	rdb, err := db.ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("[huntd] Redis: %v", err)
	}
	defer rdb.Close()

	cat, err := catalog.New()
	if err != nil {
		log.Fatalf("[huntd] Catalog: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	coord := hunt.NewCoordinator(cat, cfg, logger)

	sched := scheduler.New(store.NewHuntStore(pool), store.NewSeenCache(rdb), coord, cfg.HuntIntervalHours)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("[huntd] Scheduler: %v", err)
	}
	defer sched.Stop()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		log.Printf("[huntd] Listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[huntd] Fatal: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("[huntd] Shutting down")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("[huntd] Shutdown error: %v", err)
	}
}
