package tripplanner

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

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/theoremus-urban-solutions/trip-planner/config"
	"github.com/theoremus-urban-solutions/trip-planner/network"
	"github.com/theoremus-urban-solutions/trip-planner/planner"
)

var (
	server    *http.Server
	snap      *network.Snapshot
	trip      *planner.Planner
	responses *responseCache
	dataPath  string
)

// StartServer wires the HTTP surface over an already-loaded network
// snapshot and begins serving in the background.
func StartServer(cfg config.AppConfig, s *network.Snapshot) {
	snap = s
	dataPath = cfg.Network.DataPath
	trip = planner.New(snap, planner.Options{
		TaxiSpeedKmh:    cfg.Planner.TaxiSpeedKmh,
		WalkingSpeedKmh: cfg.Planner.WalkingSpeedKmh,
	})
	responses = newResponseCache(
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		time.Duration(cfg.Cache.CleanupIntervalSeconds)*time.Second,
	)

	r := mux.NewRouter()
	r.HandleFunc("/api/health", handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/stops", handleStops).Methods(http.MethodGet)
	r.HandleFunc("/api/stops/nearest", handleNearestStop).Methods(http.MethodPost)
	r.HandleFunc("/api/stops/{id}", handleStopByID).Methods(http.MethodGet)
	r.HandleFunc("/api/plan", handlePlan).Methods(http.MethodPost)
	r.HandleFunc("/api/reload", handleReload).Methods(http.MethodPost)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server = &http.Server{
		Addr:              addr,
		Handler:           c.Handler(r),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}

// handleReload rebuilds the network from the data file and swaps the
// snapshot atomically. In-flight requests finish on the old graph; the
// response cache is flushed so stale plans are not served.
func handleReload(w http.ResponseWriter, r *http.Request) {
	g, tariff, err := network.LoadNetworkFile(dataPath)
	if err != nil {
		log.Printf("reload failed: %v", err)
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	snap.Swap(g, tariff)
	responses.flush()
	log.Printf("network reloaded: %d stops", g.Len())
	writeJSON(w, http.StatusOK, map[string]any{"status": "reloaded", "stops": g.Len()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
