package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hocs-app/hocs/internal/alerting"
	"github.com/hocs-app/hocs/internal/auth"
	"github.com/hocs-app/hocs/internal/metrics"
	"github.com/hocs-app/hocs/internal/notification"
	"github.com/hocs-app/hocs/internal/opportunity"
	"github.com/hocs-app/hocs/internal/programs"
	"github.com/hocs-app/hocs/internal/property"
	"github.com/hocs-app/hocs/internal/storage"
	"github.com/hocs-app/hocs/internal/utility"
)

const apiVersion = "1.0.0"

// Deps carries everything the HTTP layer needs. main wires it up once.
type Deps struct {
	Storage    storage.Storage
	Resolver   *utility.Resolver
	Catalog    *programs.Catalog
	Generator  *property.Generator
	Engine     *opportunity.Engine
	Notifier   *notification.Service
	Auth       *auth.Service
	Alerts     *alerting.Service
	SessionTTL time.Duration
}

// NewMux constructs the HTTP mux, wiring in the lookup pipeline, metrics,
// health endpoints, and the admin surface.
func NewMux(deps Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Metrics endpoint.
	mux.Handle("/metrics", promhttp.Handler())

	// Health / readiness / liveness.
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		database := "connected"
		if err := deps.Storage.Ping(r.Context()); err != nil {
			database = "error: " + err.Error()
		}
		writeJSON(w, map[string]string{
			"status":    "ok",
			"database":  database,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Storage.Ping(r.Context()); err != nil {
			log.Printf("readyz: db ping failed: %v", err)
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	mux.HandleFunc("/livez", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("live"))
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, map[string]string{
			"message": "HOCS Backend API",
			"version": apiVersion,
		})
	})

	registerPropertyRoutes(mux, deps)
	registerSessionRoutes(mux, deps)
	registerUtilityRoutes(mux, deps)
	if deps.Auth != nil {
		registerNotificationRoutes(mux, deps.Auth, deps.Notifier, deps.Storage)
	}
	registerSwagger(mux)

	return mux
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response failed: %v", err)
	}
}

func writeError(w http.ResponseWriter, endpoint, msg string, code int) {
	metrics.RequestErrorsTotal.WithLabelValues(endpoint, http.StatusText(code)).Inc()
	http.Error(w, msg, code)
}

// instrument records request count and duration for an endpoint label.
func instrument(endpoint string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		metrics.RequestsTotal.WithLabelValues(endpoint).Inc()
		defer func() {
			metrics.RequestDurationSeconds.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		}()
		h(w, r)
	}
}
