package handler

import (
	"context"
	"net/http"

	"github.com/nvales/watchdex/internal/api/response"
)

// Pinger checks a backing store connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck reports process liveness
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]any{"status": "ok"})
}

// ReadyCheck reports whether the backing stores are reachable
func ReadyCheck(stores ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, store := range stores {
			if err := store.Ping(r.Context()); err != nil {
				response.Error(w, http.StatusServiceUnavailable, "not ready")
				return
			}
		}
		response.OK(w, map[string]any{"status": "ready"})
	}
}
