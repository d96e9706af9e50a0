package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/GardenIdle_Go/internal/garden"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// readinessTimeout bounds how long the loop may take to answer a probe
const readinessTimeout = 2 * time.Second

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz reports ready when the garden loop answers a no-op command
func HandleReadyz(runner Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := runner.Do(ctx, func(*garden.Engine) {}); err != nil {
			logRequest(r).Error(LogMsgReadinessFailed, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: ErrMsgNotReady,
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
