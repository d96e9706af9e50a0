package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/GardenIdle_Go/internal/domain"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// OutcomeResponse reports the result of a garden command
type OutcomeResponse struct {
	Outcome domain.Outcome `json:"outcome"`
	Error   string         `json:"error,omitempty"`
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// statusForOutcome maps a command outcome to an HTTP status
func statusForOutcome(o domain.Outcome) int {
	switch o {
	case domain.OutcomeOK:
		return http.StatusOK
	case domain.OutcomePlotOutOfRange:
		return http.StatusBadRequest
	case domain.OutcomeUnknownPlant, domain.OutcomeUnknownUpgrade:
		return http.StatusNotFound
	case domain.OutcomePlantLocked:
		return http.StatusForbidden
	case domain.OutcomePlotOccupied, domain.OutcomePlotEmpty, domain.OutcomeInsufficientFunds,
		domain.OutcomeMaxLevel, domain.OutcomeNotEligible, domain.OutcomeNothingPending:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondOutcome writes a failed outcome as an error, or payload on success
func respondOutcome(w http.ResponseWriter, r *http.Request, o domain.Outcome, payload interface{}) {
	if !o.OK() {
		logRequest(r).Info(LogMsgCommandRejected, "outcome", o)
		respondJSON(w, statusForOutcome(o), OutcomeResponse{Outcome: o, Error: o.Err().Error()})
		return
	}
	if payload == nil {
		payload = OutcomeResponse{Outcome: o}
	}
	respondJSON(w, http.StatusOK, payload)
}
