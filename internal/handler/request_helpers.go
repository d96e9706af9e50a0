package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/osse101/GardenIdle_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON body into req and validates it.
// On error the response has already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logRequest(r)

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(LogMsgValidationFailed, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

func logRequest(r *http.Request) *slog.Logger {
	return logger.FromContext(r.Context())
}
