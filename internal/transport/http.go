// Package transport exposes the operator HTTP API.
package transport

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("encode response", zap.Error(err))
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, logger *zap.Logger, status int, msg string) {
	writeJSON(w, logger, status, errorResponse{Error: msg})
}
