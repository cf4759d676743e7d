package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jsho982045/orelse2/internal/validation"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondIssues(w http.ResponseWriter, issues []validation.Issue) {
	respondJSON(w, http.StatusBadRequest, map[string]any{
		"error":  "invalid request",
		"issues": issues,
	})
}
