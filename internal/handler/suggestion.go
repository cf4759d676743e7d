package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsho982045/orelse2/internal/ctxkeys"
	"github.com/jsho982045/orelse2/internal/service"
	"github.com/jsho982045/orelse2/internal/validation"
)

type suggestionHandler struct {
	suggestionService *service.SuggestionService
}

func NewSuggestionHandler(suggestionService *service.SuggestionService) *suggestionHandler {
	return &suggestionHandler{suggestionService: suggestionService}
}

func (h *suggestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req struct {
		GoalID     string `json:"goalId"`
		Suggestion string `json:"suggestion"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	issues := validation.ValidateSuggestion(req.GoalID, req.Suggestion)
	if len(issues) > 0 {
		respondIssues(w, issues)
		return
	}

	suggestion, err := h.suggestionService.Create(req.GoalID, user.ID, req.Suggestion)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGoalNotFound):
			respondError(w, http.StatusNotFound, "goal not found")
		case errors.Is(err, service.ErrOwnGoalSuggestion):
			respondError(w, http.StatusForbidden, "cannot suggest a consequence for your own goal")
		case errors.Is(err, service.ErrGoalNotActive):
			respondError(w, http.StatusBadRequest, "goal is not active")
		default:
			slog.Error("failed to create suggestion", "error", err, "goal_id", req.GoalID, "user_id", user.ID)
			respondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"suggestion": suggestion})
}
