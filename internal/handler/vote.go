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

type voteHandler struct {
	voteService *service.VoteService
}

func NewVoteHandler(voteService *service.VoteService) *voteHandler {
	return &voteHandler{voteService: voteService}
}

func (h *voteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req struct {
		ElseActionID string `json:"elseActionId"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	issues := validation.ValidateVote(req.ElseActionID)
	if len(issues) > 0 {
		respondIssues(w, issues)
		return
	}

	count, err := h.voteService.Cast(user.ID, req.ElseActionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSuggestionNotFound):
			respondError(w, http.StatusNotFound, "suggestion not found")
		case errors.Is(err, service.ErrGoalNotFound):
			respondError(w, http.StatusNotFound, "goal not found")
		case errors.Is(err, service.ErrGoalNotActive):
			respondError(w, http.StatusBadRequest, "goal is not active")
		case errors.Is(err, service.ErrDuplicateVote):
			respondError(w, http.StatusConflict, "you have already voted for this suggestion")
		default:
			slog.Error("failed to cast vote", "error", err, "else_action_id", req.ElseActionID, "user_id", user.ID)
			respondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message":      "vote cast",
		"newVoteCount": count,
	})
}
