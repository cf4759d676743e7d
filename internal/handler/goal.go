package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsho982045/orelse2/internal/ctxkeys"
	"github.com/jsho982045/orelse2/internal/model"
	"github.com/jsho982045/orelse2/internal/service"
	"github.com/jsho982045/orelse2/internal/validation"
)

const publicGoalsLimit = 20

type goalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *goalHandler {
	return &goalHandler{goalService: goalService}
}

// goalView decorates a goal with its read-time status for list responses.
type goalView struct {
	*model.Goal
	EffectiveStatus string `json:"effectiveStatus"`
}

func (h *goalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req struct {
		Description string `json:"description"`
		Deadline    string `json:"deadline"`
		IsPublic    *bool  `json:"isPublic"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	deadline, issues := validation.ValidateGoal(req.Description, req.Deadline)
	if len(issues) > 0 {
		respondIssues(w, issues)
		return
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	goal, err := h.goalService.Create(user.ID, req.Description, deadline, isPublic)
	if err != nil {
		if errors.Is(err, service.ErrGoalLimitReached) {
			respondError(w, http.StatusForbidden, "active goal limit reached, upgrade to supporter for unlimited goals")
			return
		}
		slog.Error("failed to create goal", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"goal": goal})
}

func (h *goalHandler) MarkComplete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("goalId")

	var req struct {
		Status string `json:"status"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The only transition a client may request is ACTIVE -> COMPLETED.
	if req.Status != model.GoalStatusCompleted {
		respondIssues(w, []validation.Issue{{Path: "status", Message: "status must be COMPLETED"}})
		return
	}

	goal, err := h.goalService.MarkComplete(goalID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGoalNotFound):
			respondError(w, http.StatusNotFound, "goal not found")
		case errors.Is(err, service.ErrNotGoalAuthor):
			respondError(w, http.StatusForbidden, "only the author can complete a goal")
		case errors.Is(err, service.ErrGoalNotActive):
			respondError(w, http.StatusBadRequest, "goal is not active")
		default:
			slog.Error("failed to mark goal complete", "error", err, "goal_id", goalID, "user_id", user.ID)
			respondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"goal": goal})
}

func (h *goalHandler) PublicGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goalService.PublicGoals(publicGoalsLimit)
	if err != nil {
		slog.Error("failed to list public goals", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	now := time.Now()
	views := make([]goalView, 0, len(goals))
	for _, goal := range goals {
		views = append(views, goalView{Goal: goal, EffectiveStatus: goal.EffectiveStatus(now)})
	}

	respondJSON(w, http.StatusOK, map[string]any{"goals": views})
}

func (h *goalHandler) Detail(w http.ResponseWriter, r *http.Request) {
	goalID := r.PathValue("goalId")

	viewerID := ""
	if user := ctxkeys.User(r.Context()); user != nil {
		viewerID = user.ID
	}

	detail, err := h.goalService.GoalWithSuggestions(goalID, viewerID, time.Now())
	if err != nil {
		if errors.Is(err, service.ErrGoalNotFound) {
			respondError(w, http.StatusNotFound, "goal not found")
			return
		}
		slog.Error("failed to load goal", "error", err, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

func (h *goalHandler) MyGoals(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	summaries, err := h.goalService.GoalsByAuthor(user.ID, time.Now())
	if err != nil {
		slog.Error("failed to list goals", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"goals": summaries})
}
