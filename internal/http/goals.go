package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/fittrackhq/fittrack/internal/service"
	"github.com/fittrackhq/fittrack/pkg/fitsdk"
	"github.com/fittrackhq/fittrack/pkg/httpx"
)

type GoalsHandler struct {
	GoalService *service.GoalService
}

func goalInput(req fitsdk.GoalRequest) service.GoalInput {
	return service.GoalInput{
		Title:        req.Title,
		Description:  req.Description,
		GoalType:     req.GoalType,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
		StartDate:    req.StartDate,
		TargetDate:   req.TargetDate,
		Status:       req.Status,
	}
}

// HandleList returns the user's goals, active first.
//
//	@Summary		List goals
//	@Tags			Goals
//	@Security		SessionCookie
//	@Produce		json
//	@Param			status	query		string	false	"Filter to one status"	Enums(active, completed, abandoned)
//	@Success		200		{array}		fitsdk.Goal
//	@Failure		401		{object}	fitsdk.ErrorResponse	"Not signed in"
//	@Router			/v1/goals [get].
func (h *GoalsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	goals, err := h.GoalService.List(r.Context(), userIDFromContext(r.Context()), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, r, err, "Goal not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toGoals(goals, time.Now()))
}

// HandleCreate records a new goal.
//
//	@Summary		Create a goal
//	@Tags			Goals
//	@Security		SessionCookie
//	@Accept			json
//	@Produce		json
//	@Param			request	body		fitsdk.GoalRequest	true	"Goal"
//	@Success		201		{object}	fitsdk.Goal
//	@Failure		400		{object}	fitsdk.ErrorResponse	"Validation failures"
//	@Router			/v1/goals [post].
func (h *GoalsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req fitsdk.GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.GoalService.Create(r.Context(), userIDFromContext(r.Context()), goalInput(req))
	if err != nil {
		writeServiceError(w, r, err, "Goal not found")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toGoal(goal, time.Now()))
}

// HandleGet returns one goal.
//
//	@Summary		Get a goal
//	@Tags			Goals
//	@Security		SessionCookie
//	@Produce		json
//	@Param			id	path		string	true	"Goal id"
//	@Success		200	{object}	fitsdk.Goal
//	@Failure		404	{object}	fitsdk.ErrorResponse	"Missing or owned by another user"
//	@Router			/v1/goals/{id} [get].
func (h *GoalsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	goal, err := h.GoalService.Get(r.Context(), r.PathValue("id"), userIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "Goal not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toGoal(goal, time.Now()))
}

// HandleUpdate rewrites a goal's fields.
//
//	@Summary		Update a goal
//	@Tags			Goals
//	@Security		SessionCookie
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Goal id"
//	@Param			request	body		fitsdk.GoalRequest	true	"Goal fields"
//	@Success		200		{object}	fitsdk.Goal
//	@Failure		404		{object}	fitsdk.ErrorResponse	"Missing or owned by another user"
//	@Router			/v1/goals/{id} [put].
func (h *GoalsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req fitsdk.GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.GoalService.Update(r.Context(), r.PathValue("id"), userIDFromContext(r.Context()), goalInput(req))
	if err != nil {
		writeServiceError(w, r, err, "Goal not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toGoal(goal, time.Now()))
}

// HandleProgress sets a goal's current value.
//
//	@Summary		Update goal progress
//	@Description	Sets the current value. A goal reaching its target flips to completed automatically.
//	@Tags			Goals
//	@Security		SessionCookie
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Goal id"
//	@Param			request	body		fitsdk.ProgressRequest	true	"New current value"
//	@Success		200		{object}	fitsdk.ProgressResponse
//	@Failure		404		{object}	fitsdk.ErrorResponse	"Missing or owned by another user"
//	@Router			/v1/goals/{id}/progress [post].
func (h *GoalsHandler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	var req fitsdk.ProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, completed, err := h.GoalService.UpdateProgress(r.Context(), r.PathValue("id"), userIDFromContext(r.Context()), req.CurrentValue)
	if err != nil {
		writeServiceError(w, r, err, "Goal not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, fitsdk.ProgressResponse{
		Goal:      toGoal(goal, time.Now()),
		Completed: completed,
	})
}

// HandleDelete removes a goal.
//
//	@Summary		Delete a goal
//	@Tags			Goals
//	@Security		SessionCookie
//	@Param			id	path	string	true	"Goal id"
//	@Success		204	"Deleted"
//	@Failure		404	{object}	fitsdk.ErrorResponse	"Missing or owned by another user"
//	@Router			/v1/goals/{id} [delete].
func (h *GoalsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.GoalService.Delete(r.Context(), r.PathValue("id"), userIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "Goal not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
