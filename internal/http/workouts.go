package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fittrackhq/fittrack/internal/service"
	"github.com/fittrackhq/fittrack/pkg/fitsdk"
	"github.com/fittrackhq/fittrack/pkg/httpx"
)

type WorkoutsHandler struct {
	WorkoutService *service.WorkoutService
}

func workoutInput(req fitsdk.WorkoutRequest) service.WorkoutInput {
	return service.WorkoutInput{
		Name:            req.Name,
		WorkoutDate:     req.WorkoutDate,
		DurationMinutes: req.DurationMinutes,
		TotalCalories:   req.TotalCalories,
		Notes:           req.Notes,
		Rating:          req.Rating,
	}
}

func entryInput(req fitsdk.EntryRequest) service.EntryInput {
	return service.EntryInput{
		ExerciseID:      req.ExerciseID,
		Sets:            req.Sets,
		Reps:            req.Reps,
		WeightKg:        req.WeightKg,
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  req.CaloriesBurned,
		Notes:           req.Notes,
	}
}

// HandleList returns one page of the user's workout history.
//
//	@Summary		List workouts
//	@Tags			Workouts
//	@Security		SessionCookie
//	@Produce		json
//	@Param			page	query		int	false	"Page number (10 per page)"	default(1)
//	@Success		200		{object}	fitsdk.WorkoutList
//	@Failure		401		{object}	fitsdk.ErrorResponse	"Not signed in"
//	@Router			/v1/workouts [get].
func (h *WorkoutsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	result, err := h.WorkoutService.List(r.Context(), userIDFromContext(r.Context()), page)
	if err != nil {
		writeServiceError(w, r, err, "Workout not found")
		return
	}

	out := fitsdk.WorkoutList{
		Workouts:   make([]fitsdk.Workout, 0, len(result.Workouts)),
		Page:       result.Page,
		TotalPages: result.TotalPages,
		Total:      result.TotalCount,
	}
	for _, s := range result.Workouts {
		out.Workouts = append(out.Workouts, toWorkout(s.Workout, s.ExerciseCount))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate logs a new workout.
//
//	@Summary		Log a workout
//	@Description	Creates a workout, optionally with its initial exercise entries, in one transaction.
//	@Tags			Workouts
//	@Security		SessionCookie
//	@Accept			json
//	@Produce		json
//	@Param			request	body		fitsdk.WorkoutRequest	true	"Workout"
//	@Success		201		{object}	fitsdk.WorkoutDetail
//	@Failure		400		{object}	fitsdk.ErrorResponse	"Validation failures"
//	@Failure		401		{object}	fitsdk.ErrorResponse	"Not signed in"
//	@Router			/v1/workouts [post].
func (h *WorkoutsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req fitsdk.WorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entries := make([]service.EntryInput, 0, len(req.Exercises))
	for _, e := range req.Exercises {
		entries = append(entries, entryInput(e))
	}

	userID := userIDFromContext(r.Context())
	workout, err := h.WorkoutService.Create(r.Context(), userID, workoutInput(req), entries)
	if err != nil {
		writeServiceError(w, r, err, "Workout not found")
		return
	}

	created, details, err := h.WorkoutService.Get(r.Context(), workout.ID, userID)
	if err != nil {
		writeServiceError(w, r, err, "Workout not found")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toWorkoutDetail(created, details))
}

// HandleGet returns one workout with its exercise entries.
//
//	@Summary		Get a workout
//	@Tags			Workouts
//	@Security		SessionCookie
//	@Produce		json
//	@Param			id	path		string	true	"Workout id"
//	@Success		200	{object}	fitsdk.WorkoutDetail
//	@Failure		401	{object}	fitsdk.ErrorResponse	"Not signed in"
//	@Failure		404	{object}	fitsdk.ErrorResponse	"Missing or owned by another user"
//	@Router			/v1/workouts/{id} [get].
func (h *WorkoutsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	workout, details, err := h.WorkoutService.Get(r.Context(), r.PathValue("id"), userIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "Workout not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toWorkoutDetail(workout, details))
}

// HandleUpdate rewrites a workout's fields.
//
//	@Summary		Update a workout
//	@Tags			Workouts
//	@Security		SessionCookie
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Workout id"
//	@Param			request	body		fitsdk.WorkoutRequest	true	"Workout fields"
//	@Success		200		{object}	fitsdk.WorkoutDetail
//	@Failure		400		{object}	fitsdk.ErrorResponse	"Validation failures"
//	@Failure		404		{object}	fitsdk.ErrorResponse	"Missing or owned by another user"
//	@Router			/v1/workouts/{id} [put].
func (h *WorkoutsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req fitsdk.WorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := userIDFromContext(r.Context())
	workout, err := h.WorkoutService.Update(r.Context(), r.PathValue("id"), userID, workoutInput(req))
	if err != nil {
		writeServiceError(w, r, err, "Workout not found")
		return
	}

	_, details, err := h.WorkoutService.Get(r.Context(), workout.ID, userID)
	if err != nil {
		writeServiceError(w, r, err, "Workout not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toWorkoutDetail(workout, details))
}

// HandleDelete removes a workout and its entries.
//
//	@Summary		Delete a workout
//	@Tags			Workouts
//	@Security		SessionCookie
//	@Param			id	path	string	true	"Workout id"
//	@Success		204	"Deleted"
//	@Failure		404	{object}	fitsdk.ErrorResponse	"Missing or owned by another user"
//	@Router			/v1/workouts/{id} [delete].
func (h *WorkoutsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.WorkoutService.Delete(r.Context(), r.PathValue("id"), userIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "Workout not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAddExercise attaches an exercise entry to a workout.
//
//	@Summary		Add an exercise to a workout
//	@Tags			Workouts
//	@Security		SessionCookie
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Workout id"
//	@Param			request	body		fitsdk.EntryRequest	true	"Entry"
//	@Success		201		{object}	fitsdk.Entry
//	@Failure		404		{object}	fitsdk.ErrorResponse	"Missing or owned by another user"
//	@Router			/v1/workouts/{id}/exercises [post].
func (h *WorkoutsHandler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	var req fitsdk.EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.WorkoutService.AddEntry(r.Context(), r.PathValue("id"), userIDFromContext(r.Context()), entryInput(req))
	if err != nil {
		writeServiceError(w, r, err, "Workout not found")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, fitsdk.Entry{
		ID:              entry.ID,
		ExerciseID:      entry.ExerciseID,
		Sets:            entry.Sets,
		Reps:            entry.Reps,
		WeightKg:        entry.WeightKg,
		DurationMinutes: entry.DurationMinutes,
		CaloriesBurned:  entry.CaloriesBurned,
		Notes:           entry.Notes,
	})
}

// HandleRemoveExercise deletes an exercise entry from a workout.
//
//	@Summary		Remove an exercise from a workout
//	@Tags			Workouts
//	@Security		SessionCookie
//	@Param			id		path	string	true	"Workout id"
//	@Param			entryID	path	string	true	"Entry id"
//	@Success		204		"Removed"
//	@Failure		404		{object}	fitsdk.ErrorResponse	"Missing or owned by another user"
//	@Router			/v1/workouts/{id}/exercises/{entryID} [delete].
func (h *WorkoutsHandler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	err := h.WorkoutService.RemoveEntry(r.Context(), r.PathValue("entryID"), userIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "Exercise not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleRecent returns the user's most recent workouts.
//
//	@Summary		Recent workouts
//	@Tags			Workouts
//	@Security		SessionCookie
//	@Produce		json
//	@Param			limit	query		int	false	"Max results"	default(5)
//	@Success		200		{array}		fitsdk.Workout
//	@Failure		401		{object}	fitsdk.ErrorResponse	"Not signed in"
//	@Router			/v1/workouts/recent [get].
func (h *WorkoutsHandler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	recent, err := h.WorkoutService.Recent(r.Context(), userIDFromContext(r.Context()), limit)
	if err != nil {
		writeServiceError(w, r, err, "Workout not found")
		return
	}

	out := make([]fitsdk.Workout, 0, len(recent))
	for _, s := range recent {
		out = append(out, toWorkout(s.Workout, s.ExerciseCount))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
