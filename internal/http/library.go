package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fittrackhq/fittrack/internal/service"
	"github.com/fittrackhq/fittrack/pkg/fitsdk"
	"github.com/fittrackhq/fittrack/pkg/httpx"
)

// LibraryHandler serves the public exercise library and the per-user stats
// endpoint.
type LibraryHandler struct {
	ExerciseService *service.ExerciseService
	StatsService    *service.StatsService
}

// HandleListExercises returns library exercises matching the filters.
//
//	@Summary		List exercises
//	@Description	Public library browse with optional category, difficulty and free-text filters.
//	@Tags			Library
//	@Produce		json
//	@Param			category	query		string	false	"Category name"
//	@Param			difficulty	query		string	false	"Difficulty"	Enums(beginner, intermediate, advanced)
//	@Param			search		query		string	false	"Name or muscle group substring"
//	@Success		200			{array}		fitsdk.Exercise
//	@Router			/v1/exercises [get].
func (h *LibraryHandler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	exercises, err := h.ExerciseService.List(r.Context(), q.Get("category"), q.Get("difficulty"), q.Get("search"))
	if err != nil {
		writeServiceError(w, r, err, "Exercise not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toExercises(exercises))
}

// HandleGetExercise returns one library exercise.
//
//	@Summary		Get an exercise
//	@Tags			Library
//	@Produce		json
//	@Param			id	path		string	true	"Exercise id"
//	@Success		200	{object}	fitsdk.Exercise
//	@Failure		404	{object}	fitsdk.ErrorResponse	"Unknown exercise"
//	@Router			/v1/exercises/{id} [get].
func (h *LibraryHandler) HandleGetExercise(w http.ResponseWriter, r *http.Request) {
	ex, err := h.ExerciseService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Exercise not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toExercise(ex))
}

// HandleCategories returns all exercise categories.
//
//	@Summary		List categories
//	@Tags			Library
//	@Produce		json
//	@Success		200	{array}	fitsdk.Category
//	@Router			/v1/categories [get].
func (h *LibraryHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.ExerciseService.Categories(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Category not found")
		return
	}

	out := make([]fitsdk.Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, fitsdk.Category{ID: c.ID, Name: c.Name, Description: c.Description})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCalories estimates the calories burned for an exercise and duration.
//
//	@Summary		Estimate calories
//	@Description	Multiplies the exercise's calories-per-minute rate by the duration; exercises without a rate use the default.
//	@Tags			Library
//	@Produce		json
//	@Param			id			path		string	true	"Exercise id"
//	@Param			duration	query		int		false	"Minutes"	default(0)
//	@Success		200			{object}	fitsdk.CaloriesResponse
//	@Failure		404			{object}	fitsdk.ErrorResponse	"Unknown exercise"
//	@Router			/v1/exercises/{id}/calories [get].
func (h *LibraryHandler) HandleCalories(w http.ResponseWriter, r *http.Request) {
	duration, _ := strconv.Atoi(r.URL.Query().Get("duration"))

	calories, err := h.ExerciseService.EstimateCalories(r.Context(), r.PathValue("id"), duration)
	if err != nil {
		writeServiceError(w, r, err, "Exercise not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, fitsdk.CaloriesResponse{Calories: calories})
}

// HandleSearch finds exercises by name or muscle group.
//
//	@Summary		Search exercises
//	@Tags			Library
//	@Produce		json
//	@Param			q	query	string	false	"Query; blank returns an empty list"
//	@Success		200	{array}	fitsdk.Exercise
//	@Router			/v1/search [get].
func (h *LibraryHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	results, err := h.ExerciseService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, r, err, "Exercise not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toExercises(results))
}

// HandleStats returns the signed-in user's dashboard aggregates.
//
//	@Summary		Dashboard stats
//	@Description	Lifetime totals, the last 30 days of activity, and the top active goals by progress.
//	@Tags			Stats
//	@Security		SessionCookie
//	@Produce		json
//	@Success		200	{object}	fitsdk.StatsResponse
//	@Failure		401	{object}	fitsdk.ErrorResponse	"Not signed in"
//	@Router			/v1/stats [get].
func (h *LibraryHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsService.Dashboard(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "Not found")
		return
	}

	out := fitsdk.StatsResponse{
		Stats: fitsdk.Totals{
			TotalWorkouts: stats.Totals.TotalWorkouts,
			TotalMinutes:  stats.Totals.TotalMinutes,
			TotalCalories: stats.Totals.TotalCalories,
		},
		WorkoutData: make([]fitsdk.DailyActivity, 0, len(stats.Activity)),
		Goals:       toGoals(stats.Goals, time.Now()),
	}
	for _, d := range stats.Activity {
		out.WorkoutData = append(out.WorkoutData, fitsdk.DailyActivity{
			Date:     d.Date,
			Minutes:  d.Minutes,
			Calories: d.Calories,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
