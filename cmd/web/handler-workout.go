package main

import (
	"net/http"

	"github.com/myrjola/planfit/internal/history"
	"github.com/myrjola/planfit/internal/metrics"
	"github.com/myrjola/planfit/internal/plan"
)

type exerciseRowPayload struct {
	OrderIndex   int    `json:"order_index"`
	ExerciseName string `json:"exercise_name"`
	ExerciseType string `json:"exercise_type"`
	Sets         int    `json:"sets"`
	Target       int    `json:"target"`

	PreviousSets []exerciseSetPayload `json:"previous_sets,omitempty"`
}

type exerciseSetPayload struct {
	Date      string  `json:"date"`
	SetNumber int     `json:"set_number"`
	WeightKg  float64 `json:"weight_kg"`
	Reps      int     `json:"reps"`
	Minutes   int     `json:"minutes"`
}

type workoutResponse struct {
	State        string `json:"state"`
	Date         string `json:"date"`
	Weekday      string `json:"weekday"`
	WeekInMacro  int    `json:"week_in_macro,omitempty"`
	WeekInMeso   int    `json:"week_in_meso,omitempty"`
	Macrocycle   string `json:"macrocycle,omitempty"`
	Focus        string `json:"focus,omitempty"`
	TemplateName string `json:"template_name,omitempty"`
	NotesHTML    string `json:"notes_html,omitempty"`

	Exercises []exerciseRowPayload `json:"exercises,omitempty"`
}

// workoutGET resolves the plan for one date. A found plan is enriched with
// the previous performance of each prescribed exercise and the template
// notes rendered to HTML.
func (app *application) workoutGET(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}

	resolution, err := app.planService.ResolveDate(r.Context(), date)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	resp := workoutResponse{
		State:        string(resolution.State),
		Date:         resolution.Date.Format(metrics.DateFormat),
		Weekday:      resolution.Weekday.String(),
		WeekInMacro:  resolution.WeekInMacro,
		WeekInMeso:   resolution.WeekInMeso,
		TemplateName: resolution.TemplateName,
	}
	if resolution.Macrocycle != nil {
		resp.Macrocycle = resolution.Macrocycle.Name
	}
	if resolution.Mesocycle != nil {
		resp.Focus = resolution.Mesocycle.Focus
	}
	if resolution.State == plan.StatePlanFound {
		resp.NotesHTML = app.renderMarkdown(r, resolution.Template.NotesMarkdown)
		for _, row := range resolution.Template.Exercises {
			payload := exerciseRowPayload{
				OrderIndex:   row.OrderIndex,
				ExerciseName: row.ExerciseName,
				ExerciseType: row.ExerciseType,
				Sets:         row.Sets,
				Target:       row.Target,
			}
			previous, err := app.historyService.PreviousPerformance(r.Context(), row.ExerciseName)
			if err != nil {
				app.serverError(w, r, err)
				return
			}
			for _, set := range previous {
				payload.PreviousSets = append(payload.PreviousSets, exerciseSetPayload{
					Date:      set.Date,
					SetNumber: set.SetNumber,
					WeightKg:  set.WeightKg,
					Reps:      set.Reps,
					Minutes:   set.Minutes,
				})
			}
			resp.Exercises = append(resp.Exercises, payload)
		}
	}
	app.writeJSON(w, r, http.StatusOK, resp)
}

type workoutLogRequest struct {
	TemplateName string  `json:"template_name"`
	Category     string  `json:"category"`
	Intensity    string  `json:"intensity"`
	DurationMin  int     `json:"duration_min"`
	TotalLoadKg  float64 `json:"total_load_kg"`
	Calories     float64 `json:"calories"`
}

type workoutLogResponse struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
}

// workoutLogPOST records a performed session. When no calorie figure is
// supplied one is estimated with the user's freshest recorded weight.
func (app *application) workoutLogPOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}
	var req workoutLogRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}
	if req.Category != "cardio" && req.Category != "strength" {
		app.clientError(w, r, http.StatusBadRequest, "category must be cardio or strength")
		return
	}

	snapshot, _, err := app.profileService.EffectiveSnapshot(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	entry, err := app.historyService.LogWorkout(r.Context(), history.WorkoutEntry{
		Date:         date.Format(metrics.DateFormat),
		TemplateName: req.TemplateName,
		Category:     req.Category,
		Intensity:    req.Intensity,
		DurationMin:  req.DurationMin,
		TotalLoadKg:  req.TotalLoadKg,
		Calories:     req.Calories,
	}, snapshot.WeightKg)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, workoutLogResponse{
		Date:     entry.Date,
		Calories: entry.Calories,
	})
}

type exerciseLogRequest struct {
	Sets []exerciseLogSetRequest `json:"sets"`
}

type exerciseLogSetRequest struct {
	ExerciseName string  `json:"exercise_name"`
	SetNumber    int     `json:"set_number"`
	WeightKg     float64 `json:"weight_kg"`
	Reps         int     `json:"reps"`
	Minutes      int     `json:"minutes"`
}

// exerciseLogPOST records the per-set detail of a session.
func (app *application) exerciseLogPOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}
	var req exerciseLogRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}
	if len(req.Sets) == 0 {
		app.clientError(w, r, http.StatusBadRequest, "at least one set is required")
		return
	}

	sets := make([]history.ExerciseSet, 0, len(req.Sets))
	for _, set := range req.Sets {
		if set.ExerciseName == "" {
			app.clientError(w, r, http.StatusBadRequest, "exercise_name is required on every set")
			return
		}
		sets = append(sets, history.ExerciseSet{
			Date:         date.Format(metrics.DateFormat),
			ExerciseName: set.ExerciseName,
			SetNumber:    set.SetNumber,
			WeightKg:     set.WeightKg,
			Reps:         set.Reps,
			Minutes:      set.Minutes,
		})
	}
	if err := app.historyService.LogExerciseSets(r.Context(), sets); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, map[string]string{"status": "recorded"})
}

// scheduleGET resolves the whole Monday-based week containing the date.
func (app *application) scheduleGET(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}
	resolutions, err := app.planService.ResolveWeek(r.Context(), date)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	days := make([]workoutResponse, 0, len(resolutions))
	for _, resolution := range resolutions {
		day := workoutResponse{
			State:        string(resolution.State),
			Date:         resolution.Date.Format(metrics.DateFormat),
			Weekday:      resolution.Weekday.String(),
			WeekInMacro:  resolution.WeekInMacro,
			WeekInMeso:   resolution.WeekInMeso,
			TemplateName: resolution.TemplateName,
		}
		if resolution.Mesocycle != nil {
			day.Focus = resolution.Mesocycle.Focus
		}
		days = append(days, day)
	}
	app.writeJSON(w, r, http.StatusOK, map[string]any{"days": days})
}
