package main

import (
	"net/http"
	"sort"
	"time"

	"github.com/myrjola/planfit/internal/metrics"
	"github.com/myrjola/planfit/internal/plan"
)

type macrocyclePayload struct {
	ID           int    `json:"id,omitempty"`
	Name         string `json:"name"`
	GoalMarkdown string `json:"goal_markdown,omitempty"`
	GoalHTML     string `json:"goal_html,omitempty"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

func (app *application) macrocyclesGET(w http.ResponseWriter, r *http.Request) {
	macrocycles, err := app.planService.Macrocycles(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	payloads := make([]macrocyclePayload, 0, len(macrocycles))
	for _, macro := range macrocycles {
		payloads = append(payloads, macrocyclePayload{
			ID:           macro.ID,
			Name:         macro.Name,
			GoalMarkdown: macro.GoalMarkdown,
			GoalHTML:     app.renderMarkdown(r, macro.GoalMarkdown),
			StartDate:    macro.Start.Format(metrics.DateFormat),
			EndDate:      macro.End.Format(metrics.DateFormat),
		})
	}
	app.writeJSON(w, r, http.StatusOK, map[string]any{"macrocycles": payloads})
}

func (app *application) macrocyclesPOST(w http.ResponseWriter, r *http.Request) {
	var payload macrocyclePayload
	if !app.decodeJSON(w, r, &payload) {
		return
	}
	start, err := time.Parse(metrics.DateFormat, payload.StartDate)
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest, "start_date must use the 31/01/2026 format")
		return
	}
	var end time.Time
	if end, err = time.Parse(metrics.DateFormat, payload.EndDate); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "end_date must use the 31/01/2026 format")
		return
	}

	id, err := app.planService.CreateMacrocycle(r.Context(), plan.Macrocycle{
		Name:         payload.Name,
		GoalMarkdown: payload.GoalMarkdown,
		Start:        start,
		End:          end,
	})
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, map[string]int{"id": id})
}

type mesocyclePayload struct {
	ID            int    `json:"id,omitempty"`
	MacrocycleID  int    `json:"macrocycle_id"`
	OrderIndex    int    `json:"order_index"`
	DurationWeeks int    `json:"duration_weeks"`
	Focus         string `json:"focus,omitempty"`
}

func (app *application) mesocyclesGET(w http.ResponseWriter, r *http.Request) {
	mesocycles, err := app.planService.Mesocycles(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	payloads := make([]mesocyclePayload, 0, len(mesocycles))
	for _, meso := range mesocycles {
		payloads = append(payloads, mesocyclePayload{
			ID:            meso.ID,
			MacrocycleID:  meso.MacrocycleID,
			OrderIndex:    meso.OrderIndex,
			DurationWeeks: meso.DurationWeeks,
			Focus:         meso.Focus,
		})
	}
	app.writeJSON(w, r, http.StatusOK, map[string]any{"mesocycles": payloads})
}

func (app *application) mesocyclesPOST(w http.ResponseWriter, r *http.Request) {
	var payload mesocyclePayload
	if !app.decodeJSON(w, r, &payload) {
		return
	}
	id, err := app.planService.CreateMesocycle(r.Context(), plan.Mesocycle{
		MacrocycleID:  payload.MacrocycleID,
		OrderIndex:    payload.OrderIndex,
		DurationWeeks: payload.DurationWeeks,
		Focus:         payload.Focus,
	})
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, map[string]int{"id": id})
}

type weeklyAssignmentPayload struct {
	MesocycleID  int    `json:"mesocycle_id"`
	WeekNumber   int    `json:"week_number"`
	Weekday      string `json:"weekday"`
	TemplateName string `json:"template_name"`
}

func (app *application) weeklyAssignmentPOST(w http.ResponseWriter, r *http.Request) {
	var payload weeklyAssignmentPayload
	if !app.decodeJSON(w, r, &payload) {
		return
	}
	weekday, ok := parseWeekdayName(payload.Weekday)
	if !ok {
		app.clientError(w, r, http.StatusBadRequest, "weekday must be an English weekday name")
		return
	}

	err := app.planService.SaveAssignment(r.Context(), plan.WeeklyAssignment{
		MesocycleID:  payload.MesocycleID,
		WeekNumber:   payload.WeekNumber,
		Weekday:      weekday,
		TemplateName: payload.TemplateName,
	})
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, map[string]string{"status": "saved"})
}

type templatePayload struct {
	Name          string               `json:"name"`
	NotesMarkdown string               `json:"notes_markdown,omitempty"`
	NotesHTML     string               `json:"notes_html,omitempty"`
	Exercises     []exerciseRowPayload `json:"exercises"`
}

func (app *application) templatesGET(w http.ResponseWriter, r *http.Request) {
	templates, err := app.planService.Templates(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	payloads := make([]templatePayload, 0, len(templates))
	for _, template := range templates {
		payload := templatePayload{
			Name:          template.Name,
			NotesMarkdown: template.NotesMarkdown,
			NotesHTML:     app.renderMarkdown(r, template.NotesMarkdown),
		}
		for _, row := range template.Exercises {
			payload.Exercises = append(payload.Exercises, exerciseRowPayload{
				OrderIndex:   row.OrderIndex,
				ExerciseName: row.ExerciseName,
				ExerciseType: row.ExerciseType,
				Sets:         row.Sets,
				Target:       row.Target,
			})
		}
		payloads = append(payloads, payload)
	}
	sort.Slice(payloads, func(i, j int) bool { return payloads[i].Name < payloads[j].Name })
	app.writeJSON(w, r, http.StatusOK, map[string]any{"templates": payloads})
}

func (app *application) templatesPOST(w http.ResponseWriter, r *http.Request) {
	var payload templatePayload
	if !app.decodeJSON(w, r, &payload) {
		return
	}

	template := plan.Template{
		Name:          payload.Name,
		NotesMarkdown: payload.NotesMarkdown,
	}
	for i, row := range payload.Exercises {
		orderIndex := row.OrderIndex
		if orderIndex == 0 {
			orderIndex = i + 1
		}
		template.Exercises = append(template.Exercises, plan.ExerciseRow{
			OrderIndex:   orderIndex,
			ExerciseName: row.ExerciseName,
			ExerciseType: row.ExerciseType,
			Sets:         row.Sets,
			Target:       row.Target,
		})
	}
	if err := app.planService.SaveTemplate(r.Context(), template); err != nil {
		app.handleError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, map[string]string{"status": "saved"})
}

func parseWeekdayName(name string) (time.Weekday, bool) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if day.String() == name {
			return day, true
		}
	}
	return time.Sunday, false
}
