package main

import (
	"net/http"
	"time"

	"github.com/myrjola/planfit/internal/metrics"
	"github.com/myrjola/planfit/internal/profile"
)

type goalPayload struct {
	StartDate      string  `json:"start_date"`
	Activity       string  `json:"activity"`
	Environment    string  `json:"environment"`
	Direction      string  `json:"direction"`
	TargetWeightKg float64 `json:"target_weight_kg"`
	DietFactor     float64 `json:"diet_factor"`
}

func (app *application) goalGET(w http.ResponseWriter, r *http.Request) {
	goal, err := app.profileService.Goal(r.Context(), time.Now())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, goalPayload{
		StartDate:      goal.StartDate,
		Activity:       string(goal.Activity),
		Environment:    string(goal.Environment),
		Direction:      string(goal.Direction),
		TargetWeightKg: goal.TargetWeightKg,
		DietFactor:     goal.DietFactor,
	})
}

func (app *application) goalPOST(w http.ResponseWriter, r *http.Request) {
	var payload goalPayload
	if !app.decodeJSON(w, r, &payload) {
		return
	}
	err := app.profileService.SaveGoal(r.Context(), profile.Goal{
		StartDate:      payload.StartDate,
		Activity:       metrics.ActivityLevel(payload.Activity),
		Environment:    metrics.Environment(payload.Environment),
		Direction:      metrics.GoalDirection(payload.Direction),
		TargetWeightKg: payload.TargetWeightKg,
		DietFactor:     payload.DietFactor,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, map[string]string{"status": "saved"})
}
