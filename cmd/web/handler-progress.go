package main

import (
	"net/http"
	"time"
)

type progressResponse struct {
	HasProgress     bool    `json:"has_progress"`
	StartWeightKg   float64 `json:"start_weight_kg,omitempty"`
	CurrentWeightKg float64 `json:"current_weight_kg,omitempty"`
	TargetWeightKg  float64 `json:"target_weight_kg,omitempty"`
	TotalKg         float64 `json:"total_kg,omitempty"`
	ProgressedKg    float64 `json:"progressed_kg,omitempty"`
	RemainingKg     float64 `json:"remaining_kg,omitempty"`
	Percent         float64 `json:"percent,omitempty"`
}

// progressGET reports movement from the first recorded weight towards the
// goal weight.
func (app *application) progressGET(w http.ResponseWriter, r *http.Request) {
	progress, err := app.profileService.Progress(r.Context(), time.Now())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if progress == nil {
		app.writeJSON(w, r, http.StatusOK, progressResponse{HasProgress: false})
		return
	}
	app.writeJSON(w, r, http.StatusOK, progressResponse{
		HasProgress:     true,
		StartWeightKg:   progress.StartWeightKg,
		CurrentWeightKg: progress.CurrentWeightKg,
		TargetWeightKg:  progress.TargetWeightKg,
		TotalKg:         progress.TotalKg,
		ProgressedKg:    progress.ProgressedKg,
		RemainingKg:     progress.RemainingKg,
		Percent:         progress.Percent,
	})
}
