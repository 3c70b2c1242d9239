package main

import (
	"net/http"
	"time"
)

type metricsResponse struct {
	BMI               float64 `json:"bmi"`
	BasalRate         float64 `json:"basal_rate_kcal"`
	TDEE              float64 `json:"tdee_kcal"`
	TargetIntakeKcal  float64 `json:"target_intake_kcal"`
	IdealWeightKg     float64 `json:"ideal_weight_kg"`
	EffectiveTargetKg float64 `json:"effective_target_kg"`
	WeeklyChangeKg    float64 `json:"weekly_change_kg"`
	WeeklyChangePct   float64 `json:"weekly_change_pct"`
	ProjectedDate     string  `json:"projected_date"`
	DaysRemaining     int     `json:"days_remaining"`
	WaterLitres       float64 `json:"water_litres"`

	BodyFatCategory  string `json:"body_fat_category"`
	VisceralCategory string `json:"visceral_category"`
	MuscleCategory   string `json:"muscle_category"`
}

// metricsGET derives the full health-metric record for the active user,
// composition classification included.
func (app *application) metricsGET(w http.ResponseWriter, r *http.Request) {
	result, err := app.profileService.ComputeMetrics(r.Context(), time.Now())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	classification, err := app.profileService.ClassifyComposition(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, metricsResponse{
		BMI:               result.BMI,
		BasalRate:         result.BasalRate,
		TDEE:              result.TDEE,
		TargetIntakeKcal:  result.TargetIntakeKcal,
		IdealWeightKg:     result.IdealWeightKg,
		EffectiveTargetKg: result.EffectiveTargetKg,
		WeeklyChangeKg:    result.WeeklyChangeKg,
		WeeklyChangePct:   result.WeeklyChangePct,
		ProjectedDate:     result.ProjectedDate,
		DaysRemaining:     result.DaysRemaining,
		WaterLitres:       result.WaterLitres,
		BodyFatCategory:   string(classification.BodyFat),
		VisceralCategory:  string(classification.Visceral),
		MuscleCategory:    string(classification.Muscle),
	})
}
