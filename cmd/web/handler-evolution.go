package main

import (
	"net/http"
	"time"

	"github.com/myrjola/planfit/internal/metrics"
	"github.com/myrjola/planfit/internal/profile"
)

type evolutionPayload struct {
	Seq           int      `json:"seq,omitempty"`
	Date          string   `json:"date"`
	WeightKg      float64  `json:"weight_kg"`
	BodyFatPct    float64  `json:"body_fat_pct"`
	VisceralLevel float64  `json:"visceral_level"`
	MusclePct     float64  `json:"muscle_pct"`
	WaistCm       *float64 `json:"waist_cm,omitempty"`
	HipCm         *float64 `json:"hip_cm,omitempty"`
	ArmCm         *float64 `json:"arm_cm,omitempty"`
	ThighCm       *float64 `json:"thigh_cm,omitempty"`
}

type evolutionResponse struct {
	Records []evolutionPayload          `json:"records"`
	Merged  profile.MergedMeasurements  `json:"merged"`
}

func (app *application) evolutionGET(w http.ResponseWriter, r *http.Request) {
	records, err := app.profileService.Evolution(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	resp := evolutionResponse{Merged: profile.MergeLatest(records)}
	for _, record := range records {
		resp.Records = append(resp.Records, evolutionPayload{
			Seq:           record.Seq,
			Date:          record.Date,
			WeightKg:      record.WeightKg,
			BodyFatPct:    record.BodyFatPct,
			VisceralLevel: record.VisceralLevel,
			MusclePct:     record.MusclePct,
			WaistCm:       record.WaistCm,
			HipCm:         record.HipCm,
			ArmCm:         record.ArmCm,
			ThighCm:       record.ThighCm,
		})
	}
	app.writeJSON(w, r, http.StatusOK, resp)
}

func (app *application) evolutionPOST(w http.ResponseWriter, r *http.Request) {
	var payload evolutionPayload
	if !app.decodeJSON(w, r, &payload) {
		return
	}
	if payload.Date == "" {
		payload.Date = time.Now().Format(metrics.DateFormat)
	}
	if _, err := time.Parse(metrics.DateFormat, payload.Date); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "date must use the 31/01/2026 format")
		return
	}

	err := app.profileService.RecordEvolution(r.Context(), profile.EvolutionRecord{
		Date:          payload.Date,
		WeightKg:      payload.WeightKg,
		BodyFatPct:    payload.BodyFatPct,
		VisceralLevel: payload.VisceralLevel,
		MusclePct:     payload.MusclePct,
		WaistCm:       payload.WaistCm,
		HipCm:         payload.HipCm,
		ArmCm:         payload.ArmCm,
		ThighCm:       payload.ThighCm,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, map[string]string{"status": "recorded"})
}
