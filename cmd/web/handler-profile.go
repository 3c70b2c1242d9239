package main

import (
	"net/http"

	"github.com/myrjola/planfit/internal/metrics"
	"github.com/myrjola/planfit/internal/profile"
)

type profilePayload struct {
	Sex           string  `json:"sex"`
	Age           int     `json:"age"`
	HeightM       float64 `json:"height_m"`
	WeightKg      float64 `json:"weight_kg"`
	BodyFatPct    float64 `json:"body_fat_pct"`
	VisceralLevel float64 `json:"visceral_level"`
	MusclePct     float64 `json:"muscle_pct"`
}

func (app *application) profileGET(w http.ResponseWriter, r *http.Request) {
	stored, err := app.profileService.Profile(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, profilePayload{
		Sex:           string(stored.Sex),
		Age:           stored.Age,
		HeightM:       stored.HeightM,
		WeightKg:      stored.WeightKg,
		BodyFatPct:    stored.BodyFatPct,
		VisceralLevel: stored.VisceralLevel,
		MusclePct:     stored.MusclePct,
	})
}

func (app *application) profilePOST(w http.ResponseWriter, r *http.Request) {
	var payload profilePayload
	if !app.decodeJSON(w, r, &payload) {
		return
	}
	err := app.profileService.SaveProfile(r.Context(), profile.Profile{
		Sex:           metrics.Sex(payload.Sex),
		Age:           payload.Age,
		HeightM:       payload.HeightM,
		WeightKg:      payload.WeightKg,
		BodyFatPct:    payload.BodyFatPct,
		VisceralLevel: payload.VisceralLevel,
		MusclePct:     payload.MusclePct,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, map[string]string{"status": "saved"})
}
