package main

import (
	"net/http"
	"time"

	"github.com/myrjola/planfit/internal/history"
)

type weekCountPayload struct {
	Year     int     `json:"year"`
	Week     int     `json:"week"`
	Sessions int     `json:"sessions"`
	Calories float64 `json:"calories"`
}

type statsResponse struct {
	TotalSessions       int                `json:"total_sessions"`
	ThisWeekSessions    int                `json:"this_week_sessions"`
	TotalCalories       float64            `json:"total_calories"`
	DistinctWeeks       int                `json:"distinct_weeks"`
	AvgSessionsPerWeek  float64            `json:"avg_sessions_per_week"`
	AvgCaloriesPerWeek  float64            `json:"avg_calories_per_week"`
	AvgCaloriesPerDay   float64            `json:"avg_calories_per_day"`
	LastSessionDate     string             `json:"last_session_date"`
	LastSessionCalories float64            `json:"last_session_calories"`
	Weekly              []weekCountPayload `json:"weekly"`
}

// historyStatsGET summarises the workout log.
func (app *application) historyStatsGET(w http.ResponseWriter, r *http.Request) {
	stats, err := app.historyService.Stats(r.Context(), time.Now())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	resp := statsResponse{
		TotalSessions:       stats.TotalSessions,
		ThisWeekSessions:    stats.ThisWeekSessions,
		TotalCalories:       stats.TotalCalories,
		DistinctWeeks:       stats.DistinctWeeks,
		AvgSessionsPerWeek:  stats.AvgSessionsPerWeek,
		AvgCaloriesPerWeek:  stats.AvgCaloriesPerWeek,
		AvgCaloriesPerDay:   stats.AvgCaloriesPerDay,
		LastSessionDate:     stats.LastSessionDate,
		LastSessionCalories: stats.LastSessionCalories,
	}
	for _, week := range stats.Weekly {
		resp.Weekly = append(resp.Weekly, weekCountPayload(week))
	}
	app.writeJSON(w, r, http.StatusOK, resp)
}

type consistencyResponse struct {
	StreakDays   int `json:"streak_days"`
	TrainedDays  int `json:"trained_days"`
	PlannedDays  int `json:"planned_days"`
	AdherencePct int `json:"adherence_pct"`
}

// consistencyGET reports the training streak and this week's adherence. The
// planned-day count comes from resolving the whole current week against the
// periodization plan.
func (app *application) consistencyGET(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	plannedDays, err := app.planService.PlannedDays(r.Context(), now)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	var consistency history.Consistency
	if consistency, err = app.historyService.Consistency(r.Context(), plannedDays, now); err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, consistencyResponse{
		StreakDays:   consistency.StreakDays,
		TrainedDays:  consistency.TrainedDaysThisWeek,
		PlannedDays:  consistency.PlannedDaysThisWeek,
		AdherencePct: consistency.AdherencePct,
	})
}
