package history

import (
	"math"
	"time"

	"github.com/myrjola/planfit/internal/metrics"
)

// AnalyzeConsistency reports the current training streak, the trained and
// planned day counts of the current week, and the adherence derived from
// them.
//
// The streak counts consecutive trained calendar days ending today or
// yesterday; one missed day older than yesterday breaks it. Adherence is the
// share of planned days already trained in the Monday-based current week,
// rounded to whole percent, and 0 when nothing is planned.
func AnalyzeConsistency(entries []WorkoutEntry, plannedDays int, today time.Time) Consistency {
	trained := make(map[string]struct{})
	for _, entry := range entries {
		if _, err := time.Parse(metrics.DateFormat, entry.Date); err != nil {
			continue
		}
		trained[entry.Date] = struct{}{}
	}

	trainedThisWeek := trainedDaysThisWeek(trained, today)
	adherencePct := 0
	if plannedDays > 0 {
		adherencePct = int(math.Round(float64(trainedThisWeek) / float64(plannedDays) * 100))
	}

	return Consistency{
		StreakDays:          streak(trained, today),
		TrainedDaysThisWeek: trainedThisWeek,
		PlannedDaysThisWeek: plannedDays,
		AdherencePct:        adherencePct,
	}
}

func streak(trained map[string]struct{}, today time.Time) int {
	anchor := today
	if _, ok := trained[anchor.Format(metrics.DateFormat)]; !ok {
		anchor = today.AddDate(0, 0, -1)
		if _, ok := trained[anchor.Format(metrics.DateFormat)]; !ok {
			return 0
		}
	}

	days := 0
	for {
		if _, ok := trained[anchor.Format(metrics.DateFormat)]; !ok {
			return days
		}
		days++
		anchor = anchor.AddDate(0, 0, -1)
	}
}

func trainedDaysThisWeek(trained map[string]struct{}, today time.Time) int {
	monday := startOfWeek(today)
	actual := 0
	for day := 0; day < 7; day++ {
		date := monday.AddDate(0, 0, day)
		if _, ok := trained[date.Format(metrics.DateFormat)]; ok {
			actual++
		}
	}
	return actual
}

// startOfWeek returns the Monday of the week containing date.
func startOfWeek(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}
