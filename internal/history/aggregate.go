package history

import (
	"sort"
	"time"

	"github.com/myrjola/planfit/internal/metrics"
)

// Aggregate summarises the workout log. Entries with unparseable dates are
// skipped rather than failing the whole summary. An empty log yields a
// zeroed Stats.
func Aggregate(entries []WorkoutEntry, today time.Time) Stats {
	type weekKey struct {
		year int
		week int
	}

	var stats Stats
	weekly := make(map[weekKey]WeekCount)
	distinctDates := make(map[string]struct{})

	thisYear, thisWeek := today.ISOWeek()

	var lastDate time.Time
	lastSeq := -1
	for _, entry := range entries {
		date, err := time.Parse(metrics.DateFormat, entry.Date)
		if err != nil {
			continue
		}

		stats.TotalSessions++
		stats.TotalCalories += entry.Calories
		distinctDates[entry.Date] = struct{}{}

		year, week := date.ISOWeek()
		if year == thisYear && week == thisWeek {
			stats.ThisWeekSessions++
		}
		count := weekly[weekKey{year, week}]
		count.Year = year
		count.Week = week
		count.Sessions++
		count.Calories += entry.Calories
		weekly[weekKey{year, week}] = count

		// The freshest session wins; insertion order breaks same-day ties.
		if date.After(lastDate) || (date.Equal(lastDate) && entry.Seq > lastSeq) {
			lastDate = date
			lastSeq = entry.Seq
			stats.LastSessionDate = entry.Date
			stats.LastSessionCalories = entry.Calories
		}
	}

	if len(distinctDates) > 0 {
		stats.AvgCaloriesPerDay = stats.TotalCalories / float64(len(distinctDates))
	}
	stats.DistinctWeeks = len(weekly)
	if stats.DistinctWeeks > 0 {
		stats.AvgSessionsPerWeek = float64(stats.TotalSessions) / float64(stats.DistinctWeeks)
		stats.AvgCaloriesPerWeek = stats.TotalCalories / float64(stats.DistinctWeeks)
	}

	for _, count := range weekly {
		stats.Weekly = append(stats.Weekly, count)
	}
	sort.Slice(stats.Weekly, func(i, j int) bool {
		if stats.Weekly[i].Year != stats.Weekly[j].Year {
			return stats.Weekly[i].Year < stats.Weekly[j].Year
		}
		return stats.Weekly[i].Week < stats.Weekly[j].Week
	})

	return stats
}
