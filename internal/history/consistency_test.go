package history_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/planfit/internal/history"
)

func entriesOn(dates ...string) []history.WorkoutEntry {
	entries := make([]history.WorkoutEntry, 0, len(dates))
	for i, date := range dates {
		entries = append(entries, history.WorkoutEntry{Seq: i + 1, Date: date})
	}
	return entries
}

func TestAnalyzeConsistency(t *testing.T) {
	// 2026-01-14 is a Wednesday; the current week runs 12/01 to 18/01.
	today := time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		entries     []history.WorkoutEntry
		plannedDays int
		want        history.Consistency
	}{
		{
			name:        "empty log",
			entries:     nil,
			plannedDays: 5,
			want:        history.Consistency{PlannedDaysThisWeek: 5},
		},
		{
			name:        "streak ending today",
			entries:     entriesOn("12/01/2026", "13/01/2026", "14/01/2026"),
			plannedDays: 5,
			want:        history.Consistency{StreakDays: 3, TrainedDaysThisWeek: 3, PlannedDaysThisWeek: 5, AdherencePct: 60},
		},
		{
			name:        "rest today keeps yesterday's streak alive",
			entries:     entriesOn("12/01/2026", "13/01/2026"),
			plannedDays: 5,
			want:        history.Consistency{StreakDays: 2, TrainedDaysThisWeek: 2, PlannedDaysThisWeek: 5, AdherencePct: 40},
		},
		{
			name:        "gap older than yesterday breaks the streak",
			entries:     entriesOn("10/01/2026", "11/01/2026"),
			plannedDays: 2,
			want:        history.Consistency{PlannedDaysThisWeek: 2},
		},
		{
			name:        "duplicate sessions on one day count once",
			entries:     append(entriesOn("14/01/2026"), entriesOn("14/01/2026")...),
			plannedDays: 1,
			want:        history.Consistency{StreakDays: 1, TrainedDaysThisWeek: 1, PlannedDaysThisWeek: 1, AdherencePct: 100},
		},
		{
			name:        "streak crosses the week boundary",
			entries:     entriesOn("10/01/2026", "11/01/2026", "12/01/2026", "13/01/2026", "14/01/2026"),
			plannedDays: 5,
			want:        history.Consistency{StreakDays: 5, TrainedDaysThisWeek: 3, PlannedDaysThisWeek: 5, AdherencePct: 60},
		},
		{
			name:        "no planned days means no adherence",
			entries:     entriesOn("14/01/2026"),
			plannedDays: 0,
			want:        history.Consistency{StreakDays: 1, TrainedDaysThisWeek: 1},
		},
		{
			name:        "adherence rounds to whole percent",
			entries:     entriesOn("12/01/2026", "13/01/2026"),
			plannedDays: 3,
			want:        history.Consistency{StreakDays: 2, TrainedDaysThisWeek: 2, PlannedDaysThisWeek: 3, AdherencePct: 67},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := history.AnalyzeConsistency(tt.entries, tt.plannedDays, today)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("AnalyzeConsistency mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAnalyzeConsistencySundayWeek(t *testing.T) {
	// 2026-01-18 is a Sunday and still belongs to the week starting Monday
	// 12/01. Weekday arithmetic must not treat Sunday as a week start.
	today := time.Date(2026, 1, 18, 0, 0, 0, 0, time.UTC)
	got := history.AnalyzeConsistency(entriesOn("12/01/2026", "18/01/2026"), 2, today)
	want := history.Consistency{StreakDays: 1, TrainedDaysThisWeek: 2, PlannedDaysThisWeek: 2, AdherencePct: 100}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AnalyzeConsistency mismatch (-want +got):\n%s", diff)
	}
}
