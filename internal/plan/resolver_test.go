package plan_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/planfit/internal/plan"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// testSchedule builds a macrocycle from 2026-01-05 (a Monday) to 2026-03-31
// with a 6-week base block followed by a 7-week build block. Week one of
// the base block trains Monday and Thursday on the Push template; Tuesday
// explicitly rests.
func testSchedule() plan.Schedule {
	return plan.Schedule{
		Macrocycles: []plan.Macrocycle{
			{ID: 1, Name: "Spring", Start: date(2026, 1, 5), End: date(2026, 3, 31)},
		},
		Mesocycles: []plan.Mesocycle{
			{ID: 11, MacrocycleID: 1, OrderIndex: 1, DurationWeeks: 6, Focus: "base"},
			{ID: 12, MacrocycleID: 1, OrderIndex: 2, DurationWeeks: 7, Focus: "build"},
		},
		Assignments: []plan.WeeklyAssignment{
			{MesocycleID: 11, WeekNumber: 1, Weekday: time.Monday, TemplateName: "Push"},
			{MesocycleID: 11, WeekNumber: 1, Weekday: time.Tuesday, TemplateName: plan.RestTemplateName},
			{MesocycleID: 11, WeekNumber: 1, Weekday: time.Thursday, TemplateName: "Push"},
			{MesocycleID: 12, WeekNumber: 2, Weekday: time.Monday, TemplateName: "Pull"},
			{MesocycleID: 12, WeekNumber: 2, Weekday: time.Wednesday, TemplateName: "Hollow"},
			{MesocycleID: 12, WeekNumber: 3, Weekday: time.Friday, TemplateName: "Missing"},
		},
		Templates: map[string]plan.Template{
			"Push": {ID: 21, Name: "Push", Exercises: []plan.ExerciseRow{
				{OrderIndex: 1, ExerciseName: "Bench Press", ExerciseType: "strength", Sets: 3, Target: 8},
			}},
			"Pull": {ID: 22, Name: "Pull", Exercises: []plan.ExerciseRow{
				{OrderIndex: 1, ExerciseName: "Barbell Row", ExerciseType: "strength", Sets: 3, Target: 10},
			}},
			"Hollow": {ID: 23, Name: "Hollow"},
		},
	}
}

func TestResolveStates(t *testing.T) {
	schedule := testSchedule()

	tests := []struct {
		name         string
		date         time.Time
		wantState    plan.State
		wantWeek     int
		wantMesoID   int
		wantWeekMeso int
		wantTemplate string
	}{
		{
			name:      "after macrocycle end",
			date:      date(2026, 4, 1),
			wantState: plan.StateNoActiveMacrocycle,
		},
		{
			name:      "before macrocycle start",
			date:      date(2026, 1, 4),
			wantState: plan.StateBeforeMacrocycleStart,
		},
		{
			name:         "first day resolves to a plan",
			date:         date(2026, 1, 5),
			wantState:    plan.StatePlanFound,
			wantWeek:     1,
			wantMesoID:   11,
			wantWeekMeso: 1,
			wantTemplate: "Push",
		},
		{
			name:         "explicit rest assignment",
			date:         date(2026, 1, 6),
			wantState:    plan.StateRestDay,
			wantWeek:     1,
			wantMesoID:   11,
			wantWeekMeso: 1,
		},
		{
			name:         "absent assignment is a rest day",
			date:         date(2026, 1, 7),
			wantState:    plan.StateRestDay,
			wantWeek:     1,
			wantMesoID:   11,
			wantWeekMeso: 1,
		},
		{
			name: "week eight lands in the second block",
			// 2026-02-23 is the Monday of macro week 8, so build week 2.
			date:         date(2026, 2, 23),
			wantState:    plan.StatePlanFound,
			wantWeek:     8,
			wantMesoID:   12,
			wantWeekMeso: 2,
			wantTemplate: "Pull",
		},
		{
			name: "template without exercises degrades",
			// Wednesday of macro week 8, build week 2.
			date:         date(2026, 2, 25),
			wantState:    plan.StateUnknownTemplate,
			wantWeek:     8,
			wantMesoID:   12,
			wantWeekMeso: 2,
			wantTemplate: "Hollow",
		},
		{
			name: "dangling template reference",
			// Friday of macro week 9, build week 3.
			date:         date(2026, 3, 6),
			wantState:    plan.StateUnknownTemplate,
			wantWeek:     9,
			wantMesoID:   12,
			wantWeekMeso: 3,
			wantTemplate: "Missing",
		},
		{
			name: "last laid-out week without assignments rests",
			// 2026-03-30 is the Monday of macro week 13, the final build
			// week, which has no weekday assignments.
			date:         date(2026, 3, 30),
			wantState:    plan.StateRestDay,
			wantWeek:     13,
			wantMesoID:   12,
			wantWeekMeso: 7,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := plan.Resolve(schedule, tt.date)
			if got.State != tt.wantState {
				t.Fatalf("State = %q, want %q", got.State, tt.wantState)
			}
			if got.WeekInMacro != tt.wantWeek {
				t.Errorf("WeekInMacro = %d, want %d", got.WeekInMacro, tt.wantWeek)
			}
			if tt.wantMesoID != 0 {
				if got.Mesocycle == nil {
					t.Fatal("Mesocycle is nil")
				}
				if got.Mesocycle.ID != tt.wantMesoID {
					t.Errorf("Mesocycle.ID = %d, want %d", got.Mesocycle.ID, tt.wantMesoID)
				}
				if got.WeekInMeso != tt.wantWeekMeso {
					t.Errorf("WeekInMeso = %d, want %d", got.WeekInMeso, tt.wantWeekMeso)
				}
			}
			if tt.wantTemplate != "" && got.TemplateName != tt.wantTemplate {
				t.Errorf("TemplateName = %q, want %q", got.TemplateName, tt.wantTemplate)
			}
		})
	}
}

func TestResolveBeyondMesocycleWeeks(t *testing.T) {
	schedule := testSchedule()
	// Shrink the blocks so the macrocycle outlives its laid-out weeks.
	schedule.Mesocycles = []plan.Mesocycle{
		{ID: 11, MacrocycleID: 1, OrderIndex: 1, DurationWeeks: 2, Focus: "base"},
	}

	got := plan.Resolve(schedule, date(2026, 1, 26)) // macro week 4
	if got.State != plan.StateNoActiveMesocycle {
		t.Fatalf("State = %q, want %q", got.State, plan.StateNoActiveMesocycle)
	}
	if got.WeekInMacro != 4 {
		t.Errorf("WeekInMacro = %d, want 4", got.WeekInMacro)
	}
}

func TestResolveNoMacrocyclesAtAll(t *testing.T) {
	got := plan.Resolve(plan.Schedule{}, date(2026, 1, 5))
	if got.State != plan.StateNoActiveMacrocycle {
		t.Fatalf("State = %q, want %q", got.State, plan.StateNoActiveMacrocycle)
	}
}

func TestResolveUpcomingMacrocycleIsReported(t *testing.T) {
	got := plan.Resolve(testSchedule(), date(2026, 1, 1))
	if got.State != plan.StateBeforeMacrocycleStart {
		t.Fatalf("State = %q, want %q", got.State, plan.StateBeforeMacrocycleStart)
	}
	if got.Macrocycle == nil || got.Macrocycle.Name != "Spring" {
		t.Error("upcoming macrocycle not attached to the resolution")
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	schedule := testSchedule()
	day := date(2026, 1, 5)
	first := plan.Resolve(schedule, day)
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, plan.Resolve(schedule, day)); diff != "" {
			t.Fatalf("Resolve is not deterministic (-first +rerun):\n%s", diff)
		}
	}
}

// Every day of a macro week resolves to the same week number, and week
// numbers advance exactly at the weekly boundary from the start date.
func TestResolveWeekArithmetic(t *testing.T) {
	schedule := testSchedule()
	start := date(2026, 1, 5)
	for offset := 0; offset < 28; offset++ {
		day := start.AddDate(0, 0, offset)
		got := plan.Resolve(schedule, day)
		wantWeek := offset/7 + 1
		if got.WeekInMacro != wantWeek {
			t.Errorf("day +%d: WeekInMacro = %d, want %d", offset, got.WeekInMacro, wantWeek)
		}
	}
}

func TestResolveMesocycleOrderIndependence(t *testing.T) {
	schedule := testSchedule()
	// Storage order must not matter, only the order index.
	schedule.Mesocycles = []plan.Mesocycle{schedule.Mesocycles[1], schedule.Mesocycles[0]}

	got := plan.Resolve(schedule, date(2026, 1, 5))
	if got.Mesocycle == nil || got.Mesocycle.ID != 11 {
		t.Fatalf("Mesocycle = %+v, want block 11 first by order index", got.Mesocycle)
	}
}
