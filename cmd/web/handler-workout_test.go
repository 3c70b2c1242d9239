package main

import (
	"testing"
	"time"
)

// mondayOfCurrentWeek anchors test plans on the running week so that the
// endpoints that reason about "today" see an active plan.
func mondayOfCurrentWeek() time.Time {
	now := time.Now()
	offset := (int(now.Weekday()) + 6) % 7
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -offset)
}

func Test_application_workoutResolution(t *testing.T) {
	server := startTestServer(t)
	client := server.Client()
	ctx := t.Context()

	monday := mondayOfCurrentWeek()

	t.Run("no plan before any macrocycle exists", func(t *testing.T) {
		var got workoutResponse
		if err := client.GetJSON(ctx, "/api/workouts/"+monday.Format(urlDateFormat), &got); err != nil {
			t.Fatalf("Failed to resolve workout: %v", err)
		}
		if got.State != "no_active_macrocycle" {
			t.Errorf("state = %q, want no_active_macrocycle", got.State)
		}
	})

	// Author a plan: one macrocycle with a single four-week block, Monday
	// and Thursday of week one on the Push template.
	var macroID struct {
		ID int `json:"id"`
	}
	macro := macrocyclePayload{
		Name:         "Spring",
		GoalMarkdown: "Get **stronger**.",
		StartDate:    monday.Format("02/01/2006"),
		EndDate:      monday.AddDate(0, 0, 7*10-1).Format("02/01/2006"),
	}
	if err := client.PostJSONOK(ctx, "/api/plan/macrocycles", macro, &macroID); err != nil {
		t.Fatalf("Failed to create macrocycle: %v", err)
	}

	var mesoID struct {
		ID int `json:"id"`
	}
	meso := mesocyclePayload{MacrocycleID: macroID.ID, OrderIndex: 1, DurationWeeks: 4, Focus: "base"}
	if err := client.PostJSONOK(ctx, "/api/plan/mesocycles", meso, &mesoID); err != nil {
		t.Fatalf("Failed to create mesocycle: %v", err)
	}

	template := templatePayload{
		Name:          "Push",
		NotesMarkdown: "Warm up *properly*.",
		Exercises: []exerciseRowPayload{
			{ExerciseName: "Bench Press", ExerciseType: "strength", Sets: 3, Target: 8},
			{ExerciseName: "Overhead Press", ExerciseType: "strength", Sets: 3, Target: 10},
		},
	}
	if err := client.PostJSONOK(ctx, "/api/plan/templates", template, nil); err != nil {
		t.Fatalf("Failed to create template: %v", err)
	}

	for _, weekday := range []string{"Monday", "Thursday"} {
		assignment := weeklyAssignmentPayload{
			MesocycleID:  mesoID.ID,
			WeekNumber:   1,
			Weekday:      weekday,
			TemplateName: "Push",
		}
		if err := client.PostJSONOK(ctx, "/api/plan/weekly", assignment, nil); err != nil {
			t.Fatalf("Failed to save assignment: %v", err)
		}
	}

	t.Run("planned day resolves to the template", func(t *testing.T) {
		var got workoutResponse
		if err := client.GetJSON(ctx, "/api/workouts/"+monday.Format(urlDateFormat), &got); err != nil {
			t.Fatalf("Failed to resolve workout: %v", err)
		}
		if got.State != "plan_found" {
			t.Fatalf("state = %q, want plan_found", got.State)
		}
		if got.TemplateName != "Push" || got.WeekInMacro != 1 || got.WeekInMeso != 1 {
			t.Errorf("resolution = %+v, want Push week 1/1", got)
		}
		if len(got.Exercises) != 2 {
			t.Fatalf("len(exercises) = %d, want 2", len(got.Exercises))
		}
		if got.NotesHTML == "" || got.NotesHTML == template.NotesMarkdown {
			t.Errorf("notes_html = %q, want rendered HTML", got.NotesHTML)
		}
	})

	t.Run("unassigned day in a covered week rests", func(t *testing.T) {
		tuesday := monday.AddDate(0, 0, 1)
		var got workoutResponse
		if err := client.GetJSON(ctx, "/api/workouts/"+tuesday.Format(urlDateFormat), &got); err != nil {
			t.Fatalf("Failed to resolve workout: %v", err)
		}
		if got.State != "rest_day" {
			t.Errorf("state = %q, want rest_day", got.State)
		}
	})

	t.Run("date past the laid-out weeks has no block", func(t *testing.T) {
		afterBlocks := monday.AddDate(0, 0, 7*5)
		var got workoutResponse
		if err := client.GetJSON(ctx, "/api/workouts/"+afterBlocks.Format(urlDateFormat), &got); err != nil {
			t.Fatalf("Failed to resolve workout: %v", err)
		}
		if got.State != "no_active_mesocycle" {
			t.Errorf("state = %q, want no_active_mesocycle", got.State)
		}
	})

	t.Run("week schedule resolves all seven days", func(t *testing.T) {
		var got struct {
			Days []workoutResponse `json:"days"`
		}
		if err := client.GetJSON(ctx, "/api/schedule/"+monday.Format(urlDateFormat), &got); err != nil {
			t.Fatalf("Failed to resolve week: %v", err)
		}
		if len(got.Days) != 7 {
			t.Fatalf("len(days) = %d, want 7", len(got.Days))
		}
		planned := 0
		for _, day := range got.Days {
			if day.State == "plan_found" {
				planned++
			}
		}
		if planned != 2 {
			t.Errorf("planned days = %d, want 2", planned)
		}
	})

	t.Run("logging a workout estimates calories", func(t *testing.T) {
		profile := profilePayload{Sex: "M", Age: 30, HeightM: 1.80, WeightKg: 80}
		if err := client.PostJSONOK(ctx, "/api/profile", profile, nil); err != nil {
			t.Fatalf("Failed to save profile: %v", err)
		}

		var logged workoutLogResponse
		entry := workoutLogRequest{
			TemplateName: "Push",
			Category:     "strength",
			Intensity:    "moderate",
			DurationMin:  45,
			TotalLoadKg:  2000,
		}
		err := client.PostJSONOK(ctx, "/api/workouts/"+monday.Format(urlDateFormat)+"/log", entry, &logged)
		if err != nil {
			t.Fatalf("Failed to log workout: %v", err)
		}
		want := 2000*0.035 + 45*4*1.1
		if diff := logged.Calories - want; diff > 0.01 || diff < -0.01 {
			t.Errorf("calories = %.2f, want %.2f", logged.Calories, want)
		}
	})

	t.Run("unknown intensity is a client error", func(t *testing.T) {
		entry := workoutLogRequest{Category: "cardio", Intensity: "brutal", DurationMin: 30}
		resp, err := client.PostJSON(ctx, "/api/workouts/"+monday.Format(urlDateFormat)+"/log", entry)
		if err != nil {
			t.Fatalf("Failed to post workout log: %v", err)
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != 400 {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("previous performance surfaces on the next resolution", func(t *testing.T) {
		sets := exerciseLogRequest{
			Sets: []exerciseLogSetRequest{
				{ExerciseName: "Bench Press", SetNumber: 1, WeightKg: 60, Reps: 8},
				{ExerciseName: "Bench Press", SetNumber: 2, WeightKg: 62.5, Reps: 6},
			},
		}
		err := client.PostJSONOK(ctx, "/api/workouts/"+monday.Format(urlDateFormat)+"/exercises/log", sets, nil)
		if err != nil {
			t.Fatalf("Failed to log exercise sets: %v", err)
		}

		thursday := monday.AddDate(0, 0, 3)
		var got workoutResponse
		if err = client.GetJSON(ctx, "/api/workouts/"+thursday.Format(urlDateFormat), &got); err != nil {
			t.Fatalf("Failed to resolve workout: %v", err)
		}
		if len(got.Exercises) != 2 {
			t.Fatalf("len(exercises) = %d, want 2", len(got.Exercises))
		}
		bench := got.Exercises[0]
		if bench.ExerciseName != "Bench Press" {
			t.Fatalf("first exercise = %q, want Bench Press", bench.ExerciseName)
		}
		if len(bench.PreviousSets) != 2 {
			t.Fatalf("len(previous_sets) = %d, want 2", len(bench.PreviousSets))
		}
		if bench.PreviousSets[1].WeightKg != 62.5 {
			t.Errorf("previous set 2 weight = %.1f, want 62.5", bench.PreviousSets[1].WeightKg)
		}
	})

	t.Run("history and consistency reflect the log", func(t *testing.T) {
		var stats statsResponse
		if err := client.GetJSON(ctx, "/api/history/stats", &stats); err != nil {
			t.Fatalf("Failed to get stats: %v", err)
		}
		if stats.TotalSessions != 1 {
			t.Errorf("total_sessions = %d, want 1", stats.TotalSessions)
		}
		if stats.DistinctWeeks != 1 || stats.AvgSessionsPerWeek != 1 {
			t.Errorf("weekly averages = %d weeks, %.1f sessions/week, want 1 and 1",
				stats.DistinctWeeks, stats.AvgSessionsPerWeek)
		}
		if stats.TotalCalories <= 0 || stats.AvgCaloriesPerWeek != stats.TotalCalories {
			t.Errorf("calories = %.1f total, %.1f per week, want a positive matching pair",
				stats.TotalCalories, stats.AvgCaloriesPerWeek)
		}

		var consistency consistencyResponse
		if err := client.GetJSON(ctx, "/api/history/consistency", &consistency); err != nil {
			t.Fatalf("Failed to get consistency: %v", err)
		}
		if consistency.PlannedDays != 2 {
			t.Errorf("planned_days = %d, want 2", consistency.PlannedDays)
		}
		if consistency.TrainedDays != 1 {
			t.Errorf("trained_days = %d, want 1", consistency.TrainedDays)
		}
		// One session logged on Monday out of two planned days.
		if consistency.AdherencePct != 50 {
			t.Errorf("adherence_pct = %d, want 50", consistency.AdherencePct)
		}
	})
}

func Test_application_planValidation(t *testing.T) {
	server := startTestServer(t)
	client := server.Client()
	ctx := t.Context()

	badRequests := []struct {
		name string
		path string
		body any
	}{
		{
			name: "macrocycle ending before it starts",
			path: "/api/plan/macrocycles",
			body: macrocyclePayload{Name: "Backwards", StartDate: "01/03/2026", EndDate: "01/01/2026"},
		},
		{
			name: "mesocycle without weeks",
			path: "/api/plan/mesocycles",
			body: mesocyclePayload{MacrocycleID: 1, OrderIndex: 1, DurationWeeks: 0},
		},
		{
			name: "reserved template name",
			path: "/api/plan/templates",
			body: templatePayload{Name: "Rest"},
		},
		{
			name: "assignment with bad weekday",
			path: "/api/plan/weekly",
			body: weeklyAssignmentPayload{MesocycleID: 1, WeekNumber: 1, Weekday: "Funday", TemplateName: "Push"},
		},
	}
	for _, tt := range badRequests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.PostJSON(ctx, tt.path, tt.body)
			if err != nil {
				t.Fatalf("Failed to post: %v", err)
			}
			defer func() { _ = resp.Body.Close() }()
			if resp.StatusCode != 400 {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func Test_application_sessionSwitching(t *testing.T) {
	server := startTestServer(t)
	client := server.Client()
	ctx := t.Context()

	if err := client.PostJSONOK(ctx, "/api/profile",
		profilePayload{Sex: "M", Age: 40, HeightM: 1.75, WeightKg: 85}, nil); err != nil {
		t.Fatalf("Failed to save profile: %v", err)
	}

	var switched sessionResponse
	if err := client.PostJSONOK(ctx, "/api/session", sessionRequest{Name: "ana"}, &switched); err != nil {
		t.Fatalf("Failed to switch user: %v", err)
	}
	if switched.Name != "ana" || switched.UserID == 1 {
		t.Fatalf("switched session = %+v, want a fresh user named ana", switched)
	}

	var got profilePayload
	if err := client.GetJSON(ctx, "/api/profile", &got); err != nil {
		t.Fatalf("Failed to get profile: %v", err)
	}
	if got.WeightKg != 0 {
		t.Errorf("new user sees weight %.1f, want an empty profile", got.WeightKg)
	}

	var session sessionResponse
	if err := client.GetJSON(ctx, "/api/session", &session); err != nil {
		t.Fatalf("Failed to get session: %v", err)
	}
	if session.Name != "ana" {
		t.Errorf("active user = %q, want ana", session.Name)
	}
	if len(session.Users) != 2 {
		t.Errorf("len(users) = %d, want 2", len(session.Users))
	}
}
