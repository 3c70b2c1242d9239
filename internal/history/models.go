package history

// WorkoutEntry is one performed workout session in the append-only log.
type WorkoutEntry struct {
	Seq          int
	Date         string // metrics.DateFormat
	TemplateName string
	Category     string // "cardio" or "strength"
	Intensity    string
	DurationMin  int
	TotalLoadKg  float64
	Calories     float64
}

// ExerciseSet is one logged set of a named exercise. Cardio exercises log
// minutes instead of weight and reps.
type ExerciseSet struct {
	Seq          int
	Date         string // metrics.DateFormat
	ExerciseName string
	SetNumber    int
	WeightKg     float64
	Reps         int
	Minutes      int
}

// WeekCount aggregates the sessions of one ISO week. Keying on both the ISO
// year and the week number keeps the last days of December apart from the
// first days of the following January.
type WeekCount struct {
	Year     int
	Week     int
	Sessions int
	Calories float64
}

// Stats is the summary view over the workout log.
type Stats struct {
	TotalSessions       int
	ThisWeekSessions    int
	TotalCalories       float64
	DistinctWeeks       int
	AvgSessionsPerWeek  float64
	AvgCaloriesPerWeek  float64
	AvgCaloriesPerDay   float64
	LastSessionDate     string
	LastSessionCalories float64
	Weekly              []WeekCount
}

// Consistency reports training regularity against the active plan.
type Consistency struct {
	StreakDays          int
	TrainedDaysThisWeek int
	PlannedDaysThisWeek int
	AdherencePct        int
}
