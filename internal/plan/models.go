package plan

import "time"

// RestTemplateName is the reserved template name that marks a planned rest
// day in a weekly assignment.
const RestTemplateName = "Rest"

// Macrocycle is a long training period with a start and end date. At most
// one macrocycle is active on any given date.
type Macrocycle struct {
	ID           int
	Name         string
	GoalMarkdown string
	Start        time.Time
	End          time.Time
}

// Mesocycle is a training block within a macrocycle. Blocks are ordered by
// OrderIndex and laid out back to back from the macrocycle start.
type Mesocycle struct {
	ID            int
	MacrocycleID  int
	OrderIndex    int
	DurationWeeks int
	Focus         string
}

// WeeklyAssignment maps one weekday of one mesocycle week to a workout
// template. Absent assignments mean rest.
type WeeklyAssignment struct {
	MesocycleID  int
	WeekNumber   int
	Weekday      time.Weekday
	TemplateName string
}

// ExerciseRow is one prescribed exercise within a template.
type ExerciseRow struct {
	OrderIndex   int
	ExerciseName string
	ExerciseType string // "strength" or "cardio"
	Sets         int
	Target       int // reps for strength, minutes for cardio
}

// Template is a named workout prescription.
type Template struct {
	ID            int
	Name          string
	NotesMarkdown string
	Exercises     []ExerciseRow
}

// Schedule is the full periodization state needed to resolve any date. The
// resolver treats it as immutable.
type Schedule struct {
	Macrocycles []Macrocycle
	Mesocycles  []Mesocycle
	Assignments []WeeklyAssignment
	Templates   map[string]Template
}

// State is the outcome category of resolving a date against the schedule.
type State string

const (
	// StateNoActiveMacrocycle means no macrocycle covers the date.
	StateNoActiveMacrocycle State = "no_active_macrocycle"
	// StateBeforeMacrocycleStart means a macrocycle exists but the date
	// precedes its start.
	StateBeforeMacrocycleStart State = "before_macrocycle_start"
	// StateNoActiveMesocycle means the date falls inside a macrocycle but
	// beyond its laid-out mesocycle weeks.
	StateNoActiveMesocycle State = "no_active_mesocycle"
	// StateRestDay means the schedule deliberately plans no workout.
	StateRestDay State = "rest_day"
	// StateUnknownTemplate means the assignment references a template that
	// does not exist. Callers treat it as no plan for the day.
	StateUnknownTemplate State = "unknown_template"
	// StatePlanFound means a workout template is planned for the date.
	StatePlanFound State = "plan_found"
)

// Resolution is the outcome of resolving one date.
type Resolution struct {
	State        State
	Date         time.Time
	Weekday      time.Weekday
	Macrocycle   *Macrocycle
	Mesocycle    *Mesocycle
	WeekInMacro  int
	WeekInMeso   int
	TemplateName string
	Template     *Template
}
