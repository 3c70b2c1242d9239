package plan

import (
	"sort"
	"time"
)

// Resolve walks the periodization hierarchy for one calendar date. It is a
// pure function of the schedule and the date: the same inputs always produce
// the same resolution.
//
// The walk is macrocycle, then week within it, then the mesocycle covering
// that week, then the weekday assignment. Each missing level short-circuits
// into its own state so that callers can distinguish a deliberately planned
// rest day from the absence of any plan.
func Resolve(schedule Schedule, date time.Time) Resolution {
	date = truncateToDay(date)
	resolution := Resolution{
		State:   StateNoActiveMacrocycle,
		Date:    date,
		Weekday: date.Weekday(),
	}

	macro, upcoming := findMacrocycle(schedule.Macrocycles, date)
	if macro == nil {
		if upcoming != nil {
			resolution.State = StateBeforeMacrocycleStart
			resolution.Macrocycle = upcoming
		}
		return resolution
	}
	resolution.Macrocycle = macro
	resolution.WeekInMacro = int(date.Sub(truncateToDay(macro.Start)).Hours()/24)/7 + 1

	meso, weekInMeso := findMesocycle(schedule.Mesocycles, macro.ID, resolution.WeekInMacro)
	if meso == nil {
		resolution.State = StateNoActiveMesocycle
		return resolution
	}
	resolution.Mesocycle = meso
	resolution.WeekInMeso = weekInMeso

	templateName, assigned := findAssignment(schedule.Assignments, meso.ID, weekInMeso, date.Weekday())
	if !assigned || templateName == RestTemplateName {
		resolution.State = StateRestDay
		return resolution
	}
	resolution.TemplateName = templateName

	// A template without exercise rows cannot prescribe a session, so it
	// degrades the same way as a dangling template reference.
	template, ok := schedule.Templates[templateName]
	if !ok || len(template.Exercises) == 0 {
		resolution.State = StateUnknownTemplate
		return resolution
	}
	resolution.State = StatePlanFound
	resolution.Template = &template
	return resolution
}

// findMacrocycle returns the macrocycle covering date, or nil plus the next
// upcoming macrocycle when the date precedes every cycle.
func findMacrocycle(macrocycles []Macrocycle, date time.Time) (active, upcoming *Macrocycle) {
	for i := range macrocycles {
		macro := &macrocycles[i]
		start := truncateToDay(macro.Start)
		end := truncateToDay(macro.End)
		if !date.Before(start) && !date.After(end) {
			return macro, nil
		}
		if date.Before(start) && (upcoming == nil || start.Before(truncateToDay(upcoming.Start))) {
			upcoming = macro
		}
	}
	return nil, upcoming
}

// findMesocycle locates the mesocycle whose cumulative week range contains
// weekInMacro and the week number within it, both 1-based. Blocks are laid
// out back to back in ascending order index.
func findMesocycle(mesocycles []Mesocycle, macrocycleID, weekInMacro int) (*Mesocycle, int) {
	ordered := make([]Mesocycle, 0, len(mesocycles))
	for _, meso := range mesocycles {
		if meso.MacrocycleID == macrocycleID {
			ordered = append(ordered, meso)
		}
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].OrderIndex < ordered[j].OrderIndex
	})

	weeksBefore := 0
	for i := range ordered {
		if weekInMacro <= weeksBefore+ordered[i].DurationWeeks {
			return &ordered[i], weekInMacro - weeksBefore
		}
		weeksBefore += ordered[i].DurationWeeks
	}
	return nil, 0
}

func findAssignment(
	assignments []WeeklyAssignment,
	mesocycleID, weekNumber int,
	weekday time.Weekday,
) (string, bool) {
	for _, assignment := range assignments {
		if assignment.MesocycleID == mesocycleID &&
			assignment.WeekNumber == weekNumber &&
			assignment.Weekday == weekday {
			return assignment.TemplateName, true
		}
	}
	return "", false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// startOfWeek returns the Monday of the week containing date.
func startOfWeek(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7
	return truncateToDay(date).AddDate(0, 0, -offset)
}
