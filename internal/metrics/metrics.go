// Package metrics converts biometric and goal inputs into energy, hydration,
// and weight-projection targets. Everything in this package is a pure
// function over value types so that it can be exercised without any storage.
package metrics

import (
	"math"
	"time"
)

// DateFormat is the textual day/month/year convention used at the API
// boundary for calendar dates.
const DateFormat = "02/01/2006"

// Sex of the tracked person.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// ActivityLevel is the self-reported overall activity level.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityIntense   ActivityLevel = "intense"
	ActivityExtreme   ActivityLevel = "extreme"
)

// Environment is the typical climate the person lives in. It feeds the
// hydration target.
type Environment string

const (
	EnvironmentCold Environment = "cold"
	EnvironmentMild Environment = "mild"
	EnvironmentHot  Environment = "hot"
)

// GoalDirection is the desired direction of weight change.
type GoalDirection string

const (
	DirectionLoss        GoalDirection = "loss"
	DirectionMaintenance GoalDirection = "maintenance"
	DirectionGain        GoalDirection = "gain"
)

// Snapshot is the current biometric state fed into the calculators.
type Snapshot struct {
	Sex      Sex
	Age      int
	HeightM  float64
	WeightKg float64
}

// Goal describes the active weight goal. TargetWeightKg of 0 means the user
// left the target open and the ideal reference weight is used instead.
// DietFactor of 0 means unset and defaults to 1.0.
type Goal struct {
	StartDate      string // DateFormat, e.g. "31/01/2026"
	Activity       ActivityLevel
	Environment    Environment
	Direction      GoalDirection
	TargetWeightKg float64
	DietFactor     float64
}

// Result bundles the derived health metrics and targets.
//
// ProjectedDate is "N/A" and DaysRemaining is 0 when no projection is
// available, i.e. the weekly change is zero or the goal start date cannot be
// parsed.
type Result struct {
	BMI               float64
	BasalRate         float64
	TDEE              float64
	TargetIntakeKcal  float64
	IdealWeightKg     float64
	EffectiveTargetKg float64
	WeeklyChangeKg    float64
	WeeklyChangePct   float64
	ProjectedDate     string
	DaysRemaining     int
	WaterLitres       float64
}

// NoProjection is the placeholder for an unavailable completion date.
const NoProjection = "N/A"

// Fallback values substituted for malformed or absent biometrics so that the
// calculation always completes.
const (
	defaultHeightM  = 1.70
	defaultWeightKg = 70.0
)

// kcalPerKg converts a calorie balance into weight change. The textbook
// value is roughly 7700 kcal per kg of fat; we use 9000 on purpose so that
// projected timelines err on the conservative side.
const kcalPerKg = 9000.0

//nolint:gochecknoglobals // fixed physiological lookup tables.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityIntense:   1.725,
	ActivityExtreme:   1.9,
}

//nolint:gochecknoglobals // fixed hydration lookup tables.
var (
	activityWaterBonus = map[ActivityLevel]float64{
		ActivitySedentary: 0,
		ActivityLight:     200,
		ActivityModerate:  400,
		ActivityIntense:   600,
		ActivityExtreme:   800,
	}
	environmentWaterBonus = map[Environment]float64{
		EnvironmentCold: 0,
		EnvironmentMild: 200,
		EnvironmentHot:  300,
	}
)

// Compute derives the full metrics record from a biometric snapshot and the
// active goal. It is a pure function of its arguments; today anchors the
// completion-date projection.
//
// Malformed inputs are substituted with documented defaults instead of
// failing: this is a personal tracker where availability beats strictness.
func Compute(snapshot Snapshot, goal Goal, today time.Time) Result {
	heightM := snapshot.HeightM
	if heightM <= 0 {
		heightM = defaultHeightM
	}
	weight := snapshot.WeightKg
	if weight <= 0 {
		weight = defaultWeightKg
	}
	age := snapshot.Age
	if age < 0 {
		age = 0
	}
	dietFactor := goal.DietFactor
	if dietFactor <= 0 {
		dietFactor = 1.0
	}

	basal := basalRate(snapshot.Sex, weight, heightM, age)

	multiplier, ok := activityMultipliers[goal.Activity]
	if !ok {
		multiplier = activityMultipliers[ActivityModerate]
	}
	tdee := basal * multiplier

	intake := targetIntake(goal.Direction, tdee, basal, dietFactor)

	idealWeight := IdealWeight(heightM)
	effectiveTarget := idealWeight
	if goal.TargetWeightKg > 0 {
		effectiveTarget = goal.TargetWeightKg
	}

	weeklyChangeKg := (intake - tdee) * 7 / kcalPerKg
	weeklyChangePct := 0.0
	if weight > 0 {
		weeklyChangePct = weeklyChangeKg / weight * 100
	}

	projectedDate, daysRemaining := projectCompletion(goal.StartDate, weight, effectiveTarget, weeklyChangeKg, today)

	return Result{
		BMI:               weight / (heightM * heightM),
		BasalRate:         basal,
		TDEE:              tdee,
		TargetIntakeKcal:  intake,
		IdealWeightKg:     idealWeight,
		EffectiveTargetKg: effectiveTarget,
		WeeklyChangeKg:    weeklyChangeKg,
		WeeklyChangePct:   weeklyChangePct,
		ProjectedDate:     projectedDate,
		DaysRemaining:     daysRemaining,
		WaterLitres:       waterTarget(snapshot.Sex, age, weight, goal.Activity, goal.Environment),
	}
}

// IdealWeight is the reference weight at the upper bound of the "normal"
// BMI band. It stands in for the target weight when the user did not set an
// explicit one.
func IdealWeight(heightM float64) float64 {
	if heightM <= 0 {
		heightM = defaultHeightM
	}
	return 24.9 * heightM * heightM
}

// basalRate implements the Harris-Benedict resting expenditure formula. The
// height is converted to centimeters for this formula only.
func basalRate(sex Sex, weightKg, heightM float64, age int) float64 {
	heightCm := heightM * 100
	if sex == SexMale {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	}
	return 447.593 + 9.247*weightKg + 3.092*heightCm - 4.330*float64(age)
}

// targetIntake computes the daily calorie target clamped to the safe band
// for the goal direction.
func targetIntake(direction GoalDirection, tdee, basal, dietFactor float64) float64 {
	switch direction {
	case DirectionLoss:
		intake := tdee * 0.8 / dietFactor
		return clamp(intake, basal, tdee)
	case DirectionGain:
		intake := tdee * 1.15 * dietFactor
		return clamp(intake, tdee, tdee*1.5)
	case DirectionMaintenance:
		return tdee
	default:
		return tdee
	}
}

func clamp(v, low, high float64) float64 {
	return math.Min(math.Max(v, low), high)
}

// projectCompletion estimates when the effective target weight is reached
// assuming the weekly change stays linear. No projection is available when
// the weekly change is zero or the goal start date does not parse.
func projectCompletion(
	startDate string,
	weightKg, effectiveTargetKg, weeklyChangeKg float64,
	today time.Time,
) (string, int) {
	if _, err := time.Parse(DateFormat, startDate); err != nil {
		return NoProjection, 0
	}
	if weeklyChangeKg == 0 {
		return NoProjection, 0
	}

	weeks := math.Abs((weightKg - effectiveTargetKg) / weeklyChangeKg)
	days := int(weeks * 7)
	projected := today.AddDate(0, 0, days)
	return projected.Format(DateFormat), days
}

// waterTarget computes the daily hydration target in liters.
func waterTarget(sex Sex, age int, weightKg float64, activity ActivityLevel, environment Environment) float64 {
	bonus := activityWaterBonus[activity] + environmentWaterBonus[environment]

	const seniorAge = 60
	switch {
	case sex == SexMale && age < seniorAge:
		bonus += 150
	case sex == SexMale:
		bonus -= 150
	case age >= seniorAge:
		// Females 60 and over.
		bonus -= 150
	}

	return (weightKg*30 + bonus) / 1000
}
